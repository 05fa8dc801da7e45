package repository

import (
	"time"

	"gorm.io/gorm"

	"fleetflow/internal/apperr"
	"fleetflow/internal/models"
	"fleetflow/internal/normalize"
)

type VehicleRepo struct {
	db *gorm.DB
}

func NewVehicleRepo(db *gorm.DB) *VehicleRepo {
	return &VehicleRepo{db: db}
}

// VehicleFilter holds the equality filters the list endpoint accepts.
// Empty fields mean "no constraint".
type VehicleFilter struct {
	Status      string
	VehicleType string
}

func (f VehicleFilter) apply(q *gorm.DB) *gorm.DB {
	if f.Status != "" {
		q = q.Where("vehicles.status = ?", f.Status)
	}
	if f.VehicleType != "" {
		q = q.Where("vehicles.vehicle_type = ?", f.VehicleType)
	}
	return q
}

// VehicleRow is the list/get projection: the vehicle plus the assigned
// driver's display name when one is set.
type VehicleRow struct {
	models.Vehicle
	DriverName *string `json:"driver_name"`
}

const vehicleProjection = "vehicles.*, users.name AS driver_name"

func (r *VehicleRepo) List(f VehicleFilter, page Page) ([]VehicleRow, Pagination, error) {
	var total int64
	if err := f.apply(r.db.Model(&models.Vehicle{})).Count(&total).Error; err != nil {
		return nil, Pagination{}, apperr.Classify(err)
	}

	rows := []VehicleRow{}
	err := f.apply(r.db.Model(&models.Vehicle{})).
		Select(vehicleProjection).
		Joins("LEFT JOIN users ON users.id = vehicles.assigned_driver_id").
		Order("vehicles.created_at DESC").
		Limit(page.normalized().Limit).
		Offset(page.offset()).
		Find(&rows).Error
	if err != nil {
		return nil, Pagination{}, apperr.Classify(err)
	}
	return rows, paginate(total, page), nil
}

func (r *VehicleRepo) GetByID(id uint) (*VehicleRow, error) {
	var row VehicleRow
	err := r.db.Model(&models.Vehicle{}).
		Select(vehicleProjection).
		Joins("LEFT JOIN users ON users.id = vehicles.assigned_driver_id").
		Where("vehicles.id = ?", id).
		First(&row).Error
	if err != nil {
		return nil, apperr.Classify(err)
	}
	return &row, nil
}

func (r *VehicleRepo) Create(v *models.Vehicle) error {
	if v.Status == "" {
		v.Status = models.VehicleAvailable
	}
	return apperr.Classify(r.db.Create(v).Error)
}

// VehiclePatch enumerates every column a partial update may touch.
type VehiclePatch struct {
	VehicleNumber      *string          `json:"vehicle_number"`
	VehicleType        *string          `json:"vehicle_type"`
	Make               *string          `json:"make"`
	Model              *string          `json:"model"`
	Year               *normalize.Int   `json:"year"`
	Capacity           *normalize.Float `json:"capacity"`
	FuelType           *string          `json:"fuel_type"`
	Status             *string          `json:"status"`
	Mileage            *normalize.Float `json:"mileage"`
	LastServiceDate    *normalize.Date  `json:"last_service_date"`
	NextServiceDate    *normalize.Date  `json:"next_service_date"`
	InsuranceExpiry    *normalize.Date  `json:"insurance_expiry"`
	RegistrationExpiry *normalize.Date  `json:"registration_expiry"`
	AssignedDriverID   *normalize.Uint  `json:"assigned_driver_id"`
	PurchaseDate       *normalize.Date  `json:"purchase_date"`
	PurchaseCost       *normalize.Float `json:"purchase_cost"`
	CurrentLocation    *string          `json:"current_location"`
	Notes              *string          `json:"notes"`
}

func (p VehiclePatch) columns() map[string]any {
	m := map[string]any{}
	setString(m, "vehicle_number", p.VehicleNumber)
	setString(m, "vehicle_type", p.VehicleType)
	setString(m, "make", p.Make)
	setString(m, "model", p.Model)
	setInt(m, "year", p.Year)
	setFloat(m, "capacity", p.Capacity)
	setString(m, "fuel_type", p.FuelType)
	setString(m, "status", p.Status)
	if p.Mileage != nil && p.Mileage.Valid {
		// Mileage is not nullable; explicit nulls are ignored.
		m["mileage"] = p.Mileage.Value
	}
	setDate(m, "last_service_date", p.LastServiceDate)
	setDate(m, "next_service_date", p.NextServiceDate)
	setDate(m, "insurance_expiry", p.InsuranceExpiry)
	setDate(m, "registration_expiry", p.RegistrationExpiry)
	setUint(m, "assigned_driver_id", p.AssignedDriverID)
	setDate(m, "purchase_date", p.PurchaseDate)
	setFloat(m, "purchase_cost", p.PurchaseCost)
	setString(m, "current_location", p.CurrentLocation)
	setString(m, "notes", p.Notes)
	return m
}

func (r *VehicleRepo) Update(id uint, patch VehiclePatch) (*VehicleRow, error) {
	values := patch.columns()
	values["updated_at"] = time.Now()
	res := r.db.Model(&models.Vehicle{}).Where("id = ?", id).Updates(values)
	if err := finishWrite(res); err != nil {
		return nil, err
	}
	return r.GetByID(id)
}

func (r *VehicleRepo) Delete(id uint) error {
	return finishWrite(r.db.Delete(&models.Vehicle{}, id))
}
