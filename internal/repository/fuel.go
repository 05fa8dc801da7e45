package repository

import (
	"gorm.io/gorm"

	"fleetflow/internal/apperr"
	"fleetflow/internal/models"
	"fleetflow/internal/normalize"
)

type FuelRepo struct {
	db *gorm.DB
}

func NewFuelRepo(db *gorm.DB) *FuelRepo {
	return &FuelRepo{db: db}
}

type FuelFilter struct {
	VehicleID uint
}

func (f FuelFilter) apply(q *gorm.DB) *gorm.DB {
	if f.VehicleID != 0 {
		q = q.Where("fuel_records.vehicle_id = ?", f.VehicleID)
	}
	return q
}

type FuelRow struct {
	models.FuelRecord
	VehicleNumber string  `json:"vehicle_number"`
	VehicleType   string  `json:"vehicle_type"`
	LicenseNumber *string `json:"license_number"`
	DriverName    *string `json:"driver_name"`
}

const fuelProjection = `fuel_records.*, vehicles.vehicle_number, vehicles.vehicle_type,
drivers.license_number, users.name AS driver_name`

func fuelJoins(q *gorm.DB) *gorm.DB {
	return q.
		Joins("INNER JOIN vehicles ON vehicles.id = fuel_records.vehicle_id").
		Joins("LEFT JOIN drivers ON drivers.id = fuel_records.driver_id").
		Joins("LEFT JOIN users ON users.id = drivers.user_id")
}

func (r *FuelRepo) List(f FuelFilter, page Page) ([]FuelRow, Pagination, error) {
	var total int64
	err := fuelJoins(f.apply(r.db.Model(&models.FuelRecord{}))).Count(&total).Error
	if err != nil {
		return nil, Pagination{}, apperr.Classify(err)
	}

	rows := []FuelRow{}
	err = fuelJoins(f.apply(r.db.Model(&models.FuelRecord{}))).
		Select(fuelProjection).
		Order("fuel_records.fuel_date DESC").
		Limit(page.normalized().Limit).
		Offset(page.offset()).
		Find(&rows).Error
	if err != nil {
		return nil, Pagination{}, apperr.Classify(err)
	}
	return rows, paginate(total, page), nil
}

func (r *FuelRepo) GetByID(id uint) (*FuelRow, error) {
	var row FuelRow
	err := fuelJoins(r.db.Model(&models.FuelRecord{})).
		Select(fuelProjection).
		Where("fuel_records.id = ?", id).
		First(&row).Error
	if err != nil {
		return nil, apperr.Classify(err)
	}
	return &row, nil
}

func (r *FuelRepo) Create(f *models.FuelRecord) error {
	if f.Quantity <= 0 {
		return apperr.ErrValidation
	}
	return apperr.Classify(r.db.Create(f).Error)
}

// FuelPatch omits updated_at handling: fuel records are log entries and
// the table carries no updated_at column.
type FuelPatch struct {
	VehicleID     *normalize.Uint  `json:"vehicle_id"`
	DriverID      *normalize.Uint  `json:"driver_id"`
	FuelDate      *normalize.Date  `json:"fuel_date"`
	FuelType      *string          `json:"fuel_type"`
	Quantity      *normalize.Float `json:"quantity"`
	CostPerUnit   *normalize.Float `json:"cost_per_unit"`
	TotalCost     *normalize.Float `json:"total_cost"`
	Mileage       *normalize.Float `json:"mileage"`
	FuelStation   *string          `json:"fuel_station"`
	Location      *string          `json:"location"`
	ReceiptNumber *string          `json:"receipt_number"`
	PaymentMethod *string          `json:"payment_method"`
	Notes         *string          `json:"notes"`
}

func (p FuelPatch) columns() map[string]any {
	m := map[string]any{}
	setUint(m, "vehicle_id", p.VehicleID)
	setUint(m, "driver_id", p.DriverID)
	setDate(m, "fuel_date", p.FuelDate)
	setString(m, "fuel_type", p.FuelType)
	if p.Quantity != nil && p.Quantity.Valid {
		m["quantity"] = p.Quantity.Value
	}
	setFloat(m, "cost_per_unit", p.CostPerUnit)
	setFloat(m, "total_cost", p.TotalCost)
	setFloat(m, "mileage", p.Mileage)
	setString(m, "fuel_station", p.FuelStation)
	setString(m, "location", p.Location)
	setString(m, "receipt_number", p.ReceiptNumber)
	setString(m, "payment_method", p.PaymentMethod)
	setString(m, "notes", p.Notes)
	return m
}

func (r *FuelRepo) Update(id uint, patch FuelPatch) (*FuelRow, error) {
	values := patch.columns()
	if len(values) > 0 {
		res := r.db.Model(&models.FuelRecord{}).Where("id = ?", id).Updates(values)
		if err := finishWrite(res); err != nil {
			return nil, err
		}
	}
	// An empty patch still reports NotFound for a missing row.
	return r.GetByID(id)
}

func (r *FuelRepo) Delete(id uint) error {
	return finishWrite(r.db.Delete(&models.FuelRecord{}, id))
}
