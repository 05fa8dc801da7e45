package repository

import (
	"gorm.io/gorm"

	"fleetflow/internal/apperr"
	"fleetflow/internal/models"
	"fleetflow/internal/normalize"
)

type TripRepo struct {
	db *gorm.DB
}

func NewTripRepo(db *gorm.DB) *TripRepo {
	return &TripRepo{db: db}
}

type TripFilter struct {
	Status    string
	VehicleID uint
	DriverID  uint
}

func (f TripFilter) apply(q *gorm.DB) *gorm.DB {
	if f.Status != "" {
		q = q.Where("trips.status = ?", f.Status)
	}
	if f.VehicleID != 0 {
		q = q.Where("trips.vehicle_id = ?", f.VehicleID)
	}
	if f.DriverID != 0 {
		q = q.Where("trips.driver_id = ?", f.DriverID)
	}
	return q
}

type TripRow struct {
	models.Trip
	VehicleNumber string  `json:"vehicle_number"`
	RouteName     *string `json:"route_name"`
	DriverName    *string `json:"driver_name"`
}

const tripProjection = `trips.*, vehicles.vehicle_number, routes.route_name, users.name AS driver_name`

func tripJoins(q *gorm.DB) *gorm.DB {
	return q.
		Joins("INNER JOIN vehicles ON vehicles.id = trips.vehicle_id").
		Joins("LEFT JOIN routes ON routes.id = trips.route_id").
		Joins("LEFT JOIN drivers ON drivers.id = trips.driver_id").
		Joins("LEFT JOIN users ON users.id = drivers.user_id")
}

func (r *TripRepo) List(f TripFilter, page Page) ([]TripRow, Pagination, error) {
	var total int64
	err := tripJoins(f.apply(r.db.Model(&models.Trip{}))).Count(&total).Error
	if err != nil {
		return nil, Pagination{}, apperr.Classify(err)
	}

	rows := []TripRow{}
	err = tripJoins(f.apply(r.db.Model(&models.Trip{}))).
		Select(tripProjection).
		Order("trips.start_time DESC").
		Limit(page.normalized().Limit).
		Offset(page.offset()).
		Find(&rows).Error
	if err != nil {
		return nil, Pagination{}, apperr.Classify(err)
	}
	return rows, paginate(total, page), nil
}

func (r *TripRepo) GetByID(id uint) (*TripRow, error) {
	var row TripRow
	err := tripJoins(r.db.Model(&models.Trip{})).
		Select(tripProjection).
		Where("trips.id = ?", id).
		First(&row).Error
	if err != nil {
		return nil, apperr.Classify(err)
	}
	return &row, nil
}

// Create derives distance_covered from the mileage bounds when the
// caller supplies both but no distance; an explicit value wins.
func (r *TripRepo) Create(t *models.Trip) error {
	if t.Status == "" {
		t.Status = models.TripInProgress
	}
	if t.DistanceCovered == nil && t.StartMileage != nil && t.EndMileage != nil {
		d := *t.EndMileage - *t.StartMileage
		t.DistanceCovered = &d
	}
	return apperr.Classify(r.db.Create(t).Error)
}

type TripPatch struct {
	EndTime         *normalize.Date  `json:"end_time"`
	StartMileage    *normalize.Float `json:"start_mileage"`
	EndMileage      *normalize.Float `json:"end_mileage"`
	DistanceCovered *normalize.Float `json:"distance_covered"`
	Status          *string          `json:"status"`
	FuelConsumed    *normalize.Float `json:"fuel_consumed"`
	AverageSpeed    *normalize.Float `json:"average_speed"`
}

func (p TripPatch) columns() map[string]any {
	m := map[string]any{}
	setDate(m, "end_time", p.EndTime)
	setFloat(m, "start_mileage", p.StartMileage)
	setFloat(m, "end_mileage", p.EndMileage)
	setFloat(m, "distance_covered", p.DistanceCovered)
	setString(m, "status", p.Status)
	setFloat(m, "fuel_consumed", p.FuelConsumed)
	setFloat(m, "average_speed", p.AverageSpeed)
	return m
}

func (r *TripRepo) Update(id uint, patch TripPatch) (*TripRow, error) {
	var existing models.Trip
	if err := r.db.First(&existing, id).Error; err != nil {
		return nil, apperr.Classify(err)
	}

	values := patch.columns()
	if patch.DistanceCovered == nil {
		start := existing.StartMileage
		if patch.StartMileage != nil {
			start = patch.StartMileage.Ptr()
		}
		end := existing.EndMileage
		if patch.EndMileage != nil {
			end = patch.EndMileage.Ptr()
		}
		if start != nil && end != nil && existing.DistanceCovered == nil {
			values["distance_covered"] = *end - *start
		}
	}

	if len(values) > 0 {
		res := r.db.Model(&models.Trip{}).Where("id = ?", id).Updates(values)
		if err := finishWrite(res); err != nil {
			return nil, err
		}
	}
	return r.GetByID(id)
}

func (r *TripRepo) Delete(id uint) error {
	return finishWrite(r.db.Delete(&models.Trip{}, id))
}
