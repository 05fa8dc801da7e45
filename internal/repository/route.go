package repository

import (
	"time"

	"gorm.io/gorm"

	"fleetflow/internal/apperr"
	"fleetflow/internal/models"
	"fleetflow/internal/normalize"
)

type RouteRepo struct {
	db *gorm.DB
}

func NewRouteRepo(db *gorm.DB) *RouteRepo {
	return &RouteRepo{db: db}
}

type RouteFilter struct {
	Status string
}

func (f RouteFilter) apply(q *gorm.DB) *gorm.DB {
	if f.Status != "" {
		q = q.Where("routes.status = ?", f.Status)
	}
	return q
}

type RouteRow struct {
	models.Route
	VehicleNumber *string `json:"vehicle_number"`
	LicenseNumber *string `json:"license_number"`
	DriverName    *string `json:"driver_name"`
}

const routeProjection = "routes.*, vehicles.vehicle_number, drivers.license_number, users.name AS driver_name"

func routeJoins(q *gorm.DB) *gorm.DB {
	return q.
		Joins("LEFT JOIN vehicles ON vehicles.id = routes.assigned_vehicle_id").
		Joins("LEFT JOIN drivers ON drivers.id = routes.assigned_driver_id").
		Joins("LEFT JOIN users ON users.id = drivers.user_id")
}

func (r *RouteRepo) List(f RouteFilter, page Page) ([]RouteRow, Pagination, error) {
	var total int64
	if err := f.apply(r.db.Model(&models.Route{})).Count(&total).Error; err != nil {
		return nil, Pagination{}, apperr.Classify(err)
	}

	rows := []RouteRow{}
	err := routeJoins(f.apply(r.db.Model(&models.Route{}))).
		Select(routeProjection).
		Order("routes.created_at DESC").
		Limit(page.normalized().Limit).
		Offset(page.offset()).
		Find(&rows).Error
	if err != nil {
		return nil, Pagination{}, apperr.Classify(err)
	}
	return rows, paginate(total, page), nil
}

func (r *RouteRepo) GetByID(id uint) (*RouteRow, error) {
	var row RouteRow
	err := routeJoins(r.db.Model(&models.Route{})).
		Select(routeProjection).
		Where("routes.id = ?", id).
		First(&row).Error
	if err != nil {
		return nil, apperr.Classify(err)
	}
	return &row, nil
}

func (r *RouteRepo) Create(route *models.Route) error {
	if route.Status == "" {
		route.Status = models.RoutePlanned
	}
	return apperr.Classify(r.db.Create(route).Error)
}

type RoutePatch struct {
	RouteName         *string          `json:"route_name"`
	Origin            *string          `json:"origin"`
	Destination       *string          `json:"destination"`
	Distance          *normalize.Float `json:"distance"`
	EstimatedDuration *normalize.Int   `json:"estimated_duration"`
	Waypoints         *string          `json:"waypoints"`
	Status            *string          `json:"status"`
	AssignedVehicleID *normalize.Uint  `json:"assigned_vehicle_id"`
	AssignedDriverID  *normalize.Uint  `json:"assigned_driver_id"`
	PlannedStartTime  *normalize.Date  `json:"planned_start_time"`
	ActualStartTime   *normalize.Date  `json:"actual_start_time"`
	PlannedEndTime    *normalize.Date  `json:"planned_end_time"`
	ActualEndTime     *normalize.Date  `json:"actual_end_time"`
	FuelCost          *normalize.Float `json:"fuel_cost"`
	TollCost          *normalize.Float `json:"toll_cost"`
	Notes             *string          `json:"notes"`
}

func (p RoutePatch) columns() map[string]any {
	m := map[string]any{}
	setString(m, "route_name", p.RouteName)
	setString(m, "origin", p.Origin)
	setString(m, "destination", p.Destination)
	setFloat(m, "distance", p.Distance)
	setInt(m, "estimated_duration", p.EstimatedDuration)
	setString(m, "waypoints", p.Waypoints)
	setString(m, "status", p.Status)
	setUint(m, "assigned_vehicle_id", p.AssignedVehicleID)
	setUint(m, "assigned_driver_id", p.AssignedDriverID)
	setDate(m, "planned_start_time", p.PlannedStartTime)
	setDate(m, "actual_start_time", p.ActualStartTime)
	setDate(m, "planned_end_time", p.PlannedEndTime)
	setDate(m, "actual_end_time", p.ActualEndTime)
	setFloat(m, "fuel_cost", p.FuelCost)
	setFloat(m, "toll_cost", p.TollCost)
	setString(m, "notes", p.Notes)
	return m
}

func (r *RouteRepo) Update(id uint, patch RoutePatch) (*RouteRow, error) {
	values := patch.columns()
	values["updated_at"] = time.Now()
	res := r.db.Model(&models.Route{}).Where("id = ?", id).Updates(values)
	if err := finishWrite(res); err != nil {
		return nil, err
	}
	return r.GetByID(id)
}

func (r *RouteRepo) Delete(id uint) error {
	return finishWrite(r.db.Delete(&models.Route{}, id))
}
