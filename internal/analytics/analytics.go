// Package analytics computes the cross-entity reporting views: the
// dashboard overview, revenue timelines and fleet-performance rollups.
// Everything here is read-only and computed on demand against the live
// tables; the dataset is small and consistency with writes matters more
// than query latency.
package analytics

import (
	"time"

	"gorm.io/gorm"

	"fleetflow/internal/apperr"
	"fleetflow/internal/models"
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// windowStart returns midnight `days` days before now, the cutoff used
// by every trailing-window query. Computing it here and binding it as a
// parameter keeps the SQL free of dialect-specific INTERVAL syntax.
func windowStart(days int) time.Time {
	year, month, day := time.Now().Date()
	midnight := time.Date(year, month, day, 0, 0, 0, 0, time.Local)
	return midnight.AddDate(0, 0, -days)
}

// VehicleOverview is the vehicles block of the dashboard.
type VehicleOverview struct {
	Total       int64 `json:"total"`
	Available   int64 `json:"available"`
	OnTrip      int64 `json:"on_trip"`
	Maintenance int64 `json:"maintenance"`
}

type DriverOverview struct {
	Total     int64    `json:"total"`
	Available int64    `json:"available"`
	OnTrip    int64    `json:"on_trip"`
	AvgRating *float64 `json:"avg_rating"`
}

type DeliveryOverview struct {
	Total        int64   `json:"total"`
	Delivered    int64   `json:"delivered"`
	InTransit    int64   `json:"in_transit"`
	Pending      int64   `json:"pending"`
	TotalRevenue float64 `json:"total_revenue"`
}

type RouteOverview struct {
	Total         int64   `json:"total"`
	Completed     int64   `json:"completed"`
	InProgress    int64   `json:"in_progress"`
	TotalDistance float64 `json:"total_distance"`
}

type MaintenanceOverview struct {
	Total     int64   `json:"total"`
	Scheduled int64   `json:"scheduled"`
	Completed int64   `json:"completed"`
	TotalCost float64 `json:"total_cost"`
}

// FuelOverview is scoped to the trailing 30 days.
type FuelOverview struct {
	Total         int64    `json:"total"`
	TotalCost     float64  `json:"total_cost"`
	TotalQuantity float64  `json:"total_quantity"`
	AvgPrice      *float64 `json:"avg_price"`
}

type Overview struct {
	Vehicles    VehicleOverview     `json:"vehicles"`
	Drivers     DriverOverview      `json:"drivers"`
	Deliveries  DeliveryOverview    `json:"deliveries"`
	Routes      RouteOverview       `json:"routes"`
	Maintenance MaintenanceOverview `json:"maintenance"`
	Fuel        FuelOverview        `json:"fuel"`
}

type DeliveryTrendPoint struct {
	Date    CalendarDate `json:"date"`
	Count   int64        `json:"count"`
	Revenue float64      `json:"revenue"`
}

type FuelTrendPoint struct {
	Date     CalendarDate `json:"date"`
	Quantity float64      `json:"quantity"`
	Cost     float64      `json:"cost"`
}

type Trends struct {
	Deliveries []DeliveryTrendPoint `json:"deliveries"`
	Fuel       []FuelTrendPoint     `json:"fuel"`
}

type VehicleUtilization struct {
	VehicleType string `json:"vehicle_type"`
	Count       int64  `json:"count"`
	Active      int64  `json:"active"`
}

type TopDriver struct {
	ID              uint    `json:"id"`
	Name            string  `json:"name"`
	Rating          float64 `json:"rating"`
	TotalDeliveries int     `json:"total_deliveries"`
	Status          string  `json:"status"`
}

type UpcomingMaintenance struct {
	models.Maintenance
	VehicleNumber string `json:"vehicle_number"`
	VehicleType   string `json:"vehicle_type"`
}

type Dashboard struct {
	Overview            Overview              `json:"overview"`
	Trends              Trends                `json:"trends"`
	VehicleUtilization  []VehicleUtilization  `json:"vehicleUtilization"`
	TopDrivers          []TopDriver           `json:"topDrivers"`
	UpcomingMaintenance []UpcomingMaintenance `json:"upcomingMaintenance"`
}

// Dashboard assembles the full overview the dashboard UI renders. The
// grouping and tie-break ordering below drive the visual ranking and
// must stay stable.
func (s *Service) Dashboard() (*Dashboard, error) {
	var d Dashboard

	err := s.db.Model(&models.Vehicle{}).Select(`
		COUNT(*) AS total,
		COUNT(CASE WHEN status = 'available' THEN 1 END) AS available,
		COUNT(CASE WHEN status = 'on_trip' THEN 1 END) AS on_trip,
		COUNT(CASE WHEN status = 'maintenance' THEN 1 END) AS maintenance`).
		Scan(&d.Overview.Vehicles).Error
	if err != nil {
		return nil, apperr.Classify(err)
	}

	err = s.db.Model(&models.Driver{}).Select(`
		COUNT(*) AS total,
		COUNT(CASE WHEN status = 'available' THEN 1 END) AS available,
		COUNT(CASE WHEN status = 'on_trip' THEN 1 END) AS on_trip,
		AVG(rating) AS avg_rating`).
		Scan(&d.Overview.Drivers).Error
	if err != nil {
		return nil, apperr.Classify(err)
	}

	err = s.db.Model(&models.Delivery{}).Select(`
		COUNT(*) AS total,
		COUNT(CASE WHEN status = 'delivered' THEN 1 END) AS delivered,
		COUNT(CASE WHEN status = 'in_transit' THEN 1 END) AS in_transit,
		COUNT(CASE WHEN status = 'pending' THEN 1 END) AS pending,
		COALESCE(SUM(delivery_cost), 0) AS total_revenue`).
		Scan(&d.Overview.Deliveries).Error
	if err != nil {
		return nil, apperr.Classify(err)
	}

	err = s.db.Model(&models.Route{}).Select(`
		COUNT(*) AS total,
		COUNT(CASE WHEN status = 'completed' THEN 1 END) AS completed,
		COUNT(CASE WHEN status = 'in_progress' THEN 1 END) AS in_progress,
		COALESCE(SUM(distance), 0) AS total_distance`).
		Scan(&d.Overview.Routes).Error
	if err != nil {
		return nil, apperr.Classify(err)
	}

	err = s.db.Model(&models.Maintenance{}).Select(`
		COUNT(*) AS total,
		COUNT(CASE WHEN status = 'scheduled' THEN 1 END) AS scheduled,
		COUNT(CASE WHEN status = 'completed' THEN 1 END) AS completed,
		COALESCE(SUM(cost), 0) AS total_cost`).
		Scan(&d.Overview.Maintenance).Error
	if err != nil {
		return nil, apperr.Classify(err)
	}

	err = s.db.Model(&models.FuelRecord{}).Select(`
		COUNT(*) AS total,
		COALESCE(SUM(total_cost), 0) AS total_cost,
		COALESCE(SUM(quantity), 0) AS total_quantity,
		AVG(cost_per_unit) AS avg_price`).
		Where("fuel_date >= ?", windowStart(30)).
		Scan(&d.Overview.Fuel).Error
	if err != nil {
		return nil, apperr.Classify(err)
	}

	d.Trends.Deliveries = []DeliveryTrendPoint{}
	err = s.db.Model(&models.Delivery{}).Select(`
		DATE(created_at) AS date,
		COUNT(*) AS count,
		COALESCE(SUM(delivery_cost), 0) AS revenue`).
		Where("created_at >= ?", windowStart(7)).
		Group("DATE(created_at)").
		Order("date").
		Scan(&d.Trends.Deliveries).Error
	if err != nil {
		return nil, apperr.Classify(err)
	}

	d.Trends.Fuel = []FuelTrendPoint{}
	err = s.db.Model(&models.FuelRecord{}).Select(`
		DATE(fuel_date) AS date,
		COALESCE(SUM(quantity), 0) AS quantity,
		COALESCE(SUM(total_cost), 0) AS cost`).
		Where("fuel_date >= ?", windowStart(30)).
		Group("DATE(fuel_date)").
		Order("date").
		Scan(&d.Trends.Fuel).Error
	if err != nil {
		return nil, apperr.Classify(err)
	}

	d.VehicleUtilization = []VehicleUtilization{}
	err = s.db.Model(&models.Vehicle{}).Select(`
		vehicle_type,
		COUNT(*) AS count,
		COUNT(CASE WHEN status = 'on_trip' THEN 1 END) AS active`).
		Group("vehicle_type").
		Scan(&d.VehicleUtilization).Error
	if err != nil {
		return nil, apperr.Classify(err)
	}

	d.TopDrivers = []TopDriver{}
	err = s.db.Model(&models.Driver{}).Select(`
		drivers.id, users.name, drivers.rating, drivers.total_deliveries, drivers.status`).
		Joins("INNER JOIN users ON users.id = drivers.user_id").
		Order("drivers.rating DESC, drivers.total_deliveries DESC").
		Limit(5).
		Scan(&d.TopDrivers).Error
	if err != nil {
		return nil, apperr.Classify(err)
	}

	d.UpcomingMaintenance = []UpcomingMaintenance{}
	err = s.db.Model(&models.Maintenance{}).Select(
		"maintenance.*, vehicles.vehicle_number, vehicles.vehicle_type").
		Joins("INNER JOIN vehicles ON vehicles.id = maintenance.vehicle_id").
		Where("maintenance.status = ? AND maintenance.scheduled_date >= ?",
			models.MaintenanceScheduled, windowStart(0)).
		Order("maintenance.scheduled_date").
		Limit(5).
		Scan(&d.UpcomingMaintenance).Error
	if err != nil {
		return nil, apperr.Classify(err)
	}

	return &d, nil
}
