package analytics

import (
	"fleetflow/internal/apperr"
	"fleetflow/internal/models"
)

// Per-entity status breakdowns: the same count-by-status idiom as the
// dashboard blocks, exposed on each resource's /stats endpoint.

type VehicleStats struct {
	Total       int64    `json:"total"`
	Available   int64    `json:"available"`
	OnTrip      int64    `json:"on_trip"`
	Maintenance int64    `json:"maintenance"`
	AvgMileage  *float64 `json:"avg_mileage"`
}

func (s *Service) VehicleStats() (*VehicleStats, error) {
	var stats VehicleStats
	err := s.db.Model(&models.Vehicle{}).Select(`
		COUNT(*) AS total,
		COUNT(CASE WHEN status = 'available' THEN 1 END) AS available,
		COUNT(CASE WHEN status = 'on_trip' THEN 1 END) AS on_trip,
		COUNT(CASE WHEN status = 'maintenance' THEN 1 END) AS maintenance,
		AVG(mileage) AS avg_mileage`).
		Scan(&stats).Error
	if err != nil {
		return nil, apperr.Classify(err)
	}
	return &stats, nil
}

type DriverStats struct {
	Total           int64    `json:"total"`
	Available       int64    `json:"available"`
	OnTrip          int64    `json:"on_trip"`
	OffDuty         int64    `json:"off_duty"`
	AvgRating       *float64 `json:"avg_rating"`
	TotalDeliveries int64    `json:"total_deliveries"`
}

func (s *Service) DriverStats() (*DriverStats, error) {
	var stats DriverStats
	err := s.db.Model(&models.Driver{}).Select(`
		COUNT(*) AS total,
		COUNT(CASE WHEN status = 'available' THEN 1 END) AS available,
		COUNT(CASE WHEN status = 'on_trip' THEN 1 END) AS on_trip,
		COUNT(CASE WHEN status = 'off_duty' THEN 1 END) AS off_duty,
		AVG(rating) AS avg_rating,
		COALESCE(SUM(total_deliveries), 0) AS total_deliveries`).
		Scan(&stats).Error
	if err != nil {
		return nil, apperr.Classify(err)
	}
	return &stats, nil
}

type DeliveryStats struct {
	Total        int64    `json:"total"`
	Pending      int64    `json:"pending"`
	InTransit    int64    `json:"in_transit"`
	Delivered    int64    `json:"delivered"`
	TotalRevenue float64  `json:"total_revenue"`
	AvgCost      *float64 `json:"avg_cost"`
}

func (s *Service) DeliveryStats() (*DeliveryStats, error) {
	var stats DeliveryStats
	err := s.db.Model(&models.Delivery{}).Select(`
		COUNT(*) AS total,
		COUNT(CASE WHEN status = 'pending' THEN 1 END) AS pending,
		COUNT(CASE WHEN status = 'in_transit' THEN 1 END) AS in_transit,
		COUNT(CASE WHEN status = 'delivered' THEN 1 END) AS delivered,
		COALESCE(SUM(delivery_cost), 0) AS total_revenue,
		AVG(delivery_cost) AS avg_cost`).
		Scan(&stats).Error
	if err != nil {
		return nil, apperr.Classify(err)
	}
	return &stats, nil
}

type FuelStats struct {
	TotalRecords       int64    `json:"total_records"`
	TotalQuantity      float64  `json:"total_quantity"`
	TotalCost          float64  `json:"total_cost"`
	AvgPricePerUnit    *float64 `json:"avg_price_per_unit"`
	AvgQuantityPerFill *float64 `json:"avg_quantity_per_fill"`
}

// FuelStats is scoped to a trailing window of days (default 30) and may
// be narrowed to a single vehicle.
func (s *Service) FuelStats(days int, vehicleID uint) (*FuelStats, error) {
	if days <= 0 {
		days = 30
	}
	q := s.db.Model(&models.FuelRecord{}).Select(`
		COUNT(*) AS total_records,
		COALESCE(SUM(quantity), 0) AS total_quantity,
		COALESCE(SUM(total_cost), 0) AS total_cost,
		AVG(cost_per_unit) AS avg_price_per_unit,
		AVG(quantity) AS avg_quantity_per_fill`).
		Where("fuel_date >= ?", windowStart(days))
	if vehicleID != 0 {
		q = q.Where("vehicle_id = ?", vehicleID)
	}

	var stats FuelStats
	if err := q.Scan(&stats).Error; err != nil {
		return nil, apperr.Classify(err)
	}
	return &stats, nil
}
