package analytics

import (
	"fleetflow/internal/apperr"
	"fleetflow/internal/models"
)

type RevenuePoint struct {
	Date       CalendarDate `json:"date"`
	Deliveries int64        `json:"deliveries"`
	Revenue    float64      `json:"revenue"`
	AvgRevenue *float64     `json:"avg_revenue"`
}

type RevenueSummary struct {
	TotalRevenue    float64  `json:"total_revenue"`
	TotalDeliveries int64    `json:"total_deliveries"`
	AvgDeliveryCost *float64 `json:"avg_delivery_cost"`
}

type RevenueReport struct {
	Timeline []RevenuePoint `json:"timeline"`
	Summary  RevenueSummary `json:"summary"`
}

// Revenue reports the per-day delivery revenue over a trailing window of
// periodDays (default 30). Only deliveries created inside the window
// count; older rows remain readable through the plain delivery list.
func (s *Service) Revenue(periodDays int) (*RevenueReport, error) {
	if periodDays <= 0 {
		periodDays = 30
	}
	since := windowStart(periodDays)

	report := RevenueReport{Timeline: []RevenuePoint{}}
	err := s.db.Model(&models.Delivery{}).Select(`
		DATE(created_at) AS date,
		COUNT(*) AS deliveries,
		COALESCE(SUM(delivery_cost), 0) AS revenue,
		AVG(delivery_cost) AS avg_revenue`).
		Where("created_at >= ?", since).
		Group("DATE(created_at)").
		Order("date").
		Scan(&report.Timeline).Error
	if err != nil {
		return nil, apperr.Classify(err)
	}

	err = s.db.Model(&models.Delivery{}).Select(`
		COALESCE(SUM(delivery_cost), 0) AS total_revenue,
		COUNT(*) AS total_deliveries,
		AVG(delivery_cost) AS avg_delivery_cost`).
		Where("created_at >= ?", since).
		Scan(&report.Summary).Error
	if err != nil {
		return nil, apperr.Classify(err)
	}

	return &report, nil
}
