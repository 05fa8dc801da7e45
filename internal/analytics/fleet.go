package analytics

import (
	"fleetflow/internal/apperr"
)

type FleetPerformanceRow struct {
	ID              uint    `json:"id"`
	VehicleNumber   string  `json:"vehicle_number"`
	VehicleType     string  `json:"vehicle_type"`
	Mileage         float64 `json:"mileage"`
	Status          string  `json:"status"`
	TotalTrips      int64   `json:"total_trips"`
	TotalDistance   float64 `json:"total_distance"`
	FuelCost        float64 `json:"fuel_cost"`
	MaintenanceCost float64 `json:"maintenance_cost"`
}

// FleetPerformance rolls trip, fuel and maintenance totals up per
// vehicle. Each child table is aggregated in its own subquery before the
// outer join so one table's row count cannot multiply another's sums; a
// vehicle with no child rows still appears, zeroed.
func (s *Service) FleetPerformance() ([]FleetPerformanceRow, error) {
	rows := []FleetPerformanceRow{}
	err := s.db.Raw(`
		SELECT
			v.id,
			v.vehicle_number,
			v.vehicle_type,
			v.mileage,
			v.status,
			COALESCE(t.total_trips, 0) AS total_trips,
			COALESCE(t.total_distance, 0) AS total_distance,
			COALESCE(f.fuel_cost, 0) AS fuel_cost,
			COALESCE(m.maintenance_cost, 0) AS maintenance_cost
		FROM vehicles v
		LEFT JOIN (
			SELECT vehicle_id,
			       COUNT(id) AS total_trips,
			       COALESCE(SUM(distance_covered), 0) AS total_distance
			FROM trips GROUP BY vehicle_id
		) t ON t.vehicle_id = v.id
		LEFT JOIN (
			SELECT vehicle_id, COALESCE(SUM(total_cost), 0) AS fuel_cost
			FROM fuel_records GROUP BY vehicle_id
		) f ON f.vehicle_id = v.id
		LEFT JOIN (
			SELECT vehicle_id, COALESCE(SUM(cost), 0) AS maintenance_cost
			FROM maintenance GROUP BY vehicle_id
		) m ON m.vehicle_id = v.id
		ORDER BY total_distance DESC`).
		Scan(&rows).Error
	if err != nil {
		return nil, apperr.Classify(err)
	}
	return rows, nil
}
