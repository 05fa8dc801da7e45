package models

import "time"

// Route statuses. Routes are static planning records, not live telemetry.
const (
	RoutePlanned    = "planned"
	RouteInProgress = "in_progress"
	RouteCompleted  = "completed"
	RouteCancelled  = "cancelled"
)

type Route struct {
	ID                uint       `gorm:"primaryKey" json:"id"`
	RouteName         string     `gorm:"not null" json:"route_name" binding:"required"`
	Origin            string     `gorm:"not null" json:"origin" binding:"required"`
	Destination       string     `gorm:"not null" json:"destination" binding:"required"`
	Distance          *float64   `json:"distance"`
	EstimatedDuration *int       `json:"estimated_duration"`
	Waypoints         string     `json:"waypoints"`
	Status            string     `gorm:"index;default:planned" json:"status"`
	AssignedVehicleID *uint      `json:"assigned_vehicle_id"`
	AssignedVehicle   *Vehicle   `gorm:"foreignKey:AssignedVehicleID;constraint:-" json:"assigned_vehicle,omitempty"`
	AssignedDriverID  *uint      `json:"assigned_driver_id"`
	AssignedDriver    *Driver    `gorm:"foreignKey:AssignedDriverID;constraint:-" json:"assigned_driver,omitempty"`
	PlannedStartTime  *time.Time `json:"planned_start_time"`
	ActualStartTime   *time.Time `json:"actual_start_time"`
	PlannedEndTime    *time.Time `json:"planned_end_time"`
	ActualEndTime     *time.Time `json:"actual_end_time"`
	FuelCost          *float64   `json:"fuel_cost"`
	TollCost          *float64   `json:"toll_cost"`
	Notes             string     `json:"notes"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}
