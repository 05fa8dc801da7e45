package models

import "time"

// Trip statuses.
const (
	TripInProgress = "in_progress"
	TripCompleted  = "completed"
)

type Trip struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	VehicleID       uint       `gorm:"index;not null" json:"vehicle_id" binding:"required"`
	Vehicle         *Vehicle   `gorm:"foreignKey:VehicleID;constraint:-" json:"vehicle,omitempty"`
	DriverID        uint       `gorm:"index;not null" json:"driver_id" binding:"required"`
	Driver          *Driver    `gorm:"foreignKey:DriverID;constraint:-" json:"driver,omitempty"`
	RouteID         uint       `gorm:"index;not null" json:"route_id" binding:"required"`
	Route           *Route     `gorm:"foreignKey:RouteID;constraint:-" json:"route,omitempty"`
	StartTime       time.Time  `gorm:"not null" json:"start_time" binding:"required"`
	EndTime         *time.Time `json:"end_time"`
	StartMileage    *float64   `json:"start_mileage"`
	EndMileage      *float64   `json:"end_mileage"`
	DistanceCovered *float64   `json:"distance_covered"`
	Status          string     `gorm:"default:in_progress" json:"status"`
	FuelConsumed    *float64   `json:"fuel_consumed"`
	AverageSpeed    *float64   `json:"average_speed"`
	CreatedAt       time.Time  `json:"created_at"`
}
