package models

import "time"

// Vehicle statuses.
const (
	VehicleAvailable    = "available"
	VehicleOnTrip       = "on_trip"
	VehicleMaintenance  = "maintenance"
	VehicleOutOfService = "out_of_service"
)

type Vehicle struct {
	ID                 uint       `gorm:"primaryKey" json:"id"`
	VehicleNumber      string     `gorm:"uniqueIndex;not null" json:"vehicle_number" binding:"required"`
	VehicleType        string     `gorm:"not null" json:"vehicle_type" binding:"required"`
	Make               string     `json:"make"`
	Model              string     `json:"model"`
	Year               *int       `json:"year"`
	Capacity           *float64   `json:"capacity"`
	FuelType           string     `json:"fuel_type"`
	Status             string     `gorm:"index;default:available" json:"status"`
	Mileage            float64    `gorm:"default:0" json:"mileage"`
	LastServiceDate    *time.Time `json:"last_service_date"`
	NextServiceDate    *time.Time `json:"next_service_date"`
	InsuranceExpiry    *time.Time `json:"insurance_expiry"`
	RegistrationExpiry *time.Time `json:"registration_expiry"`
	AssignedDriverID   *uint      `json:"assigned_driver_id"`
	AssignedDriver     *User      `gorm:"foreignKey:AssignedDriverID;constraint:-" json:"assigned_driver,omitempty"`
	PurchaseDate       *time.Time `json:"purchase_date"`
	PurchaseCost       *float64   `json:"purchase_cost"`
	CurrentLocation    string     `json:"current_location"`
	Notes              string     `json:"notes"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}
