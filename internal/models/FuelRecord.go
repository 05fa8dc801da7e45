package models

import "time"

// FuelRecord rows are append-only log entries; there is no updated_at.
type FuelRecord struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	VehicleID     uint      `gorm:"index;not null" json:"vehicle_id" binding:"required"`
	Vehicle       *Vehicle  `gorm:"foreignKey:VehicleID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"vehicle,omitempty"`
	DriverID      *uint     `json:"driver_id"`
	Driver        *Driver   `gorm:"foreignKey:DriverID;constraint:-" json:"driver,omitempty"`
	FuelDate      time.Time `gorm:"not null" json:"fuel_date" binding:"required"`
	FuelType      string    `json:"fuel_type"`
	Quantity      float64   `gorm:"not null" json:"quantity" binding:"required,gt=0"`
	CostPerUnit   *float64  `json:"cost_per_unit"`
	TotalCost     *float64  `json:"total_cost"`
	Mileage       *float64  `json:"mileage"`
	FuelStation   string    `json:"fuel_station"`
	Location      string    `json:"location"`
	ReceiptNumber string    `json:"receipt_number"`
	PaymentMethod string    `json:"payment_method"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"created_at"`
}
