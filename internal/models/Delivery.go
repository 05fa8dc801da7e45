package models

import "time"

// Delivery statuses.
const (
	DeliveryPending   = "pending"
	DeliveryPickedUp  = "picked_up"
	DeliveryInTransit = "in_transit"
	DeliveryDelivered = "delivered"
	DeliveryCancelled = "cancelled"
)

// Delivery priorities.
const (
	PriorityLow    = "low"
	PriorityNormal = "normal"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// Payment statuses.
const (
	PaymentPending = "pending"
	PaymentPaid    = "paid"
	PaymentFailed  = "failed"
)

// Delivery references customer, route, vehicle and driver softly: all four
// are nullable and none cascade, so readers must tolerate dangling ids.
type Delivery struct {
	ID                  uint       `gorm:"primaryKey" json:"id"`
	DeliveryNumber      string     `gorm:"uniqueIndex;not null" json:"delivery_number" binding:"required"`
	CustomerID          *uint      `json:"customer_id"`
	Customer            *Customer  `gorm:"foreignKey:CustomerID;constraint:-" json:"customer,omitempty"`
	RouteID             *uint      `json:"route_id"`
	Route               *Route     `gorm:"foreignKey:RouteID;constraint:-" json:"route,omitempty"`
	VehicleID           *uint      `json:"vehicle_id"`
	Vehicle             *Vehicle   `gorm:"foreignKey:VehicleID;constraint:-" json:"vehicle,omitempty"`
	DriverID            *uint      `json:"driver_id"`
	Driver              *Driver    `gorm:"foreignKey:DriverID;constraint:-" json:"driver,omitempty"`
	PickupAddress       string     `gorm:"not null" json:"pickup_address" binding:"required"`
	DeliveryAddress     string     `gorm:"not null" json:"delivery_address" binding:"required"`
	PickupDate          *time.Time `json:"pickup_date"`
	DeliveryDate        *time.Time `json:"delivery_date"`
	Status              string     `gorm:"index;default:pending" json:"status"`
	Priority            string     `gorm:"default:normal" json:"priority"`
	PackageType         string     `json:"package_type"`
	Weight              *float64   `json:"weight"`
	Dimensions          string     `json:"dimensions"`
	SpecialInstructions string     `json:"special_instructions"`
	ProofOfDelivery     string     `json:"proof_of_delivery"`
	CustomerSignature   string     `json:"customer_signature"`
	DeliveryCost        *float64   `json:"delivery_cost"`
	PaymentStatus       string     `gorm:"default:pending" json:"payment_status"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}
