package models

import "time"

// Maintenance statuses.
const (
	MaintenanceScheduled  = "scheduled"
	MaintenanceInProgress = "in_progress"
	MaintenanceCompleted  = "completed"
	MaintenanceCancelled  = "cancelled"
)

type Maintenance struct {
	ID                 uint       `gorm:"primaryKey" json:"id"`
	VehicleID          uint       `gorm:"index;not null" json:"vehicle_id" binding:"required"`
	Vehicle            *Vehicle   `gorm:"foreignKey:VehicleID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"vehicle,omitempty"`
	MaintenanceType    string     `gorm:"not null" json:"maintenance_type" binding:"required"`
	Description        string     `json:"description"`
	ScheduledDate      *time.Time `json:"scheduled_date"`
	CompletedDate      *time.Time `json:"completed_date"`
	Status             string     `gorm:"index;default:scheduled" json:"status"`
	Cost               *float64   `json:"cost"`
	Mileage            *float64   `json:"mileage"`
	ServiceProvider    string     `json:"service_provider"`
	TechnicianName     string     `json:"technician_name"`
	PartsReplaced      string     `json:"parts_replaced"`
	NextServiceMileage *float64   `json:"next_service_mileage"`
	Priority           string     `gorm:"default:normal" json:"priority"`
	Notes              string     `json:"notes"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// TableName pins the singular table name.
func (Maintenance) TableName() string { return "maintenance" }
