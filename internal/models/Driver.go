package models

import "time"

// Driver statuses.
const (
	DriverAvailable = "available"
	DriverOnTrip    = "on_trip"
	DriverOffDuty   = "off_duty"
)

type Driver struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	UserID           uint       `gorm:"uniqueIndex" json:"user_id"`
	User             *User      `gorm:"foreignKey:UserID;constraint:-" json:"user,omitempty"`
	LicenseNumber    string     `gorm:"uniqueIndex;not null" json:"license_number" binding:"required"`
	LicenseType      string     `json:"license_type"`
	LicenseExpiry    *time.Time `json:"license_expiry"`
	DateOfBirth      *time.Time `json:"date_of_birth"`
	HireDate         *time.Time `json:"hire_date"`
	ExperienceYears  *int       `json:"experience_years"`
	Rating           float64    `gorm:"type:decimal(3,2);default:0.00" json:"rating"`
	TotalDeliveries  int        `gorm:"default:0" json:"total_deliveries"`
	Status           string     `gorm:"index;default:available" json:"status"`
	EmergencyContact string     `json:"emergency_contact"`
	EmergencyPhone   string     `json:"emergency_phone"`
	Address          string     `json:"address"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}
