package models

import "time"

// User roles accepted by the auth layer.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleDriver  = "driver"
	RoleUser    = "user"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `json:"name" binding:"required"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	Role      string    `gorm:"default:user" json:"role"` // "admin", "manager", "driver", "user"
	Phone     string    `json:"phone"`
	Avatar    string    `json:"avatar"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// A driver user owns exactly one driver profile; deleting the user
	// removes the profile with it.
	Driver *Driver `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"driver,omitempty"`
}
