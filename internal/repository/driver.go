package repository

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"fleetflow/internal/apperr"
	"fleetflow/internal/models"
	"fleetflow/internal/normalize"
)

type DriverRepo struct {
	db *gorm.DB
}

func NewDriverRepo(db *gorm.DB) *DriverRepo {
	return &DriverRepo{db: db}
}

type DriverFilter struct {
	Status string
}

func (f DriverFilter) apply(q *gorm.DB) *gorm.DB {
	if f.Status != "" {
		q = q.Where("drivers.status = ?", f.Status)
	}
	return q
}

// DriverRow joins the driver profile with its backing user's display
// fields. The join is inner: a driver row cannot outlive its user.
type DriverRow struct {
	models.Driver
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Avatar string `json:"avatar"`
}

const driverProjection = "drivers.*, users.name, users.email, users.phone, users.avatar"

func (r *DriverRepo) List(f DriverFilter, page Page) ([]DriverRow, Pagination, error) {
	var total int64
	err := f.apply(r.db.Model(&models.Driver{})).
		Joins("INNER JOIN users ON users.id = drivers.user_id").
		Count(&total).Error
	if err != nil {
		return nil, Pagination{}, apperr.Classify(err)
	}

	rows := []DriverRow{}
	err = f.apply(r.db.Model(&models.Driver{})).
		Select(driverProjection).
		Joins("INNER JOIN users ON users.id = drivers.user_id").
		Order("drivers.created_at DESC").
		Limit(page.normalized().Limit).
		Offset(page.offset()).
		Find(&rows).Error
	if err != nil {
		return nil, Pagination{}, apperr.Classify(err)
	}
	return rows, paginate(total, page), nil
}

func (r *DriverRepo) GetByID(id uint) (*DriverRow, error) {
	var row DriverRow
	err := r.db.Model(&models.Driver{}).
		Select(driverProjection).
		Joins("INNER JOIN users ON users.id = drivers.user_id").
		Where("drivers.id = ?", id).
		First(&row).Error
	if err != nil {
		return nil, apperr.Classify(err)
	}
	return &row, nil
}

// DriverAccountInput carries both halves of driver onboarding: the
// account fields for the backing user and the driver profile fields.
type DriverAccountInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`

	LicenseNumber    string         `json:"license_number" binding:"required"`
	LicenseType      string         `json:"license_type"`
	LicenseExpiry    normalize.Date `json:"license_expiry"`
	DateOfBirth      normalize.Date `json:"date_of_birth"`
	HireDate         normalize.Date `json:"hire_date"`
	ExperienceYears  normalize.Int  `json:"experience_years"`
	EmergencyContact string         `json:"emergency_contact"`
	EmergencyPhone   string         `json:"emergency_phone"`
	Address          string         `json:"address"`
}

// CreateWithAccount onboards a driver: one transaction inserts the user
// account and the driver profile referencing it. Any failure rolls the
// whole thing back so no orphaned user row can persist.
func (r *DriverRepo) CreateWithAccount(input DriverAccountInput) (*DriverRow, error) {
	password := input.Password
	if password == "" {
		password = "driver123"
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	var driverID uint
	err = r.db.Transaction(func(tx *gorm.DB) error {
		user := models.User{
			Name:     input.Name,
			Email:    input.Email,
			Password: string(hashed),
			Role:     models.RoleDriver,
			Phone:    input.Phone,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		driver := models.Driver{
			UserID:           user.ID,
			LicenseNumber:    input.LicenseNumber,
			LicenseType:      input.LicenseType,
			LicenseExpiry:    input.LicenseExpiry.Ptr(),
			DateOfBirth:      input.DateOfBirth.Ptr(),
			HireDate:         input.HireDate.Ptr(),
			ExperienceYears:  input.ExperienceYears.Ptr(),
			EmergencyContact: input.EmergencyContact,
			EmergencyPhone:   input.EmergencyPhone,
			Address:          input.Address,
		}
		if err := tx.Create(&driver).Error; err != nil {
			return err
		}
		driverID = driver.ID
		return nil
	})
	if err != nil {
		if apperr.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: email or license number already exists", apperr.ErrConflict)
		}
		return nil, fmt.Errorf("%w: %v", apperr.ErrTransaction, err)
	}
	return r.GetByID(driverID)
}

// DriverPatch updates the driver profile only; account fields live on
// the user and are updated through the auth surface.
type DriverPatch struct {
	LicenseNumber    *string          `json:"license_number"`
	LicenseType      *string          `json:"license_type"`
	LicenseExpiry    *normalize.Date  `json:"license_expiry"`
	DateOfBirth      *normalize.Date  `json:"date_of_birth"`
	HireDate         *normalize.Date  `json:"hire_date"`
	ExperienceYears  *normalize.Int   `json:"experience_years"`
	Rating           *normalize.Float `json:"rating"`
	TotalDeliveries  *normalize.Int   `json:"total_deliveries"`
	Status           *string          `json:"status"`
	EmergencyContact *string          `json:"emergency_contact"`
	EmergencyPhone   *string          `json:"emergency_phone"`
	Address          *string          `json:"address"`
}

func (p DriverPatch) columns() map[string]any {
	m := map[string]any{}
	setString(m, "license_number", p.LicenseNumber)
	setString(m, "license_type", p.LicenseType)
	setDate(m, "license_expiry", p.LicenseExpiry)
	setDate(m, "date_of_birth", p.DateOfBirth)
	setDate(m, "hire_date", p.HireDate)
	setInt(m, "experience_years", p.ExperienceYears)
	if p.Rating != nil && p.Rating.Valid {
		m["rating"] = p.Rating.Value
	}
	if p.TotalDeliveries != nil && p.TotalDeliveries.Valid {
		m["total_deliveries"] = p.TotalDeliveries.Value
	}
	setString(m, "status", p.Status)
	setString(m, "emergency_contact", p.EmergencyContact)
	setString(m, "emergency_phone", p.EmergencyPhone)
	setString(m, "address", p.Address)
	return m
}

func (r *DriverRepo) Update(id uint, patch DriverPatch) (*DriverRow, error) {
	values := patch.columns()
	values["updated_at"] = time.Now()
	res := r.db.Model(&models.Driver{}).Where("id = ?", id).Updates(values)
	if err := finishWrite(res); err != nil {
		return nil, err
	}
	return r.GetByID(id)
}

// Delete removes the driver profile and its backing user account in one
// transaction.
func (r *DriverRepo) Delete(id uint) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var driver models.Driver
		if err := tx.First(&driver, id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Driver{}, id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, driver.UserID).Error
	})
	return apperr.Classify(err)
}
