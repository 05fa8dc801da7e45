package repository

import (
	"gorm.io/gorm"

	"fleetflow/internal/apperr"
	"fleetflow/internal/models"
)

// UserRepo backs the auth surface: account creation and credential lookup.
type UserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db: db}
}

func (r *UserRepo) Create(u *models.User) error {
	if u.Role == "" {
		u.Role = models.RoleUser
	}
	return apperr.Classify(r.db.Create(u).Error)
}

func (r *UserRepo) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, apperr.Classify(err)
	}
	return &user, nil
}

func (r *UserRepo) FindByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, apperr.Classify(err)
	}
	return &user, nil
}
