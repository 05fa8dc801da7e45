package repository

import (
	"time"

	"gorm.io/gorm"

	"fleetflow/internal/apperr"
	"fleetflow/internal/models"
)

type CustomerRepo struct {
	db *gorm.DB
}

func NewCustomerRepo(db *gorm.DB) *CustomerRepo {
	return &CustomerRepo{db: db}
}

func (r *CustomerRepo) List(page Page) ([]models.Customer, Pagination, error) {
	var total int64
	if err := r.db.Model(&models.Customer{}).Count(&total).Error; err != nil {
		return nil, Pagination{}, apperr.Classify(err)
	}

	rows := []models.Customer{}
	err := r.db.Model(&models.Customer{}).
		Order("created_at DESC").
		Limit(page.normalized().Limit).
		Offset(page.offset()).
		Find(&rows).Error
	if err != nil {
		return nil, Pagination{}, apperr.Classify(err)
	}
	return rows, paginate(total, page), nil
}

func (r *CustomerRepo) GetByID(id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.First(&customer, id).Error; err != nil {
		return nil, apperr.Classify(err)
	}
	return &customer, nil
}

func (r *CustomerRepo) Create(c *models.Customer) error {
	return apperr.Classify(r.db.Create(c).Error)
}

type CustomerPatch struct {
	Name       *string `json:"name"`
	Email      *string `json:"email"`
	Phone      *string `json:"phone"`
	Company    *string `json:"company"`
	Address    *string `json:"address"`
	City       *string `json:"city"`
	State      *string `json:"state"`
	PostalCode *string `json:"postal_code"`
	Country    *string `json:"country"`
}

func (p CustomerPatch) columns() map[string]any {
	m := map[string]any{}
	setString(m, "name", p.Name)
	setString(m, "email", p.Email)
	setString(m, "phone", p.Phone)
	setString(m, "company", p.Company)
	setString(m, "address", p.Address)
	setString(m, "city", p.City)
	setString(m, "state", p.State)
	setString(m, "postal_code", p.PostalCode)
	setString(m, "country", p.Country)
	return m
}

func (r *CustomerRepo) Update(id uint, patch CustomerPatch) (*models.Customer, error) {
	values := patch.columns()
	values["updated_at"] = time.Now()
	res := r.db.Model(&models.Customer{}).Where("id = ?", id).Updates(values)
	if err := finishWrite(res); err != nil {
		return nil, err
	}
	return r.GetByID(id)
}

// Delete is a hard delete. Deliveries referencing the customer keep
// their customer_id; readers left-join and tolerate the dangling id.
func (r *CustomerRepo) Delete(id uint) error {
	return finishWrite(r.db.Delete(&models.Customer{}, id))
}
