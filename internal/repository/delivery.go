package repository

import (
	"time"

	"gorm.io/gorm"

	"fleetflow/internal/apperr"
	"fleetflow/internal/models"
	"fleetflow/internal/normalize"
)

type DeliveryRepo struct {
	db *gorm.DB
}

func NewDeliveryRepo(db *gorm.DB) *DeliveryRepo {
	return &DeliveryRepo{db: db}
}

type DeliveryFilter struct {
	Status string
}

func (f DeliveryFilter) apply(q *gorm.DB) *gorm.DB {
	if f.Status != "" {
		q = q.Where("deliveries.status = ?", f.Status)
	}
	return q
}

// DeliveryRow carries the delivery plus display fields from its soft
// references. All joins are LEFT: a delivery may point at a customer or
// driver that no longer exists.
type DeliveryRow struct {
	models.Delivery
	CustomerName  *string `json:"customer_name"`
	Company       *string `json:"company"`
	CustomerPhone *string `json:"customer_phone"`
	VehicleNumber *string `json:"vehicle_number"`
	VehicleType   *string `json:"vehicle_type"`
	LicenseNumber *string `json:"license_number"`
	DriverName    *string `json:"driver_name"`
}

const deliveryProjection = `deliveries.*, customers.name AS customer_name, customers.company,
customers.phone AS customer_phone, vehicles.vehicle_number, vehicles.vehicle_type,
drivers.license_number, users.name AS driver_name`

func deliveryJoins(q *gorm.DB) *gorm.DB {
	return q.
		Joins("LEFT JOIN customers ON customers.id = deliveries.customer_id").
		Joins("LEFT JOIN vehicles ON vehicles.id = deliveries.vehicle_id").
		Joins("LEFT JOIN drivers ON drivers.id = deliveries.driver_id").
		Joins("LEFT JOIN users ON users.id = drivers.user_id")
}

func (r *DeliveryRepo) List(f DeliveryFilter, page Page) ([]DeliveryRow, Pagination, error) {
	var total int64
	if err := f.apply(r.db.Model(&models.Delivery{})).Count(&total).Error; err != nil {
		return nil, Pagination{}, apperr.Classify(err)
	}

	rows := []DeliveryRow{}
	err := deliveryJoins(f.apply(r.db.Model(&models.Delivery{}))).
		Select(deliveryProjection).
		Order("deliveries.created_at DESC").
		Limit(page.normalized().Limit).
		Offset(page.offset()).
		Find(&rows).Error
	if err != nil {
		return nil, Pagination{}, apperr.Classify(err)
	}
	return rows, paginate(total, page), nil
}

func (r *DeliveryRepo) GetByID(id uint) (*DeliveryRow, error) {
	var row DeliveryRow
	err := deliveryJoins(r.db.Model(&models.Delivery{})).
		Select(deliveryProjection).
		Where("deliveries.id = ?", id).
		First(&row).Error
	if err != nil {
		return nil, apperr.Classify(err)
	}
	return &row, nil
}

func (r *DeliveryRepo) Create(d *models.Delivery) error {
	if d.Status == "" {
		d.Status = models.DeliveryPending
	}
	if d.Priority == "" {
		d.Priority = models.PriorityNormal
	}
	if d.PaymentStatus == "" {
		d.PaymentStatus = models.PaymentPending
	}
	return apperr.Classify(r.db.Create(d).Error)
}

type DeliveryPatch struct {
	DeliveryNumber      *string          `json:"delivery_number"`
	CustomerID          *normalize.Uint  `json:"customer_id"`
	RouteID             *normalize.Uint  `json:"route_id"`
	VehicleID           *normalize.Uint  `json:"vehicle_id"`
	DriverID            *normalize.Uint  `json:"driver_id"`
	PickupAddress       *string          `json:"pickup_address"`
	DeliveryAddress     *string          `json:"delivery_address"`
	PickupDate          *normalize.Date  `json:"pickup_date"`
	DeliveryDate        *normalize.Date  `json:"delivery_date"`
	Status              *string          `json:"status"`
	Priority            *string          `json:"priority"`
	PackageType         *string          `json:"package_type"`
	Weight              *normalize.Float `json:"weight"`
	Dimensions          *string          `json:"dimensions"`
	SpecialInstructions *string          `json:"special_instructions"`
	ProofOfDelivery     *string          `json:"proof_of_delivery"`
	CustomerSignature   *string          `json:"customer_signature"`
	DeliveryCost        *normalize.Float `json:"delivery_cost"`
	PaymentStatus       *string          `json:"payment_status"`
}

func (p DeliveryPatch) columns() map[string]any {
	m := map[string]any{}
	setString(m, "delivery_number", p.DeliveryNumber)
	setUint(m, "customer_id", p.CustomerID)
	setUint(m, "route_id", p.RouteID)
	setUint(m, "vehicle_id", p.VehicleID)
	setUint(m, "driver_id", p.DriverID)
	setString(m, "pickup_address", p.PickupAddress)
	setString(m, "delivery_address", p.DeliveryAddress)
	setDate(m, "pickup_date", p.PickupDate)
	setDate(m, "delivery_date", p.DeliveryDate)
	setString(m, "status", p.Status)
	setString(m, "priority", p.Priority)
	setString(m, "package_type", p.PackageType)
	setFloat(m, "weight", p.Weight)
	setString(m, "dimensions", p.Dimensions)
	setString(m, "special_instructions", p.SpecialInstructions)
	setString(m, "proof_of_delivery", p.ProofOfDelivery)
	setString(m, "customer_signature", p.CustomerSignature)
	setFloat(m, "delivery_cost", p.DeliveryCost)
	setString(m, "payment_status", p.PaymentStatus)
	return m
}

func (r *DeliveryRepo) Update(id uint, patch DeliveryPatch) (*DeliveryRow, error) {
	values := patch.columns()
	values["updated_at"] = time.Now()
	res := r.db.Model(&models.Delivery{}).Where("id = ?", id).Updates(values)
	if err := finishWrite(res); err != nil {
		return nil, err
	}
	return r.GetByID(id)
}

func (r *DeliveryRepo) Delete(id uint) error {
	return finishWrite(r.db.Delete(&models.Delivery{}, id))
}
