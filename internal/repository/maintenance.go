package repository

import (
	"time"

	"gorm.io/gorm"

	"fleetflow/internal/apperr"
	"fleetflow/internal/models"
	"fleetflow/internal/normalize"
)

type MaintenanceRepo struct {
	db *gorm.DB
}

func NewMaintenanceRepo(db *gorm.DB) *MaintenanceRepo {
	return &MaintenanceRepo{db: db}
}

type MaintenanceFilter struct {
	Status    string
	VehicleID uint
}

func (f MaintenanceFilter) apply(q *gorm.DB) *gorm.DB {
	if f.Status != "" {
		q = q.Where("maintenance.status = ?", f.Status)
	}
	if f.VehicleID != 0 {
		q = q.Where("maintenance.vehicle_id = ?", f.VehicleID)
	}
	return q
}

type MaintenanceRow struct {
	models.Maintenance
	VehicleNumber string `json:"vehicle_number"`
	VehicleType   string `json:"vehicle_type"`
}

const maintenanceProjection = "maintenance.*, vehicles.vehicle_number, vehicles.vehicle_type"

func (r *MaintenanceRepo) List(f MaintenanceFilter, page Page) ([]MaintenanceRow, Pagination, error) {
	var total int64
	err := f.apply(r.db.Model(&models.Maintenance{})).
		Joins("INNER JOIN vehicles ON vehicles.id = maintenance.vehicle_id").
		Count(&total).Error
	if err != nil {
		return nil, Pagination{}, apperr.Classify(err)
	}

	rows := []MaintenanceRow{}
	err = f.apply(r.db.Model(&models.Maintenance{})).
		Select(maintenanceProjection).
		Joins("INNER JOIN vehicles ON vehicles.id = maintenance.vehicle_id").
		Order("maintenance.scheduled_date DESC").
		Limit(page.normalized().Limit).
		Offset(page.offset()).
		Find(&rows).Error
	if err != nil {
		return nil, Pagination{}, apperr.Classify(err)
	}
	return rows, paginate(total, page), nil
}

func (r *MaintenanceRepo) GetByID(id uint) (*MaintenanceRow, error) {
	var row MaintenanceRow
	err := r.db.Model(&models.Maintenance{}).
		Select(maintenanceProjection).
		Joins("INNER JOIN vehicles ON vehicles.id = maintenance.vehicle_id").
		Where("maintenance.id = ?", id).
		First(&row).Error
	if err != nil {
		return nil, apperr.Classify(err)
	}
	return &row, nil
}

func (r *MaintenanceRepo) Create(m *models.Maintenance) error {
	if m.Status == "" {
		m.Status = models.MaintenanceScheduled
	}
	if m.Priority == "" {
		m.Priority = models.PriorityNormal
	}
	return apperr.Classify(r.db.Create(m).Error)
}

type MaintenancePatch struct {
	MaintenanceType    *string          `json:"maintenance_type"`
	Description        *string          `json:"description"`
	ScheduledDate      *normalize.Date  `json:"scheduled_date"`
	CompletedDate      *normalize.Date  `json:"completed_date"`
	Status             *string          `json:"status"`
	Cost               *normalize.Float `json:"cost"`
	Mileage            *normalize.Float `json:"mileage"`
	ServiceProvider    *string          `json:"service_provider"`
	TechnicianName     *string          `json:"technician_name"`
	PartsReplaced      *string          `json:"parts_replaced"`
	NextServiceMileage *normalize.Float `json:"next_service_mileage"`
	Priority           *string          `json:"priority"`
	Notes              *string          `json:"notes"`
}

func (p MaintenancePatch) columns() map[string]any {
	m := map[string]any{}
	setString(m, "maintenance_type", p.MaintenanceType)
	setString(m, "description", p.Description)
	setDate(m, "scheduled_date", p.ScheduledDate)
	setDate(m, "completed_date", p.CompletedDate)
	setString(m, "status", p.Status)
	setFloat(m, "cost", p.Cost)
	setFloat(m, "mileage", p.Mileage)
	setString(m, "service_provider", p.ServiceProvider)
	setString(m, "technician_name", p.TechnicianName)
	setString(m, "parts_replaced", p.PartsReplaced)
	setFloat(m, "next_service_mileage", p.NextServiceMileage)
	setString(m, "priority", p.Priority)
	setString(m, "notes", p.Notes)
	return m
}

func (r *MaintenanceRepo) Update(id uint, patch MaintenancePatch) (*MaintenanceRow, error) {
	values := patch.columns()
	values["updated_at"] = time.Now()
	res := r.db.Model(&models.Maintenance{}).Where("id = ?", id).Updates(values)
	if err := finishWrite(res); err != nil {
		return nil, err
	}
	return r.GetByID(id)
}

func (r *MaintenanceRepo) Delete(id uint) error {
	return finishWrite(r.db.Delete(&models.Maintenance{}, id))
}
