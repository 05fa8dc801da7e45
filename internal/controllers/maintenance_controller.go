package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fleetflow/internal/models"
	"fleetflow/internal/normalize"
	"fleetflow/internal/repository"
)

type MaintenanceController struct {
	repo *repository.MaintenanceRepo
}

func NewMaintenanceController(repo *repository.MaintenanceRepo) *MaintenanceController {
	return &MaintenanceController{repo: repo}
}

func (mc *MaintenanceController) List(c *gin.Context) {
	filter := repository.MaintenanceFilter{
		Status:    c.Query("status"),
		VehicleID: parseUintQuery(c, "vehicle_id"),
	}
	rows, pagination, err := mc.repo.List(filter, parsePage(c))
	if err != nil {
		handleError(c, err, "", "")
		return
	}
	respondList(c, rows, pagination)
}

func (mc *MaintenanceController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	row, err := mc.repo.GetByID(id)
	if err != nil {
		handleError(c, err, "Maintenance record not found", "")
		return
	}
	respondData(c, http.StatusOK, row)
}

type createMaintenanceInput struct {
	VehicleID          uint            `json:"vehicle_id" binding:"required"`
	MaintenanceType    string          `json:"maintenance_type" binding:"required"`
	Description        string          `json:"description"`
	ScheduledDate      normalize.Date  `json:"scheduled_date"`
	CompletedDate      normalize.Date  `json:"completed_date"`
	Status             string          `json:"status"`
	Cost               normalize.Float `json:"cost"`
	Mileage            normalize.Float `json:"mileage"`
	ServiceProvider    string          `json:"service_provider"`
	TechnicianName     string          `json:"technician_name"`
	PartsReplaced      string          `json:"parts_replaced"`
	NextServiceMileage normalize.Float `json:"next_service_mileage"`
	Priority           string          `json:"priority"`
	Notes              string          `json:"notes"`
}

func (mc *MaintenanceController) Create(c *gin.Context) {
	var input createMaintenanceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record := models.Maintenance{
		VehicleID:          input.VehicleID,
		MaintenanceType:    input.MaintenanceType,
		Description:        input.Description,
		ScheduledDate:      input.ScheduledDate.Ptr(),
		CompletedDate:      input.CompletedDate.Ptr(),
		Status:             input.Status,
		Cost:               input.Cost.Ptr(),
		Mileage:            input.Mileage.Ptr(),
		ServiceProvider:    input.ServiceProvider,
		TechnicianName:     input.TechnicianName,
		PartsReplaced:      input.PartsReplaced,
		NextServiceMileage: input.NextServiceMileage.Ptr(),
		Priority:           input.Priority,
		Notes:              input.Notes,
	}
	if err := mc.repo.Create(&record); err != nil {
		handleError(c, err, "", "")
		return
	}
	respondData(c, http.StatusCreated, record)
}

func (mc *MaintenanceController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var patch repository.MaintenancePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	row, err := mc.repo.Update(id, patch)
	if err != nil {
		handleError(c, err, "Maintenance record not found", "")
		return
	}
	respondData(c, http.StatusOK, row)
}

func (mc *MaintenanceController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := mc.repo.Delete(id); err != nil {
		handleError(c, err, "Maintenance record not found", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Maintenance record deleted successfully"})
}
