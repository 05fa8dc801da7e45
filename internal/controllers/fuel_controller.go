package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fleetflow/internal/analytics"
	"fleetflow/internal/models"
	"fleetflow/internal/normalize"
	"fleetflow/internal/repository"
)

type FuelController struct {
	repo  *repository.FuelRepo
	stats *analytics.Service
}

func NewFuelController(repo *repository.FuelRepo, stats *analytics.Service) *FuelController {
	return &FuelController{repo: repo, stats: stats}
}

func (fc *FuelController) List(c *gin.Context) {
	filter := repository.FuelFilter{VehicleID: parseUintQuery(c, "vehicle_id")}
	rows, pagination, err := fc.repo.List(filter, parsePage(c))
	if err != nil {
		handleError(c, err, "", "")
		return
	}
	respondList(c, rows, pagination)
}

func (fc *FuelController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	row, err := fc.repo.GetByID(id)
	if err != nil {
		handleError(c, err, "Fuel record not found", "")
		return
	}
	respondData(c, http.StatusOK, row)
}

type createFuelInput struct {
	VehicleID     uint            `json:"vehicle_id" binding:"required"`
	DriverID      normalize.Uint  `json:"driver_id"`
	FuelDate      normalize.Date  `json:"fuel_date"`
	FuelType      string          `json:"fuel_type"`
	Quantity      normalize.Float `json:"quantity"`
	CostPerUnit   normalize.Float `json:"cost_per_unit"`
	TotalCost     normalize.Float `json:"total_cost"`
	Mileage       normalize.Float `json:"mileage"`
	FuelStation   string          `json:"fuel_station"`
	Location      string          `json:"location"`
	ReceiptNumber string          `json:"receipt_number"`
	PaymentMethod string          `json:"payment_method"`
	Notes         string          `json:"notes"`
}

func (fc *FuelController) Create(c *gin.Context) {
	var input createFuelInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	fuelDate := input.FuelDate.Ptr()
	if fuelDate == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fuel_date is required"})
		return
	}
	quantity := input.Quantity.Ptr()
	if quantity == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity is required"})
		return
	}

	record := models.FuelRecord{
		VehicleID:     input.VehicleID,
		DriverID:      input.DriverID.Ptr(),
		FuelDate:      *fuelDate,
		FuelType:      input.FuelType,
		Quantity:      *quantity,
		CostPerUnit:   input.CostPerUnit.Ptr(),
		TotalCost:     input.TotalCost.Ptr(),
		Mileage:       input.Mileage.Ptr(),
		FuelStation:   input.FuelStation,
		Location:      input.Location,
		ReceiptNumber: input.ReceiptNumber,
		PaymentMethod: input.PaymentMethod,
		Notes:         input.Notes,
	}
	if err := fc.repo.Create(&record); err != nil {
		handleError(c, err, "", "")
		return
	}
	respondData(c, http.StatusCreated, record)
}

func (fc *FuelController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var patch repository.FuelPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	row, err := fc.repo.Update(id, patch)
	if err != nil {
		handleError(c, err, "Fuel record not found", "")
		return
	}
	respondData(c, http.StatusOK, row)
}

func (fc *FuelController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := fc.repo.Delete(id); err != nil {
		handleError(c, err, "Fuel record not found", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Fuel record deleted successfully"})
}

func (fc *FuelController) Stats(c *gin.Context) {
	days := parseIntQuery(c, "days", 30)
	vehicleID := parseUintQuery(c, "vehicle_id")
	stats, err := fc.stats.FuelStats(days, vehicleID)
	if err != nil {
		handleError(c, err, "", "")
		return
	}
	respondData(c, http.StatusOK, stats)
}
