package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fleetflow/internal/analytics"
	"fleetflow/internal/models"
	"fleetflow/internal/normalize"
	"fleetflow/internal/repository"
)

type VehicleController struct {
	repo  *repository.VehicleRepo
	stats *analytics.Service
}

func NewVehicleController(repo *repository.VehicleRepo, stats *analytics.Service) *VehicleController {
	return &VehicleController{repo: repo, stats: stats}
}

func (vc *VehicleController) List(c *gin.Context) {
	filter := repository.VehicleFilter{
		Status:      c.Query("status"),
		VehicleType: c.Query("type"),
	}
	rows, pagination, err := vc.repo.List(filter, parsePage(c))
	if err != nil {
		handleError(c, err, "", "")
		return
	}
	respondList(c, rows, pagination)
}

func (vc *VehicleController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	row, err := vc.repo.GetByID(id)
	if err != nil {
		handleError(c, err, "Vehicle not found", "")
		return
	}
	respondData(c, http.StatusOK, row)
}

// createVehicleInput applies the boundary normalization rules: numeric
// fields submitted as empty strings become NULL before storage.
type createVehicleInput struct {
	VehicleNumber      string           `json:"vehicle_number" binding:"required"`
	VehicleType        string           `json:"vehicle_type" binding:"required"`
	Make               string           `json:"make"`
	Model              string           `json:"model"`
	Year               normalize.Int    `json:"year"`
	Capacity           normalize.Float  `json:"capacity"`
	FuelType           string           `json:"fuel_type"`
	Status             string           `json:"status"`
	Mileage            normalize.Float  `json:"mileage"`
	LastServiceDate    normalize.Date   `json:"last_service_date"`
	NextServiceDate    normalize.Date   `json:"next_service_date"`
	InsuranceExpiry    normalize.Date   `json:"insurance_expiry"`
	RegistrationExpiry normalize.Date   `json:"registration_expiry"`
	AssignedDriverID   normalize.Uint   `json:"assigned_driver_id"`
	PurchaseDate       normalize.Date   `json:"purchase_date"`
	PurchaseCost       normalize.Float  `json:"purchase_cost"`
	CurrentLocation    string           `json:"current_location"`
	Notes              string           `json:"notes"`
}

func (vc *VehicleController) Create(c *gin.Context) {
	var input createVehicleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vehicle := models.Vehicle{
		VehicleNumber:      input.VehicleNumber,
		VehicleType:        input.VehicleType,
		Make:               input.Make,
		Model:              input.Model,
		Year:               input.Year.Ptr(),
		Capacity:           input.Capacity.Ptr(),
		FuelType:           input.FuelType,
		Status:             input.Status,
		Mileage:            input.Mileage.Value,
		LastServiceDate:    input.LastServiceDate.Ptr(),
		NextServiceDate:    input.NextServiceDate.Ptr(),
		InsuranceExpiry:    input.InsuranceExpiry.Ptr(),
		RegistrationExpiry: input.RegistrationExpiry.Ptr(),
		AssignedDriverID:   input.AssignedDriverID.Ptr(),
		PurchaseDate:       input.PurchaseDate.Ptr(),
		PurchaseCost:       input.PurchaseCost.Ptr(),
		CurrentLocation:    input.CurrentLocation,
		Notes:              input.Notes,
	}
	if err := vc.repo.Create(&vehicle); err != nil {
		handleError(c, err, "", "Vehicle number already exists")
		return
	}
	respondData(c, http.StatusCreated, vehicle)
}

func (vc *VehicleController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var patch repository.VehiclePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	row, err := vc.repo.Update(id, patch)
	if err != nil {
		handleError(c, err, "Vehicle not found", "Vehicle number already exists")
		return
	}
	respondData(c, http.StatusOK, row)
}

func (vc *VehicleController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := vc.repo.Delete(id); err != nil {
		handleError(c, err, "Vehicle not found", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Vehicle deleted successfully"})
}

func (vc *VehicleController) Stats(c *gin.Context) {
	stats, err := vc.stats.VehicleStats()
	if err != nil {
		handleError(c, err, "", "")
		return
	}
	respondData(c, http.StatusOK, stats)
}
