package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fleetflow/internal/analytics"
	"fleetflow/internal/models"
	"fleetflow/internal/normalize"
	"fleetflow/internal/repository"
)

type DeliveryController struct {
	repo  *repository.DeliveryRepo
	stats *analytics.Service
}

func NewDeliveryController(repo *repository.DeliveryRepo, stats *analytics.Service) *DeliveryController {
	return &DeliveryController{repo: repo, stats: stats}
}

func (dc *DeliveryController) List(c *gin.Context) {
	filter := repository.DeliveryFilter{Status: c.Query("status")}
	rows, pagination, err := dc.repo.List(filter, parsePage(c))
	if err != nil {
		handleError(c, err, "", "")
		return
	}
	respondList(c, rows, pagination)
}

func (dc *DeliveryController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	row, err := dc.repo.GetByID(id)
	if err != nil {
		handleError(c, err, "Delivery not found", "")
		return
	}
	respondData(c, http.StatusOK, row)
}

type createDeliveryInput struct {
	DeliveryNumber      string          `json:"delivery_number" binding:"required"`
	CustomerID          normalize.Uint  `json:"customer_id"`
	RouteID             normalize.Uint  `json:"route_id"`
	VehicleID           normalize.Uint  `json:"vehicle_id"`
	DriverID            normalize.Uint  `json:"driver_id"`
	PickupAddress       string          `json:"pickup_address" binding:"required"`
	DeliveryAddress     string          `json:"delivery_address" binding:"required"`
	PickupDate          normalize.Date  `json:"pickup_date"`
	DeliveryDate        normalize.Date  `json:"delivery_date"`
	Status              string          `json:"status"`
	Priority            string          `json:"priority"`
	PackageType         string          `json:"package_type"`
	Weight              normalize.Float `json:"weight"`
	Dimensions          string          `json:"dimensions"`
	SpecialInstructions string          `json:"special_instructions"`
	DeliveryCost        normalize.Float `json:"delivery_cost"`
	PaymentStatus       string          `json:"payment_status"`
}

func (dc *DeliveryController) Create(c *gin.Context) {
	var input createDeliveryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	delivery := models.Delivery{
		DeliveryNumber:      input.DeliveryNumber,
		CustomerID:          input.CustomerID.Ptr(),
		RouteID:             input.RouteID.Ptr(),
		VehicleID:           input.VehicleID.Ptr(),
		DriverID:            input.DriverID.Ptr(),
		PickupAddress:       input.PickupAddress,
		DeliveryAddress:     input.DeliveryAddress,
		PickupDate:          input.PickupDate.Ptr(),
		DeliveryDate:        input.DeliveryDate.Ptr(),
		Status:              input.Status,
		Priority:            input.Priority,
		PackageType:         input.PackageType,
		Weight:              input.Weight.Ptr(),
		Dimensions:          input.Dimensions,
		SpecialInstructions: input.SpecialInstructions,
		DeliveryCost:        input.DeliveryCost.Ptr(),
		PaymentStatus:       input.PaymentStatus,
	}
	if err := dc.repo.Create(&delivery); err != nil {
		handleError(c, err, "", "Delivery number already exists")
		return
	}
	respondData(c, http.StatusCreated, delivery)
}

func (dc *DeliveryController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var patch repository.DeliveryPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	row, err := dc.repo.Update(id, patch)
	if err != nil {
		handleError(c, err, "Delivery not found", "Delivery number already exists")
		return
	}
	respondData(c, http.StatusOK, row)
}

func (dc *DeliveryController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := dc.repo.Delete(id); err != nil {
		handleError(c, err, "Delivery not found", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Delivery deleted successfully"})
}

func (dc *DeliveryController) Stats(c *gin.Context) {
	stats, err := dc.stats.DeliveryStats()
	if err != nil {
		handleError(c, err, "", "")
		return
	}
	respondData(c, http.StatusOK, stats)
}
