package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fleetflow/internal/models"
	"fleetflow/internal/normalize"
	"fleetflow/internal/repository"
)

type TripController struct {
	repo *repository.TripRepo
}

func NewTripController(repo *repository.TripRepo) *TripController {
	return &TripController{repo: repo}
}

func (tc *TripController) List(c *gin.Context) {
	filter := repository.TripFilter{
		Status:    c.Query("status"),
		VehicleID: parseUintQuery(c, "vehicle_id"),
		DriverID:  parseUintQuery(c, "driver_id"),
	}
	rows, pagination, err := tc.repo.List(filter, parsePage(c))
	if err != nil {
		handleError(c, err, "", "")
		return
	}
	respondList(c, rows, pagination)
}

func (tc *TripController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	row, err := tc.repo.GetByID(id)
	if err != nil {
		handleError(c, err, "Trip not found", "")
		return
	}
	respondData(c, http.StatusOK, row)
}

type createTripInput struct {
	VehicleID       uint            `json:"vehicle_id" binding:"required"`
	DriverID        uint            `json:"driver_id" binding:"required"`
	RouteID         uint            `json:"route_id" binding:"required"`
	StartTime       normalize.Date  `json:"start_time"`
	EndTime         normalize.Date  `json:"end_time"`
	StartMileage    normalize.Float `json:"start_mileage"`
	EndMileage      normalize.Float `json:"end_mileage"`
	DistanceCovered normalize.Float `json:"distance_covered"`
	Status          string          `json:"status"`
	FuelConsumed    normalize.Float `json:"fuel_consumed"`
	AverageSpeed    normalize.Float `json:"average_speed"`
}

func (tc *TripController) Create(c *gin.Context) {
	var input createTripInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	startTime := input.StartTime.Ptr()
	if startTime == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start_time is required"})
		return
	}

	trip := models.Trip{
		VehicleID:       input.VehicleID,
		DriverID:        input.DriverID,
		RouteID:         input.RouteID,
		StartTime:       *startTime,
		EndTime:         input.EndTime.Ptr(),
		StartMileage:    input.StartMileage.Ptr(),
		EndMileage:      input.EndMileage.Ptr(),
		DistanceCovered: input.DistanceCovered.Ptr(),
		Status:          input.Status,
		FuelConsumed:    input.FuelConsumed.Ptr(),
		AverageSpeed:    input.AverageSpeed.Ptr(),
	}
	if err := tc.repo.Create(&trip); err != nil {
		handleError(c, err, "", "")
		return
	}
	respondData(c, http.StatusCreated, trip)
}

func (tc *TripController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var patch repository.TripPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	row, err := tc.repo.Update(id, patch)
	if err != nil {
		handleError(c, err, "Trip not found", "")
		return
	}
	respondData(c, http.StatusOK, row)
}

func (tc *TripController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := tc.repo.Delete(id); err != nil {
		handleError(c, err, "Trip not found", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Trip deleted successfully"})
}
