package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fleetflow/internal/models"
	"fleetflow/internal/normalize"
	"fleetflow/internal/repository"
)

type RouteController struct {
	repo *repository.RouteRepo
}

func NewRouteController(repo *repository.RouteRepo) *RouteController {
	return &RouteController{repo: repo}
}

func (rc *RouteController) List(c *gin.Context) {
	filter := repository.RouteFilter{Status: c.Query("status")}
	rows, pagination, err := rc.repo.List(filter, parsePage(c))
	if err != nil {
		handleError(c, err, "", "")
		return
	}
	respondList(c, rows, pagination)
}

func (rc *RouteController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	row, err := rc.repo.GetByID(id)
	if err != nil {
		handleError(c, err, "Route not found", "")
		return
	}
	respondData(c, http.StatusOK, row)
}

type createRouteInput struct {
	RouteName         string          `json:"route_name" binding:"required"`
	Origin            string          `json:"origin" binding:"required"`
	Destination       string          `json:"destination" binding:"required"`
	Distance          normalize.Float `json:"distance"`
	EstimatedDuration normalize.Int   `json:"estimated_duration"`
	Waypoints         string          `json:"waypoints"`
	Status            string          `json:"status"`
	AssignedVehicleID normalize.Uint  `json:"assigned_vehicle_id"`
	AssignedDriverID  normalize.Uint  `json:"assigned_driver_id"`
	PlannedStartTime  normalize.Date  `json:"planned_start_time"`
	ActualStartTime   normalize.Date  `json:"actual_start_time"`
	PlannedEndTime    normalize.Date  `json:"planned_end_time"`
	ActualEndTime     normalize.Date  `json:"actual_end_time"`
	FuelCost          normalize.Float `json:"fuel_cost"`
	TollCost          normalize.Float `json:"toll_cost"`
	Notes             string          `json:"notes"`
}

func (rc *RouteController) Create(c *gin.Context) {
	var input createRouteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	route := models.Route{
		RouteName:         input.RouteName,
		Origin:            input.Origin,
		Destination:       input.Destination,
		Distance:          input.Distance.Ptr(),
		EstimatedDuration: input.EstimatedDuration.Ptr(),
		Waypoints:         input.Waypoints,
		Status:            input.Status,
		AssignedVehicleID: input.AssignedVehicleID.Ptr(),
		AssignedDriverID:  input.AssignedDriverID.Ptr(),
		PlannedStartTime:  input.PlannedStartTime.Ptr(),
		ActualStartTime:   input.ActualStartTime.Ptr(),
		PlannedEndTime:    input.PlannedEndTime.Ptr(),
		ActualEndTime:     input.ActualEndTime.Ptr(),
		FuelCost:          input.FuelCost.Ptr(),
		TollCost:          input.TollCost.Ptr(),
		Notes:             input.Notes,
	}
	if err := rc.repo.Create(&route); err != nil {
		handleError(c, err, "", "")
		return
	}
	respondData(c, http.StatusCreated, route)
}

func (rc *RouteController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var patch repository.RoutePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	row, err := rc.repo.Update(id, patch)
	if err != nil {
		handleError(c, err, "Route not found", "")
		return
	}
	respondData(c, http.StatusOK, row)
}

func (rc *RouteController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := rc.repo.Delete(id); err != nil {
		handleError(c, err, "Route not found", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Route deleted successfully"})
}
