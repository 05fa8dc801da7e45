package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fleetflow/internal/analytics"
	"fleetflow/internal/repository"
)

type DriverController struct {
	repo  *repository.DriverRepo
	stats *analytics.Service
}

func NewDriverController(repo *repository.DriverRepo, stats *analytics.Service) *DriverController {
	return &DriverController{repo: repo, stats: stats}
}

func (dc *DriverController) List(c *gin.Context) {
	filter := repository.DriverFilter{Status: c.Query("status")}
	rows, pagination, err := dc.repo.List(filter, parsePage(c))
	if err != nil {
		handleError(c, err, "", "")
		return
	}
	respondList(c, rows, pagination)
}

func (dc *DriverController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	row, err := dc.repo.GetByID(id)
	if err != nil {
		handleError(c, err, "Driver not found", "")
		return
	}
	respondData(c, http.StatusOK, row)
}

// Create onboards a driver: the backing user account and the driver
// profile are written in one transaction by the repository.
func (dc *DriverController) Create(c *gin.Context) {
	var input repository.DriverAccountInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	row, err := dc.repo.CreateWithAccount(input)
	if err != nil {
		handleError(c, err, "", "Email or license number already exists")
		return
	}
	respondData(c, http.StatusCreated, row)
}

func (dc *DriverController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var patch repository.DriverPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	row, err := dc.repo.Update(id, patch)
	if err != nil {
		handleError(c, err, "Driver not found", "License number already exists")
		return
	}
	respondData(c, http.StatusOK, row)
}

func (dc *DriverController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := dc.repo.Delete(id); err != nil {
		handleError(c, err, "Driver not found", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Driver deleted successfully"})
}

func (dc *DriverController) Stats(c *gin.Context) {
	stats, err := dc.stats.DriverStats()
	if err != nil {
		handleError(c, err, "", "")
		return
	}
	respondData(c, http.StatusOK, stats)
}
