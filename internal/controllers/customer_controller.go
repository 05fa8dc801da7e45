package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fleetflow/internal/models"
	"fleetflow/internal/repository"
)

type CustomerController struct {
	repo *repository.CustomerRepo
}

func NewCustomerController(repo *repository.CustomerRepo) *CustomerController {
	return &CustomerController{repo: repo}
}

func (cc *CustomerController) List(c *gin.Context) {
	rows, pagination, err := cc.repo.List(parsePage(c))
	if err != nil {
		handleError(c, err, "", "")
		return
	}
	respondList(c, rows, pagination)
}

func (cc *CustomerController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	row, err := cc.repo.GetByID(id)
	if err != nil {
		handleError(c, err, "Customer not found", "")
		return
	}
	respondData(c, http.StatusOK, row)
}

func (cc *CustomerController) Create(c *gin.Context) {
	var customer models.Customer
	if err := c.ShouldBindJSON(&customer); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	customer.ID = 0
	if err := cc.repo.Create(&customer); err != nil {
		handleError(c, err, "", "")
		return
	}
	respondData(c, http.StatusCreated, customer)
}

func (cc *CustomerController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var patch repository.CustomerPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	row, err := cc.repo.Update(id, patch)
	if err != nil {
		handleError(c, err, "Customer not found", "")
		return
	}
	respondData(c, http.StatusOK, row)
}

func (cc *CustomerController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := cc.repo.Delete(id); err != nil {
		handleError(c, err, "Customer not found", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Customer deleted successfully"})
}
