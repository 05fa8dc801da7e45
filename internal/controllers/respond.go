package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"

	"fleetflow/internal/apperr"
	"fleetflow/internal/repository"
)

// handleError classifies a repository/analytics failure and writes the
// boundary error shape. Unexpected errors are logged and answered with a
// generic message; raw driver errors never reach the client.
func handleError(c *gin.Context, err error, notFoundMsg, conflictMsg string) {
	status := apperr.Status(err)
	switch {
	case status == http.StatusNotFound:
		if notFoundMsg == "" {
			notFoundMsg = "Not found"
		}
		c.JSON(status, gin.H{"error": notFoundMsg})
	case errors.Is(err, apperr.ErrConflict) && conflictMsg != "":
		c.JSON(status, gin.H{"error": conflictMsg})
	case status == http.StatusBadRequest:
		c.JSON(status, gin.H{"error": err.Error()})
	default:
		logrus.WithError(err).Error("request failed")
		c.JSON(status, gin.H{"error": "Server error"})
	}
}

// parseID reads the :id path parameter; a malformed id answers 400.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return 0, false
	}
	return uint(id), true
}

// parsePage reads the page/limit query parameters, leaving defaults to
// the repository layer.
func parsePage(c *gin.Context) repository.Page {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	return repository.Page{Number: page, Limit: limit}
}

// parseUintQuery reads an optional numeric query parameter; 0 means absent.
func parseUintQuery(c *gin.Context, name string) uint {
	v, _ := strconv.ParseUint(c.Query(name), 10, 32)
	return uint(v)
}

func parseIntQuery(c *gin.Context, name string, fallback int) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func respondList(c *gin.Context, data any, p repository.Pagination) {
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       data,
		"pagination": p,
	})
}

func respondData(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"success": true, "data": data})
}
