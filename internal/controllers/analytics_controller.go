package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fleetflow/internal/analytics"
)

type AnalyticsController struct {
	svc *analytics.Service
}

func NewAnalyticsController(svc *analytics.Service) *AnalyticsController {
	return &AnalyticsController{svc: svc}
}

func (ac *AnalyticsController) Dashboard(c *gin.Context) {
	dashboard, err := ac.svc.Dashboard()
	if err != nil {
		handleError(c, err, "", "")
		return
	}
	respondData(c, http.StatusOK, dashboard)
}

func (ac *AnalyticsController) Revenue(c *gin.Context) {
	period := parseIntQuery(c, "period", 30)
	report, err := ac.svc.Revenue(period)
	if err != nil {
		handleError(c, err, "", "")
		return
	}
	respondData(c, http.StatusOK, report)
}

func (ac *AnalyticsController) FleetPerformance(c *gin.Context) {
	rows, err := ac.svc.FleetPerformance()
	if err != nil {
		handleError(c, err, "", "")
		return
	}
	respondData(c, http.StatusOK, rows)
}
