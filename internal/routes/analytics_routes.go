package routes

import (
	"github.com/gin-gonic/gin"

	"fleetflow/internal/controllers"
	"fleetflow/internal/middleware"
)

func AnalyticsRoutes(api *gin.RouterGroup, auth *middleware.Auth, ac *controllers.AnalyticsController) {
	group := api.Group("/analytics")
	group.Use(auth.RequireAuth())
	{
		group.GET("/dashboard", ac.Dashboard)
		group.GET("/revenue", ac.Revenue)
		group.GET("/fleet-performance", ac.FleetPerformance)
	}
}
