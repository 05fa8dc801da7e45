package routes

import (
	"github.com/gin-gonic/gin"

	"fleetflow/internal/controllers"
	"fleetflow/internal/middleware"
	"fleetflow/internal/models"
)

func DeliveryRoutes(api *gin.RouterGroup, auth *middleware.Auth, dc *controllers.DeliveryController) {
	group := api.Group("/deliveries")
	group.Use(auth.RequireAuth())
	{
		group.GET("/", dc.List)
		group.GET("/stats", dc.Stats)
		group.GET("/:id", dc.Get)
		group.POST("/", auth.RequireRole(models.RoleAdmin, models.RoleManager), dc.Create)
		// Drivers update delivery progress, so no role gate on updates.
		group.PUT("/:id", dc.Update)
		group.DELETE("/:id", auth.RequireRole(models.RoleAdmin, models.RoleManager), dc.Delete)
	}
}
