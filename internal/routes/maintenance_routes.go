package routes

import (
	"github.com/gin-gonic/gin"

	"fleetflow/internal/controllers"
	"fleetflow/internal/middleware"
	"fleetflow/internal/models"
)

func MaintenanceRoutes(api *gin.RouterGroup, auth *middleware.Auth, mc *controllers.MaintenanceController) {
	group := api.Group("/maintenance")
	group.Use(auth.RequireAuth())
	{
		group.GET("/", mc.List)
		group.GET("/:id", mc.Get)
		group.POST("/", auth.RequireRole(models.RoleAdmin, models.RoleManager), mc.Create)
		group.PUT("/:id", auth.RequireRole(models.RoleAdmin, models.RoleManager), mc.Update)
		group.DELETE("/:id", auth.RequireRole(models.RoleAdmin), mc.Delete)
	}
}
