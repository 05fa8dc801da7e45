package routes

import (
	"github.com/gin-gonic/gin"

	"fleetflow/internal/controllers"
	"fleetflow/internal/middleware"
	"fleetflow/internal/models"
)

func DriverRoutes(api *gin.RouterGroup, auth *middleware.Auth, dc *controllers.DriverController) {
	group := api.Group("/drivers")
	group.Use(auth.RequireAuth())
	{
		group.GET("/", dc.List)
		group.GET("/stats", dc.Stats)
		group.GET("/:id", dc.Get)
		group.POST("/", auth.RequireRole(models.RoleAdmin, models.RoleManager), dc.Create)
		group.PUT("/:id", auth.RequireRole(models.RoleAdmin, models.RoleManager), dc.Update)
		group.DELETE("/:id", auth.RequireRole(models.RoleAdmin), dc.Delete)
	}
}
