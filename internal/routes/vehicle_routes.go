package routes

import (
	"github.com/gin-gonic/gin"

	"fleetflow/internal/controllers"
	"fleetflow/internal/middleware"
	"fleetflow/internal/models"
)

func VehicleRoutes(api *gin.RouterGroup, auth *middleware.Auth, vc *controllers.VehicleController) {
	group := api.Group("/vehicles")
	group.Use(auth.RequireAuth())
	{
		group.GET("/", vc.List)
		group.GET("/stats", vc.Stats)
		group.GET("/:id", vc.Get)
		group.POST("/", auth.RequireRole(models.RoleAdmin, models.RoleManager), vc.Create)
		group.PUT("/:id", auth.RequireRole(models.RoleAdmin, models.RoleManager), vc.Update)
		group.DELETE("/:id", auth.RequireRole(models.RoleAdmin), vc.Delete)
	}
}
