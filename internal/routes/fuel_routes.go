package routes

import (
	"github.com/gin-gonic/gin"

	"fleetflow/internal/controllers"
	"fleetflow/internal/middleware"
	"fleetflow/internal/models"
)

func FuelRoutes(api *gin.RouterGroup, auth *middleware.Auth, fc *controllers.FuelController) {
	group := api.Group("/fuel")
	group.Use(auth.RequireAuth())
	{
		group.GET("/", fc.List)
		group.GET("/stats", fc.Stats)
		group.GET("/:id", fc.Get)
		// Any authenticated user can log a fill-up.
		group.POST("/", fc.Create)
		group.PUT("/:id", auth.RequireRole(models.RoleAdmin, models.RoleManager), fc.Update)
		group.DELETE("/:id", auth.RequireRole(models.RoleAdmin), fc.Delete)
	}
}
