package routes

import (
	"github.com/gin-gonic/gin"

	"fleetflow/internal/controllers"
	"fleetflow/internal/middleware"
	"fleetflow/internal/models"
)

func TripRoutes(api *gin.RouterGroup, auth *middleware.Auth, tc *controllers.TripController) {
	group := api.Group("/trips")
	group.Use(auth.RequireAuth())
	{
		group.GET("/", tc.List)
		group.GET("/:id", tc.Get)
		// Drivers open and close their own trips.
		group.POST("/", tc.Create)
		group.PUT("/:id", tc.Update)
		group.DELETE("/:id", auth.RequireRole(models.RoleAdmin), tc.Delete)
	}
}
