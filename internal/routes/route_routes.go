package routes

import (
	"github.com/gin-gonic/gin"

	"fleetflow/internal/controllers"
	"fleetflow/internal/middleware"
	"fleetflow/internal/models"
)

func RouteRoutes(api *gin.RouterGroup, auth *middleware.Auth, rc *controllers.RouteController) {
	group := api.Group("/routes")
	group.Use(auth.RequireAuth())
	{
		group.GET("/", rc.List)
		group.GET("/:id", rc.Get)
		group.POST("/", auth.RequireRole(models.RoleAdmin, models.RoleManager), rc.Create)
		group.PUT("/:id", auth.RequireRole(models.RoleAdmin, models.RoleManager), rc.Update)
		group.DELETE("/:id", auth.RequireRole(models.RoleAdmin), rc.Delete)
	}
}
