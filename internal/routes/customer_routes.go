package routes

import (
	"github.com/gin-gonic/gin"

	"fleetflow/internal/controllers"
	"fleetflow/internal/middleware"
	"fleetflow/internal/models"
)

func CustomerRoutes(api *gin.RouterGroup, auth *middleware.Auth, cc *controllers.CustomerController) {
	group := api.Group("/customers")
	group.Use(auth.RequireAuth())
	{
		group.GET("/", cc.List)
		group.GET("/:id", cc.Get)
		group.POST("/", auth.RequireRole(models.RoleAdmin, models.RoleManager), cc.Create)
		group.PUT("/:id", auth.RequireRole(models.RoleAdmin, models.RoleManager), cc.Update)
		group.DELETE("/:id", auth.RequireRole(models.RoleAdmin), cc.Delete)
	}
}
