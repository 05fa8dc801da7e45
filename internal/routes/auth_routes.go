package routes

import (
	"github.com/gin-gonic/gin"

	"fleetflow/internal/controllers"
	"fleetflow/internal/middleware"
)

func AuthRoutes(api *gin.RouterGroup, auth *middleware.Auth, ac *controllers.AuthController) {
	group := api.Group("/auth")
	{
		group.POST("/register", ac.Register)
		group.POST("/login", ac.Login)
		group.GET("/me", auth.RequireAuth(), ac.Me)
	}
}
