package routes

import (
	"net/http"

	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"

	"fleetflow/internal/controllers"
	"fleetflow/internal/middleware"
)

// Controllers bundles everything the router mounts.
type Controllers struct {
	Auth        *controllers.AuthController
	Vehicle     *controllers.VehicleController
	Driver      *controllers.DriverController
	Customer    *controllers.CustomerController
	Route       *controllers.RouteController
	Delivery    *controllers.DeliveryController
	Maintenance *controllers.MaintenanceController
	Fuel        *controllers.FuelController
	Trip        *controllers.TripController
	Analytics   *controllers.AnalyticsController
}

func SetupRouter(auth *middleware.Auth, ctrl Controllers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(ginlog.SetLogger())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	api := r.Group("/api")

	AuthRoutes(api, auth, ctrl.Auth)
	VehicleRoutes(api, auth, ctrl.Vehicle)
	DriverRoutes(api, auth, ctrl.Driver)
	CustomerRoutes(api, auth, ctrl.Customer)
	RouteRoutes(api, auth, ctrl.Route)
	DeliveryRoutes(api, auth, ctrl.Delivery)
	MaintenanceRoutes(api, auth, ctrl.Maintenance)
	FuelRoutes(api, auth, ctrl.Fuel)
	TripRoutes(api, auth, ctrl.Trip)
	AnalyticsRoutes(api, auth, ctrl.Analytics)

	return r
}
