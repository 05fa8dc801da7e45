package main

import (
	"log"
	"net/http"

	"fleetflow/internal/analytics"
	"fleetflow/internal/config"
	"fleetflow/internal/controllers"
	"fleetflow/internal/logger"
	"fleetflow/internal/middleware"
	"fleetflow/internal/repository"
	"fleetflow/internal/routes"
)

func main() {
	cfg := config.Load()

	// Structured logging to a rotated file
	logger.Setup(cfg.LogFile)

	db, err := config.OpenDB(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	auth := middleware.NewAuth(cfg.JWTSecret)
	stats := analytics.NewService(db)

	ctrl := routes.Controllers{
		Auth:        controllers.NewAuthController(repository.NewUserRepo(db), auth),
		Vehicle:     controllers.NewVehicleController(repository.NewVehicleRepo(db), stats),
		Driver:      controllers.NewDriverController(repository.NewDriverRepo(db), stats),
		Customer:    controllers.NewCustomerController(repository.NewCustomerRepo(db)),
		Route:       controllers.NewRouteController(repository.NewRouteRepo(db)),
		Delivery:    controllers.NewDeliveryController(repository.NewDeliveryRepo(db), stats),
		Maintenance: controllers.NewMaintenanceController(repository.NewMaintenanceRepo(db)),
		Fuel:        controllers.NewFuelController(repository.NewFuelRepo(db), stats),
		Trip:        controllers.NewTripController(repository.NewTripRepo(db)),
		Analytics:   controllers.NewAnalyticsController(stats),
	}

	r := routes.SetupRouter(auth, ctrl)

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	log.Printf("Server running at %s", cfg.ListenAddr)
	log.Fatal(http.ListenAndServe(cfg.ListenAddr, handler))
}
