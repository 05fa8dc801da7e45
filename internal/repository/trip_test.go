package repository

import (
	"testing"
	"time"

	"gorm.io/gorm"

	"fleetflow/internal/models"
	"fleetflow/internal/normalize"
)

// seedTripParents inserts the vehicle, driver and route a trip points at.
func seedTripParents(t *testing.T, db *gorm.DB) (uint, uint, uint) {
	t.Helper()

	vehicle := models.Vehicle{VehicleNumber: "TRP-V1", VehicleType: "truck"}
	if err := NewVehicleRepo(db).Create(&vehicle); err != nil {
		t.Fatalf("seed vehicle: %v", err)
	}
	driver, err := NewDriverRepo(db).CreateWithAccount(DriverAccountInput{
		Name:          "Trip Driver",
		Email:         "trip-driver@fleet.test",
		LicenseNumber: "DL-TRIP",
	})
	if err != nil {
		t.Fatalf("seed driver: %v", err)
	}
	route := models.Route{RouteName: "North Loop", Origin: "Depot", Destination: "Plant"}
	if err := NewRouteRepo(db).Create(&route); err != nil {
		t.Fatalf("seed route: %v", err)
	}
	return vehicle.ID, driver.ID, route.ID
}

func TestTripCreateDerivesDistance(t *testing.T) {
	db := openTestDB(t)
	vehicleID, driverID, routeID := seedTripParents(t, db)
	repo := NewTripRepo(db)

	start, end := 1000.0, 1260.5
	trip := models.Trip{
		VehicleID:    vehicleID,
		DriverID:     driverID,
		RouteID:      routeID,
		StartTime:    time.Now(),
		StartMileage: &start,
		EndMileage:   &end,
	}
	if err := repo.Create(&trip); err != nil {
		t.Fatalf("create: %v", err)
	}
	if trip.Status != models.TripInProgress {
		t.Fatalf("status = %q", trip.Status)
	}
	if trip.DistanceCovered == nil || *trip.DistanceCovered != 260.5 {
		t.Fatalf("distance_covered = %v, want 260.5", trip.DistanceCovered)
	}
}

func TestTripCreateKeepsExplicitDistance(t *testing.T) {
	db := openTestDB(t)
	vehicleID, driverID, routeID := seedTripParents(t, db)
	repo := NewTripRepo(db)

	start, end, dist := 100.0, 200.0, 95.0
	trip := models.Trip{
		VehicleID:       vehicleID,
		DriverID:        driverID,
		RouteID:         routeID,
		StartTime:       time.Now(),
		StartMileage:    &start,
		EndMileage:      &end,
		DistanceCovered: &dist,
	}
	if err := repo.Create(&trip); err != nil {
		t.Fatalf("create: %v", err)
	}
	if *trip.DistanceCovered != 95.0 {
		t.Fatalf("explicit distance overwritten: %v", *trip.DistanceCovered)
	}
}

func TestTripUpdateDerivesDistanceOnCompletion(t *testing.T) {
	db := openTestDB(t)
	vehicleID, driverID, routeID := seedTripParents(t, db)
	repo := NewTripRepo(db)

	start := 500.0
	trip := models.Trip{
		VehicleID:    vehicleID,
		DriverID:     driverID,
		RouteID:      routeID,
		StartTime:    time.Now(),
		StartMileage: &start,
	}
	if err := repo.Create(&trip); err != nil {
		t.Fatalf("create: %v", err)
	}

	status := models.TripCompleted
	row, err := repo.Update(trip.ID, TripPatch{
		EndMileage: &normalize.Float{Value: 620, Valid: true},
		Status:     &status,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if row.DistanceCovered == nil || *row.DistanceCovered != 120 {
		t.Fatalf("distance_covered = %v, want 120", row.DistanceCovered)
	}
	if row.Status != models.TripCompleted {
		t.Fatalf("status = %q", row.Status)
	}
}
