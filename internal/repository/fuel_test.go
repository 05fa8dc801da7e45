package repository

import (
	"errors"
	"testing"
	"time"

	"fleetflow/internal/apperr"
	"fleetflow/internal/models"
)

func TestFuelCreateRejectsNonPositiveQuantity(t *testing.T) {
	db := openTestDB(t)
	vehicle := models.Vehicle{VehicleNumber: "FUEL-V1", VehicleType: "truck"}
	if err := NewVehicleRepo(db).Create(&vehicle); err != nil {
		t.Fatalf("seed vehicle: %v", err)
	}
	repo := NewFuelRepo(db)

	err := repo.Create(&models.FuelRecord{
		VehicleID: vehicle.ID,
		FuelDate:  time.Now(),
		Quantity:  0,
	})
	if !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("zero quantity: got %v, want ErrValidation", err)
	}
}

func TestFuelFilterByVehicle(t *testing.T) {
	db := openTestDB(t)
	vehicles := NewVehicleRepo(db)

	a := models.Vehicle{VehicleNumber: "FUEL-A", VehicleType: "truck"}
	b := models.Vehicle{VehicleNumber: "FUEL-B", VehicleType: "van"}
	if err := vehicles.Create(&a); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := vehicles.Create(&b); err != nil {
		t.Fatalf("seed: %v", err)
	}

	repo := NewFuelRepo(db)
	for i, vid := range []uint{a.ID, a.ID, b.ID} {
		if err := repo.Create(&models.FuelRecord{
			VehicleID: vid,
			FuelDate:  time.Now().Add(-time.Duration(i) * time.Hour),
			Quantity:  40,
		}); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}

	rows, pagination, err := repo.List(FuelFilter{VehicleID: a.ID}, Page{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 2 || pagination.Total != 2 {
		t.Fatalf("got %d rows / total %d, want 2 / 2", len(rows), pagination.Total)
	}
	for _, row := range rows {
		if row.VehicleNumber != "FUEL-A" {
			t.Fatalf("vehicle_number = %q", row.VehicleNumber)
		}
	}
}

func TestFuelEmptyPatchReportsMissingRow(t *testing.T) {
	repo := NewFuelRepo(openTestDB(t))

	if _, err := repo.Update(777, FuelPatch{}); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("empty patch on missing id: got %v, want ErrNotFound", err)
	}
}
