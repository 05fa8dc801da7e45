package repository

import (
	"errors"
	"testing"

	"fleetflow/internal/apperr"
	"fleetflow/internal/models"
	"fleetflow/internal/normalize"
)

func TestVehicleCreateDefaultsStatus(t *testing.T) {
	repo := NewVehicleRepo(openTestDB(t))

	v := models.Vehicle{VehicleNumber: "KAA-001", VehicleType: "truck"}
	if err := repo.Create(&v); err != nil {
		t.Fatalf("create: %v", err)
	}
	if v.Status != models.VehicleAvailable {
		t.Fatalf("status = %q, want %q", v.Status, models.VehicleAvailable)
	}

	got, err := repo.GetByID(v.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.VehicleNumber != "KAA-001" {
		t.Fatalf("vehicle_number = %q", got.VehicleNumber)
	}
	if got.DriverName != nil {
		t.Fatalf("driver_name should be nil for unassigned vehicle, got %q", *got.DriverName)
	}
}

func TestVehicleDuplicateNumberConflicts(t *testing.T) {
	repo := NewVehicleRepo(openTestDB(t))

	if err := repo.Create(&models.Vehicle{VehicleNumber: "KAA-002", VehicleType: "van"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	err := repo.Create(&models.Vehicle{VehicleNumber: "KAA-002", VehicleType: "van"})
	if !errors.Is(err, apperr.ErrConflict) {
		t.Fatalf("duplicate vehicle number: got %v, want ErrConflict", err)
	}
}

func TestVehicleUpdatePartial(t *testing.T) {
	repo := NewVehicleRepo(openTestDB(t))

	v := models.Vehicle{VehicleNumber: "KAA-003", VehicleType: "truck", Make: "Isuzu"}
	if err := repo.Create(&v); err != nil {
		t.Fatalf("create: %v", err)
	}

	status := models.VehicleMaintenance
	row, err := repo.Update(v.ID, VehiclePatch{
		Status:  &status,
		Mileage: &normalize.Float{Value: 120500, Valid: true},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if row.Status != models.VehicleMaintenance {
		t.Fatalf("status = %q", row.Status)
	}
	if row.Mileage != 120500 {
		t.Fatalf("mileage not applied: %v", row.Mileage)
	}
	// Untouched fields survive a partial update.
	if row.Make != "Isuzu" {
		t.Fatalf("make = %q, want Isuzu", row.Make)
	}
}

func TestVehicleUpdateEmptyPatch(t *testing.T) {
	repo := NewVehicleRepo(openTestDB(t))

	v := models.Vehicle{VehicleNumber: "KAA-004", VehicleType: "van", Make: "Toyota"}
	if err := repo.Create(&v); err != nil {
		t.Fatalf("create: %v", err)
	}

	// An empty patch on an existing row succeeds and leaves the data alone.
	row, err := repo.Update(v.ID, VehiclePatch{})
	if err != nil {
		t.Fatalf("empty patch: %v", err)
	}
	if row.VehicleNumber != "KAA-004" || row.Make != "Toyota" {
		t.Fatalf("fields changed by empty patch: %+v", row)
	}

	if _, err := repo.Update(9999, VehiclePatch{}); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("update missing id: got %v, want ErrNotFound", err)
	}
}

func TestVehicleDeleteMissing(t *testing.T) {
	repo := NewVehicleRepo(openTestDB(t))

	if err := repo.Delete(1234); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("delete missing id: got %v, want ErrNotFound", err)
	}
}

func TestVehicleListFiltersByStatus(t *testing.T) {
	repo := NewVehicleRepo(openTestDB(t))

	for _, v := range []models.Vehicle{
		{VehicleNumber: "KBA-001", VehicleType: "truck", Status: models.VehicleAvailable},
		{VehicleNumber: "KBA-002", VehicleType: "truck", Status: models.VehicleOnTrip},
		{VehicleNumber: "KBA-003", VehicleType: "van", Status: models.VehicleAvailable},
	} {
		v := v
		if err := repo.Create(&v); err != nil {
			t.Fatalf("create %s: %v", v.VehicleNumber, err)
		}
	}

	rows, pagination, err := repo.List(VehicleFilter{Status: models.VehicleAvailable}, Page{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 2 || pagination.Total != 2 {
		t.Fatalf("got %d rows / total %d, want 2 / 2", len(rows), pagination.Total)
	}
	for _, row := range rows {
		if row.Status != models.VehicleAvailable {
			t.Fatalf("unexpected status %q in filtered rows", row.Status)
		}
	}
}
