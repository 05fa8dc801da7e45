package repository

import (
	"errors"
	"testing"

	"fleetflow/internal/apperr"
	"fleetflow/internal/models"
)

func TestDriverOnboardingCreatesUserAndProfile(t *testing.T) {
	db := openTestDB(t)
	repo := NewDriverRepo(db)

	row, err := repo.CreateWithAccount(DriverAccountInput{
		Name:          "Jane Wanjiku",
		Email:         "jane@fleet.test",
		LicenseNumber: "DL-1001",
	})
	if err != nil {
		t.Fatalf("onboard: %v", err)
	}
	if row.Name != "Jane Wanjiku" || row.Email != "jane@fleet.test" {
		t.Fatalf("joined account fields missing: %+v", row)
	}
	if row.Status != models.DriverAvailable {
		t.Fatalf("status = %q, want %q", row.Status, models.DriverAvailable)
	}

	var user models.User
	if err := db.Where("email = ?", "jane@fleet.test").First(&user).Error; err != nil {
		t.Fatalf("user row missing: %v", err)
	}
	if user.Role != models.RoleDriver {
		t.Fatalf("role = %q, want %q", user.Role, models.RoleDriver)
	}
	if user.Password == "" || user.Password == "driver123" {
		t.Fatalf("password was not hashed")
	}
}

func TestDriverOnboardingRollsBackOnDuplicateLicense(t *testing.T) {
	db := openTestDB(t)
	repo := NewDriverRepo(db)

	if _, err := repo.CreateWithAccount(DriverAccountInput{
		Name:          "First",
		Email:         "first@fleet.test",
		LicenseNumber: "DL-2002",
	}); err != nil {
		t.Fatalf("first onboard: %v", err)
	}

	// Same license, fresh email. The user insert succeeds, the driver
	// insert conflicts, and the transaction must undo both.
	_, err := repo.CreateWithAccount(DriverAccountInput{
		Name:          "Second",
		Email:         "second@fleet.test",
		LicenseNumber: "DL-2002",
	})
	if !errors.Is(err, apperr.ErrConflict) {
		t.Fatalf("duplicate license: got %v, want ErrConflict", err)
	}

	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", "second@fleet.test").Count(&count).Error; err != nil {
		t.Fatalf("count users: %v", err)
	}
	if count != 0 {
		t.Fatalf("orphaned user row survived the rollback")
	}
}

func TestDriverDeleteRemovesAccount(t *testing.T) {
	db := openTestDB(t)
	repo := NewDriverRepo(db)

	row, err := repo.CreateWithAccount(DriverAccountInput{
		Name:          "Gone Soon",
		Email:         "gone@fleet.test",
		LicenseNumber: "DL-3003",
	})
	if err != nil {
		t.Fatalf("onboard: %v", err)
	}

	if err := repo.Delete(row.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	var users, drivers int64
	db.Model(&models.User{}).Where("email = ?", "gone@fleet.test").Count(&users)
	db.Model(&models.Driver{}).Where("id = ?", row.ID).Count(&drivers)
	if users != 0 || drivers != 0 {
		t.Fatalf("expected both rows gone, have %d users / %d drivers", users, drivers)
	}
}

func TestDriverDeleteMissing(t *testing.T) {
	repo := NewDriverRepo(openTestDB(t))

	if err := repo.Delete(404); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("delete missing: got %v, want ErrNotFound", err)
	}
}
