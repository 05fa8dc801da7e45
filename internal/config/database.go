package config

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"fleetflow/internal/models"
)

// OpenDB connects to postgres and migrates the schema. The returned
// handle is passed to the repository and analytics constructors; there
// is no package-level database state.
func OpenDB(cfg Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate applies the schema for every entity. Parents come first so the
// foreign-key constraints can be created in one pass.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Vehicle{},
		&models.Driver{},
		&models.Route{},
		&models.Delivery{},
		&models.Maintenance{},
		&models.FuelRecord{},
		&models.Trip{},
	)
	if err != nil {
		return fmt.Errorf("auto-migration failed: %w", err)
	}
	return nil
}
