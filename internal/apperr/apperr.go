// Package apperr defines the failure taxonomy shared by the repository,
// analytics and HTTP layers. Every storage error is classified into one
// of these sentinels before a response is written.
package apperr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

var (
	// ErrNotFound means the id had no matching row.
	ErrNotFound = errors.New("record not found")
	// ErrConflict means a unique constraint was violated
	// (vehicle_number, delivery_number, email, license_number).
	ErrConflict = errors.New("duplicate value for unique field")
	// ErrValidation means a required field was missing or malformed.
	ErrValidation = errors.New("validation failed")
	// ErrTransaction means a multi-statement write failed and rolled back.
	ErrTransaction = errors.New("transaction failed")
)

const pgUniqueViolation = "23505"

// Classify maps a raw storage error onto the taxonomy. Unknown errors are
// returned unchanged and treated as unexpected by the HTTP layer.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrConflict),
		errors.Is(err, ErrValidation), errors.Is(err, ErrTransaction):
		return err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	case IsUniqueViolation(err):
		return fmt.Errorf("%w: %v", ErrConflict, err)
	}
	return err
}

// IsUniqueViolation reports whether err is a unique-constraint violation,
// either translated by GORM or raw from the postgres driver.
func IsUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pq.Error
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return true
	}
	return false
}

// Status maps a classified error to the HTTP status the boundary contract
// requires: 404 for missing rows, 400 for conflicts and bad input, 500
// for everything else.
func Status(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict), errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrTransaction):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
