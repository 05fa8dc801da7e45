package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

func TestClassify(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   error
		want error
	}{
		{"nil", nil, nil},
		{"record not found", gorm.ErrRecordNotFound, ErrNotFound},
		{"translated duplicate", gorm.ErrDuplicatedKey, ErrConflict},
		{"raw pg duplicate", &pq.Error{Code: "23505"}, ErrConflict},
		{"already classified", fmt.Errorf("%w: x", ErrValidation), ErrValidation},
	} {
		got := Classify(tc.in)
		if tc.want == nil {
			if got != nil {
				t.Fatalf("%s: got %v", tc.name, got)
			}
			continue
		}
		if !errors.Is(got, tc.want) {
			t.Fatalf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}

	opaque := errors.New("disk on fire")
	if got := Classify(opaque); got != opaque {
		t.Fatalf("unknown error must pass through, got %v", got)
	}
}

func TestStatus(t *testing.T) {
	for _, tc := range []struct {
		in   error
		want int
	}{
		{ErrNotFound, http.StatusNotFound},
		{ErrConflict, http.StatusBadRequest},
		{ErrValidation, http.StatusBadRequest},
		{ErrTransaction, http.StatusBadRequest},
		{errors.New("anything else"), http.StatusInternalServerError},
	} {
		if got := Status(tc.in); got != tc.want {
			t.Fatalf("%v: got %d, want %d", tc.in, got, tc.want)
		}
	}

	wrapped := fmt.Errorf("%w: vehicle_number taken", ErrConflict)
	if Status(wrapped) != http.StatusBadRequest {
		t.Fatalf("wrapped conflict must keep its status")
	}
}
