// services/services.go - shared helpers for the resource services
package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"octofit/apperr"
	"octofit/utils"
)

// checkID rejects identifiers the store could never have issued. A malformed
// id is indistinguishable from an absent one at the API boundary.
func checkID(id, resource string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperr.NotFound("%s not found", resource)
	}
	return nil
}

// lookupErr translates a gorm read failure into the service error taxonomy.
func lookupErr(err error, resource string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound("%s not found", resource)
	}
	return apperr.Store(err)
}

// validateInput runs struct-tag validation and wraps violations.
func validateInput(input interface{}) error {
	if err := utils.ValidateStruct(input); err != nil {
		return apperr.Validation("%s", err)
	}
	return nil
}

// requireParam guards the filter endpoints' mandatory query parameters.
func requireParam(value, name string) error {
	if value == "" {
		return apperr.Validation("%s parameter is required", name)
	}
	return nil
}

const defaultListLimit = 10

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return defaultListLimit
	}
	return limit
}
