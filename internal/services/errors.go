package services

import (
	"errors"
	"fmt"
)

// Sentinel errors handlers map onto HTTP status codes.
var (
	ErrValidationFailed = errors.New("validation failed")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrNotFound         = errors.New("resource not found")

	// ErrEmailTaken maps to 400, matching the original API contract
	// (not 409).
	ErrEmailTaken = errors.New("email already registered")

	ErrInvalidCredentials = errors.New("invalid email or password")
)

// validationError wraps field-level validation failures so handlers can
// match them with errors.Is(err, ErrValidationFailed).
func validationError(detail error) error {
	return fmt.Errorf("%w: %s", ErrValidationFailed, detail.Error())
}
