// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import (
	"errors"
	"fmt"
)

// Common sentinels across repo/service layers.
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized indicates failed authentication.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrRateLimited indicates temporary login lock due to rate limiting.
	ErrRateLimited = errors.New("rate limited")

	// ErrAlreadyExists indicates a unique constraint violation (e.g., email taken).
	ErrAlreadyExists = errors.New("already exists")

	// ErrStorageTimeout indicates a storage command exceeded its timeout.
	ErrStorageTimeout = errors.New("storage timeout")

	// ErrStorageUnavailable indicates the storage backend could not be reached.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrValidation is matched by errors.Is for any ValidationError.
	ErrValidation = errors.New("validation failed")
)

// ValidationError reports a malformed input field. It unwraps to ErrValidation
// so the whole class can be matched with errors.Is while handlers keep access
// to the offending field via errors.As.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// Validation constructs a field-level validation error.
func Validation(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
