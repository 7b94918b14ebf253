// Package errors provides centralized error definitions for the application.
// Errors are organized by domain to avoid duplication and provide consistent naming.
//
// Naming conventions:
//   - Exported errors (Err*): Use for errors that callers need to check with errors.Is
//   - All sentinel errors should be defined as variables, not inline errors.New calls
//   - Use fmt.Errorf with %w to wrap sentinel errors with context
package errors

import "errors"

// Record lookup errors.
var (
	// ErrNotFound indicates a wine or sake record could not be found.
	ErrNotFound = errors.New("not found")

	// ErrInvalidID indicates a malformed record identifier.
	ErrInvalidID = errors.New("invalid id")
)

// Validation errors.
var (
	// ErrInvalidInput indicates invalid input was provided.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidRating indicates a rating outside the 1..5 range.
	ErrInvalidRating = errors.New("rating out of range")

	// ErrUnknownSakeType indicates a sake classification outside the known set.
	ErrUnknownSakeType = errors.New("unknown sake type")
)

// Collaborator errors.
var (
	// ErrStoreUnavailable indicates the record store could not serve a snapshot.
	ErrStoreUnavailable = errors.New("record store unavailable")

	// ErrInvalidConfig indicates engine configuration failed validation.
	ErrInvalidConfig = errors.New("invalid config")
)

// Is is a convenience wrapper around errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As is a convenience wrapper around errors.As.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
