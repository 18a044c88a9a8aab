package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested record does not exist in
	// the store, or when a scoped update/delete matched zero rows.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is returned when an operation would violate a unique
	// constraint.
	ErrDuplicate = errors.New("record already exists")

	// ErrInvalidRecord is returned when the store rejects a record's
	// field values (constraint violation, type mismatch, missing
	// required column). Check the wrapped error for the cause.
	ErrInvalidRecord = errors.New("invalid record")

	// Entity-specific "not found" errors

	// ErrWorkoutNotFound indicates that the requested workout does not exist.
	ErrWorkoutNotFound = fmt.Errorf("%w: workout", ErrNotFound)

	// ErrUserWorkoutNotFound indicates that the requested user workout does
	// not exist, or belongs to a different user.
	ErrUserWorkoutNotFound = fmt.Errorf("%w: user workout", ErrNotFound)

	// ErrFoodEntryNotFound indicates that the requested food entry does not exist.
	ErrFoodEntryNotFound = fmt.Errorf("%w: food entry", ErrNotFound)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}
