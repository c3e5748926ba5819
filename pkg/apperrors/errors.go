// Package apperrors defines the error kinds surfaced by the business core.
// Callers classify failures with errors.Is against the exported sentinels.
package apperrors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound marks lookups of unknown SKUs, items, recipes or orders.
	ErrNotFound = errors.New("not found")
	// ErrInvalidState marks lifecycle transitions from a wrong status.
	ErrInvalidState = errors.New("invalid state")
	// ErrEmptyOrder marks pricing requests with no lines.
	ErrEmptyOrder = errors.New("order has no lines")
	// ErrValidation marks rejected inputs at the operation boundary.
	ErrValidation = errors.New("validation failed")
)

func NotFound(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrNotFound)...)
}

func InvalidState(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrInvalidState)...)
}

func Validation(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrValidation)...)
}
