// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Validation errors.
	ErrValidation    = errors.New("validation failed")
	ErrInvalidAmount = errors.New("amount must be positive")
	ErrInvalidDate   = errors.New("invalid date")

	// Lookup errors.
	ErrNotFound = errors.New("not found")

	// Storage errors.
	ErrPersistence = errors.New("persistence unavailable")

	// Export errors.
	ErrExport         = errors.New("export failed")
	ErrNoTransactions = errors.New("no transactions to export")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// IsValidation reports whether the error stems from malformed input. These
// errors never mutate the store and are safe to surface verbatim.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrInvalidDate)
}
