// Package storage provides the data persistence layer for the fintrack application.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/joaomsilva/fintrack/internal/common"
	"github.com/joaomsilva/fintrack/internal/model"
)

// Validation errors.
var (
	ErrNilContext         = errors.New("context cannot be nil")
	ErrEmptyString        = errors.New("string parameter cannot be empty")
	ErrInvalidTransaction = errors.New("invalid transaction")
	ErrInvalidCategory    = errors.New("invalid category")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateTransaction validates a single transaction before it hits disk.
func validateTransaction(txn *model.Transaction) error {
	if txn.ID == "" {
		return fmt.Errorf("%w: missing ID", ErrInvalidTransaction)
	}
	if !txn.Type.Valid() {
		return fmt.Errorf("%w: unknown type %q", ErrInvalidTransaction, txn.Type)
	}
	if !txn.Amount.IsPositive() {
		return fmt.Errorf("%w: %w", common.ErrInvalidAmount, ErrInvalidTransaction)
	}
	if txn.Date.IsZero() {
		return fmt.Errorf("%w: %w", common.ErrInvalidDate, ErrInvalidTransaction)
	}
	return nil
}

// validateCategory validates a category before insert.
func validateCategory(cat *model.Category) error {
	if cat.ID == "" {
		return fmt.Errorf("%w: missing ID", ErrInvalidCategory)
	}
	if strings.TrimSpace(cat.Name) == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidCategory)
	}
	if !cat.Group.Valid() {
		return fmt.Errorf("%w: unknown group %q", ErrInvalidCategory, cat.Group)
	}
	if cat.Budget.IsNegative() {
		return fmt.Errorf("%w: negative budget", ErrInvalidCategory)
	}
	return nil
}
