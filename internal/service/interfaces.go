// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/joaomsilva/fintrack/internal/model"
)

// Period identifies a calendar month within a year.
type Period struct {
	Month time.Month
	Year  int
}

// PeriodOf returns the period containing the given time.
func PeriodOf(t time.Time) Period {
	return Period{Month: t.Month(), Year: t.Year()}
}

// Contains reports whether the date falls inside the period.
func (p Period) Contains(d model.Date) bool {
	return d.In(p.Month, p.Year)
}

// SortOrder selects how a transaction listing is ordered.
type SortOrder string

const (
	// SortInsertion preserves the order transactions were added in. This is
	// the store's only ordering guarantee.
	SortInsertion SortOrder = "insertion"
	// SortDateDesc orders newest calendar date first. Callers wanting
	// "most recent" displays must ask for this explicitly.
	SortDateDesc SortOrder = "date-desc"
)

// TransactionFilter defines filtering options for transaction queries.
type TransactionFilter struct {
	Period *Period
	Type   *model.TransactionType
	Sort   SortOrder
	Limit  int
}

// Storage defines the contract for the persistence layer. Every call that
// touches ledger data takes the owning namespace explicitly; there is no
// hidden current-user state at this layer.
type Storage interface {
	// Transaction operations
	SaveTransaction(ctx context.Context, namespace string, txn model.Transaction) error
	DeleteTransaction(ctx context.Context, namespace, id string) error
	ReplaceAllTransactions(ctx context.Context, namespace string, txns []model.Transaction) error
	GetTransactions(ctx context.Context, namespace string, filter TransactionFilter) ([]model.Transaction, error)
	GetTransactionByID(ctx context.Context, namespace, id string) (*model.Transaction, error)

	// Category operations
	GetCategories(ctx context.Context, namespace string) ([]model.Category, error)
	GetCategoryByID(ctx context.Context, namespace, id string) (*model.Category, error)
	CreateCategory(ctx context.Context, namespace string, category model.Category) (*model.Category, error)
	UpdateCategoryBudget(ctx context.Context, namespace, id string, budget decimal.Decimal) error
	UpdateCategoryColor(ctx context.Context, namespace, id, color string) error

	// Profile and session operations
	EnsureUser(ctx context.Context, namespace string) error
	ListUsers(ctx context.Context) ([]string, error)
	GetProfile(ctx context.Context, namespace string) (*model.UserProfile, error)
	SaveProfile(ctx context.Context, namespace string, profile model.UserProfile) error
	GetActiveUser(ctx context.Context) (string, error)
	SetActiveUser(ctx context.Context, namespace string) error
	ClearActiveUser(ctx context.Context) error

	// Bulk data management
	ClearUserData(ctx context.Context, namespace string) error

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}
