// Package tracker exposes the collaborator-facing operations of the finance
// core: transaction entry, listing, aggregates and exports. Every call takes
// the owning namespace explicitly; the UI collaborator resolves the active
// session before calling in.
package tracker

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/joaomsilva/fintrack/internal/budget"
	"github.com/joaomsilva/fintrack/internal/common"
	"github.com/joaomsilva/fintrack/internal/export"
	"github.com/joaomsilva/fintrack/internal/model"
	"github.com/joaomsilva/fintrack/internal/report"
	"github.com/joaomsilva/fintrack/internal/service"
)

// Tracker orchestrates the ledger store, aggregation engine, classifier and
// export pipeline behind one API.
type Tracker struct {
	store  service.Storage
	logger *slog.Logger
	now    func() time.Time
}

// Option customizes a Tracker.
type Option func(*Tracker)

// WithClock overrides the time source, used by tests and trend rendering.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// WithLogger overrides the default logger.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Tracker) { t.logger = logger }
}

// New creates a Tracker backed by the given store.
func New(store service.Storage, opts ...Option) *Tracker {
	t := &Tracker{
		store:  store,
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// CreateTransactionInput is the raw form payload for a new transaction.
// Amount and date arrive as strings because that is how the entry form
// produces them.
type CreateTransactionInput struct {
	Amount      string
	Type        model.TransactionType
	CategoryID  string
	Date        string // ISO, empty means today
	Method      string
	Description string
	IsRecurring bool
}

// CreateTransaction validates the input, assigns an id and appends the
// transaction to the namespace's ledger. Validation failures never touch the
// store. An empty description is substituted with the localized type label;
// description is always optional.
func (t *Tracker) CreateTransaction(ctx context.Context, namespace string, input CreateTransactionInput) (*model.Transaction, error) {
	amount, err := parseAmount(input.Amount)
	if err != nil {
		return nil, err
	}

	if !input.Type.Valid() {
		return nil, fmt.Errorf("%w: unknown transaction type %q", common.ErrValidation, input.Type)
	}

	date := model.DateOf(t.now())
	if input.Date != "" {
		date, err = model.ParseDate(input.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", common.ErrInvalidDate, err)
		}
	}

	if input.CategoryID != "" {
		cat, err := t.store.GetCategoryByID(ctx, namespace, input.CategoryID)
		if err != nil {
			return nil, err
		}
		if cat != nil && !cat.Accepts(input.Type) {
			return nil, fmt.Errorf("%w: category %q does not accept %s transactions",
				common.ErrValidation, cat.Name, input.Type)
		}
		// An unknown id is allowed; reads degrade to the uncategorized
		// fallback rather than erroring.
	}

	description := strings.TrimSpace(input.Description)
	if description == "" {
		description = defaultDescription(ctx, t, namespace, input.Type)
	}

	txn := model.Transaction{
		ID:          uuid.NewString(),
		Amount:      amount,
		Type:        input.Type,
		CategoryID:  input.CategoryID,
		Date:        date,
		Method:      input.Method,
		Description: description,
		IsRecurring: input.IsRecurring,
	}

	if err := t.store.SaveTransaction(ctx, namespace, txn); err != nil {
		return nil, err
	}

	t.logger.Info("transaction created",
		"namespace", namespace,
		"id", txn.ID,
		"type", txn.Type,
		"date", txn.Date.String())
	return &txn, nil
}

// defaultDescription substitutes the localized type label when the form left
// the description empty.
func defaultDescription(ctx context.Context, t *Tracker, namespace string, txType model.TransactionType) string {
	profile, err := t.store.GetProfile(ctx, namespace)
	if err != nil || profile == nil {
		profile = &model.UserProfile{}
	}
	return export.NewFormatter(*profile).TypeLabel(txType)
}

// DeleteTransaction removes a transaction by id; absent ids are a no-op.
func (t *Tracker) DeleteTransaction(ctx context.Context, namespace, id string) error {
	return t.store.DeleteTransaction(ctx, namespace, id)
}

// ListTransactions returns the namespace's transactions under the filter.
func (t *Tracker) ListTransactions(ctx context.Context, namespace string, filter service.TransactionFilter) ([]model.Transaction, error) {
	return t.store.GetTransactions(ctx, namespace, filter)
}

// ListCategories returns the namespace's categories.
func (t *Tracker) ListCategories(ctx context.Context, namespace string) ([]model.Category, error) {
	return t.store.GetCategories(ctx, namespace)
}

// CategoriesForType returns the categories a transaction of the given type
// may be assigned to; the entry form uses this to constrain its picker.
func (t *Tracker) CategoriesForType(ctx context.Context, namespace string, txType model.TransactionType) ([]model.Category, error) {
	categories, err := t.store.GetCategories(ctx, namespace)
	if err != nil {
		return nil, err
	}
	return model.CategoriesForType(categories, txType), nil
}

// CreateCategory adds a new category with a generated id. The income group is
// reserved for the seeded income category and cannot be added to.
func (t *Tracker) CreateCategory(ctx context.Context, namespace, name string, group model.CategoryGroup, monthlyBudget decimal.Decimal, color string) (*model.Category, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: category name cannot be empty", common.ErrValidation)
	}
	if group == model.GroupIncome {
		return nil, fmt.Errorf("%w: the income group is reserved", common.ErrValidation)
	}
	if !group.Valid() {
		return nil, fmt.Errorf("%w: unknown group %q", common.ErrValidation, group)
	}
	if color == "" {
		color = "#6366F1"
	}

	return t.store.CreateCategory(ctx, namespace, model.Category{
		ID:     uuid.NewString(),
		Name:   strings.TrimSpace(name),
		Icon:   "fa-tag",
		Color:  color,
		Group:  group,
		Budget: monthlyBudget,
	})
}

// UpsertCategoryBudget sets a category's monthly budget ceiling.
func (t *Tracker) UpsertCategoryBudget(ctx context.Context, namespace, id string, monthlyBudget decimal.Decimal) error {
	return t.store.UpdateCategoryBudget(ctx, namespace, id, monthlyBudget)
}

// SetCategoryColor sets a category's display color.
func (t *Tracker) SetCategoryColor(ctx context.Context, namespace, id, color string) error {
	return t.store.UpdateCategoryColor(ctx, namespace, id, color)
}

// Totals returns income, expenses and net balance, optionally restricted to a
// calendar month.
func (t *Tracker) Totals(ctx context.Context, namespace string, period *service.Period) (report.Summary, error) {
	txns, err := t.store.GetTransactions(ctx, namespace, service.TransactionFilter{Period: period})
	if err != nil {
		return report.Summary{}, err
	}
	return report.Totals(txns), nil
}

// Trend returns the last-days expense series ending today, oldest first.
func (t *Tracker) Trend(ctx context.Context, namespace string, days int) ([]report.TrendPoint, error) {
	txns, err := t.store.GetTransactions(ctx, namespace, service.TransactionFilter{})
	if err != nil {
		return nil, err
	}
	return report.Trend(txns, days, model.DateOf(t.now())), nil
}

// BudgetUtilization returns per-category spent-vs-budget rows for the period.
func (t *Tracker) BudgetUtilization(ctx context.Context, namespace string, period service.Period) ([]report.CategoryUtilization, error) {
	txns, err := t.store.GetTransactions(ctx, namespace, service.TransactionFilter{Period: &period})
	if err != nil {
		return nil, err
	}
	categories, err := t.store.GetCategories(ctx, namespace)
	if err != nil {
		return nil, err
	}
	return report.Utilization(txns, categories, period.Month, period.Year), nil
}

// Allocation returns the 50/30/20 group comparison for the period.
func (t *Tracker) Allocation(ctx context.Context, namespace string, period service.Period) ([]budget.GroupSpend, error) {
	txns, err := t.store.GetTransactions(ctx, namespace, service.TransactionFilter{Period: &period})
	if err != nil {
		return nil, err
	}
	categories, err := t.store.GetCategories(ctx, namespace)
	if err != nil {
		return nil, err
	}
	return budget.Allocation(txns, categories), nil
}

// BudgetAlerts returns the categories at or past the alert threshold for the
// period.
func (t *Tracker) BudgetAlerts(ctx context.Context, namespace string, period service.Period) ([]budget.Alert, error) {
	txns, err := t.store.GetTransactions(ctx, namespace, service.TransactionFilter{Period: &period})
	if err != nil {
		return nil, err
	}
	categories, err := t.store.GetCategories(ctx, namespace)
	if err != nil {
		return nil, err
	}
	return budget.Alerts(txns, categories, period.Month, period.Year, budget.AlertThreshold), nil
}

// ClearData wipes the namespace's transactions and resets categories to the
// defaults. The profile and login survive.
func (t *Tracker) ClearData(ctx context.Context, namespace string) error {
	return t.store.ClearUserData(ctx, namespace)
}

// parseAmount parses a positive monetary amount, accepting both decimal
// comma and decimal point input from the form.
func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if s == "" {
		return decimal.Zero, fmt.Errorf("%w: amount is required", common.ErrInvalidAmount)
	}
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a number", common.ErrInvalidAmount, s)
	}
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: got %s", common.ErrInvalidAmount, amount)
	}
	return amount.Round(2), nil
}
