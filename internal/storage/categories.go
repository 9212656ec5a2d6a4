package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/joaomsilva/fintrack/internal/common"
	"github.com/joaomsilva/fintrack/internal/model"
)

const categoryColumns = `id, name, icon, color, cat_group, budget`

// GetCategories returns all categories for the namespace, ordered by id so the
// seeded defaults keep their original ordering.
func (s *SQLiteStorage) GetCategories(ctx context.Context, namespace string) ([]model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(namespace, "namespace"); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+categoryColumns+` FROM categories WHERE namespace = ? ORDER BY rowid`, namespace)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var categories []model.Category
	for rows.Next() {
		cat, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, cat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	return categories, nil
}

// GetCategoryByID returns a category by id, or nil when absent. Callers that
// need the graceful fallback use model.LookupCategory instead.
func (s *SQLiteStorage) GetCategoryByID(ctx context.Context, namespace, id string) (*model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(namespace, "namespace"); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx,
		`SELECT `+categoryColumns+` FROM categories WHERE namespace = ? AND id = ?`, namespace, id)

	cat, err := scanCategory(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

// CreateCategory inserts a new category into the namespace.
func (s *SQLiteStorage) CreateCategory(ctx context.Context, namespace string, category model.Category) (*model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(namespace, "namespace"); err != nil {
		return nil, err
	}
	if err := validateCategory(&category); err != nil {
		return nil, err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO categories (namespace, `+categoryColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		namespace,
		category.ID,
		category.Name,
		category.Icon,
		category.Color,
		string(category.Group),
		category.Budget.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	slog.Info("created category", "namespace", namespace, "name", category.Name, "group", category.Group)
	return &category, nil
}

// UpdateCategoryBudget sets a category's monthly budget ceiling. Budget and
// color are the only mutable category fields.
func (s *SQLiteStorage) UpdateCategoryBudget(ctx context.Context, namespace, id string, budget decimal.Decimal) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(namespace, "namespace"); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}
	if budget.IsNegative() {
		return fmt.Errorf("%w: budget cannot be negative", common.ErrValidation)
	}

	result, err := s.db.ExecContext(ctx,
		`UPDATE categories SET budget = ? WHERE namespace = ? AND id = ?`,
		budget.String(), namespace, id)
	if err != nil {
		return fmt.Errorf("failed to update budget: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: category %s", common.ErrNotFound, id)
	}
	return nil
}

// UpdateCategoryColor sets a category's display color token.
func (s *SQLiteStorage) UpdateCategoryColor(ctx context.Context, namespace, id, color string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(namespace, "namespace"); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx,
		`UPDATE categories SET color = ? WHERE namespace = ? AND id = ?`,
		color, namespace, id)
	if err != nil {
		return fmt.Errorf("failed to update color: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: category %s", common.ErrNotFound, id)
	}
	return nil
}

func scanCategory(row rowScanner) (model.Category, error) {
	var (
		cat    model.Category
		icon   sql.NullString
		color  sql.NullString
		group  string
		budget string
	)

	err := row.Scan(&cat.ID, &cat.Name, &icon, &color, &group, &budget)
	if err == sql.ErrNoRows {
		return cat, err
	}
	if err != nil {
		return cat, fmt.Errorf("failed to scan category: %w", err)
	}

	cat.Budget, err = decimal.NewFromString(budget)
	if err != nil {
		return cat, fmt.Errorf("corrupt budget %q for category %s: %w", budget, cat.ID, err)
	}
	cat.Icon = icon.String
	cat.Color = color.String
	cat.Group = model.CategoryGroup(group)

	return cat, nil
}

func (s *SQLiteStorage) seedDefaultCategories(ctx context.Context, tx *sql.Tx, namespace string) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO categories (namespace, `+categoryColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare category seed: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, cat := range model.DefaultCategories() {
		if _, err := stmt.ExecContext(ctx,
			namespace, cat.ID, cat.Name, cat.Icon, cat.Color, string(cat.Group), cat.Budget.String(),
		); err != nil {
			return fmt.Errorf("failed to seed category %s: %w", cat.Name, err)
		}
	}
	return nil
}
