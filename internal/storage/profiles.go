package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/joaomsilva/fintrack/internal/common"
	"github.com/joaomsilva/fintrack/internal/model"
)

const activeUserKey = "active_user"

// EnsureUser creates the namespace bundle on first login: a default profile
// plus the starter categories, in one database transaction so a user never
// exists half-seeded. An already-known namespace is left untouched.
func (s *SQLiteStorage) EnsureUser(ctx context.Context, namespace string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(namespace, "namespace"); err != nil {
		return err
	}

	var exists int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM users WHERE namespace = ?`, namespace).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check user: %w", err)
	}
	if exists > 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	profile := model.DefaultProfile(namespace)
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO users (namespace, name, age, job, currency, locale, hide_balance, dark_mode, password)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		namespace,
		profile.Name,
		profile.Age,
		profile.Job,
		profile.Currency,
		profile.Locale,
		boolToInt(profile.HideBalance),
		boolToInt(profile.IsDarkMode),
		profile.Password,
	); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	if err := s.seedDefaultCategories(ctx, tx, namespace); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit user creation: %w", err)
	}

	slog.Info("created user namespace", "namespace", namespace)
	return nil
}

// ListUsers returns every known namespace.
func (s *SQLiteStorage) ListUsers(ctx context.Context) ([]string, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT namespace FROM users ORDER BY namespace`)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var users []string
	for rows.Next() {
		var ns string
		if err := rows.Scan(&ns); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, ns)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}
	return users, nil
}

// GetProfile returns the namespace's profile.
func (s *SQLiteStorage) GetProfile(ctx context.Context, namespace string) (*model.UserProfile, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(namespace, "namespace"); err != nil {
		return nil, err
	}

	var (
		profile     model.UserProfile
		hideBalance int
		darkMode    int
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT name, age, job, currency, locale, hide_balance, dark_mode, password
		FROM users WHERE namespace = ?`, namespace).Scan(
		&profile.Name,
		&profile.Age,
		&profile.Job,
		&profile.Currency,
		&profile.Locale,
		&hideBalance,
		&darkMode,
		&profile.Password,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: user %s", common.ErrNotFound, namespace)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query profile: %w", err)
	}

	profile.HideBalance = hideBalance != 0
	profile.IsDarkMode = darkMode != 0
	return &profile, nil
}

// SaveProfile persists the full profile for the namespace.
func (s *SQLiteStorage) SaveProfile(ctx context.Context, namespace string, profile model.UserProfile) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(namespace, "namespace"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE users
		SET name = ?, age = ?, job = ?, currency = ?, locale = ?, hide_balance = ?, dark_mode = ?, password = ?
		WHERE namespace = ?`,
		profile.Name,
		profile.Age,
		profile.Job,
		profile.Currency,
		profile.Locale,
		boolToInt(profile.HideBalance),
		boolToInt(profile.IsDarkMode),
		profile.Password,
		namespace,
	)
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: user %s", common.ErrNotFound, namespace)
	}
	return nil
}

// GetActiveUser returns the process-wide active namespace, or the empty
// string when no session is active.
func (s *SQLiteStorage) GetActiveUser(ctx context.Context) (string, error) {
	if err := validateContext(ctx); err != nil {
		return "", err
	}

	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM settings WHERE key = ?`, activeUserKey).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to query active user: %w", err)
	}
	return value, nil
}

// SetActiveUser records the active namespace. The namespace must already
// exist; use EnsureUser first for new logins.
func (s *SQLiteStorage) SetActiveUser(ctx context.Context, namespace string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(namespace, "namespace"); err != nil {
		return err
	}

	var exists int
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM users WHERE namespace = ?`, namespace).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check user: %w", err)
	}
	if exists == 0 {
		return fmt.Errorf("%w: user %s", common.ErrNotFound, namespace)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		activeUserKey, namespace)
	if err != nil {
		return fmt.Errorf("failed to set active user: %w", err)
	}
	return nil
}

// ClearActiveUser ends the active session without touching any ledger data.
func (s *SQLiteStorage) ClearActiveUser(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM settings WHERE key = ?`, activeUserKey); err != nil {
		return fmt.Errorf("failed to clear active user: %w", err)
	}
	return nil
}

// ClearUserData wipes the namespace's transactions and resets its categories
// to the defaults, leaving the profile in place. Matches the app's
// "delete everything" action, which drops ledger data but keeps the login.
func (s *SQLiteStorage) ClearUserData(ctx context.Context, namespace string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(namespace, "namespace"); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM transactions WHERE namespace = ?`, namespace); err != nil {
		return fmt.Errorf("failed to clear transactions: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM categories WHERE namespace = ?`, namespace); err != nil {
		return fmt.Errorf("failed to clear categories: %w", err)
	}
	if err := s.seedDefaultCategories(ctx, tx, namespace); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit clear: %w", err)
	}

	slog.Info("cleared user data", "namespace", namespace)
	return nil
}
