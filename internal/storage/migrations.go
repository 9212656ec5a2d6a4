package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// ExpectedSchemaVersion is the latest schema version that the application expects.
const ExpectedSchemaVersion = 4

// Migration represents a database schema migration.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Legacy single-user schema",
		Up: func(tx *sql.Tx) error {
			// The original layout stored one user's data under fixed global
			// tables with no namespace. Kept as the base so pre-namespace
			// databases migrate cleanly.
			queries := []string{
				`CREATE TABLE IF NOT EXISTS transactions (
					seq INTEGER PRIMARY KEY AUTOINCREMENT,
					id TEXT UNIQUE NOT NULL,
					amount TEXT NOT NULL,
					type TEXT NOT NULL,
					category_id TEXT,
					date TEXT NOT NULL,
					method TEXT,
					description TEXT,
					is_recurring INTEGER NOT NULL DEFAULT 0,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
				`CREATE TABLE IF NOT EXISTS categories (
					id TEXT PRIMARY KEY,
					name TEXT NOT NULL,
					icon TEXT,
					color TEXT,
					cat_group TEXT NOT NULL,
					budget TEXT NOT NULL DEFAULT '0'
				)`,
				`CREATE TABLE IF NOT EXISTS profile (
					name TEXT,
					age INTEGER,
					job TEXT,
					currency TEXT,
					hide_balance INTEGER NOT NULL DEFAULT 0,
					dark_mode INTEGER NOT NULL DEFAULT 0,
					password TEXT
				)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
	{
		Version:     2,
		Description: "Introduce user namespaces",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS users (
					namespace TEXT PRIMARY KEY,
					name TEXT NOT NULL,
					age INTEGER NOT NULL DEFAULT 0,
					job TEXT NOT NULL DEFAULT '',
					currency TEXT NOT NULL DEFAULT 'EUR',
					locale TEXT NOT NULL DEFAULT 'pt-PT',
					hide_balance INTEGER NOT NULL DEFAULT 0,
					dark_mode INTEGER NOT NULL DEFAULT 0,
					password TEXT NOT NULL DEFAULT '',
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
				`CREATE TABLE transactions_ns (
					seq INTEGER PRIMARY KEY AUTOINCREMENT,
					namespace TEXT NOT NULL,
					id TEXT NOT NULL,
					amount TEXT NOT NULL,
					type TEXT NOT NULL,
					category_id TEXT,
					date TEXT NOT NULL,
					method TEXT,
					description TEXT,
					is_recurring INTEGER NOT NULL DEFAULT 0,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
					UNIQUE(namespace, id)
				)`,
				`INSERT INTO transactions_ns (namespace, id, amount, type, category_id, date, method, description, is_recurring, created_at)
					SELECT 'default', id, amount, type, category_id, date, method, description, is_recurring, created_at
					FROM transactions ORDER BY seq`,
				`DROP TABLE transactions`,
				`ALTER TABLE transactions_ns RENAME TO transactions`,
				`CREATE TABLE categories_ns (
					namespace TEXT NOT NULL,
					id TEXT NOT NULL,
					name TEXT NOT NULL,
					icon TEXT,
					color TEXT,
					cat_group TEXT NOT NULL,
					budget TEXT NOT NULL DEFAULT '0',
					PRIMARY KEY (namespace, id)
				)`,
				`INSERT INTO categories_ns (namespace, id, name, icon, color, cat_group, budget)
					SELECT 'default', id, name, icon, color, cat_group, budget FROM categories`,
				`DROP TABLE categories`,
				`ALTER TABLE categories_ns RENAME TO categories`,
				`INSERT INTO users (namespace, name, age, job, currency, hide_balance, dark_mode, password)
					SELECT 'default', COALESCE(name, 'default'), COALESCE(age, 0), COALESCE(job, ''),
					       COALESCE(currency, 'EUR'), hide_balance, dark_mode, COALESCE(password, '')
					FROM profile LIMIT 1`,
				`DROP TABLE profile`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query '%s': %w", query, err)
				}
			}
			return nil
		},
	},
	{
		Version:     3,
		Description: "Add settings table for the active user key",
		Up: func(tx *sql.Tx) error {
			_, err := tx.Exec(`
				CREATE TABLE IF NOT EXISTS settings (
					key TEXT PRIMARY KEY,
					value TEXT NOT NULL
				)
			`)
			return err
		},
	},
	{
		Version:     4,
		Description: "Indexes for date and category lookups",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE INDEX IF NOT EXISTS idx_transactions_ns_date ON transactions(namespace, date)`,
				`CREATE INDEX IF NOT EXISTS idx_transactions_ns_category ON transactions(namespace, category_id)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query '%s': %w", query, err)
				}
			}
			return nil
		},
	},
}

// Migrate brings the database schema up to the expected version.
func (s *SQLiteStorage) Migrate(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	current, err := s.schemaVersion(ctx)
	if err != nil {
		return err
	}

	for _, migration := range migrations {
		if migration.Version <= current {
			continue
		}

		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to begin migration transaction: %w", err)
		}

		if err := migration.Up(tx); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d (%s) failed: %w", migration.Version, migration.Description, err)
		}

		if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", migration.Version)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to set schema version %d: %w", migration.Version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, err)
		}

		slog.Debug("applied migration",
			"version", migration.Version,
			"description", migration.Description)
	}

	return nil
}

func (s *SQLiteStorage) schemaVersion(ctx context.Context) (int, error) {
	var version int
	if err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		return 0, fmt.Errorf("failed to get schema version: %w", err)
	}
	return version, nil
}
