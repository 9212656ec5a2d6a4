package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/joaomsilva/fintrack/internal/model"
	"github.com/joaomsilva/fintrack/internal/service"
)

const transactionColumns = `id, amount, type, category_id, date, method, description, is_recurring`

// SaveTransaction appends a transaction to the namespace's ledger. The commit
// is the persistence write for the mutation; there is no deferred flush.
func (s *SQLiteStorage) SaveTransaction(ctx context.Context, namespace string, txn model.Transaction) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(namespace, "namespace"); err != nil {
		return err
	}
	if err := validateTransaction(&txn); err != nil {
		return err
	}

	query := `
		INSERT INTO transactions (namespace, ` + transactionColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query,
		namespace,
		txn.ID,
		txn.Amount.String(),
		string(txn.Type),
		txn.CategoryID,
		txn.Date.String(),
		txn.Method,
		txn.Description,
		boolToInt(txn.IsRecurring),
	)
	if err != nil {
		return fmt.Errorf("failed to save transaction: %w", err)
	}

	slog.Debug("saved transaction", "namespace", namespace, "id", txn.ID, "type", txn.Type)
	return nil
}

// DeleteTransaction removes a transaction by id. Deleting an id that does not
// exist is a no-op, not an error.
func (s *SQLiteStorage) DeleteTransaction(ctx context.Context, namespace, id string) error {
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
		`DELETE FROM transactions WHERE namespace = ? AND id = ?`, namespace, id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	if n, err := result.RowsAffected(); err == nil && n == 0 {
		slog.Debug("delete of absent transaction ignored", "namespace", namespace, "id", id)
	}
	return nil
}

// ReplaceAllTransactions swaps the namespace's entire transaction collection
// in a single database transaction. An empty slice clears the ledger. Used by
// "clear all data" and restore-from-backup; it never merges.
func (s *SQLiteStorage) ReplaceAllTransactions(ctx context.Context, namespace string, txns []model.Transaction) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(namespace, "namespace"); err != nil {
		return err
	}
	for i := range txns {
		if err := validateTransaction(&txns[i]); err != nil {
			return fmt.Errorf("transaction at index %d: %w", i, err)
		}
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

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO transactions (namespace, `+transactionColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, txn := range txns {
		if _, err := stmt.ExecContext(ctx,
			namespace,
			txn.ID,
			txn.Amount.String(),
			string(txn.Type),
			txn.CategoryID,
			txn.Date.String(),
			txn.Method,
			txn.Description,
			boolToInt(txn.IsRecurring),
		); err != nil {
			return fmt.Errorf("failed to insert transaction %s: %w", txn.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit replace: %w", err)
	}

	slog.Debug("replaced transactions", "namespace", namespace, "count", len(txns))
	return nil
}

// GetTransactions returns the namespace's transactions. The default order is
// insertion order; SortDateDesc must be requested explicitly by callers that
// need reverse-chronological display.
func (s *SQLiteStorage) GetTransactions(ctx context.Context, namespace string, filter service.TransactionFilter) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(namespace, "namespace"); err != nil {
		return nil, err
	}

	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE namespace = ?`
	args := []any{namespace}

	if filter.Period != nil {
		start := model.NewDate(filter.Period.Year, filter.Period.Month, 1)
		end := start.Time().AddDate(0, 1, 0)
		query += ` AND date >= ? AND date < ?`
		args = append(args, start.String(), model.DateOf(end).String())
	}
	if filter.Type != nil {
		query += ` AND type = ?`
		args = append(args, string(*filter.Type))
	}

	switch filter.Sort {
	case service.SortDateDesc:
		query += ` ORDER BY date DESC, seq DESC`
	default:
		query += ` ORDER BY seq ASC`
	}

	if filter.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var txns []model.Transaction
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		txns = append(txns, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transactions: %w", err)
	}

	return txns, nil
}

// GetTransactionByID returns a single transaction, or nil when the id is
// unknown in this namespace.
func (s *SQLiteStorage) GetTransactionByID(ctx context.Context, namespace, id string) (*model.Transaction, error) {
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
		`SELECT `+transactionColumns+` FROM transactions WHERE namespace = ? AND id = ?`,
		namespace, id)

	txn, err := scanTransaction(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row rowScanner) (model.Transaction, error) {
	var (
		txn         model.Transaction
		amount      string
		txnType     string
		date        string
		categoryID  sql.NullString
		method      sql.NullString
		description sql.NullString
		isRecurring int
	)

	err := row.Scan(&txn.ID, &amount, &txnType, &categoryID, &date, &method, &description, &isRecurring)
	if err == sql.ErrNoRows {
		return txn, err
	}
	if err != nil {
		return txn, fmt.Errorf("failed to scan transaction: %w", err)
	}

	txn.Amount, err = decimal.NewFromString(amount)
	if err != nil {
		return txn, fmt.Errorf("corrupt amount %q for transaction %s: %w", amount, txn.ID, err)
	}
	txn.Date, err = model.ParseDate(date)
	if err != nil {
		return txn, fmt.Errorf("corrupt date for transaction %s: %w", txn.ID, err)
	}
	txn.Type = model.TransactionType(txnType)
	txn.CategoryID = categoryID.String
	txn.Method = method.String
	txn.Description = description.String
	txn.IsRecurring = isRecurring != 0

	return txn, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
