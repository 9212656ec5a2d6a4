// Package testutil provides test fixtures shared across packages: an
// in-memory database with migrations applied and helpers for building
// transactions.
package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/joaomsilva/fintrack/internal/model"
	"github.com/joaomsilva/fintrack/internal/service"
	"github.com/joaomsilva/fintrack/internal/storage"
)

// TestDB wraps an in-memory store pre-seeded with one user namespace.
type TestDB struct {
	Storage   service.Storage
	Namespace string
	t         *testing.T
}

// SetupTestDB creates a migrated in-memory database with the given namespace
// ensured (default profile and default categories seeded). Cleanup is
// registered automatically.
func SetupTestDB(t *testing.T, namespace string) *TestDB {
	t.Helper()

	store, err := storage.NewSQLiteStorage(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	if namespace != "" {
		if err := store.EnsureUser(ctx, namespace); err != nil {
			t.Fatalf("failed to ensure user %q: %v", namespace, err)
		}
	}

	t.Cleanup(func() {
		_ = store.Close()
	})

	return &TestDB{
		Storage:   store,
		Namespace: namespace,
		t:         t,
	}
}

// MustAdd stores the transaction or fails the test.
func (db *TestDB) MustAdd(txn model.Transaction) model.Transaction {
	db.t.Helper()
	if err := db.Storage.SaveTransaction(context.Background(), db.Namespace, txn); err != nil {
		db.t.Fatalf("failed to save transaction: %v", err)
	}
	return txn
}

// MustCategory returns the seeded category with the given id or fails.
func (db *TestDB) MustCategory(id string) model.Category {
	db.t.Helper()
	cat, err := db.Storage.GetCategoryByID(context.Background(), db.Namespace, id)
	if err != nil {
		db.t.Fatalf("failed to load category %q: %v", id, err)
	}
	if cat == nil {
		db.t.Fatalf("category %q not found", id)
	}
	return *cat
}

// Expense builds an expense transaction for tests. Amount is given as a
// string to keep cent values exact in table literals.
func Expense(amount, categoryID, isoDate string) model.Transaction {
	return transaction(amount, model.TypeExpense, categoryID, isoDate)
}

// Income builds an income transaction for tests.
func Income(amount, categoryID, isoDate string) model.Transaction {
	return transaction(amount, model.TypeIncome, categoryID, isoDate)
}

func transaction(amount string, txType model.TransactionType, categoryID, isoDate string) model.Transaction {
	d, err := model.ParseDate(isoDate)
	if err != nil {
		panic("testutil: bad date literal " + isoDate)
	}
	return model.Transaction{
		ID:          uuid.NewString(),
		Amount:      decimal.RequireFromString(amount),
		Type:        txType,
		CategoryID:  categoryID,
		Date:        d,
		Method:      "Cartão",
		Description: "test " + string(txType),
	}
}

// Day returns a model.Date for the given parts, for table literals.
func Day(year int, month time.Month, day int) model.Date {
	return model.NewDate(year, month, day)
}
