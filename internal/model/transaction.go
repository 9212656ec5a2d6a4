// Package model defines the core domain types for the fintrack application.
package model

import (
	"github.com/shopspring/decimal"
)

// TransactionType indicates the direction of a transaction.
type TransactionType string

const (
	// TypeIncome represents money entering the ledger.
	TypeIncome TransactionType = "INCOME"
	// TypeExpense represents money leaving the ledger.
	TypeExpense TransactionType = "EXPENSE"
)

// Valid reports whether the type is one of the known directions.
func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Transaction represents a single income or expense entry in a user's ledger.
// Transactions are immutable once created: they are inserted and deleted,
// never edited in place.
type Transaction struct {
	Date        Date            `json:"date"`
	ID          string          `json:"id"`
	CategoryID  string          `json:"categoryId"`
	Method      string          `json:"method"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"` // always positive; direction comes from Type
	Type        TransactionType `json:"type"`
	IsRecurring bool            `json:"isRecurring"`
}

// Signed returns the amount with the sign implied by the transaction type:
// positive for income, negative for expense.
func (t Transaction) Signed() decimal.Decimal {
	if t.Type == TypeExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}

// PaymentMethods is the default set of payment channel labels offered by the
// entry form. The field itself is free text and not validated against this
// list.
var PaymentMethods = []string{
	"Cartão Débito",
	"Cartão Crédito",
	"Dinheiro",
	"MB Way",
	"Transferência",
}
