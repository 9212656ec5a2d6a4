package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joaomsilva/fintrack/internal/model"
)

func TestUtilization(t *testing.T) {
	categories := []model.Category{
		{ID: "food", Name: "Alimentação", Group: model.GroupNeed, Budget: decimal.NewFromInt(300)},
		{ID: "fun", Name: "Lazer", Group: model.GroupWant, Budget: decimal.NewFromInt(100)},
		{ID: "misc", Name: "Outros", Group: model.GroupWant, Budget: decimal.Zero},
		{ID: "income-cat", Name: "Salário", Group: model.GroupIncome, Budget: decimal.Zero},
	}

	txns := []model.Transaction{
		{ID: "1", Amount: decimal.RequireFromString("45.50"), Type: model.TypeExpense, CategoryID: "food", Date: model.NewDate(2025, time.January, 10)},
		{ID: "2", Amount: decimal.RequireFromString("120.00"), Type: model.TypeExpense, CategoryID: "fun", Date: model.NewDate(2025, time.January, 12)},
		{ID: "3", Amount: decimal.RequireFromString("9.99"), Type: model.TypeExpense, CategoryID: "misc", Date: model.NewDate(2025, time.January, 14)},
		{ID: "4", Amount: decimal.RequireFromString("2500.00"), Type: model.TypeIncome, CategoryID: "income-cat", Date: model.NewDate(2025, time.January, 1)},
		{ID: "5", Amount: decimal.RequireFromString("99.00"), Type: model.TypeExpense, CategoryID: "food", Date: model.NewDate(2025, time.February, 2)}, // wrong month
	}

	rows := Utilization(txns, categories, time.January, 2025)
	require.Len(t, rows, 3, "income category is skipped")

	byID := make(map[string]CategoryUtilization, len(rows))
	for _, u := range rows {
		byID[u.CategoryID] = u
	}

	food := byID["food"]
	assert.Equal(t, "45.5", food.Spent.String())
	assert.InDelta(t, 0.1517, food.Percentage, 0.0001)
	assert.False(t, food.Over)
	assert.False(t, food.Unbounded)

	fun := byID["fun"]
	assert.InDelta(t, 1.2, fun.Percentage, 0.0001)
	assert.True(t, fun.Over)

	misc := byID["misc"]
	assert.True(t, misc.Unbounded)
	assert.Zero(t, misc.Percentage, "zero budget never divides")
	assert.True(t, misc.Over, "any spend against a zero budget is over")
}

func TestUtilizationZeroBudgetNoSpend(t *testing.T) {
	categories := []model.Category{
		{ID: "misc", Name: "Outros", Group: model.GroupWant, Budget: decimal.Zero},
	}

	rows := Utilization(nil, categories, time.January, 2025)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].Unbounded)
	assert.False(t, rows[0].Over)
	assert.Zero(t, rows[0].Percentage)
}
