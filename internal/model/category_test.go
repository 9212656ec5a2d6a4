package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryAccepts(t *testing.T) {
	income := Category{ID: "income-cat", Group: GroupIncome}
	food := Category{ID: "2", Group: GroupNeed}

	tests := []struct {
		name     string
		category Category
		txType   TransactionType
		want     bool
	}{
		{name: "income transaction into income category", category: income, txType: TypeIncome, want: true},
		{name: "expense into income category rejected", category: income, txType: TypeExpense, want: false},
		{name: "expense into need category", category: food, txType: TypeExpense, want: true},
		{name: "income into need category rejected", category: food, txType: TypeIncome, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.category.Accepts(tt.txType))
		})
	}
}

func TestDefaultCategories(t *testing.T) {
	cats := DefaultCategories()
	require.Len(t, cats, 8)

	var incomeCount int
	for _, c := range cats {
		assert.True(t, c.Group.Valid(), "category %s has invalid group %q", c.ID, c.Group)
		if c.Group == GroupIncome {
			incomeCount++
			assert.Equal(t, "income-cat", c.ID)
		}
	}
	assert.Equal(t, 1, incomeCount, "exactly one category carries the income group")
}

func TestLookupCategoryFallsBack(t *testing.T) {
	cats := DefaultCategories()

	found := LookupCategory(cats, "2")
	assert.Equal(t, "Alimentação", found.Name)

	missing := LookupCategory(cats, "deleted-cat")
	assert.Equal(t, Uncategorized().Name, missing.Name)
	assert.Equal(t, GroupWant, missing.Group)

	empty := LookupCategory(cats, "")
	assert.Equal(t, Uncategorized().Name, empty.Name)
}

func TestCategoriesForType(t *testing.T) {
	cats := DefaultCategories()

	forIncome := CategoriesForType(cats, TypeIncome)
	require.Len(t, forIncome, 1)
	assert.Equal(t, "income-cat", forIncome[0].ID)

	forExpense := CategoriesForType(cats, TypeExpense)
	assert.Len(t, forExpense, 7)
	for _, c := range forExpense {
		assert.NotEqual(t, GroupIncome, c.Group)
	}
}

func TestTransactionSigned(t *testing.T) {
	income := Transaction{Type: TypeIncome, Amount: decimal.RequireFromString("100.50")}
	assert.True(t, income.Signed().Equal(decimal.RequireFromString("100.50")))

	expense := Transaction{Type: TypeExpense, Amount: decimal.RequireFromString("45.50")}
	assert.True(t, expense.Signed().Equal(decimal.RequireFromString("-45.50")))
}
