package budget

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joaomsilva/fintrack/internal/model"
)

func TestPartitionExcludesIncome(t *testing.T) {
	cats := model.DefaultCategories()

	buckets := Partition(cats)
	require.Len(t, buckets, 3)

	total := 0
	for group, members := range buckets {
		assert.NotEqual(t, model.GroupIncome, group)
		total += len(members)
	}
	assert.Equal(t, len(cats)-1, total, "everything but the income category is bucketed")
}

func TestAllocationShares(t *testing.T) {
	cats := []model.Category{
		{ID: "rent", Group: model.GroupNeed},
		{ID: "fun", Group: model.GroupWant},
		{ID: "save", Group: model.GroupSaving},
		{ID: "income-cat", Group: model.GroupIncome},
	}

	txns := []model.Transaction{
		{ID: "1", Amount: decimal.NewFromInt(500), Type: model.TypeExpense, CategoryID: "rent", Date: model.NewDate(2025, time.January, 1)},
		{ID: "2", Amount: decimal.NewFromInt(300), Type: model.TypeExpense, CategoryID: "fun", Date: model.NewDate(2025, time.January, 2)},
		{ID: "3", Amount: decimal.NewFromInt(200), Type: model.TypeExpense, CategoryID: "save", Date: model.NewDate(2025, time.January, 3)},
		{ID: "4", Amount: decimal.NewFromInt(9999), Type: model.TypeIncome, CategoryID: "income-cat", Date: model.NewDate(2025, time.January, 4)},
	}

	groups := Allocation(txns, cats)
	require.Len(t, groups, 3)

	assert.Equal(t, model.GroupNeed, groups[0].Group)
	assert.InDelta(t, 0.5, groups[0].Share, 0.0001)
	assert.InDelta(t, 0.5, groups[0].Target, 0.0001)

	assert.Equal(t, model.GroupWant, groups[1].Group)
	assert.InDelta(t, 0.3, groups[1].Share, 0.0001)

	assert.Equal(t, model.GroupSaving, groups[2].Group)
	assert.InDelta(t, 0.2, groups[2].Share, 0.0001)
}

func TestAllocationUnresolvedCategoryFallsBack(t *testing.T) {
	txns := []model.Transaction{
		{ID: "1", Amount: decimal.NewFromInt(100), Type: model.TypeExpense, CategoryID: "ghost", Date: model.NewDate(2025, time.January, 1)},
	}

	groups := Allocation(txns, nil)
	require.Len(t, groups, 3)

	// The uncategorized fallback lives in the want bucket.
	assert.Equal(t, model.GroupWant, groups[1].Group)
	assert.Equal(t, "100", groups[1].Spent.String())
	assert.InDelta(t, 1.0, groups[1].Share, 0.0001)
}

func TestAllocationEmptyLedger(t *testing.T) {
	groups := Allocation(nil, model.DefaultCategories())
	require.Len(t, groups, 3)
	for _, g := range groups {
		assert.True(t, g.Spent.IsZero())
		assert.Zero(t, g.Share, "no spend means no share, not NaN")
	}
}

func TestAlerts(t *testing.T) {
	cats := []model.Category{
		{ID: "food", Name: "Alimentação", Group: model.GroupNeed, Budget: decimal.NewFromInt(100)},
		{ID: "fun", Name: "Lazer", Group: model.GroupWant, Budget: decimal.NewFromInt(100)},
		{ID: "misc", Name: "Outros", Group: model.GroupWant, Budget: decimal.Zero},
	}

	txns := []model.Transaction{
		{ID: "1", Amount: decimal.NewFromInt(85), Type: model.TypeExpense, CategoryID: "food", Date: model.NewDate(2025, time.January, 5)},
		{ID: "2", Amount: decimal.NewFromInt(20), Type: model.TypeExpense, CategoryID: "fun", Date: model.NewDate(2025, time.January, 6)},
		{ID: "3", Amount: decimal.NewFromInt(5000), Type: model.TypeExpense, CategoryID: "misc", Date: model.NewDate(2025, time.January, 7)},
	}

	alerts := Alerts(txns, cats, time.January, 2025, AlertThreshold)
	require.Len(t, alerts, 1, "only food crosses 80%; zero-budget categories never alert")
	assert.Equal(t, "food", alerts[0].CategoryID)
	assert.InDelta(t, 0.85, alerts[0].Percentage, 0.0001)
	assert.Equal(t, "100", alerts[0].Limit.String())
}

func TestAlertsDefaultThreshold(t *testing.T) {
	cats := []model.Category{
		{ID: "food", Name: "Alimentação", Group: model.GroupNeed, Budget: decimal.NewFromInt(100)},
	}
	txns := []model.Transaction{
		{ID: "1", Amount: decimal.NewFromInt(80), Type: model.TypeExpense, CategoryID: "food", Date: model.NewDate(2025, time.January, 5)},
	}

	// A non-positive threshold falls back to the default, and 80% meets it.
	alerts := Alerts(txns, cats, time.January, 2025, 0)
	require.Len(t, alerts, 1)
}
