package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joaomsilva/fintrack/internal/model"
)

func txn(amount string, txType model.TransactionType, isoDate string) model.Transaction {
	d, err := model.ParseDate(isoDate)
	if err != nil {
		panic(err)
	}
	return model.Transaction{
		ID:     amount + "-" + isoDate,
		Amount: decimal.RequireFromString(amount),
		Type:   txType,
		Date:   d,
	}
}

func TestTotals(t *testing.T) {
	tests := []struct {
		name         string
		txns         []model.Transaction
		wantIncome   string
		wantExpenses string
		wantBalance  string
	}{
		{
			name:         "empty ledger yields zeros",
			txns:         nil,
			wantIncome:   "0",
			wantExpenses: "0",
			wantBalance:  "0",
		},
		{
			name: "salary minus groceries and rent",
			txns: []model.Transaction{
				txn("1000.00", model.TypeIncome, "2025-01-01"),
				txn("250.00", model.TypeExpense, "2025-01-05"),
				txn("400.00", model.TypeExpense, "2025-01-06"),
			},
			wantIncome:   "1000",
			wantExpenses: "650",
			wantBalance:  "350",
		},
		{
			name: "expenses exceed income",
			txns: []model.Transaction{
				txn("100.00", model.TypeIncome, "2025-01-01"),
				txn("180.50", model.TypeExpense, "2025-01-02"),
			},
			wantIncome:   "100",
			wantExpenses: "180.5",
			wantBalance:  "-80.5",
		},
		{
			name: "cent precision survives summation",
			txns: []model.Transaction{
				txn("0.10", model.TypeExpense, "2025-01-01"),
				txn("0.20", model.TypeExpense, "2025-01-01"),
			},
			wantIncome:   "0",
			wantExpenses: "0.3",
			wantBalance:  "-0.3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Totals(tt.txns)
			assert.Equal(t, tt.wantIncome, got.Income.String())
			assert.Equal(t, tt.wantExpenses, got.Expenses.String())
			assert.Equal(t, tt.wantBalance, got.Balance.String())
		})
	}
}

func TestTrendZeroFillsAndOrders(t *testing.T) {
	reference := model.NewDate(2025, time.January, 10)
	txns := []model.Transaction{
		txn("30.00", model.TypeExpense, "2025-01-10"),
		txn("20.00", model.TypeExpense, "2025-01-08"),
		txn("5.00", model.TypeExpense, "2025-01-08"),
		txn("999.00", model.TypeIncome, "2025-01-09"),   // income never appears in the trend
		txn("50.00", model.TypeExpense, "2025-01-01"),   // outside the window
		txn("12.00", model.TypeExpense, "2024-12-31"),   // previous year
	}

	points := Trend(txns, 7, reference)
	require.Len(t, points, 7)

	// Oldest first, consecutive days.
	assert.Equal(t, "2025-01-04", points[0].Date.String())
	assert.Equal(t, "2025-01-10", points[6].Date.String())
	for i := 1; i < len(points); i++ {
		assert.True(t, points[i-1].Date.Before(points[i].Date))
		assert.True(t, points[i].Date.Equal(points[i-1].Date.AddDays(1)))
	}

	// Same-day expenses accumulate, empty days stay zero.
	byDate := make(map[string]string)
	for _, p := range points {
		byDate[p.Date.String()] = p.Value.String()
	}
	assert.Equal(t, "25", byDate["2025-01-08"])
	assert.Equal(t, "30", byDate["2025-01-10"])
	assert.Equal(t, "0", byDate["2025-01-09"])
	assert.Equal(t, "0", byDate["2025-01-04"])
}

func TestTrendWindowSumMatchesFilteredExpenses(t *testing.T) {
	reference := model.NewDate(2025, time.March, 15)
	txns := []model.Transaction{
		txn("10.00", model.TypeExpense, "2025-03-09"),
		txn("20.00", model.TypeExpense, "2025-03-12"),
		txn("40.00", model.TypeExpense, "2025-03-15"),
		txn("80.00", model.TypeExpense, "2025-03-08"), // day before the window opens
	}

	points := Trend(txns, 7, reference)
	sum := decimal.Zero
	for _, p := range points {
		sum = sum.Add(p.Value)
	}
	assert.Equal(t, "70", sum.String())
}

func TestTrendEdgeWindows(t *testing.T) {
	reference := model.NewDate(2025, time.January, 10)

	assert.Nil(t, Trend(nil, 0, reference))
	assert.Nil(t, Trend(nil, -3, reference))

	one := Trend([]model.Transaction{txn("7.00", model.TypeExpense, "2025-01-10")}, 1, reference)
	require.Len(t, one, 1)
	assert.Equal(t, "7", one[0].Value.String())
}

func TestFilterByMonthIsIdempotent(t *testing.T) {
	txns := []model.Transaction{
		txn("10.00", model.TypeExpense, "2025-01-31"),
		txn("20.00", model.TypeExpense, "2025-02-01"),
		txn("30.00", model.TypeIncome, "2025-01-01"),
	}

	once := FilterByMonth(txns, time.January, 2025)
	require.Len(t, once, 2)

	twice := FilterByMonth(once, time.January, 2025)
	assert.Equal(t, once, twice)
}

func TestRecentNPreservesOrder(t *testing.T) {
	txns := []model.Transaction{
		txn("1.00", model.TypeExpense, "2025-01-03"),
		txn("2.00", model.TypeExpense, "2025-01-01"),
		txn("3.00", model.TypeExpense, "2025-01-02"),
	}

	head := RecentN(txns, 2)
	require.Len(t, head, 2)
	assert.Equal(t, txns[0].ID, head[0].ID)
	assert.Equal(t, txns[1].ID, head[1].ID)

	assert.Len(t, RecentN(txns, 10), 3)
	assert.Nil(t, RecentN(txns, 0))
	assert.Nil(t, RecentN(nil, 5))
}

func TestSortByDateDesc(t *testing.T) {
	a := txn("1.00", model.TypeExpense, "2025-01-01")
	b := txn("2.00", model.TypeExpense, "2025-01-03")
	c := txn("3.00", model.TypeExpense, "2025-01-03")
	d := txn("4.00", model.TypeExpense, "2025-01-02")
	txns := []model.Transaction{a, b, c, d}

	sorted := SortByDateDesc(txns)
	require.Len(t, sorted, 4)
	assert.Equal(t, b.ID, sorted[0].ID, "same-day entries keep input order")
	assert.Equal(t, c.ID, sorted[1].ID)
	assert.Equal(t, d.ID, sorted[2].ID)
	assert.Equal(t, a.ID, sorted[3].ID)

	// Input untouched.
	assert.Equal(t, a.ID, txns[0].ID)
}
