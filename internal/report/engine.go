// Package report derives balances, trend series and budget metrics from raw
// transaction logs. Every function here is pure: transactions in, aggregates
// out, no storage access and no mutation of the inputs.
package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/joaomsilva/fintrack/internal/model"
)

// Summary holds the running totals for a transaction set.
type Summary struct {
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Balance  decimal.Decimal // Income - Expenses
}

// Totals sums the set into income, expenses and net balance. An empty or nil
// list yields zero totals, never an error.
func Totals(txns []model.Transaction) Summary {
	var s Summary
	for _, t := range txns {
		switch t.Type {
		case model.TypeIncome:
			s.Income = s.Income.Add(t.Amount)
		case model.TypeExpense:
			s.Expenses = s.Expenses.Add(t.Amount)
		}
	}
	s.Balance = s.Income.Sub(s.Expenses)
	return s
}

// TrendPoint is one day in a spending trend series.
type TrendPoint struct {
	Date  model.Date
	Label string
	Value decimal.Decimal // sum of expense amounts dated that day
}

// Trend produces a fixed-length series covering the last days calendar days
// ending at reference inclusive, oldest first. Days without expenses carry a
// zero value so the series length is always exactly days.
func Trend(txns []model.Transaction, days int, reference model.Date) []TrendPoint {
	if days <= 0 {
		return nil
	}

	byDay := make(map[string]decimal.Decimal, days)
	for _, t := range txns {
		if t.Type != model.TypeExpense {
			continue
		}
		key := t.Date.String()
		byDay[key] = byDay[key].Add(t.Amount)
	}

	points := make([]TrendPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := reference.AddDays(-i)
		points = append(points, TrendPoint{
			Date:  day,
			Label: weekdayLabel(day.Weekday()),
			Value: byDay[day.String()],
		})
	}
	return points
}

var weekdayLabels = [...]string{"Dom", "Seg", "Ter", "Qua", "Qui", "Sex", "Sáb"}

func weekdayLabel(d time.Weekday) string {
	return weekdayLabels[int(d)%7]
}

// FilterByMonth returns the subset whose date falls in the given calendar
// month and year. Dates are day-precision, so no timezone shifting applies.
// The operation is idempotent: filtering an already-filtered list is a no-op.
func FilterByMonth(txns []model.Transaction, month time.Month, year int) []model.Transaction {
	var out []model.Transaction
	for _, t := range txns {
		if t.Date.In(month, year) {
			out = append(out, t)
		}
	}
	return out
}

// RecentN returns the first n items in the list's current order. This is a
// display convenience only; it makes no temporal claim. Callers that need
// "most recent" must sort with SortByDateDesc first.
func RecentN(txns []model.Transaction, n int) []model.Transaction {
	if n <= 0 || len(txns) == 0 {
		return nil
	}
	if n > len(txns) {
		n = len(txns)
	}
	out := make([]model.Transaction, n)
	copy(out, txns[:n])
	return out
}

// SortByDateDesc returns a copy ordered newest calendar date first. Ties keep
// their relative input order so same-day entries stay stable.
func SortByDateDesc(txns []model.Transaction) []model.Transaction {
	out := make([]model.Transaction, len(txns))
	copy(out, txns)
	sort.SliceStable(out, func(i, j int) bool {
		return out[j].Date.Before(out[i].Date)
	})
	return out
}
