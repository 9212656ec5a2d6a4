// Package budget maps spending categories onto the 50/30/20 allocation
// buckets and aggregates spend per bucket for a period.
package budget

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/joaomsilva/fintrack/internal/model"
	"github.com/joaomsilva/fintrack/internal/report"
)

// Targets are the canonical 50/30/20 allocation shares per group.
var Targets = map[model.CategoryGroup]float64{
	model.GroupNeed:   0.50,
	model.GroupWant:   0.30,
	model.GroupSaving: 0.20,
}

// groupOrder fixes the output ordering: needs, wants, savings.
var groupOrder = []model.CategoryGroup{model.GroupNeed, model.GroupWant, model.GroupSaving}

// GroupSpend is one bucket's aggregate for an allocation comparison.
type GroupSpend struct {
	Group  model.CategoryGroup
	Spent  decimal.Decimal
	Share  float64 // this bucket's share of total expenses, 0 when nothing was spent
	Target float64 // the 50/30/20 target share
}

// Partition splits the categories into the three expense buckets. Categories
// in the income group are excluded silently; classifying them is a no-op by
// contract, not an error.
func Partition(categories []model.Category) map[model.CategoryGroup][]model.Category {
	out := make(map[model.CategoryGroup][]model.Category, len(Targets))
	for _, cat := range categories {
		if cat.Group == model.GroupIncome {
			continue
		}
		out[cat.Group] = append(out[cat.Group], cat)
	}
	return out
}

// Allocation computes per-group expense totals and each group's share of all
// expenses, for comparison against the 50/30/20 targets. Transactions whose
// category no longer resolves count toward the uncategorized fallback group.
func Allocation(txns []model.Transaction, categories []model.Category) []GroupSpend {
	groupByCategory := make(map[string]model.CategoryGroup, len(categories))
	for _, cat := range categories {
		groupByCategory[cat.ID] = cat.Group
	}

	spent := make(map[model.CategoryGroup]decimal.Decimal, len(Targets))
	var total decimal.Decimal
	for _, t := range txns {
		if t.Type != model.TypeExpense {
			continue
		}
		group, ok := groupByCategory[t.CategoryID]
		if !ok {
			group = model.Uncategorized().Group
		}
		if group == model.GroupIncome {
			// An expense pointing at an income category is a data error;
			// leave it out of the partition rather than misfiling it.
			continue
		}
		spent[group] = spent[group].Add(t.Amount)
		total = total.Add(t.Amount)
	}

	out := make([]GroupSpend, 0, len(groupOrder))
	for _, group := range groupOrder {
		gs := GroupSpend{
			Group:  group,
			Spent:  spent[group],
			Target: Targets[group],
		}
		if !total.IsZero() {
			gs.Share, _ = spent[group].Div(total).Float64()
		}
		out = append(out, gs)
	}
	return out
}

// Alert flags a category approaching or exceeding its monthly budget.
type Alert struct {
	CategoryID   string
	CategoryName string
	Spent        decimal.Decimal
	Limit        decimal.Decimal
	Percentage   float64
}

// AlertThreshold is the default utilization level that triggers an alert.
const AlertThreshold = 0.8

// Alerts returns the categories whose utilization for the month meets or
// exceeds the threshold. Zero-budget categories never alert; they have no
// ceiling to approach.
func Alerts(txns []model.Transaction, categories []model.Category, month time.Month, year int, threshold float64) []Alert {
	if threshold <= 0 {
		threshold = AlertThreshold
	}

	var out []Alert
	for _, u := range report.Utilization(txns, categories, month, year) {
		if u.Unbounded || u.Percentage < threshold {
			continue
		}
		out = append(out, Alert{
			CategoryID:   u.CategoryID,
			CategoryName: u.CategoryName,
			Spent:        u.Spent,
			Limit:        u.Budget,
			Percentage:   u.Percentage,
		})
	}
	return out
}
