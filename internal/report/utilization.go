package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/joaomsilva/fintrack/internal/model"
)

// CategoryUtilization compares one category's spend in a period against its
// monthly budget ceiling.
type CategoryUtilization struct {
	CategoryID   string
	CategoryName string
	Spent        decimal.Decimal
	Budget       decimal.Decimal
	Percentage   float64 // spent/budget; 0 when the budget is zero
	Over         bool    // spent exceeds the ceiling
	Unbounded    bool    // budget is zero, so no ceiling applies
}

// Utilization computes per-category budget utilization for the given month.
// Income-group categories are skipped entirely. A zero budget never divides:
// the percentage stays 0 and the row is flagged Unbounded, with Over set as
// soon as anything at all is spent.
func Utilization(txns []model.Transaction, categories []model.Category, month time.Month, year int) []CategoryUtilization {
	period := FilterByMonth(txns, month, year)

	spentByCategory := make(map[string]decimal.Decimal, len(categories))
	for _, t := range period {
		if t.Type != model.TypeExpense {
			continue
		}
		spentByCategory[t.CategoryID] = spentByCategory[t.CategoryID].Add(t.Amount)
	}

	var out []CategoryUtilization
	for _, cat := range categories {
		if cat.Group == model.GroupIncome {
			continue
		}

		spent := spentByCategory[cat.ID]
		u := CategoryUtilization{
			CategoryID:   cat.ID,
			CategoryName: cat.Name,
			Spent:        spent,
			Budget:       cat.Budget,
			Over:         spent.GreaterThan(cat.Budget),
		}
		if cat.Budget.IsZero() {
			u.Unbounded = true
		} else {
			u.Percentage, _ = spent.Div(cat.Budget).Float64()
		}
		out = append(out, u)
	}
	return out
}
