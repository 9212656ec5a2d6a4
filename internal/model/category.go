package model

import "github.com/shopspring/decimal"

// CategoryGroup places a category in one of the 50/30/20 allocation buckets,
// or marks it as the income bucket.
type CategoryGroup string

const (
	// GroupNeed covers essential spending (the 50% bucket).
	GroupNeed CategoryGroup = "NEED"
	// GroupWant covers discretionary spending (the 30% bucket).
	GroupWant CategoryGroup = "WANT"
	// GroupSaving covers savings and investments (the 20% bucket).
	GroupSaving CategoryGroup = "SAVING"
	// GroupIncome is reserved for income-producing transactions and is
	// excluded from the 50/30/20 partition.
	GroupIncome CategoryGroup = "INCOME"
)

// Valid reports whether the group is one of the known buckets.
func (g CategoryGroup) Valid() bool {
	switch g {
	case GroupNeed, GroupWant, GroupSaving, GroupIncome:
		return true
	}
	return false
}

// Category represents a budgeted spending (or income) category.
type Category struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Icon   string          `json:"icon"`
	Color  string          `json:"color"`
	Group  CategoryGroup   `json:"group"`
	Budget decimal.Decimal `json:"budget"` // monthly ceiling; meaningless for the income group
}

// Accepts reports whether a transaction of the given type may be assigned to
// this category: income transactions belong to income-group categories,
// everything else to the expense groups.
func (c Category) Accepts(t TransactionType) bool {
	if t == TypeIncome {
		return c.Group == GroupIncome
	}
	return c.Group != GroupIncome
}

// Uncategorized is the graceful fallback used when a transaction references a
// category that no longer resolves. It is never persisted.
func Uncategorized() Category {
	return Category{
		ID:    "",
		Name:  "Geral",
		Icon:  "fa-tag",
		Color: "#9CA3AF",
		Group: GroupWant,
	}
}

// DefaultCategories returns the starter category set seeded into every new
// user namespace. Exactly one category carries the income group.
func DefaultCategories() []Category {
	return []Category{
		{ID: "1", Name: "Rendas/Casa", Icon: "fa-house", Color: "#3B82F6", Group: GroupNeed, Budget: decimal.NewFromInt(800)},
		{ID: "2", Name: "Alimentação", Icon: "fa-utensils", Color: "#EF4444", Group: GroupNeed, Budget: decimal.NewFromInt(300)},
		{ID: "3", Name: "Transportes", Icon: "fa-bus", Color: "#F59E0B", Group: GroupNeed, Budget: decimal.NewFromInt(100)},
		{ID: "4", Name: "Lazer", Icon: "fa-gamepad", Color: "#10B981", Group: GroupWant, Budget: decimal.NewFromInt(200)},
		{ID: "5", Name: "Saúde", Icon: "fa-heart-pulse", Color: "#EC4899", Group: GroupNeed, Budget: decimal.NewFromInt(50)},
		{ID: "6", Name: "Subscrições", Icon: "fa-tv", Color: "#8B5CF6", Group: GroupWant, Budget: decimal.NewFromInt(50)},
		{ID: "7", Name: "Poupança/Inv", Icon: "fa-piggy-bank", Color: "#6366F1", Group: GroupSaving, Budget: decimal.NewFromInt(500)},
		{ID: "income-cat", Name: "Salário/Rendimento", Icon: "fa-money-bill-trend-up", Color: "#059669", Group: GroupIncome, Budget: decimal.Zero},
	}
}

// CategoriesForType filters a category list down to the ones a transaction of
// the given type may be assigned to. Both the entry form and validation use
// this to keep expenses out of the income category and vice versa.
func CategoriesForType(categories []Category, t TransactionType) []Category {
	var out []Category
	for _, c := range categories {
		if c.Accepts(t) {
			out = append(out, c)
		}
	}
	return out
}

// LookupCategory resolves a category id against a list, falling back to the
// uncategorized placeholder when the id is absent or empty.
func LookupCategory(categories []Category, id string) Category {
	for _, c := range categories {
		if c.ID == id {
			return c
		}
	}
	return Uncategorized()
}
