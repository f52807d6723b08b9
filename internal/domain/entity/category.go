// Package entity defines the core business entities for the domain layer.
package entity

// Classification represents the static need/want/savings tag of a category.
// It is used only to exclude savings-classified spending from the totalSpent
// aggregate; the ledger math is otherwise indifferent to it.
type Classification string

const (
	ClassificationNeed    Classification = "need"
	ClassificationWant    Classification = "want"
	ClassificationSavings Classification = "savings"
)

// Category is an entry in the static category catalog.
type Category struct {
	ID             string
	Name           string
	Classification Classification
	Color          string
}

// Uncategorized is the placeholder returned for unknown category ids.
// An unknown category is never an error and never savings-classified.
var Uncategorized = Category{
	ID:             "uncategorized",
	Name:           "Uncategorized",
	Classification: ClassificationWant,
	Color:          "#9CA3AF",
}

// Catalog is the immutable category lookup table, loaded once at process
// start.
type Catalog struct {
	byID  map[string]Category
	order []Category
}

// NewCatalog builds a catalog from the given categories.
func NewCatalog(categories []Category) *Catalog {
	byID := make(map[string]Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}
	return &Catalog{byID: byID, order: categories}
}

// Lookup returns the category for the given id. Unknown ids resolve to the
// Uncategorized placeholder with ok = false.
func (c *Catalog) Lookup(id string) (Category, bool) {
	if cat, ok := c.byID[id]; ok {
		return cat, true
	}
	return Uncategorized, false
}

// IsSavings reports whether the category id maps to a savings-classified
// category. Unknown ids are not savings.
func (c *Catalog) IsSavings(id string) bool {
	cat, ok := c.byID[id]
	return ok && cat.Classification == ClassificationSavings
}

// All returns the categories in catalog order.
func (c *Catalog) All() []Category {
	out := make([]Category, len(c.order))
	copy(out, c.order)
	return out
}

// SeedCatalog returns the built-in category catalog.
func SeedCatalog() *Catalog {
	return NewCatalog([]Category{
		{ID: "food", Name: "Food & Groceries", Classification: ClassificationNeed, Color: "#E76E50"},
		{ID: "housing", Name: "Housing", Classification: ClassificationNeed, Color: "#2A9D90"},
		{ID: "transport", Name: "Transport", Classification: ClassificationNeed, Color: "#274754"},
		{ID: "health", Name: "Health", Classification: ClassificationNeed, Color: "#E8C468"},
		{ID: "education", Name: "Education", Classification: ClassificationNeed, Color: "#F4A462"},
		{ID: "shopping", Name: "Shopping", Classification: ClassificationWant, Color: "#EB7D34"},
		{ID: "entertainment", Name: "Entertainment", Classification: ClassificationWant, Color: "#DD5ECF"},
		{ID: "coffee", Name: "Coffee Shops", Classification: ClassificationWant, Color: "#FD8FB2"},
		{ID: SavingsCategoryID, Name: "Savings", Classification: ClassificationSavings, Color: "#9B70E8"},
	})
}
