// Package entity defines the core business entities for the domain layer.
package entity

// Snapshot is a consistent read of a user's full ledger state: the settings
// document plus all four collections. Derived metrics are recomputed from a
// Snapshot on every read rather than stored anywhere.
type Snapshot struct {
	Settings *Settings
	Expenses []*Expense
	Incomes  []*Income
	Budgets  []*CategoryBudget
	Funds    []*SinkingFund
}

// BudgetFor returns the budget row for the given category id, or nil when no
// row exists.
func (s *Snapshot) BudgetFor(categoryID string) *CategoryBudget {
	for _, b := range s.Budgets {
		if b.CategoryID == categoryID {
			return b
		}
	}
	return nil
}
