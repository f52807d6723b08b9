// Package insights contains the AI-facing use cases. The assemblers here are
// pure: they shape ledger state into the summarized structures the external
// suggestion service consumes. The returned text is treated as opaque.
package insights

import (
	"sort"
	"time"

	"github.com/budget-ledger/backend/internal/application/adapter"
	"github.com/budget-ledger/backend/internal/application/usecase/summary"
	"github.com/budget-ledger/backend/internal/domain/entity"
)

// maxRecentExpenses bounds the expense sample shipped to the suggestion
// service.
const maxRecentExpenses = 20

// BuildSpendingContext shapes a snapshot into a spending-suggestion request:
// the accumulated (remaining) funds plus per-category spending, savings
// excluded.
func BuildSpendingContext(snapshot *entity.Snapshot, catalog *entity.Catalog) *adapter.SpendingSuggestionRequest {
	return &adapter.SpendingSuggestionRequest{
		AccumulatedFunds: summary.RemainingBalance(snapshot, catalog),
		CategorySpending: categorySpending(snapshot, catalog, false),
	}
}

// BuildAllocationContext shapes a snapshot into an allocation-helper request:
// the full picture the model needs to propose a percentage plan against the
// remaining balance.
func BuildAllocationContext(snapshot *entity.Snapshot, catalog *entity.Catalog, userContext string) *adapter.AllocationHelperRequest {
	funds := make([]adapter.FundSummary, 0, len(snapshot.Funds))
	for _, f := range snapshot.Funds {
		funds = append(funds, adapter.FundSummary{
			Name:          f.Name,
			TargetAmount:  f.TargetAmount,
			CurrentAmount: f.CurrentAmount,
		})
	}

	return &adapter.AllocationHelperRequest{
		Allowance:        snapshot.Settings.Allowance,
		RemainingBalance: summary.RemainingBalance(snapshot, catalog),
		SavingsAmount:    summary.TotalSavingsBudget(snapshot),
		SinkingFunds:     funds,
		CategorySpending: categorySpending(snapshot, catalog, false),
		RecentExpenses:   recentExpenses(snapshot, catalog),
		UserContext:      userContext,
	}
}

// categorySpending aggregates spending per catalog category.
func categorySpending(snapshot *entity.Snapshot, catalog *entity.Catalog, includeSavings bool) []adapter.CategorySpending {
	out := make([]adapter.CategorySpending, 0)
	for _, cat := range catalog.All() {
		if !includeSavings && cat.Classification == entity.ClassificationSavings {
			continue
		}
		out = append(out, adapter.CategorySpending{
			Name:           cat.Name,
			Spent:          summary.SpentForCategory(snapshot, cat.ID),
			Classification: string(cat.Classification),
		})
	}
	return out
}

// recentExpenses returns up to maxRecentExpenses expenses, newest first.
func recentExpenses(snapshot *entity.Snapshot, catalog *entity.Catalog) []adapter.RecentExpense {
	expenses := make([]*entity.Expense, len(snapshot.Expenses))
	copy(expenses, snapshot.Expenses)
	sort.Slice(expenses, func(i, j int) bool {
		return expenses[i].Date.After(expenses[j].Date)
	})
	if len(expenses) > maxRecentExpenses {
		expenses = expenses[:maxRecentExpenses]
	}

	out := make([]adapter.RecentExpense, 0, len(expenses))
	for _, e := range expenses {
		cat, _ := catalog.Lookup(e.CategoryID)
		name := e.Notes
		if name == "" {
			name = cat.Name
		}
		out = append(out, adapter.RecentExpense{
			Name:         name,
			Amount:       e.Amount,
			Date:         e.Date.Format(time.RFC3339),
			CategoryName: cat.Name,
		})
	}
	return out
}
