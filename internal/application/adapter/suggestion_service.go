// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/shopspring/decimal"
)

// CategorySpending is the per-category spending summary fed to the
// suggestion service.
type CategorySpending struct {
	Name           string
	Spent          decimal.Decimal
	Classification string
}

// FundSummary describes one sinking fund for the suggestion service.
type FundSummary struct {
	Name          string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
}

// RecentExpense describes one recent expense for the suggestion service.
type RecentExpense struct {
	Name         string
	Amount       decimal.Decimal
	Date         string
	CategoryName string
}

// SpendingSuggestionRequest asks for advice on allocating accumulated funds.
type SpendingSuggestionRequest struct {
	AccumulatedFunds decimal.Decimal
	CategorySpending []CategorySpending
}

// AllocationHelperRequest asks for a percentage budget-allocation suggestion
// against the current remaining balance.
type AllocationHelperRequest struct {
	Allowance        decimal.Decimal
	RemainingBalance decimal.Decimal
	SavingsAmount    decimal.Decimal
	SinkingFunds     []FundSummary
	CategorySpending []CategorySpending
	RecentExpenses   []RecentExpense
	UserContext      string
}

// SuggestionService is the external LLM boundary. The engine ships summarized
// ledger state out and receives an opaque formatted text block back; nothing
// beyond non-emptiness is validated.
type SuggestionService interface {
	// IsAvailable checks whether the service is configured.
	IsAvailable() bool

	// SuggestSpending returns advice on allocating accumulated funds.
	SuggestSpending(ctx context.Context, request *SpendingSuggestionRequest) (string, error)

	// SuggestAllocation returns a budget-allocation plan suggestion.
	SuggestAllocation(ctx context.Context, request *AllocationHelperRequest) (string, error)
}
