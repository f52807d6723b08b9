// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/budget-ledger/backend/internal/domain/entity"
)

// SetSavingsBudgetRequest represents the request body for setting the savings
// budget amount.
type SetSavingsBudgetRequest struct {
	Amount float64 `json:"amount" binding:"gte=0"`
}

// SetBudgetTargetRequest represents the request body for setting the
// spending-pace target.
type SetBudgetTargetRequest struct {
	Amount float64 `json:"amount" binding:"gte=0"`
	Period string  `json:"period" binding:"required,oneof=daily weekly monthly"`
}

// SavePlanRequest represents the request body for saving a budget plan.
type SavePlanRequest struct {
	// Percentages maps non-savings category ids to their 0-100 allocation.
	Percentages map[string]float64 `json:"percentages" binding:"required"`
	// BalanceSnapshot is the remaining balance the client planned against.
	BalanceSnapshot float64 `json:"balance_snapshot" binding:"required,gt=0"`
}

// CategoryBudgetResponse represents a single category-budget row in API
// responses.
type CategoryBudgetResponse struct {
	CategoryID string   `json:"category_id"`
	Amount     float64  `json:"amount"`
	Percentage *float64 `json:"percentage,omitempty"`
}

// BudgetTargetResponse represents the spending-pace target in API responses.
type BudgetTargetResponse struct {
	Amount float64 `json:"amount"`
	Period string  `json:"period"`
}

// PlanResponse represents the budget plan state in API responses.
type PlanResponse struct {
	Budgets            []CategoryBudgetResponse `json:"budgets"`
	Locked             bool                     `json:"locked"`
	PlanningBalance    float64                  `json:"planning_balance"`
	BalanceAtBudgetSet float64                  `json:"balance_at_budget_set"`
}

// ToCategoryBudgetResponse converts a domain CategoryBudget to a
// CategoryBudgetResponse DTO.
func ToCategoryBudgetResponse(b *entity.CategoryBudget) CategoryBudgetResponse {
	return CategoryBudgetResponse{
		CategoryID: b.CategoryID,
		Amount:     b.Amount.InexactFloat64(),
		Percentage: b.Percentage,
	}
}

// ToCategoryBudgetListResponse converts a list of category budgets.
func ToCategoryBudgetListResponse(budgets []*entity.CategoryBudget) []CategoryBudgetResponse {
	items := make([]CategoryBudgetResponse, len(budgets))
	for i, b := range budgets {
		items[i] = ToCategoryBudgetResponse(b)
	}
	return items
}
