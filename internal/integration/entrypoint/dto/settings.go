// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/budget-ledger/backend/internal/domain/entity"
)

// SetAllowanceRequest represents the request body for overwriting the
// allowance pool.
type SetAllowanceRequest struct {
	Amount float64 `json:"amount"`
}

// SettingsResponse represents the per-user ledger settings in API responses.
type SettingsResponse struct {
	Allowance          float64              `json:"allowance"`
	BudgetTarget       BudgetTargetResponse `json:"budget_target"`
	BalanceAtBudgetSet float64              `json:"balance_at_budget_set"`
	PlanLocked         bool                 `json:"plan_locked"`
}

// ToSettingsResponse converts a domain Settings entity to a SettingsResponse.
func ToSettingsResponse(s *entity.Settings) SettingsResponse {
	return SettingsResponse{
		Allowance: s.Allowance.InexactFloat64(),
		BudgetTarget: BudgetTargetResponse{
			Amount: s.BudgetTarget.Amount.InexactFloat64(),
			Period: string(s.BudgetTarget.Period),
		},
		BalanceAtBudgetSet: s.BalanceAtBudgetSet.InexactFloat64(),
		PlanLocked:         s.PlanLocked(),
	}
}
