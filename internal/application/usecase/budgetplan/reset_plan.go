// Package budgetplan contains the budget plan lifecycle use cases.
package budgetplan

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-ledger/backend/internal/application/adapter"
	domainerror "github.com/budget-ledger/backend/internal/domain/error"
)

// ResetPlanInput represents the input for a plan reset.
type ResetPlanInput struct {
	UserID uuid.UUID
}

// ResetPlanUseCase transitions PlanLocked -> NoPlan: it clears the balance
// snapshot and zeroes percentage and amount on every non-savings budget row,
// all in one atomic unit. The savings budget row is left untouched.
type ResetPlanUseCase struct {
	store adapter.LedgerStore
	cache adapter.SummaryCache
}

// NewResetPlanUseCase creates a new ResetPlanUseCase instance.
func NewResetPlanUseCase(store adapter.LedgerStore, cache adapter.SummaryCache) *ResetPlanUseCase {
	return &ResetPlanUseCase{
		store: store,
		cache: cache,
	}
}

// Execute performs the plan reset.
func (uc *ResetPlanUseCase) Execute(ctx context.Context, input ResetPlanInput) error {
	err := uc.store.RunAtomic(ctx, func(tx adapter.LedgerTx) error {
		settings, err := tx.GetSettings(ctx, input.UserID)
		if err != nil {
			return err
		}

		if !settings.PlanLocked() {
			return domainerror.NewPlanError(
				domainerror.ErrCodeNoPlanLocked,
				"no budget plan is locked",
				domainerror.ErrNoPlanLocked,
			)
		}

		budgets, err := tx.ListBudgets(ctx, input.UserID)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		zero := 0.0
		for _, budget := range budgets {
			if budget.IsSavings() {
				continue
			}
			budget.Amount = decimal.Zero
			budget.Percentage = &zero
			budget.UpdatedAt = now
			if err := tx.UpsertBudget(ctx, budget); err != nil {
				return err
			}
		}

		settings.BalanceAtBudgetSet = decimal.Zero
		return tx.UpdateSettings(ctx, settings)
	})
	if err != nil {
		return fmt.Errorf("failed to reset budget plan: %w", err)
	}

	invalidateSummary(ctx, uc.cache, input.UserID)

	return nil
}
