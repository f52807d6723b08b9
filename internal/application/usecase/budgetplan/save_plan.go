// Package budgetplan contains the budget plan lifecycle use cases: the
// draft/locked/reset state machine for category percentage allocations pinned
// to a remaining-balance snapshot.
package budgetplan

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-ledger/backend/internal/application/adapter"
	"github.com/budget-ledger/backend/internal/domain/entity"
	domainerror "github.com/budget-ledger/backend/internal/domain/error"
)

// SavePlanInput represents the input for locking a budget plan.
type SavePlanInput struct {
	UserID uuid.UUID
	// Percentages maps non-savings category ids to their 0-100 allocation.
	Percentages map[string]float64
	// BalanceSnapshot is the remaining balance the percentages were planned
	// against. Amounts are priced off this snapshot, and it becomes the fixed
	// planning base until reset.
	BalanceSnapshot decimal.Decimal
}

// SavePlanOutput represents the output of locking a budget plan.
type SavePlanOutput struct {
	Budgets            []*entity.CategoryBudget
	BalanceAtBudgetSet decimal.Decimal
}

// SavePlanUseCase transitions NoPlan -> PlanLocked: it prices every category
// percentage against the balance snapshot, upserts all budget rows, and pins
// Settings.BalanceAtBudgetSet, all in one atomic unit.
type SavePlanUseCase struct {
	store adapter.LedgerStore
	cache adapter.SummaryCache
}

// NewSavePlanUseCase creates a new SavePlanUseCase instance.
func NewSavePlanUseCase(store adapter.LedgerStore, cache adapter.SummaryCache) *SavePlanUseCase {
	return &SavePlanUseCase{
		store: store,
		cache: cache,
	}
}

// Execute performs the plan save.
func (uc *SavePlanUseCase) Execute(ctx context.Context, input SavePlanInput) (*SavePlanOutput, error) {
	if len(input.Percentages) == 0 {
		return nil, domainerror.NewPlanError(
			domainerror.ErrCodeEmptyPlan,
			"plan must allocate at least one category",
			domainerror.ErrEmptyPlan,
		)
	}

	total := 0.0
	for categoryID, pct := range input.Percentages {
		if categoryID == entity.SavingsCategoryID {
			return nil, domainerror.NewPlanError(
				domainerror.ErrCodeSavingsNotPlannable,
				"the savings budget is managed outside the percentage plan",
				domainerror.ErrSavingsNotPlannable,
			)
		}
		if pct < 0 || pct > 100 {
			return nil, domainerror.NewPlanError(
				domainerror.ErrCodeInvalidPercentage,
				"percentages must be between 0 and 100",
				domainerror.ErrInvalidPercentage,
			)
		}
		total += pct
	}
	if total > 100 {
		return nil, domainerror.NewPlanError(
			domainerror.ErrCodePercentageOverflow,
			"percentages cannot sum above 100",
			domainerror.ErrPercentageOverflow,
		)
	}

	var budgets []*entity.CategoryBudget
	err := uc.store.RunAtomic(ctx, func(tx adapter.LedgerTx) error {
		settings, err := tx.GetSettings(ctx, input.UserID)
		if err != nil {
			return err
		}

		// A locked plan freezes non-savings budgets until reset.
		if settings.PlanLocked() {
			return domainerror.NewPlanError(
				domainerror.ErrCodePlanLocked,
				"a budget plan is already locked; reset it first",
				domainerror.ErrPlanLocked,
			)
		}

		now := time.Now().UTC()
		budgets = make([]*entity.CategoryBudget, 0, len(input.Percentages))
		for categoryID, pct := range input.Percentages {
			percentage := pct
			amount := decimal.NewFromFloat(pct).
				Div(decimal.NewFromInt(100)).
				Mul(input.BalanceSnapshot)

			budget := entity.NewCategoryBudget(input.UserID, categoryID, amount, &percentage)
			budget.UpdatedAt = now
			if err := tx.UpsertBudget(ctx, budget); err != nil {
				return err
			}
			budgets = append(budgets, budget)
		}

		settings.BalanceAtBudgetSet = input.BalanceSnapshot
		return tx.UpdateSettings(ctx, settings)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save budget plan: %w", err)
	}

	invalidateSummary(ctx, uc.cache, input.UserID)

	return &SavePlanOutput{
		Budgets:            budgets,
		BalanceAtBudgetSet: input.BalanceSnapshot,
	}, nil
}
