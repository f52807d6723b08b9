// Package budgetplan contains the budget plan lifecycle use cases.
package budgetplan

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-ledger/backend/internal/application/adapter"
	"github.com/budget-ledger/backend/internal/application/usecase/summary"
	"github.com/budget-ledger/backend/internal/domain/entity"
)

// GetPlanInput represents the input for plan retrieval.
type GetPlanInput struct {
	UserID uuid.UUID
}

// GetPlanOutput represents the output of plan retrieval.
type GetPlanOutput struct {
	Budgets []*entity.CategoryBudget
	Locked  bool
	// PlanningBalance is the base percentage math multiplies against: the
	// locked snapshot while a plan is active, otherwise the live remaining
	// balance.
	PlanningBalance    decimal.Decimal
	BalanceAtBudgetSet decimal.Decimal
}

// GetPlanUseCase reads the current plan state: budget rows, lock flag, and
// the planning balance.
type GetPlanUseCase struct {
	store   adapter.LedgerStore
	catalog *entity.Catalog
}

// NewGetPlanUseCase creates a new GetPlanUseCase instance.
func NewGetPlanUseCase(store adapter.LedgerStore, catalog *entity.Catalog) *GetPlanUseCase {
	return &GetPlanUseCase{
		store:   store,
		catalog: catalog,
	}
}

// Execute performs the plan retrieval.
func (uc *GetPlanUseCase) Execute(ctx context.Context, input GetPlanInput) (*GetPlanOutput, error) {
	snapshot, err := uc.store.GetSnapshot(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger snapshot: %w", err)
	}

	return &GetPlanOutput{
		Budgets:            snapshot.Budgets,
		Locked:             snapshot.Settings.PlanLocked(),
		PlanningBalance:    summary.PlanningBalance(snapshot, uc.catalog),
		BalanceAtBudgetSet: snapshot.Settings.BalanceAtBudgetSet,
	}, nil
}
