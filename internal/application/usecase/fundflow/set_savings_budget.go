// Package fundflow contains the fund-flow use cases.
package fundflow

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

// SetSavingsBudgetInput represents the input for a savings budget update.
type SetSavingsBudgetInput struct {
	UserID uuid.UUID
	Amount decimal.Decimal
}

// SetSavingsBudgetOutput represents the output of a savings budget update.
type SetSavingsBudgetOutput struct {
	Budget *entity.CategoryBudget
}

// SetSavingsBudgetUseCase upserts the reserved savings budget row. It lives
// outside the plan state machine: the savings budget stays writable whether
// or not a percentage plan is locked.
type SetSavingsBudgetUseCase struct {
	store adapter.LedgerStore
	cache adapter.SummaryCache
}

// NewSetSavingsBudgetUseCase creates a new SetSavingsBudgetUseCase instance.
func NewSetSavingsBudgetUseCase(store adapter.LedgerStore, cache adapter.SummaryCache) *SetSavingsBudgetUseCase {
	return &SetSavingsBudgetUseCase{
		store: store,
		cache: cache,
	}
}

// Execute performs the savings budget update.
func (uc *SetSavingsBudgetUseCase) Execute(ctx context.Context, input SetSavingsBudgetInput) (*SetSavingsBudgetOutput, error) {
	if input.Amount.IsNegative() {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidAmount,
			"savings budget cannot be negative",
			domainerror.ErrInvalidAmount,
		)
	}

	budget := entity.NewCategoryBudget(input.UserID, entity.SavingsCategoryID, input.Amount, nil)
	budget.UpdatedAt = time.Now().UTC()
	if err := uc.store.UpsertBudget(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to set savings budget: %w", err)
	}

	invalidateSummary(ctx, uc.cache, input.UserID)

	return &SetSavingsBudgetOutput{Budget: budget}, nil
}
