// Package fundflow contains the fund-flow use cases.
package fundflow

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-ledger/backend/internal/application/adapter"
	"github.com/budget-ledger/backend/internal/domain/entity"
	domainerror "github.com/budget-ledger/backend/internal/domain/error"
)

// SetBudgetTargetInput represents the input for a budget target update.
type SetBudgetTargetInput struct {
	UserID uuid.UUID
	Amount decimal.Decimal
	Period entity.BudgetPeriod
}

// SetBudgetTargetOutput represents the output of a budget target update.
type SetBudgetTargetOutput struct {
	Settings *entity.Settings
}

// SetBudgetTargetUseCase updates the self-imposed spending pace used to
// compute runway. A zero amount disables the target, falling back to the
// observed daily average.
type SetBudgetTargetUseCase struct {
	store adapter.LedgerStore
	cache adapter.SummaryCache
}

// NewSetBudgetTargetUseCase creates a new SetBudgetTargetUseCase instance.
func NewSetBudgetTargetUseCase(store adapter.LedgerStore, cache adapter.SummaryCache) *SetBudgetTargetUseCase {
	return &SetBudgetTargetUseCase{
		store: store,
		cache: cache,
	}
}

// Execute performs the budget target update.
func (uc *SetBudgetTargetUseCase) Execute(ctx context.Context, input SetBudgetTargetInput) (*SetBudgetTargetOutput, error) {
	if input.Amount.IsNegative() {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidAmount,
			"budget target cannot be negative",
			domainerror.ErrInvalidAmount,
		)
	}
	if !input.Period.IsValid() {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidBudgetPeriod,
			"period must be 'daily', 'weekly', or 'monthly'",
			domainerror.ErrInvalidBudgetPeriod,
		)
	}

	var settings *entity.Settings
	err := uc.store.RunAtomic(ctx, func(tx adapter.LedgerTx) error {
		s, err := tx.GetSettings(ctx, input.UserID)
		if err != nil {
			return err
		}

		s.BudgetTarget = entity.BudgetTarget{Amount: input.Amount, Period: input.Period}
		if err := tx.UpdateSettings(ctx, s); err != nil {
			return err
		}
		settings = s
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to set budget target: %w", err)
	}

	invalidateSummary(ctx, uc.cache, input.UserID)

	return &SetBudgetTargetOutput{Settings: settings}, nil
}
