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

// SetAllowanceInput represents the input for an allowance update.
type SetAllowanceInput struct {
	UserID uuid.UUID
	Amount decimal.Decimal
}

// SetAllowanceOutput represents the output of an allowance update.
type SetAllowanceOutput struct {
	Settings *entity.Settings
}

// SetAllowanceUseCase overwrites the allowance pool directly. It is a
// manual-correction escape hatch, like UpdateSinkingFund: incomes recorded
// afterwards still add on top of the rebased value.
type SetAllowanceUseCase struct {
	store adapter.LedgerStore
	cache adapter.SummaryCache
}

// NewSetAllowanceUseCase creates a new SetAllowanceUseCase instance.
func NewSetAllowanceUseCase(store adapter.LedgerStore, cache adapter.SummaryCache) *SetAllowanceUseCase {
	return &SetAllowanceUseCase{
		store: store,
		cache: cache,
	}
}

// Execute performs the allowance update.
func (uc *SetAllowanceUseCase) Execute(ctx context.Context, input SetAllowanceInput) (*SetAllowanceOutput, error) {
	if input.Amount.IsNegative() {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidAmount,
			"allowance cannot be negative",
			domainerror.ErrInvalidAmount,
		)
	}

	var settings *entity.Settings
	err := uc.store.RunAtomic(ctx, func(tx adapter.LedgerTx) error {
		s, err := tx.GetSettings(ctx, input.UserID)
		if err != nil {
			return err
		}

		s.Allowance = input.Amount
		if err := tx.UpdateSettings(ctx, s); err != nil {
			return err
		}
		settings = s
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to set allowance: %w", err)
	}

	invalidateSummary(ctx, uc.cache, input.UserID)

	return &SetAllowanceOutput{Settings: settings}, nil
}
