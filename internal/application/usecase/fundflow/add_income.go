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

// AddIncomeInput represents the input for income capture.
type AddIncomeInput struct {
	UserID uuid.UUID
	Amount decimal.Decimal
	Source string
	Date   time.Time // zero value defaults to now
}

// AddIncomeOutput represents the output of income capture.
type AddIncomeOutput struct {
	Income *entity.Income
}

// AddIncomeUseCase records an income and grows the allowance by the same
// amount in one atomic unit, preserving allowance == sum of all income.
type AddIncomeUseCase struct {
	store adapter.LedgerStore
	cache adapter.SummaryCache
}

// NewAddIncomeUseCase creates a new AddIncomeUseCase instance.
func NewAddIncomeUseCase(store adapter.LedgerStore, cache adapter.SummaryCache) *AddIncomeUseCase {
	return &AddIncomeUseCase{
		store: store,
		cache: cache,
	}
}

// Execute performs the income capture.
func (uc *AddIncomeUseCase) Execute(ctx context.Context, input AddIncomeInput) (*AddIncomeOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidAmount,
			"income amount must be greater than zero",
			domainerror.ErrInvalidAmount,
		)
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}

	income := entity.NewIncome(input.UserID, input.Amount, input.Source, date)

	err := uc.store.RunAtomic(ctx, func(tx adapter.LedgerTx) error {
		settings, err := tx.GetSettings(ctx, input.UserID)
		if err != nil {
			return err
		}

		if err := tx.CreateIncome(ctx, income); err != nil {
			return err
		}

		settings.Allowance = settings.Allowance.Add(input.Amount)
		return tx.UpdateSettings(ctx, settings)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record income: %w", err)
	}

	invalidateSummary(ctx, uc.cache, input.UserID)

	return &AddIncomeOutput{Income: income}, nil
}
