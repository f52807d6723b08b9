// Package fundflow contains the fund-flow use cases.
package fundflow

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-ledger/backend/internal/application/adapter"
	domainerror "github.com/budget-ledger/backend/internal/domain/error"
)

// DeleteIncomesInput represents the input for income reversal.
type DeleteIncomesInput struct {
	UserID uuid.UUID
	IDs    []uuid.UUID
}

// DeleteIncomesOutput represents the output of income reversal.
type DeleteIncomesOutput struct {
	DeletedCount int
}

// DeleteIncomesUseCase removes income records and shrinks the allowance by
// their summed amounts in one atomic unit. Each amount is re-read inside the
// transaction, never taken from a caller-cached copy; ids that already
// vanished are skipped silently.
type DeleteIncomesUseCase struct {
	store adapter.LedgerStore
	cache adapter.SummaryCache
}

// NewDeleteIncomesUseCase creates a new DeleteIncomesUseCase instance.
func NewDeleteIncomesUseCase(store adapter.LedgerStore, cache adapter.SummaryCache) *DeleteIncomesUseCase {
	return &DeleteIncomesUseCase{
		store: store,
		cache: cache,
	}
}

// Execute performs the income reversal.
func (uc *DeleteIncomesUseCase) Execute(ctx context.Context, input DeleteIncomesInput) (*DeleteIncomesOutput, error) {
	if len(input.IDs) == 0 {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeEmptyIDList,
			"income ID list cannot be empty",
			domainerror.ErrEmptyIDList,
		)
	}

	deleted := 0
	err := uc.store.RunAtomic(ctx, func(tx adapter.LedgerTx) error {
		deleted = 0
		settings, err := tx.GetSettings(ctx, input.UserID)
		if err != nil {
			return err
		}

		amountToReduce := decimal.Zero
		for _, id := range input.IDs {
			income, err := tx.GetIncome(ctx, input.UserID, id)
			if err != nil {
				if errors.Is(err, domainerror.ErrIncomeNotFound) {
					continue
				}
				return err
			}

			if err := tx.DeleteIncome(ctx, input.UserID, id); err != nil {
				return err
			}
			amountToReduce = amountToReduce.Add(income.Amount)
			deleted++
		}

		settings.Allowance = settings.Allowance.Sub(amountToReduce)
		return tx.UpdateSettings(ctx, settings)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to delete incomes: %w", err)
	}

	invalidateSummary(ctx, uc.cache, input.UserID)

	return &DeleteIncomesOutput{DeletedCount: deleted}, nil
}
