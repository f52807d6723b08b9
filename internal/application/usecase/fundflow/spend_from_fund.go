// Package fundflow contains the fund-flow use cases.
package fundflow

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/budget-ledger/backend/internal/application/adapter"
	"github.com/budget-ledger/backend/internal/domain/entity"
	domainerror "github.com/budget-ledger/backend/internal/domain/error"
)

// SpendFromFundInput represents the input for a sinking-fund liquidation.
type SpendFromFundInput struct {
	UserID     uuid.UUID
	FundID     uuid.UUID
	CategoryID string
}

// SpendFromFundOutput represents the output of a sinking-fund liquidation.
type SpendFromFundOutput struct {
	Expense *entity.Expense
}

// SpendFromFundUseCase liquidates a completed sinking fund: the reserved
// amount becomes a single expense and the fund document is deleted, both in
// one atomic unit. The remaining balance is unchanged by construction; the
// subtraction just moves from the sinking-fund term to the spent term.
type SpendFromFundUseCase struct {
	store adapter.LedgerStore
	cache adapter.SummaryCache
}

// NewSpendFromFundUseCase creates a new SpendFromFundUseCase instance.
func NewSpendFromFundUseCase(store adapter.LedgerStore, cache adapter.SummaryCache) *SpendFromFundUseCase {
	return &SpendFromFundUseCase{
		store: store,
		cache: cache,
	}
}

// Execute performs the liquidation. The fund must exist and have its target
// fully met against freshly read state.
func (uc *SpendFromFundUseCase) Execute(ctx context.Context, input SpendFromFundInput) (*SpendFromFundOutput, error) {
	var expense *entity.Expense
	err := uc.store.RunAtomic(ctx, func(tx adapter.LedgerTx) error {
		fund, err := tx.GetFund(ctx, input.UserID, input.FundID)
		if err != nil {
			return err
		}

		if !fund.CurrentAmount.IsPositive() || !fund.TargetMet() {
			return domainerror.NewLedgerError(
				domainerror.ErrCodeFundTargetNotMet,
				"sinking fund target has not been met",
				domainerror.ErrFundTargetNotMet,
			)
		}

		expense = entity.NewExpense(
			input.UserID,
			fund.CurrentAmount,
			input.CategoryID,
			fmt.Sprintf("Purchase from sinking fund: %s", fund.Name),
			time.Now().UTC(),
		)
		if err := tx.CreateExpense(ctx, expense); err != nil {
			return err
		}

		return tx.DeleteFund(ctx, input.UserID, fund.ID)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to spend from sinking fund: %w", err)
	}

	invalidateSummary(ctx, uc.cache, input.UserID)

	return &SpendFromFundOutput{Expense: expense}, nil
}
