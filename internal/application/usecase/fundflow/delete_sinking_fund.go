// Package fundflow contains the fund-flow use cases.
package fundflow

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/budget-ledger/backend/internal/application/adapter"
)

// DeleteSinkingFundInput represents the input for sinking fund deletion.
type DeleteSinkingFundInput struct {
	UserID uuid.UUID
	FundID uuid.UUID
}

// DeleteSinkingFundUseCase deletes a sinking fund. No compensating write is
// needed: once the fund is gone its current amount stops being subtracted
// from the remaining balance, which returns the money to the spendable pool.
type DeleteSinkingFundUseCase struct {
	store adapter.LedgerStore
	cache adapter.SummaryCache
}

// NewDeleteSinkingFundUseCase creates a new DeleteSinkingFundUseCase instance.
func NewDeleteSinkingFundUseCase(store adapter.LedgerStore, cache adapter.SummaryCache) *DeleteSinkingFundUseCase {
	return &DeleteSinkingFundUseCase{
		store: store,
		cache: cache,
	}
}

// Execute performs the deletion. A missing fund is a no-op.
func (uc *DeleteSinkingFundUseCase) Execute(ctx context.Context, input DeleteSinkingFundInput) error {
	if err := uc.store.DeleteFund(ctx, input.UserID, input.FundID); err != nil {
		return fmt.Errorf("failed to delete sinking fund: %w", err)
	}

	invalidateSummary(ctx, uc.cache, input.UserID)

	return nil
}
