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

// UpdateSinkingFundInput represents the input for a sinking fund update.
type UpdateSinkingFundInput struct {
	UserID        uuid.UUID
	FundID        uuid.UUID
	Name          string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
}

// UpdateSinkingFundOutput represents the output of a sinking fund update.
type UpdateSinkingFundOutput struct {
	Fund *entity.SinkingFund
}

// UpdateSinkingFundUseCase overwrites a sinking fund, including a direct edit
// of its current amount. This is the manual-correction escape hatch: the
// write bypasses the allocation balance guard, so it can move money into or
// out of the reserved pool without a compensating entry.
type UpdateSinkingFundUseCase struct {
	store adapter.LedgerStore
	cache adapter.SummaryCache
}

// NewUpdateSinkingFundUseCase creates a new UpdateSinkingFundUseCase instance.
func NewUpdateSinkingFundUseCase(store adapter.LedgerStore, cache adapter.SummaryCache) *UpdateSinkingFundUseCase {
	return &UpdateSinkingFundUseCase{
		store: store,
		cache: cache,
	}
}

// Execute performs the sinking fund update.
func (uc *UpdateSinkingFundUseCase) Execute(ctx context.Context, input UpdateSinkingFundInput) (*UpdateSinkingFundOutput, error) {
	if input.TargetAmount.IsNegative() || input.CurrentAmount.IsNegative() {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidAmount,
			"fund amounts cannot be negative",
			domainerror.ErrInvalidAmount,
		)
	}

	var updated *entity.SinkingFund
	err := uc.store.RunAtomic(ctx, func(tx adapter.LedgerTx) error {
		fund, err := tx.GetFund(ctx, input.UserID, input.FundID)
		if err != nil {
			return err
		}

		fund.Name = input.Name
		fund.TargetAmount = input.TargetAmount
		fund.CurrentAmount = input.CurrentAmount
		fund.UpdatedAt = time.Now().UTC()

		if err := tx.UpdateFund(ctx, fund); err != nil {
			return err
		}
		updated = fund
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update sinking fund: %w", err)
	}

	invalidateSummary(ctx, uc.cache, input.UserID)

	return &UpdateSinkingFundOutput{Fund: updated}, nil
}
