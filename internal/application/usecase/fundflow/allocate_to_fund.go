// Package fundflow contains the fund-flow use cases.
package fundflow

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-ledger/backend/internal/application/adapter"
	"github.com/budget-ledger/backend/internal/application/usecase/summary"
	"github.com/budget-ledger/backend/internal/domain/entity"
	domainerror "github.com/budget-ledger/backend/internal/domain/error"
)

// AllocateToFundInput represents the input for a sinking-fund allocation.
type AllocateToFundInput struct {
	UserID uuid.UUID
	FundID uuid.UUID
	Amount decimal.Decimal
}

// AllocateToFundOutput represents the output of a sinking-fund allocation.
type AllocateToFundOutput struct {
	Fund *entity.SinkingFund
}

// AllocateToFundUseCase moves spendable money into a sinking fund. The money
// reclassifies from spendable to reserved purely through the
// remaining-balance formula; no allowance or expense row changes. The balance
// guard is evaluated against a fresh in-transaction snapshot so concurrent
// expense insertion cannot overdraw the pool.
type AllocateToFundUseCase struct {
	store   adapter.LedgerStore
	catalog *entity.Catalog
	cache   adapter.SummaryCache
}

// NewAllocateToFundUseCase creates a new AllocateToFundUseCase instance.
func NewAllocateToFundUseCase(store adapter.LedgerStore, catalog *entity.Catalog, cache adapter.SummaryCache) *AllocateToFundUseCase {
	return &AllocateToFundUseCase{
		store:   store,
		catalog: catalog,
		cache:   cache,
	}
}

// Execute performs the allocation.
func (uc *AllocateToFundUseCase) Execute(ctx context.Context, input AllocateToFundInput) (*AllocateToFundOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidAmount,
			"allocation amount must be greater than zero",
			domainerror.ErrInvalidAmount,
		)
	}

	var allocated *entity.SinkingFund
	err := uc.store.RunAtomic(ctx, func(tx adapter.LedgerTx) error {
		snapshot, err := tx.GetSnapshot(ctx, input.UserID)
		if err != nil {
			return err
		}

		remaining := summary.RemainingBalance(snapshot, uc.catalog)
		if input.Amount.GreaterThan(remaining) {
			return domainerror.NewLedgerError(
				domainerror.ErrCodeInsufficientBalance,
				"allocation exceeds remaining balance",
				domainerror.ErrInsufficientBalance,
			)
		}

		fund, err := tx.GetFund(ctx, input.UserID, input.FundID)
		if err != nil {
			return err
		}

		fund.CurrentAmount = fund.CurrentAmount.Add(input.Amount)
		fund.UpdatedAt = time.Now().UTC()
		if err := tx.UpdateFund(ctx, fund); err != nil {
			return err
		}
		allocated = fund
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to allocate to sinking fund: %w", err)
	}

	invalidateSummary(ctx, uc.cache, input.UserID)

	return &AllocateToFundOutput{Fund: allocated}, nil
}
