// Package fundflow contains the fund-flow use cases.
package fundflow

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/budget-ledger/backend/internal/application/adapter"
	domainerror "github.com/budget-ledger/backend/internal/domain/error"
)

// DeleteExpensesInput represents the input for expense deletion.
type DeleteExpensesInput struct {
	UserID uuid.UUID
	IDs    []uuid.UUID
}

// DeleteExpensesOutput represents the output of expense deletion.
type DeleteExpensesOutput struct {
	DeletedCount int64
}

// DeleteExpensesUseCase removes one or more expenses. Expenses carry no
// compensating settings mutation, so ids that already vanished are simply
// skipped.
type DeleteExpensesUseCase struct {
	store adapter.LedgerStore
	cache adapter.SummaryCache
}

// NewDeleteExpensesUseCase creates a new DeleteExpensesUseCase instance.
func NewDeleteExpensesUseCase(store adapter.LedgerStore, cache adapter.SummaryCache) *DeleteExpensesUseCase {
	return &DeleteExpensesUseCase{
		store: store,
		cache: cache,
	}
}

// Execute performs the expense deletion.
func (uc *DeleteExpensesUseCase) Execute(ctx context.Context, input DeleteExpensesInput) (*DeleteExpensesOutput, error) {
	if len(input.IDs) == 0 {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeEmptyIDList,
			"expense ID list cannot be empty",
			domainerror.ErrEmptyIDList,
		)
	}

	deleted, err := uc.store.DeleteExpenses(ctx, input.UserID, input.IDs)
	if err != nil {
		return nil, fmt.Errorf("failed to delete expenses: %w", err)
	}

	invalidateSummary(ctx, uc.cache, input.UserID)

	return &DeleteExpensesOutput{DeletedCount: deleted}, nil
}
