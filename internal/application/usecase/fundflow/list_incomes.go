// Package fundflow contains the fund-flow use cases.
package fundflow

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/budget-ledger/backend/internal/application/adapter"
	"github.com/budget-ledger/backend/internal/domain/entity"
)

// ListIncomesInput represents the input for income listing.
type ListIncomesInput struct {
	UserID uuid.UUID
}

// ListIncomesOutput represents the output of income listing.
type ListIncomesOutput struct {
	Incomes []*entity.Income
}

// ListIncomesUseCase retrieves all income records for a user, newest first.
type ListIncomesUseCase struct {
	store adapter.LedgerStore
}

// NewListIncomesUseCase creates a new ListIncomesUseCase instance.
func NewListIncomesUseCase(store adapter.LedgerStore) *ListIncomesUseCase {
	return &ListIncomesUseCase{
		store: store,
	}
}

// Execute performs the listing.
func (uc *ListIncomesUseCase) Execute(ctx context.Context, input ListIncomesInput) (*ListIncomesOutput, error) {
	incomes, err := uc.store.ListIncomes(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list incomes: %w", err)
	}
	return &ListIncomesOutput{Incomes: incomes}, nil
}
