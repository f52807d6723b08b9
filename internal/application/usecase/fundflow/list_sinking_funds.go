// Package fundflow contains the fund-flow use cases.
package fundflow

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/budget-ledger/backend/internal/application/adapter"
	"github.com/budget-ledger/backend/internal/domain/entity"
)

// ListSinkingFundsInput represents the input for sinking fund listing.
type ListSinkingFundsInput struct {
	UserID uuid.UUID
}

// ListSinkingFundsOutput represents the output of sinking fund listing.
type ListSinkingFundsOutput struct {
	Funds []*entity.SinkingFund
}

// ListSinkingFundsUseCase retrieves all sinking funds for a user.
type ListSinkingFundsUseCase struct {
	store adapter.LedgerStore
}

// NewListSinkingFundsUseCase creates a new ListSinkingFundsUseCase instance.
func NewListSinkingFundsUseCase(store adapter.LedgerStore) *ListSinkingFundsUseCase {
	return &ListSinkingFundsUseCase{
		store: store,
	}
}

// Execute performs the listing.
func (uc *ListSinkingFundsUseCase) Execute(ctx context.Context, input ListSinkingFundsInput) (*ListSinkingFundsOutput, error) {
	funds, err := uc.store.ListFunds(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sinking funds: %w", err)
	}
	return &ListSinkingFundsOutput{Funds: funds}, nil
}
