// Package fundflow contains the fund-flow use cases.
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

// CreateSinkingFundInput represents the input for sinking fund creation.
type CreateSinkingFundInput struct {
	UserID       uuid.UUID
	Name         string
	TargetAmount decimal.Decimal
}

// CreateSinkingFundOutput represents the output of sinking fund creation.
type CreateSinkingFundOutput struct {
	Fund *entity.SinkingFund
}

// CreateSinkingFundUseCase creates a new, empty sinking fund. Money enters it
// only through AllocateToSinkingFund.
type CreateSinkingFundUseCase struct {
	store adapter.LedgerStore
}

// NewCreateSinkingFundUseCase creates a new CreateSinkingFundUseCase instance.
func NewCreateSinkingFundUseCase(store adapter.LedgerStore) *CreateSinkingFundUseCase {
	return &CreateSinkingFundUseCase{
		store: store,
	}
}

// Execute performs the sinking fund creation.
func (uc *CreateSinkingFundUseCase) Execute(ctx context.Context, input CreateSinkingFundInput) (*CreateSinkingFundOutput, error) {
	if input.TargetAmount.IsNegative() {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidAmount,
			"target amount cannot be negative",
			domainerror.ErrInvalidAmount,
		)
	}

	fund := entity.NewSinkingFund(input.UserID, input.Name, input.TargetAmount)
	if err := uc.store.CreateFund(ctx, fund); err != nil {
		return nil, fmt.Errorf("failed to create sinking fund: %w", err)
	}

	return &CreateSinkingFundOutput{Fund: fund}, nil
}
