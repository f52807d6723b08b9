// Package fundflow contains the fund-flow use cases.
package fundflow

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/budget-ledger/backend/internal/application/adapter"
	"github.com/budget-ledger/backend/internal/domain/entity"
)

// ListExpensesInput represents the input for expense listing.
type ListExpensesInput struct {
	UserID uuid.UUID
}

// ListExpensesOutput represents the output of expense listing.
type ListExpensesOutput struct {
	Expenses []*entity.Expense
}

// ListExpensesUseCase retrieves all expenses for a user, newest first.
type ListExpensesUseCase struct {
	store adapter.LedgerStore
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(store adapter.LedgerStore) *ListExpensesUseCase {
	return &ListExpensesUseCase{
		store: store,
	}
}

// Execute performs the listing.
func (uc *ListExpensesUseCase) Execute(ctx context.Context, input ListExpensesInput) (*ListExpensesOutput, error) {
	expenses, err := uc.store.ListExpenses(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return &ListExpensesOutput{Expenses: expenses}, nil
}
