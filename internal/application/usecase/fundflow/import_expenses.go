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

// ExpenseDraft is one expense row in a batch import.
type ExpenseDraft struct {
	Amount     decimal.Decimal
	CategoryID string
	Notes      string
	Date       time.Time
}

// ImportExpensesInput represents the input for batch expense creation.
type ImportExpensesInput struct {
	UserID   uuid.UUID
	Expenses []ExpenseDraft
}

// ImportExpensesOutput represents the output of batch expense creation.
type ImportExpensesOutput struct {
	Expenses []*entity.Expense
}

// ImportExpensesUseCase records a batch of expenses in one write. Used by the
// import surface and by recurring-expense logging.
type ImportExpensesUseCase struct {
	store adapter.LedgerStore
	cache adapter.SummaryCache
}

// NewImportExpensesUseCase creates a new ImportExpensesUseCase instance.
func NewImportExpensesUseCase(store adapter.LedgerStore, cache adapter.SummaryCache) *ImportExpensesUseCase {
	return &ImportExpensesUseCase{
		store: store,
		cache: cache,
	}
}

// Execute performs the batch expense creation. The whole batch is rejected if
// any row has a non-positive amount.
func (uc *ImportExpensesUseCase) Execute(ctx context.Context, input ImportExpensesInput) (*ImportExpensesOutput, error) {
	if len(input.Expenses) == 0 {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeEmptyIDList,
			"expense batch cannot be empty",
			domainerror.ErrEmptyIDList,
		)
	}

	now := time.Now().UTC()
	expenses := make([]*entity.Expense, len(input.Expenses))
	for i, draft := range input.Expenses {
		if !draft.Amount.IsPositive() {
			return nil, domainerror.NewLedgerError(
				domainerror.ErrCodeInvalidAmount,
				"expense amount must be greater than zero",
				domainerror.ErrInvalidAmount,
			)
		}

		date := draft.Date
		if date.IsZero() {
			date = now
		}
		expenses[i] = entity.NewExpense(input.UserID, draft.Amount, draft.CategoryID, draft.Notes, date)
	}

	if err := uc.store.CreateExpenses(ctx, expenses); err != nil {
		return nil, fmt.Errorf("failed to import expenses: %w", err)
	}

	invalidateSummary(ctx, uc.cache, input.UserID)

	return &ImportExpensesOutput{Expenses: expenses}, nil
}
