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

// AddExpenseInput represents the input for expense creation.
type AddExpenseInput struct {
	UserID     uuid.UUID
	Amount     decimal.Decimal
	CategoryID string
	Notes      string
	Date       time.Time // zero value defaults to now
}

// AddExpenseOutput represents the output of expense creation.
type AddExpenseOutput struct {
	Expense *entity.Expense
}

// AddExpenseUseCase records a single expense. Unknown category ids are
// accepted and later rendered as Uncategorized.
type AddExpenseUseCase struct {
	store adapter.LedgerStore
	cache adapter.SummaryCache
}

// NewAddExpenseUseCase creates a new AddExpenseUseCase instance.
func NewAddExpenseUseCase(store adapter.LedgerStore, cache adapter.SummaryCache) *AddExpenseUseCase {
	return &AddExpenseUseCase{
		store: store,
		cache: cache,
	}
}

// Execute performs the expense creation.
func (uc *AddExpenseUseCase) Execute(ctx context.Context, input AddExpenseInput) (*AddExpenseOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidAmount,
			"expense amount must be greater than zero",
			domainerror.ErrInvalidAmount,
		)
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}

	expense := entity.NewExpense(input.UserID, input.Amount, input.CategoryID, input.Notes, date)
	if err := uc.store.CreateExpense(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	invalidateSummary(ctx, uc.cache, input.UserID)

	return &AddExpenseOutput{Expense: expense}, nil
}
