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

// UpdateExpenseInput represents the input for expense update.
type UpdateExpenseInput struct {
	UserID     uuid.UUID
	ExpenseID  uuid.UUID
	Amount     decimal.Decimal
	CategoryID string
	Notes      string
	Date       time.Time
}

// UpdateExpenseOutput represents the output of expense update.
type UpdateExpenseOutput struct {
	Expense *entity.Expense
}

// UpdateExpenseUseCase overwrites an existing expense. The current row is
// re-read inside the transaction so a concurrent delete surfaces as
// not-found instead of resurrecting the document.
type UpdateExpenseUseCase struct {
	store adapter.LedgerStore
	cache adapter.SummaryCache
}

// NewUpdateExpenseUseCase creates a new UpdateExpenseUseCase instance.
func NewUpdateExpenseUseCase(store adapter.LedgerStore, cache adapter.SummaryCache) *UpdateExpenseUseCase {
	return &UpdateExpenseUseCase{
		store: store,
		cache: cache,
	}
}

// Execute performs the expense update.
func (uc *UpdateExpenseUseCase) Execute(ctx context.Context, input UpdateExpenseInput) (*UpdateExpenseOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidAmount,
			"expense amount must be greater than zero",
			domainerror.ErrInvalidAmount,
		)
	}

	var updated *entity.Expense
	err := uc.store.RunAtomic(ctx, func(tx adapter.LedgerTx) error {
		expense, err := tx.GetExpense(ctx, input.UserID, input.ExpenseID)
		if err != nil {
			return err
		}

		expense.Amount = input.Amount
		expense.CategoryID = input.CategoryID
		expense.Notes = input.Notes
		if !input.Date.IsZero() {
			expense.Date = input.Date
		}
		expense.UpdatedAt = time.Now().UTC()

		if err := tx.UpdateExpense(ctx, expense); err != nil {
			return err
		}
		updated = expense
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	invalidateSummary(ctx, uc.cache, input.UserID)

	return &UpdateExpenseOutput{Expense: updated}, nil
}
