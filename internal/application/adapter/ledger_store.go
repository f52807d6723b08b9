// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/budget-ledger/backend/internal/domain/entity"
)

// LedgerView is the read/write surface of the document store. It is exposed
// both by the store itself and by an in-flight transaction, so operations can
// re-read authoritative values inside the same atomic unit before writing.
type LedgerView interface {
	// GetSettings retrieves the per-user settings document, creating a
	// zero-valued one if none exists yet.
	GetSettings(ctx context.Context, userID uuid.UUID) (*entity.Settings, error)

	// UpdateSettings writes the settings document in place.
	UpdateSettings(ctx context.Context, settings *entity.Settings) error

	// ListExpenses retrieves all expenses for a user, newest first.
	ListExpenses(ctx context.Context, userID uuid.UUID) ([]*entity.Expense, error)

	// GetExpense retrieves a single expense by id.
	GetExpense(ctx context.Context, userID, id uuid.UUID) (*entity.Expense, error)

	// CreateExpense inserts a new expense.
	CreateExpense(ctx context.Context, expense *entity.Expense) error

	// CreateExpenses inserts multiple expenses in one batch.
	CreateExpenses(ctx context.Context, expenses []*entity.Expense) error

	// UpdateExpense updates an existing expense.
	UpdateExpense(ctx context.Context, expense *entity.Expense) error

	// DeleteExpenses removes the given expenses. Missing ids are skipped;
	// the number of rows actually deleted is returned.
	DeleteExpenses(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int64, error)

	// ListIncomes retrieves all income records for a user, newest first.
	ListIncomes(ctx context.Context, userID uuid.UUID) ([]*entity.Income, error)

	// GetIncome retrieves a single income record by id.
	GetIncome(ctx context.Context, userID, id uuid.UUID) (*entity.Income, error)

	// CreateIncome inserts a new income record.
	CreateIncome(ctx context.Context, income *entity.Income) error

	// DeleteIncome removes a single income record.
	DeleteIncome(ctx context.Context, userID, id uuid.UUID) error

	// ListBudgets retrieves all category-budget rows for a user.
	ListBudgets(ctx context.Context, userID uuid.UUID) ([]*entity.CategoryBudget, error)

	// UpsertBudget creates or replaces the budget row keyed by category id.
	UpsertBudget(ctx context.Context, budget *entity.CategoryBudget) error

	// ListFunds retrieves all sinking funds for a user.
	ListFunds(ctx context.Context, userID uuid.UUID) ([]*entity.SinkingFund, error)

	// GetFund retrieves a single sinking fund by id.
	GetFund(ctx context.Context, userID, id uuid.UUID) (*entity.SinkingFund, error)

	// CreateFund inserts a new sinking fund.
	CreateFund(ctx context.Context, fund *entity.SinkingFund) error

	// UpdateFund updates an existing sinking fund.
	UpdateFund(ctx context.Context, fund *entity.SinkingFund) error

	// DeleteFund removes a sinking fund. Deleting a missing fund is a no-op.
	DeleteFund(ctx context.Context, userID, id uuid.UUID) error

	// GetSnapshot reads the settings document and all four collections in one
	// consistent view for derived-metric computation.
	GetSnapshot(ctx context.Context, userID uuid.UUID) (*entity.Snapshot, error)
}

// LedgerTx is the view of the store inside an atomic transaction. Reads
// observe a consistent snapshot; writes become visible only at commit.
type LedgerTx interface {
	LedgerView
}

// LedgerStore wraps the external document store with per-user collections and
// an all-or-nothing transaction primitive.
type LedgerStore interface {
	LedgerView

	// RunAtomic executes fn as one atomic read-modify-write unit. If fn
	// returns an error nothing is applied. Optimistic-concurrency collisions
	// surface as domain ErrConflict and are not retried here.
	RunAtomic(ctx context.Context, fn func(tx LedgerTx) error) error
}
