// Package fundflow contains the fund-flow use cases.
package fundflow

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/budget-ledger/backend/internal/application/adapter"
	"github.com/budget-ledger/backend/internal/application/usecase/summary"
	"github.com/budget-ledger/backend/internal/domain/entity"
	domainerror "github.com/budget-ledger/backend/internal/domain/error"
	"github.com/budget-ledger/backend/internal/integration/persistence"
	"github.com/budget-ledger/backend/internal/integration/persistence/model"
)

func openTestStore(t *testing.T) adapter.LedgerStore {
	t.Helper()

	dbSQL, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	dbSQL.SetMaxOpenConns(1)

	db, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open gorm: %v", err)
	}

	if err := db.AutoMigrate(
		&model.SettingsModel{},
		&model.ExpenseModel{},
		&model.IncomeModel{},
		&model.CategoryBudgetModel{},
		&model.SinkingFundModel{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return persistence.NewLedgerRepository(db)
}

func remaining(t *testing.T, store adapter.LedgerStore, userID uuid.UUID) decimal.Decimal {
	t.Helper()
	snapshot, err := store.GetSnapshot(context.Background(), userID)
	if err != nil {
		t.Fatalf("failed to read snapshot: %v", err)
	}
	return summary.RemainingBalance(snapshot, entity.SeedCatalog())
}

func TestAddIncomeRaisesAllowance(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	userID := uuid.New()
	uc := NewAddIncomeUseCase(store, nil)

	out, err := uc.Execute(ctx, AddIncomeInput{UserID: userID, Amount: decimal.NewFromInt(500), Source: "allowance"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Income == nil || !out.Income.Amount.Equal(decimal.NewFromInt(500)) {
		t.Fatalf("unexpected income output: %+v", out)
	}

	settings, err := store.GetSettings(ctx, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !settings.Allowance.Equal(decimal.NewFromInt(500)) {
		t.Errorf("expected allowance 500, got %s", settings.Allowance)
	}
	if got := remaining(t, store, userID); !got.Equal(decimal.NewFromInt(500)) {
		t.Errorf("expected remaining 500, got %s", got)
	}
}

func TestAddIncomeRejectsNonPositiveAmount(t *testing.T) {
	store := openTestStore(t)
	uc := NewAddIncomeUseCase(store, nil)

	_, err := uc.Execute(context.Background(), AddIncomeInput{UserID: uuid.New(), Amount: decimal.Zero})
	if !errors.Is(err, domainerror.ErrInvalidAmount) {
		t.Errorf("expected ErrInvalidAmount, got %v", err)
	}
}

func TestDeleteIncomesReversesAllowance(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	userID := uuid.New()
	add := NewAddIncomeUseCase(store, nil)
	del := NewDeleteIncomesUseCase(store, nil)

	first, err := add.Execute(ctx, AddIncomeInput{UserID: userID, Amount: decimal.NewFromInt(300)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := add.Execute(ctx, AddIncomeInput{UserID: userID, Amount: decimal.NewFromInt(200)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// One real id, one missing: the missing id is skipped, not an error.
	out, err := del.Execute(ctx, DeleteIncomesInput{UserID: userID, IDs: []uuid.UUID{first.Income.ID, uuid.New()}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.DeletedCount != 1 {
		t.Errorf("expected 1 deleted, got %d", out.DeletedCount)
	}

	settings, err := store.GetSettings(ctx, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !settings.Allowance.Equal(decimal.NewFromInt(200)) {
		t.Errorf("expected allowance 200 after reversal, got %s", settings.Allowance)
	}
}

func TestAddExpenseLeavesAllowanceUntouched(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	userID := uuid.New()

	if _, err := NewAddIncomeUseCase(store, nil).Execute(ctx, AddIncomeInput{UserID: userID, Amount: decimal.NewFromInt(500)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	uc := NewAddExpenseUseCase(store, nil)
	if _, err := uc.Execute(ctx, AddExpenseInput{UserID: userID, Amount: decimal.NewFromInt(120), CategoryID: "food"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	settings, err := store.GetSettings(ctx, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !settings.Allowance.Equal(decimal.NewFromInt(500)) {
		t.Errorf("expected allowance unchanged at 500, got %s", settings.Allowance)
	}
	if got := remaining(t, store, userID); !got.Equal(decimal.NewFromInt(380)) {
		t.Errorf("expected remaining 380, got %s", got)
	}
}

func TestAllocateToFundGuardsAgainstOverdraw(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	userID := uuid.New()
	catalog := entity.SeedCatalog()

	if _, err := NewAddIncomeUseCase(store, nil).Execute(ctx, AddIncomeInput{UserID: userID, Amount: decimal.NewFromInt(200)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fund, err := NewCreateSinkingFundUseCase(store).Execute(ctx, CreateSinkingFundInput{UserID: userID, Name: "Laptop", TargetAmount: decimal.NewFromInt(300)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	uc := NewAllocateToFundUseCase(store, catalog, nil)

	t.Run("allocation within balance reserves the money", func(t *testing.T) {
		out, err := uc.Execute(ctx, AllocateToFundInput{UserID: userID, FundID: fund.Fund.ID, Amount: decimal.NewFromInt(150)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Fund.CurrentAmount.Equal(decimal.NewFromInt(150)) {
			t.Errorf("expected current amount 150, got %s", out.Fund.CurrentAmount)
		}
		if got := remaining(t, store, userID); !got.Equal(decimal.NewFromInt(50)) {
			t.Errorf("expected remaining 50, got %s", got)
		}
	})

	t.Run("allocation beyond the balance is rejected and nothing changes", func(t *testing.T) {
		_, err := uc.Execute(ctx, AllocateToFundInput{UserID: userID, FundID: fund.Fund.ID, Amount: decimal.NewFromInt(100)})
		if !errors.Is(err, domainerror.ErrInsufficientBalance) {
			t.Fatalf("expected ErrInsufficientBalance, got %v", err)
		}

		got, err := store.GetFund(ctx, userID, fund.Fund.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.CurrentAmount.Equal(decimal.NewFromInt(150)) {
			t.Errorf("expected current amount unchanged at 150, got %s", got.CurrentAmount)
		}
	})
}

func TestSpendFromFundLiquidation(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	userID := uuid.New()
	catalog := entity.SeedCatalog()

	if _, err := NewAddIncomeUseCase(store, nil).Execute(ctx, AddIncomeInput{UserID: userID, Amount: decimal.NewFromInt(500)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fund, err := NewCreateSinkingFundUseCase(store).Execute(ctx, CreateSinkingFundInput{UserID: userID, Name: "Laptop", TargetAmount: decimal.NewFromInt(300)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	allocate := NewAllocateToFundUseCase(store, catalog, nil)
	spend := NewSpendFromFundUseCase(store, nil)

	t.Run("spending below target is rejected", func(t *testing.T) {
		if _, err := allocate.Execute(ctx, AllocateToFundInput{UserID: userID, FundID: fund.Fund.ID, Amount: decimal.NewFromInt(100)}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, err := spend.Execute(ctx, SpendFromFundInput{UserID: userID, FundID: fund.Fund.ID, CategoryID: "shopping"})
		if !errors.Is(err, domainerror.ErrFundTargetNotMet) {
			t.Errorf("expected ErrFundTargetNotMet, got %v", err)
		}
	})

	t.Run("spending a met target liquidates atomically", func(t *testing.T) {
		if _, err := allocate.Execute(ctx, AllocateToFundInput{UserID: userID, FundID: fund.Fund.ID, Amount: decimal.NewFromInt(200)}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		before := remaining(t, store, userID)

		out, err := spend.Execute(ctx, SpendFromFundInput{UserID: userID, FundID: fund.Fund.ID, CategoryID: "shopping"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Expense.Amount.Equal(decimal.NewFromInt(300)) {
			t.Errorf("expected a 300 expense, got %s", out.Expense.Amount)
		}
		if out.Expense.CategoryID != "shopping" {
			t.Errorf("expected category shopping, got %s", out.Expense.CategoryID)
		}

		if _, err := store.GetFund(ctx, userID, fund.Fund.ID); !errors.Is(err, domainerror.ErrSinkingFundNotFound) {
			t.Errorf("expected the fund to be deleted, got %v", err)
		}

		// Liquidation moves money between subtraction terms; the remaining
		// balance must be identical before and after.
		after := remaining(t, store, userID)
		if !after.Equal(before) {
			t.Errorf("expected remaining balance unchanged (%s), got %s", before, after)
		}
	})
}

func TestDeleteFundReturnsReservedMoney(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	userID := uuid.New()
	catalog := entity.SeedCatalog()

	if _, err := NewAddIncomeUseCase(store, nil).Execute(ctx, AddIncomeInput{UserID: userID, Amount: decimal.NewFromInt(400)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fund, err := NewCreateSinkingFundUseCase(store).Execute(ctx, CreateSinkingFundInput{UserID: userID, Name: "Trip", TargetAmount: decimal.NewFromInt(300)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := NewAllocateToFundUseCase(store, catalog, nil).Execute(ctx, AllocateToFundInput{UserID: userID, FundID: fund.Fund.ID, Amount: decimal.NewFromInt(250)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := remaining(t, store, userID); !got.Equal(decimal.NewFromInt(150)) {
		t.Fatalf("expected remaining 150 before deletion, got %s", got)
	}

	if err := NewDeleteSinkingFundUseCase(store, nil).Execute(ctx, DeleteSinkingFundInput{UserID: userID, FundID: fund.Fund.ID}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := remaining(t, store, userID); !got.Equal(decimal.NewFromInt(400)) {
		t.Errorf("expected remaining 400 after deletion, got %s", got)
	}
}

func TestSetAllowanceOverwritesPool(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	userID := uuid.New()

	if _, err := NewAddIncomeUseCase(store, nil).Execute(ctx, AddIncomeInput{UserID: userID, Amount: decimal.NewFromInt(300)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	uc := NewSetAllowanceUseCase(store, nil)
	out, err := uc.Execute(ctx, SetAllowanceInput{UserID: userID, Amount: decimal.NewFromInt(1000)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Settings.Allowance.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("expected allowance 1000, got %s", out.Settings.Allowance)
	}

	// Incomes recorded after a rebase add on top of the new value.
	if _, err := NewAddIncomeUseCase(store, nil).Execute(ctx, AddIncomeInput{UserID: userID, Amount: decimal.NewFromInt(200)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	settings, err := store.GetSettings(ctx, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !settings.Allowance.Equal(decimal.NewFromInt(1200)) {
		t.Errorf("expected allowance 1200, got %s", settings.Allowance)
	}

	if _, err := uc.Execute(ctx, SetAllowanceInput{UserID: userID, Amount: decimal.NewFromInt(-1)}); !errors.Is(err, domainerror.ErrInvalidAmount) {
		t.Errorf("expected ErrInvalidAmount, got %v", err)
	}
}

func TestSetSavingsBudgetReservesFromBalance(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	userID := uuid.New()

	if _, err := NewAddIncomeUseCase(store, nil).Execute(ctx, AddIncomeInput{UserID: userID, Amount: decimal.NewFromInt(1000)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	uc := NewSetSavingsBudgetUseCase(store, nil)
	out, err := uc.Execute(ctx, SetSavingsBudgetInput{UserID: userID, Amount: decimal.NewFromInt(200)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Budget.CategoryID != entity.SavingsCategoryID {
		t.Errorf("expected the savings category, got %s", out.Budget.CategoryID)
	}

	if got := remaining(t, store, userID); !got.Equal(decimal.NewFromInt(800)) {
		t.Errorf("expected remaining 800, got %s", got)
	}

	// Overwriting replaces the reservation instead of stacking it.
	if _, err := uc.Execute(ctx, SetSavingsBudgetInput{UserID: userID, Amount: decimal.NewFromInt(50)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := remaining(t, store, userID); !got.Equal(decimal.NewFromInt(950)) {
		t.Errorf("expected remaining 950, got %s", got)
	}
}
