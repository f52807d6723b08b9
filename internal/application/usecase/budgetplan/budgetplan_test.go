// Package budgetplan contains the budget plan lifecycle use cases.
package budgetplan

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

func TestSavePlanValidation(t *testing.T) {
	store := openTestStore(t)
	uc := NewSavePlanUseCase(store, nil)
	ctx := context.Background()
	userID := uuid.New()

	t.Run("empty plans are rejected", func(t *testing.T) {
		_, err := uc.Execute(ctx, SavePlanInput{UserID: userID, Percentages: nil, BalanceSnapshot: decimal.NewFromInt(1000)})
		if !errors.Is(err, domainerror.ErrEmptyPlan) {
			t.Errorf("expected ErrEmptyPlan, got %v", err)
		}
	})

	t.Run("the savings category is not plannable", func(t *testing.T) {
		_, err := uc.Execute(ctx, SavePlanInput{
			UserID:          userID,
			Percentages:     map[string]float64{entity.SavingsCategoryID: 20},
			BalanceSnapshot: decimal.NewFromInt(1000),
		})
		if !errors.Is(err, domainerror.ErrSavingsNotPlannable) {
			t.Errorf("expected ErrSavingsNotPlannable, got %v", err)
		}
	})

	t.Run("percentages outside 0-100 are rejected", func(t *testing.T) {
		_, err := uc.Execute(ctx, SavePlanInput{
			UserID:          userID,
			Percentages:     map[string]float64{"food": 120},
			BalanceSnapshot: decimal.NewFromInt(1000),
		})
		if !errors.Is(err, domainerror.ErrInvalidPercentage) {
			t.Errorf("expected ErrInvalidPercentage, got %v", err)
		}
	})

	t.Run("a total above one hundred is rejected", func(t *testing.T) {
		_, err := uc.Execute(ctx, SavePlanInput{
			UserID:          userID,
			Percentages:     map[string]float64{"food": 60, "transport": 50},
			BalanceSnapshot: decimal.NewFromInt(1000),
		})
		if !errors.Is(err, domainerror.ErrPercentageOverflow) {
			t.Errorf("expected ErrPercentageOverflow, got %v", err)
		}
	})
}

func TestPlanLifecycle(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	userID := uuid.New()
	catalog := entity.SeedCatalog()

	save := NewSavePlanUseCase(store, nil)
	get := NewGetPlanUseCase(store, catalog)
	reset := NewResetPlanUseCase(store, nil)

	out, err := save.Execute(ctx, SavePlanInput{
		UserID:          userID,
		Percentages:     map[string]float64{"food": 40, "transport": 10},
		BalanceSnapshot: decimal.NewFromInt(1000),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.BalanceAtBudgetSet.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("expected snapshot 1000, got %s", out.BalanceAtBudgetSet)
	}

	t.Run("saving prices budgets off the snapshot and locks", func(t *testing.T) {
		plan, err := get.Execute(ctx, GetPlanInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !plan.Locked {
			t.Error("expected the plan to be locked")
		}
		if !plan.PlanningBalance.Equal(decimal.NewFromInt(1000)) {
			t.Errorf("expected planning balance 1000, got %s", plan.PlanningBalance)
		}

		amounts := map[string]decimal.Decimal{}
		for _, b := range plan.Budgets {
			amounts[b.CategoryID] = b.Amount
		}
		if !amounts["food"].Equal(decimal.NewFromInt(400)) {
			t.Errorf("expected food budget 400, got %s", amounts["food"])
		}
		if !amounts["transport"].Equal(decimal.NewFromInt(100)) {
			t.Errorf("expected transport budget 100, got %s", amounts["transport"])
		}
	})

	t.Run("saving again while locked is rejected", func(t *testing.T) {
		_, err := save.Execute(ctx, SavePlanInput{
			UserID:          userID,
			Percentages:     map[string]float64{"food": 10},
			BalanceSnapshot: decimal.NewFromInt(500),
		})
		if !errors.Is(err, domainerror.ErrPlanLocked) {
			t.Errorf("expected ErrPlanLocked, got %v", err)
		}
	})

	t.Run("reset zeroes planned budgets and unlocks", func(t *testing.T) {
		if err := reset.Execute(ctx, ResetPlanInput{UserID: userID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		plan, err := get.Execute(ctx, GetPlanInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if plan.Locked {
			t.Error("expected the plan to be unlocked after reset")
		}
		for _, b := range plan.Budgets {
			if !b.Amount.IsZero() {
				t.Errorf("expected budget %s to be zeroed, got %s", b.CategoryID, b.Amount)
			}
		}
	})

	t.Run("resetting without a locked plan is rejected", func(t *testing.T) {
		err := reset.Execute(ctx, ResetPlanInput{UserID: userID})
		if !errors.Is(err, domainerror.ErrNoPlanLocked) {
			t.Errorf("expected ErrNoPlanLocked, got %v", err)
		}
	})
}

func TestResetPreservesSavingsBudget(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	userID := uuid.New()
	catalog := entity.SeedCatalog()

	// A savings reservation set outside the plan lifecycle.
	savings := entity.NewCategoryBudget(userID, entity.SavingsCategoryID, decimal.NewFromInt(150), nil)
	if err := store.UpsertBudget(ctx, savings); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	save := NewSavePlanUseCase(store, nil)
	if _, err := save.Execute(ctx, SavePlanInput{
		UserID:          userID,
		Percentages:     map[string]float64{"food": 40},
		BalanceSnapshot: decimal.NewFromInt(1000),
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := NewResetPlanUseCase(store, nil).Execute(ctx, ResetPlanInput{UserID: userID}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	plan, err := NewGetPlanUseCase(store, catalog).Execute(ctx, GetPlanInput{UserID: userID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, b := range plan.Budgets {
		switch b.CategoryID {
		case entity.SavingsCategoryID:
			if !b.Amount.Equal(decimal.NewFromInt(150)) {
				t.Errorf("expected the savings budget preserved at 150, got %s", b.Amount)
			}
		default:
			if !b.Amount.IsZero() {
				t.Errorf("expected budget %s zeroed, got %s", b.CategoryID, b.Amount)
			}
		}
	}
}
