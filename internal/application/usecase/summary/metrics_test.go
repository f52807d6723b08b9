// Package summary computes derived ledger metrics.
package summary

import (
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-ledger/backend/internal/domain/entity"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func testSnapshot(userID uuid.UUID) *entity.Snapshot {
	return &entity.Snapshot{
		Settings: entity.NewSettings(userID),
	}
}

func expense(userID uuid.UUID, amount, categoryID string, date time.Time) *entity.Expense {
	return entity.NewExpense(userID, dec(amount), categoryID, "", date)
}

func TestTotalSpent(t *testing.T) {
	catalog := entity.SeedCatalog()
	userID := uuid.New()
	now := time.Now().UTC()

	t.Run("sums non-savings expenses", func(t *testing.T) {
		snapshot := testSnapshot(userID)
		snapshot.Expenses = []*entity.Expense{
			expense(userID, "120.50", "food", now),
			expense(userID, "30.00", "transport", now),
		}

		if got := TotalSpent(snapshot, catalog); !got.Equal(dec("150.50")) {
			t.Errorf("expected 150.50, got %s", got)
		}
	})

	t.Run("excludes savings-classified expenses", func(t *testing.T) {
		snapshot := testSnapshot(userID)
		snapshot.Expenses = []*entity.Expense{
			expense(userID, "100.00", "food", now),
			expense(userID, "50.00", entity.SavingsCategoryID, now),
		}

		if got := TotalSpent(snapshot, catalog); !got.Equal(dec("100.00")) {
			t.Errorf("expected 100.00, got %s", got)
		}
	})

	t.Run("counts unknown categories as spending", func(t *testing.T) {
		snapshot := testSnapshot(userID)
		snapshot.Expenses = []*entity.Expense{
			expense(userID, "40.00", "no-such-category", now),
		}

		if got := TotalSpent(snapshot, catalog); !got.Equal(dec("40.00")) {
			t.Errorf("expected 40.00, got %s", got)
		}
	})
}

func TestRemainingBalance(t *testing.T) {
	catalog := entity.SeedCatalog()
	userID := uuid.New()
	now := time.Now().UTC()

	t.Run("subtracts spent, saved, and reserved amounts", func(t *testing.T) {
		snapshot := testSnapshot(userID)
		snapshot.Settings.Allowance = dec("1000.00")
		snapshot.Expenses = []*entity.Expense{expense(userID, "200.00", "food", now)}
		snapshot.Budgets = []*entity.CategoryBudget{
			entity.NewCategoryBudget(userID, entity.SavingsCategoryID, dec("100.00"), nil),
		}
		fund := entity.NewSinkingFund(userID, "Trip", dec("500.00"))
		fund.CurrentAmount = dec("300.00")
		snapshot.Funds = []*entity.SinkingFund{fund}

		if got := RemainingBalance(snapshot, catalog); !got.Equal(dec("400.00")) {
			t.Errorf("expected 400.00, got %s", got)
		}
	})

	t.Run("may go negative", func(t *testing.T) {
		snapshot := testSnapshot(userID)
		snapshot.Settings.Allowance = dec("100.00")
		snapshot.Expenses = []*entity.Expense{expense(userID, "150.00", "shopping", now)}

		if got := RemainingBalance(snapshot, catalog); !got.Equal(dec("-50.00")) {
			t.Errorf("expected -50.00, got %s", got)
		}
	})
}

func TestDailyAverage(t *testing.T) {
	catalog := entity.SeedCatalog()
	userID := uuid.New()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("zero without spending expenses", func(t *testing.T) {
		snapshot := testSnapshot(userID)

		if got := DailyAverage(snapshot, catalog, now); !got.IsZero() {
			t.Errorf("expected zero, got %s", got)
		}
	})

	t.Run("divides by days since earliest expense inclusive", func(t *testing.T) {
		snapshot := testSnapshot(userID)
		snapshot.Expenses = []*entity.Expense{
			expense(userID, "90.00", "food", now.AddDate(0, 0, -2)),
			expense(userID, "30.00", "transport", now),
		}

		// Three elapsed days: the expense day, yesterday, and today.
		if got := DailyAverage(snapshot, catalog, now); !got.Equal(dec("40.00")) {
			t.Errorf("expected 40.00, got %s", got)
		}
	})

	t.Run("same-day spending counts as one day", func(t *testing.T) {
		snapshot := testSnapshot(userID)
		snapshot.Expenses = []*entity.Expense{expense(userID, "75.00", "food", now)}

		if got := DailyAverage(snapshot, catalog, now); !got.Equal(dec("75.00")) {
			t.Errorf("expected 75.00, got %s", got)
		}
	})

	t.Run("savings expenses do not set the earliest date", func(t *testing.T) {
		snapshot := testSnapshot(userID)
		snapshot.Expenses = []*entity.Expense{
			expense(userID, "500.00", entity.SavingsCategoryID, now.AddDate(0, 0, -9)),
			expense(userID, "60.00", "food", now),
		}

		if got := DailyAverage(snapshot, catalog, now); !got.Equal(dec("60.00")) {
			t.Errorf("expected 60.00, got %s", got)
		}
	})
}

func TestDailyRate(t *testing.T) {
	tests := []struct {
		name   string
		target entity.BudgetTarget
		want   string
	}{
		{"daily passes through", entity.BudgetTarget{Amount: dec("50.00"), Period: entity.BudgetPeriodDaily}, "50.00"},
		{"weekly divides by seven", entity.BudgetTarget{Amount: dec("210.00"), Period: entity.BudgetPeriodWeekly}, "30.00"},
		{"monthly divides by thirty", entity.BudgetTarget{Amount: dec("300.00"), Period: entity.BudgetPeriodMonthly}, "10.00"},
		{"zero amount yields zero rate", entity.BudgetTarget{Amount: decimal.Zero, Period: entity.BudgetPeriodDaily}, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DailyRate(tt.target); !got.Equal(dec(tt.want)) {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestSurvivalDays(t *testing.T) {
	catalog := entity.SeedCatalog()
	userID := uuid.New()
	now := time.Now().UTC()

	t.Run("zero when the balance is not positive", func(t *testing.T) {
		snapshot := testSnapshot(userID)

		if got := SurvivalDays(snapshot, catalog, now); got != 0 {
			t.Errorf("expected 0, got %v", got)
		}
	})

	t.Run("unbounded with money but no spend rate", func(t *testing.T) {
		snapshot := testSnapshot(userID)
		snapshot.Settings.Allowance = dec("500.00")

		if got := SurvivalDays(snapshot, catalog, now); !math.IsInf(got, 1) {
			t.Errorf("expected +Inf, got %v", got)
		}
	})

	t.Run("budget target takes precedence over the daily average", func(t *testing.T) {
		snapshot := testSnapshot(userID)
		snapshot.Settings.Allowance = dec("500.00")
		snapshot.Settings.BudgetTarget = entity.BudgetTarget{
			Amount: dec("300.00"),
			Period: entity.BudgetPeriodMonthly,
		}
		snapshot.Expenses = []*entity.Expense{expense(userID, "100.00", "food", now)}

		// Remaining 400 at 10/day.
		if got := SurvivalDays(snapshot, catalog, now); got != 40 {
			t.Errorf("expected 40, got %v", got)
		}
	})

	t.Run("falls back to the observed daily average", func(t *testing.T) {
		snapshot := testSnapshot(userID)
		snapshot.Settings.Allowance = dec("500.00")
		snapshot.Expenses = []*entity.Expense{expense(userID, "100.00", "food", now)}

		// Remaining 400 at 100/day.
		if got := SurvivalDays(snapshot, catalog, now); got != 4 {
			t.Errorf("expected 4, got %v", got)
		}
	})
}

func TestPlanningBalance(t *testing.T) {
	catalog := entity.SeedCatalog()
	userID := uuid.New()

	t.Run("uses the locked snapshot when a plan is active", func(t *testing.T) {
		snapshot := testSnapshot(userID)
		snapshot.Settings.Allowance = dec("1000.00")
		snapshot.Settings.BalanceAtBudgetSet = dec("800.00")

		if got := PlanningBalance(snapshot, catalog); !got.Equal(dec("800.00")) {
			t.Errorf("expected 800.00, got %s", got)
		}
	})

	t.Run("uses the live balance without a locked plan", func(t *testing.T) {
		snapshot := testSnapshot(userID)
		snapshot.Settings.Allowance = dec("1000.00")

		if got := PlanningBalance(snapshot, catalog); !got.Equal(dec("1000.00")) {
			t.Errorf("expected 1000.00, got %s", got)
		}
	})
}
