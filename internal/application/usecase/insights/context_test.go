package insights

import (
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

func buildSnapshot(userID uuid.UUID) *entity.Snapshot {
	now := time.Now().UTC()
	settings := entity.NewSettings(userID)
	settings.Allowance = dec("1000.00")

	fund := entity.NewSinkingFund(userID, "Trip", dec("500.00"))
	fund.CurrentAmount = dec("300.00")

	return &entity.Snapshot{
		Settings: settings,
		Expenses: []*entity.Expense{
			entity.NewExpense(userID, dec("120.00"), "food", "groceries", now.AddDate(0, 0, -1)),
			entity.NewExpense(userID, dec("80.00"), "transport", "", now),
			entity.NewExpense(userID, dec("50.00"), entity.SavingsCategoryID, "", now),
		},
		Budgets: []*entity.CategoryBudget{
			entity.NewCategoryBudget(userID, entity.SavingsCategoryID, dec("100.00"), nil),
		},
		Funds: []*entity.SinkingFund{fund},
	}
}

func TestBuildSpendingContext(t *testing.T) {
	catalog := entity.SeedCatalog()
	snapshot := buildSnapshot(uuid.New())

	request := BuildSpendingContext(snapshot, catalog)

	// 1000 - 200 spent - 100 savings - 300 reserved.
	if !request.AccumulatedFunds.Equal(dec("400.00")) {
		t.Errorf("expected accumulated funds 400.00, got %s", request.AccumulatedFunds)
	}

	spending := map[string]decimal.Decimal{}
	for _, c := range request.CategorySpending {
		spending[c.Name] = c.Spent
		if c.Classification == string(entity.ClassificationSavings) {
			t.Errorf("expected savings categories to be excluded, found %s", c.Name)
		}
	}
	if !spending["Food & Groceries"].Equal(dec("120.00")) {
		t.Errorf("expected food spending 120.00, got %s", spending["Food & Groceries"])
	}
	if !spending["Transport"].Equal(dec("80.00")) {
		t.Errorf("expected transport spending 80.00, got %s", spending["Transport"])
	}
}

func TestBuildAllocationContext(t *testing.T) {
	catalog := entity.SeedCatalog()
	snapshot := buildSnapshot(uuid.New())

	request := BuildAllocationContext(snapshot, catalog, "saving for a laptop")

	if !request.Allowance.Equal(dec("1000.00")) {
		t.Errorf("expected allowance 1000.00, got %s", request.Allowance)
	}
	if !request.RemainingBalance.Equal(dec("400.00")) {
		t.Errorf("expected remaining 400.00, got %s", request.RemainingBalance)
	}
	if !request.SavingsAmount.Equal(dec("100.00")) {
		t.Errorf("expected savings 100.00, got %s", request.SavingsAmount)
	}
	if request.UserContext != "saving for a laptop" {
		t.Errorf("unexpected user context %q", request.UserContext)
	}

	if len(request.SinkingFunds) != 1 || request.SinkingFunds[0].Name != "Trip" {
		t.Fatalf("unexpected fund summaries: %+v", request.SinkingFunds)
	}
	if !request.SinkingFunds[0].CurrentAmount.Equal(dec("300.00")) {
		t.Errorf("expected fund current 300.00, got %s", request.SinkingFunds[0].CurrentAmount)
	}

	if len(request.RecentExpenses) != 3 {
		t.Fatalf("expected 3 recent expenses, got %d", len(request.RecentExpenses))
	}
	// Newest first.
	first := request.RecentExpenses[0]
	if !first.Amount.Equal(dec("80.00")) && !first.Amount.Equal(dec("50.00")) {
		t.Errorf("expected a same-day expense first, got %s", first.Amount)
	}
	if request.RecentExpenses[2].Name != "groceries" {
		t.Errorf("expected the notes to name the oldest expense, got %q", request.RecentExpenses[2].Name)
	}
}
