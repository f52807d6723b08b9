package steps

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cucumber/godog"
)

func registerLedgerSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^I have recorded an income of "([^"]*)"$`, iHaveRecordedAnIncomeOf)
	ctx.Step(`^I have recorded an expense of "([^"]*)" in category "([^"]*)"$`, iHaveRecordedAnExpenseOf)
	ctx.Step(`^I have a sinking fund "([^"]*)" with target "([^"]*)"$`, iHaveASinkingFund)
	ctx.Step(`^I have allocated "([^"]*)" to fund "([^"]*)"$`, iHaveAllocatedToFund)
	ctx.Step(`^I have locked a budget plan with balance "([^"]*)" and "([^"]*)" at (\d+) percent$`, iHaveLockedABudgetPlan)
	ctx.Step(`^the summary field "([^"]*)" should be "([^"]*)"$`, theSummaryFieldShouldBe)
	ctx.Step(`^the summary field "([^"]*)" should be null$`, theSummaryFieldShouldBeNull)
	ctx.Step(`^the "([^"]*)" table should have (\d+) rows$`, theTableShouldHaveRows)
}

// seed performs a request during a Given step and fails the scenario if the
// API did not accept it.
func seed(ctx context.Context, method, endpoint, body string) (context.Context, error) {
	ctx, err := doRequest(ctx, method, endpoint, body)
	if err != nil {
		return ctx, err
	}
	tc := GetTestContext(ctx)
	if tc.response.StatusCode < 200 || tc.response.StatusCode >= 300 {
		return ctx, fmt.Errorf("seed request %s %s failed with status %d: %s",
			method, endpoint, tc.response.StatusCode, string(tc.responseBody))
	}
	return ctx, nil
}

func iHaveRecordedAnIncomeOf(ctx context.Context, amount string) (context.Context, error) {
	return seed(ctx, "POST", "/api/v1/incomes", fmt.Sprintf(`{"amount": %s}`, amount))
}

func iHaveRecordedAnExpenseOf(ctx context.Context, amount, categoryID string) (context.Context, error) {
	body := fmt.Sprintf(`{"amount": %s, "category_id": %q}`, amount, categoryID)
	return seed(ctx, "POST", "/api/v1/expenses", body)
}

func iHaveASinkingFund(ctx context.Context, name, target string) (context.Context, error) {
	body := fmt.Sprintf(`{"name": %q, "target_amount": %s}`, name, target)
	ctx, err := seed(ctx, "POST", "/api/v1/sinking-funds", body)
	if err != nil {
		return ctx, err
	}

	tc := GetTestContext(ctx)
	var created struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(tc.responseBody, &created); err != nil {
		return ctx, fmt.Errorf("failed to parse created fund: %w", err)
	}
	if created.ID == "" {
		return ctx, fmt.Errorf("fund creation returned no id: %s", string(tc.responseBody))
	}
	tc.fundIDs[name] = created.ID
	return SetTestContext(ctx, tc), nil
}

func iHaveAllocatedToFund(ctx context.Context, amount, name string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	fundID, ok := tc.fundIDs[name]
	if !ok {
		return ctx, fmt.Errorf("unknown fund %q", name)
	}
	body := fmt.Sprintf(`{"amount": %s}`, amount)
	return seed(ctx, "POST", "/api/v1/sinking-funds/"+fundID+"/allocate", body)
}

func iHaveLockedABudgetPlan(ctx context.Context, balance, categoryID string, percent int) (context.Context, error) {
	body := fmt.Sprintf(`{"percentages": {%q: %d}, "balance_snapshot": %s}`, categoryID, percent, balance)
	return seed(ctx, "POST", "/api/v1/budget-plan", body)
}

func theSummaryFieldShouldBe(ctx context.Context, field, expected string) error {
	ctx, err := doRequest(ctx, "GET", "/api/v1/summary", "")
	if err != nil {
		return err
	}
	if err := theResponseStatusShouldBe(ctx, 200); err != nil {
		return err
	}
	return theResponseFieldShouldBe(ctx, field, expected)
}

func theSummaryFieldShouldBeNull(ctx context.Context, field string) error {
	ctx, err := doRequest(ctx, "GET", "/api/v1/summary", "")
	if err != nil {
		return err
	}
	if err := theResponseStatusShouldBe(ctx, 200); err != nil {
		return err
	}
	return theResponseFieldShouldBeNull(ctx, field)
}

func theTableShouldHaveRows(ctx context.Context, table string, expected int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	count, err := tc.db.Count(table)
	if err != nil {
		return fmt.Errorf("failed to count rows in %q: %w", table, err)
	}
	if count != int64(expected) {
		return fmt.Errorf("expected %d rows in %q, got %d", expected, table, count)
	}
	return nil
}
