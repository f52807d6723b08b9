// Package steps provides step definitions for the BDD integration suite.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/budget-ledger/backend/internal/application/usecase/budgetplan"
	"github.com/budget-ledger/backend/internal/application/usecase/fundflow"
	"github.com/budget-ledger/backend/internal/application/usecase/insights"
	"github.com/budget-ledger/backend/internal/application/usecase/summary"
	"github.com/budget-ledger/backend/internal/domain/entity"
	"github.com/budget-ledger/backend/internal/infra/server/router"
	"github.com/budget-ledger/backend/internal/integration/adapters"
	"github.com/budget-ledger/backend/internal/integration/cache"
	"github.com/budget-ledger/backend/internal/integration/entrypoint/controller"
	"github.com/budget-ledger/backend/internal/integration/entrypoint/middleware"
	"github.com/budget-ledger/backend/internal/integration/persistence"
	"github.com/budget-ledger/backend/test/integration/mock"
)

const testJWTSecret = "integration-test-secret"

// TestContext holds per-scenario state: the server under test, its backing
// mocks, the last HTTP exchange and ids captured from earlier responses.
type TestContext struct {
	server     *httptest.Server
	db         *mock.Db
	suggestion *mock.SuggestionService

	response     *http.Response
	responseBody []byte

	requestHeaders map[string]string

	userID      uuid.UUID
	accessToken string

	// fundIDs maps a fund name used in a Given step to the id the API
	// returned, so later steps can address "the fund" by name.
	fundIDs map[string]string
}

type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		// Disable the insights rate limiter for the suite.
		_ = os.Setenv("E2E_MODE", "true")
	})
}

// InitializeScenario wires a fresh application instance per scenario and
// registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		redisClient := mock.NewRedis()
		if err := mock.ClearRedis(redisClient); err != nil {
			return ctx, fmt.Errorf("failed to flush redis: %w", err)
		}

		tc := &TestContext{
			db:             mock.NewDb(),
			suggestion:     mock.NewSuggestionService(),
			requestHeaders: make(map[string]string),
			userID:         uuid.New(),
			fundIDs:        make(map[string]string),
		}

		catalog := entity.SeedCatalog()
		store := persistence.NewLedgerRepository(tc.db.DbConn)
		summaryCache := cache.NewRedisSummaryCache(redisClient)
		tokenService := adapters.NewTokenService(testJWTSecret)

		listExpenses := fundflow.NewListExpensesUseCase(store)
		addExpense := fundflow.NewAddExpenseUseCase(store, summaryCache)
		importExpenses := fundflow.NewImportExpensesUseCase(store, summaryCache)
		updateExpense := fundflow.NewUpdateExpenseUseCase(store, summaryCache)
		deleteExpenses := fundflow.NewDeleteExpensesUseCase(store, summaryCache)
		listIncomes := fundflow.NewListIncomesUseCase(store)
		addIncome := fundflow.NewAddIncomeUseCase(store, summaryCache)
		deleteIncomes := fundflow.NewDeleteIncomesUseCase(store, summaryCache)
		listFunds := fundflow.NewListSinkingFundsUseCase(store)
		createFund := fundflow.NewCreateSinkingFundUseCase(store)
		updateFund := fundflow.NewUpdateSinkingFundUseCase(store, summaryCache)
		deleteFund := fundflow.NewDeleteSinkingFundUseCase(store, summaryCache)
		allocateToFund := fundflow.NewAllocateToFundUseCase(store, catalog, summaryCache)
		spendFromFund := fundflow.NewSpendFromFundUseCase(store, summaryCache)
		setSavingsBudget := fundflow.NewSetSavingsBudgetUseCase(store, summaryCache)
		setBudgetTarget := fundflow.NewSetBudgetTargetUseCase(store, summaryCache)
		getSettings := fundflow.NewGetSettingsUseCase(store)
		setAllowance := fundflow.NewSetAllowanceUseCase(store, summaryCache)

		getPlan := budgetplan.NewGetPlanUseCase(store, catalog)
		savePlan := budgetplan.NewSavePlanUseCase(store, summaryCache)
		resetPlan := budgetplan.NewResetPlanUseCase(store, summaryCache)

		getSummary := summary.NewGetSummaryUseCase(store, catalog, summaryCache)
		getBreakdown := summary.NewGetCategoryBreakdownUseCase(store, catalog)

		spendingSuggestion := insights.NewGetSpendingSuggestionUseCase(store, catalog, tc.suggestion)
		allocationHelper := insights.NewGetAllocationHelperUseCase(store, catalog, tc.suggestion)

		r := router.NewRouter(
			controller.NewHealthController(func() bool { return true }),
			controller.NewCategoryController(catalog),
			controller.NewSettingsController(getSettings, setAllowance),
			controller.NewExpenseController(listExpenses, addExpense, importExpenses, updateExpense, deleteExpenses),
			controller.NewIncomeController(listIncomes, addIncome, deleteIncomes),
			controller.NewSinkingFundController(listFunds, createFund, updateFund, deleteFund, allocateToFund, spendFromFund),
			controller.NewBudgetPlanController(getPlan, savePlan, resetPlan, setSavingsBudget, setBudgetTarget),
			controller.NewSummaryController(getSummary, getBreakdown),
			controller.NewInsightsController(spendingSuggestion, allocationHelper),
			middleware.NewRateLimiterWithConfig(5, time.Minute),
			middleware.NewAuthMiddleware(tokenService),
		)
		tc.server = httptest.NewServer(r.Setup("test"))

		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if tc := GetTestContext(ctx); tc != nil && tc.server != nil {
			tc.server.Close()
		}
		return ctx, nil
	})

	registerAPISteps(ctx)
	registerResponseSteps(ctx)
	registerLedgerSteps(ctx)
}

func registerAPISteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^I am authenticated$`, iAmAuthenticated)
	ctx.Step(`^I am not authenticated$`, iAmNotAuthenticated)
	ctx.Step(`^I set header "([^"]*)" to "([^"]*)"$`, iSetHeaderTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
}

func registerResponseSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response should contain "([^"]*)"$`, theResponseShouldContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should be null$`, theResponseFieldShouldBeNull)
	ctx.Step(`^the error code should be "([^"]*)"$`, theErrorCodeShouldBe)
}

// signToken issues an HS256 token for the scenario user, mirroring what the
// external identity provider would hand the client.
func signToken(userID uuid.UUID) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
}

func iAmAuthenticated(ctx context.Context) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	token, err := signToken(tc.userID)
	if err != nil {
		return ctx, fmt.Errorf("failed to sign token: %w", err)
	}
	tc.accessToken = token
	return SetTestContext(ctx, tc), nil
}

func iAmNotAuthenticated(ctx context.Context) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	tc.accessToken = ""
	return SetTestContext(ctx, tc), nil
}

func iSetHeaderTo(ctx context.Context, header, value string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	tc.requestHeaders[header] = value
	return SetTestContext(ctx, tc), nil
}

func iSendARequestTo(ctx context.Context, method, endpoint string) (context.Context, error) {
	return doRequest(ctx, method, endpoint, "")
}

func iSendARequestToWithBody(ctx context.Context, method, endpoint string, body *godog.DocString) (context.Context, error) {
	return doRequest(ctx, method, endpoint, body.Content)
}

func doRequest(ctx context.Context, method, endpoint, body string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	endpoint = tc.expandPlaceholders(endpoint)
	body = tc.expandPlaceholders(body)

	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req, err := http.NewRequest(method, tc.server.URL+endpoint, reader)
	if err != nil {
		return ctx, fmt.Errorf("failed to create request: %w", err)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range tc.requestHeaders {
		req.Header.Set(key, value)
	}
	if tc.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+tc.accessToken)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return ctx, fmt.Errorf("failed to send request: %w", err)
	}
	tc.response = resp
	tc.responseBody, err = io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return ctx, fmt.Errorf("failed to read response body: %w", err)
	}

	return SetTestContext(ctx, tc), nil
}

// expandPlaceholders replaces {fund:Name} markers with ids captured when the
// fund was created, so features never hard-code generated uuids.
func (tc *TestContext) expandPlaceholders(s string) string {
	for name, id := range tc.fundIDs {
		s = strings.ReplaceAll(s, "{fund:"+name+"}", id)
	}
	return s
}

func theResponseStatusShouldBe(ctx context.Context, expectedStatus int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if tc.response == nil {
		return fmt.Errorf("no response received")
	}
	if tc.response.StatusCode != expectedStatus {
		return fmt.Errorf("expected status %d, got %d. Body: %s", expectedStatus, tc.response.StatusCode, string(tc.responseBody))
	}
	return nil
}

func theResponseShouldContain(ctx context.Context, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if !strings.Contains(string(tc.responseBody), expected) {
		return fmt.Errorf("response does not contain %q. Body: %s", expected, string(tc.responseBody))
	}
	return nil
}

// theResponseFieldShouldBe compares a dotted JSON path against an expected
// value. Numbers are compared numerically so "380" matches 380.0.
func theResponseFieldShouldBe(ctx context.Context, field, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	value, err := tc.lookupField(field)
	if err != nil {
		return err
	}

	if number, ok := value.(float64); ok {
		expectedNumber, convErr := strconv.ParseFloat(expected, 64)
		if convErr != nil {
			return fmt.Errorf("field %q is numeric (%v) but expected value %q is not", field, number, expected)
		}
		diff := number - expectedNumber
		if diff < -0.001 || diff > 0.001 {
			return fmt.Errorf("field %q expected %v, got %v. Body: %s", field, expectedNumber, number, string(tc.responseBody))
		}
		return nil
	}

	actual := fmt.Sprintf("%v", value)
	if actual != expected {
		return fmt.Errorf("field %q expected %q, got %q. Body: %s", field, expected, actual, string(tc.responseBody))
	}
	return nil
}

func theResponseFieldShouldBeNull(ctx context.Context, field string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	value, err := tc.lookupField(field)
	if err != nil {
		return err
	}
	if value != nil {
		return fmt.Errorf("field %q expected null, got %v", field, value)
	}
	return nil
}

func theErrorCodeShouldBe(ctx context.Context, code string) error {
	return theResponseFieldShouldBe(ctx, "code", code)
}

// lookupField walks a dotted path through the JSON response body. Path
// segments that parse as integers index into arrays.
func (tc *TestContext) lookupField(path string) (any, error) {
	var data any
	if err := json.Unmarshal(tc.responseBody, &data); err != nil {
		return nil, fmt.Errorf("failed to parse response JSON: %w", err)
	}

	current := data
	for _, segment := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]any:
			value, ok := node[segment]
			if !ok {
				return nil, fmt.Errorf("field %q not found in response. Body: %s", path, string(tc.responseBody))
			}
			current = value
		case []any:
			index, err := strconv.Atoi(segment)
			if err != nil || index < 0 || index >= len(node) {
				return nil, fmt.Errorf("invalid array index %q in path %q", segment, path)
			}
			current = node[index]
		default:
			return nil, fmt.Errorf("cannot descend into %q at segment %q", path, segment)
		}
	}
	return current, nil
}
