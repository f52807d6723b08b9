// Package main is the entry point for the Budget Ledger API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/budget-ledger/backend/config"
	"github.com/budget-ledger/backend/internal/application/adapter"
	"github.com/budget-ledger/backend/internal/application/usecase/budgetplan"
	"github.com/budget-ledger/backend/internal/application/usecase/fundflow"
	"github.com/budget-ledger/backend/internal/application/usecase/insights"
	"github.com/budget-ledger/backend/internal/application/usecase/summary"
	"github.com/budget-ledger/backend/internal/domain/entity"
	"github.com/budget-ledger/backend/internal/infra/db"
	"github.com/budget-ledger/backend/internal/infra/server/router"
	"github.com/budget-ledger/backend/internal/integration/adapters"
	"github.com/budget-ledger/backend/internal/integration/cache"
	"github.com/budget-ledger/backend/internal/integration/entrypoint/controller"
	"github.com/budget-ledger/backend/internal/integration/entrypoint/middleware"
	"github.com/budget-ledger/backend/internal/integration/persistence"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting Budget Ledger API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	// Run database migrations
	if err := database.MigrateLedgerSchema(); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	// Summary cache is optional; the engine recomputes on every miss.
	var summaryCache adapter.SummaryCache
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			slog.Warn("Redis unavailable, running without summary cache", "error", err)
		} else {
			summaryCache = cache.NewRedisSummaryCache(redisClient)
			slog.Info("Summary cache initialized", "addr", cfg.Redis.Addr)
		}
	}

	// Core dependencies
	catalog := entity.SeedCatalog()
	store := persistence.NewLedgerRepository(database.DB())
	tokenService := adapters.NewTokenService(cfg.JWT.Secret)
	suggestionService := adapters.NewGeminiService(cfg.Gemini.APIKey)

	// Fund-flow use cases
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

	// Budget plan use cases
	getPlan := budgetplan.NewGetPlanUseCase(store, catalog)
	savePlan := budgetplan.NewSavePlanUseCase(store, summaryCache)
	resetPlan := budgetplan.NewResetPlanUseCase(store, summaryCache)

	// Summary use cases
	getSummary := summary.NewGetSummaryUseCase(store, catalog, summaryCache)
	getBreakdown := summary.NewGetCategoryBreakdownUseCase(store, catalog)

	// Insight use cases
	spendingSuggestion := insights.NewGetSpendingSuggestionUseCase(store, catalog, suggestionService)
	allocationHelper := insights.NewGetAllocationHelperUseCase(store, catalog, suggestionService)

	// Controllers and middleware
	healthController := controller.NewHealthController(database.HealthCheck)
	categoryController := controller.NewCategoryController(catalog)
	settingsController := controller.NewSettingsController(getSettings, setAllowance)
	expenseController := controller.NewExpenseController(listExpenses, addExpense, importExpenses, updateExpense, deleteExpenses)
	incomeController := controller.NewIncomeController(listIncomes, addIncome, deleteIncomes)
	sinkingFundController := controller.NewSinkingFundController(listFunds, createFund, updateFund, deleteFund, allocateToFund, spendFromFund)
	budgetPlanController := controller.NewBudgetPlanController(getPlan, savePlan, resetPlan, setSavingsBudget, setBudgetTarget)
	summaryController := controller.NewSummaryController(getSummary, getBreakdown)
	insightsController := controller.NewInsightsController(spendingSuggestion, allocationHelper)
	insightsRateLimiter := middleware.NewRateLimiterWithConfig(cfg.Insights.MaxAttempts, cfg.Insights.Window)
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Setup router
	r := router.NewRouter(
		healthController,
		categoryController,
		settingsController,
		expenseController,
		incomeController,
		sinkingFundController,
		budgetPlanController,
		summaryController,
		insightsController,
		insightsRateLimiter,
		authMiddleware,
	)
	engine := r.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
