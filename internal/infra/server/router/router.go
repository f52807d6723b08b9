// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/budget-ledger/backend/internal/integration/entrypoint/controller"
	"github.com/budget-ledger/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	categoryController    *controller.CategoryController
	settingsController    *controller.SettingsController
	expenseController     *controller.ExpenseController
	incomeController      *controller.IncomeController
	sinkingFundController *controller.SinkingFundController
	budgetPlanController  *controller.BudgetPlanController
	summaryController     *controller.SummaryController
	insightsController    *controller.InsightsController
	insightsRateLimiter   *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	categoryController *controller.CategoryController,
	settingsController *controller.SettingsController,
	expenseController *controller.ExpenseController,
	incomeController *controller.IncomeController,
	sinkingFundController *controller.SinkingFundController,
	budgetPlanController *controller.BudgetPlanController,
	summaryController *controller.SummaryController,
	insightsController *controller.InsightsController,
	insightsRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		categoryController:    categoryController,
		settingsController:    settingsController,
		expenseController:     expenseController,
		incomeController:      incomeController,
		sinkingFundController: sinkingFundController,
		budgetPlanController:  budgetPlanController,
		summaryController:     summaryController,
		insightsController:    insightsController,
		insightsRateLimiter:   insightsRateLimiter,
		authMiddleware:        authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Default middleware: logger and recovery
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		// The catalog is static and user-independent, so no auth.
		if r.categoryController != nil {
			v1.GET("/categories", r.categoryController.List)
		}

		if r.settingsController != nil && r.authMiddleware != nil {
			settings := v1.Group("/settings")
			settings.Use(r.authMiddleware.Authenticate())
			{
				settings.GET("", r.settingsController.Get)
				settings.PUT("/allowance", r.settingsController.SetAllowance)
			}
		}

		if r.expenseController != nil && r.authMiddleware != nil {
			expenses := v1.Group("/expenses")
			expenses.Use(r.authMiddleware.Authenticate())
			{
				expenses.GET("", r.expenseController.List)
				expenses.POST("", r.expenseController.Create)
				expenses.POST("/import", r.expenseController.Import)
				expenses.PUT("/:id", r.expenseController.Update)
				expenses.POST("/delete", r.expenseController.Delete)
			}
		}

		if r.incomeController != nil && r.authMiddleware != nil {
			incomes := v1.Group("/incomes")
			incomes.Use(r.authMiddleware.Authenticate())
			{
				incomes.GET("", r.incomeController.List)
				incomes.POST("", r.incomeController.Create)
				incomes.POST("/delete", r.incomeController.Delete)
			}
		}

		if r.sinkingFundController != nil && r.authMiddleware != nil {
			funds := v1.Group("/sinking-funds")
			funds.Use(r.authMiddleware.Authenticate())
			{
				funds.GET("", r.sinkingFundController.List)
				funds.POST("", r.sinkingFundController.Create)
				funds.PUT("/:id", r.sinkingFundController.Update)
				funds.DELETE("/:id", r.sinkingFundController.Delete)
				funds.POST("/:id/allocate", r.sinkingFundController.Allocate)
				funds.POST("/:id/spend", r.sinkingFundController.Spend)
			}
		}

		if r.budgetPlanController != nil && r.authMiddleware != nil {
			plan := v1.Group("/budget-plan")
			plan.Use(r.authMiddleware.Authenticate())
			{
				plan.GET("", r.budgetPlanController.Get)
				plan.POST("", r.budgetPlanController.Save)
				plan.POST("/reset", r.budgetPlanController.Reset)
				plan.PUT("/savings", r.budgetPlanController.SetSavingsBudget)
				plan.PUT("/target", r.budgetPlanController.SetBudgetTarget)
			}
		}

		if r.summaryController != nil && r.authMiddleware != nil {
			sum := v1.Group("/summary")
			sum.Use(r.authMiddleware.Authenticate())
			{
				sum.GET("", r.summaryController.Get)
				sum.GET("/categories", r.summaryController.Breakdown)
			}
		}

		if r.insightsController != nil && r.authMiddleware != nil && r.insightsRateLimiter != nil {
			insights := v1.Group("/insights")
			insights.Use(r.authMiddleware.Authenticate())
			insights.Use(r.insightsRateLimiter.Middleware())
			{
				insights.POST("/suggestion", r.insightsController.SpendingSuggestion)
				insights.POST("/allocation", r.insightsController.AllocationHelper)
			}
		}
	}
}
