// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/budget-ledger/backend/internal/application/usecase/budgetplan"
	"github.com/budget-ledger/backend/internal/application/usecase/fundflow"
	"github.com/budget-ledger/backend/internal/domain/entity"
	"github.com/budget-ledger/backend/internal/integration/entrypoint/dto"
	"github.com/budget-ledger/backend/internal/integration/entrypoint/middleware"
)

// BudgetPlanController handles budget plan and budget target endpoints.
type BudgetPlanController struct {
	getUseCase        *budgetplan.GetPlanUseCase
	saveUseCase       *budgetplan.SavePlanUseCase
	resetUseCase      *budgetplan.ResetPlanUseCase
	setSavingsUseCase *fundflow.SetSavingsBudgetUseCase
	setTargetUseCase  *fundflow.SetBudgetTargetUseCase
}

// NewBudgetPlanController creates a new budget plan controller instance.
func NewBudgetPlanController(
	getUseCase *budgetplan.GetPlanUseCase,
	saveUseCase *budgetplan.SavePlanUseCase,
	resetUseCase *budgetplan.ResetPlanUseCase,
	setSavingsUseCase *fundflow.SetSavingsBudgetUseCase,
	setTargetUseCase *fundflow.SetBudgetTargetUseCase,
) *BudgetPlanController {
	return &BudgetPlanController{
		getUseCase:        getUseCase,
		saveUseCase:       saveUseCase,
		resetUseCase:      resetUseCase,
		setSavingsUseCase: setSavingsUseCase,
		setTargetUseCase:  setTargetUseCase,
	}
}

// Get handles GET /budget-plan requests.
func (c *BudgetPlanController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthorized(ctx)
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), budgetplan.GetPlanInput{
		UserID: userID,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.PlanResponse{
		Budgets:            dto.ToCategoryBudgetListResponse(output.Budgets),
		Locked:             output.Locked,
		PlanningBalance:    output.PlanningBalance.InexactFloat64(),
		BalanceAtBudgetSet: output.BalanceAtBudgetSet.InexactFloat64(),
	})
}

// Save handles POST /budget-plan requests. Saving locks the plan against the
// supplied balance snapshot until reset.
func (c *BudgetPlanController) Save(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthorized(ctx)
		return
	}

	var req dto.SavePlanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.saveUseCase.Execute(ctx.Request.Context(), budgetplan.SavePlanInput{
		UserID:          userID,
		Percentages:     req.Percentages,
		BalanceSnapshot: decimal.NewFromFloat(req.BalanceSnapshot),
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.PlanResponse{
		Budgets:            dto.ToCategoryBudgetListResponse(output.Budgets),
		Locked:             true,
		PlanningBalance:    output.BalanceAtBudgetSet.InexactFloat64(),
		BalanceAtBudgetSet: output.BalanceAtBudgetSet.InexactFloat64(),
	})
}

// Reset handles POST /budget-plan/reset requests. Non-savings allocations
// zero out and the plan unlocks; the savings budget survives.
func (c *BudgetPlanController) Reset(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthorized(ctx)
		return
	}

	if err := c.resetUseCase.Execute(ctx.Request.Context(), budgetplan.ResetPlanInput{
		UserID: userID,
	}); err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// SetSavingsBudget handles PUT /budget-plan/savings requests. The savings
// budget sits outside the percentage plan and ignores the lock.
func (c *BudgetPlanController) SetSavingsBudget(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthorized(ctx)
		return
	}

	var req dto.SetSavingsBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.setSavingsUseCase.Execute(ctx.Request.Context(), fundflow.SetSavingsBudgetInput{
		UserID: userID,
		Amount: decimal.NewFromFloat(req.Amount),
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryBudgetResponse(output.Budget))
}

// SetBudgetTarget handles PUT /budget-plan/target requests.
func (c *BudgetPlanController) SetBudgetTarget(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthorized(ctx)
		return
	}

	var req dto.SetBudgetTargetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.setTargetUseCase.Execute(ctx.Request.Context(), fundflow.SetBudgetTargetInput{
		UserID: userID,
		Amount: decimal.NewFromFloat(req.Amount),
		Period: entity.BudgetPeriod(req.Period),
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSettingsResponse(output.Settings))
}
