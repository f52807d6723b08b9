// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-ledger/backend/internal/application/usecase/fundflow"
	"github.com/budget-ledger/backend/internal/integration/entrypoint/dto"
	"github.com/budget-ledger/backend/internal/integration/entrypoint/middleware"
)

// ExpenseController handles expense endpoints.
type ExpenseController struct {
	listUseCase   *fundflow.ListExpensesUseCase
	addUseCase    *fundflow.AddExpenseUseCase
	importUseCase *fundflow.ImportExpensesUseCase
	updateUseCase *fundflow.UpdateExpenseUseCase
	deleteUseCase *fundflow.DeleteExpensesUseCase
}

// NewExpenseController creates a new expense controller instance.
func NewExpenseController(
	listUseCase *fundflow.ListExpensesUseCase,
	addUseCase *fundflow.AddExpenseUseCase,
	importUseCase *fundflow.ImportExpensesUseCase,
	updateUseCase *fundflow.UpdateExpenseUseCase,
	deleteUseCase *fundflow.DeleteExpensesUseCase,
) *ExpenseController {
	return &ExpenseController{
		listUseCase:   listUseCase,
		addUseCase:    addUseCase,
		importUseCase: importUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// parseDate parses an optional request date. Both RFC3339 timestamps and
// plain dates are accepted; an absent date yields the zero time, which use
// cases default to now.
func parseDate(raw *string) (time.Time, bool) {
	if raw == nil || *raw == "" {
		return time.Time{}, true
	}
	if t, err := time.Parse(time.RFC3339, *raw); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", *raw); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// List handles GET /expenses requests.
func (c *ExpenseController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthorized(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), fundflow.ListExpensesInput{
		UserID: userID,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseListResponse(output.Expenses))
}

// Create handles POST /expenses requests.
func (c *ExpenseController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthorized(ctx)
		return
	}

	var req dto.CreateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	date, ok := parseDate(req.Date)
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format",
		})
		return
	}

	output, err := c.addUseCase.Execute(ctx.Request.Context(), fundflow.AddExpenseInput{
		UserID:     userID,
		Amount:     decimal.NewFromFloat(req.Amount),
		CategoryID: req.CategoryID,
		Notes:      req.Notes,
		Date:       date,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToExpenseResponse(output.Expense))
}

// Import handles POST /expenses/import requests. The whole batch is applied
// atomically; one bad row rejects the lot.
func (c *ExpenseController) Import(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthorized(ctx)
		return
	}

	var req dto.ImportExpensesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	drafts := make([]fundflow.ExpenseDraft, len(req.Expenses))
	for i, item := range req.Expenses {
		date, ok := parseDate(item.Date)
		if !ok {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid date format",
			})
			return
		}
		drafts[i] = fundflow.ExpenseDraft{
			Amount:     decimal.NewFromFloat(item.Amount),
			CategoryID: item.CategoryID,
			Notes:      item.Notes,
			Date:       date,
		}
	}

	output, err := c.importUseCase.Execute(ctx.Request.Context(), fundflow.ImportExpensesInput{
		UserID:   userID,
		Expenses: drafts,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToExpenseListResponse(output.Expenses))
}

// Update handles PUT /expenses/:id requests.
func (c *ExpenseController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthorized(ctx)
		return
	}

	expenseID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid expense ID format",
		})
		return
	}

	var req dto.UpdateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	date, ok := parseDate(req.Date)
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format",
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), fundflow.UpdateExpenseInput{
		UserID:     userID,
		ExpenseID:  expenseID,
		Amount:     decimal.NewFromFloat(req.Amount),
		CategoryID: req.CategoryID,
		Notes:      req.Notes,
		Date:       date,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseResponse(output.Expense))
}

// Delete handles POST /expenses/delete requests. Ids that no longer exist
// are skipped rather than rejected.
func (c *ExpenseController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthorized(ctx)
		return
	}

	var req dto.DeleteExpensesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	ids := make([]uuid.UUID, len(req.IDs))
	for i, raw := range req.IDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid expense ID format",
			})
			return
		}
		ids[i] = id
	}

	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), fundflow.DeleteExpensesInput{
		UserID: userID,
		IDs:    ids,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DeleteExpensesResponse{DeletedCount: output.DeletedCount})
}
