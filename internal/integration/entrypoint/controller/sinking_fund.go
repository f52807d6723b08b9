// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-ledger/backend/internal/application/usecase/fundflow"
	"github.com/budget-ledger/backend/internal/integration/entrypoint/dto"
	"github.com/budget-ledger/backend/internal/integration/entrypoint/middleware"
)

// SinkingFundController handles sinking fund endpoints.
type SinkingFundController struct {
	listUseCase     *fundflow.ListSinkingFundsUseCase
	createUseCase   *fundflow.CreateSinkingFundUseCase
	updateUseCase   *fundflow.UpdateSinkingFundUseCase
	deleteUseCase   *fundflow.DeleteSinkingFundUseCase
	allocateUseCase *fundflow.AllocateToFundUseCase
	spendUseCase    *fundflow.SpendFromFundUseCase
}

// NewSinkingFundController creates a new sinking fund controller instance.
func NewSinkingFundController(
	listUseCase *fundflow.ListSinkingFundsUseCase,
	createUseCase *fundflow.CreateSinkingFundUseCase,
	updateUseCase *fundflow.UpdateSinkingFundUseCase,
	deleteUseCase *fundflow.DeleteSinkingFundUseCase,
	allocateUseCase *fundflow.AllocateToFundUseCase,
	spendUseCase *fundflow.SpendFromFundUseCase,
) *SinkingFundController {
	return &SinkingFundController{
		listUseCase:     listUseCase,
		createUseCase:   createUseCase,
		updateUseCase:   updateUseCase,
		deleteUseCase:   deleteUseCase,
		allocateUseCase: allocateUseCase,
		spendUseCase:    spendUseCase,
	}
}

// List handles GET /sinking-funds requests.
func (c *SinkingFundController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthorized(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), fundflow.ListSinkingFundsInput{
		UserID: userID,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSinkingFundListResponse(output.Funds))
}

// Create handles POST /sinking-funds requests.
func (c *SinkingFundController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthorized(ctx)
		return
	}

	var req dto.CreateSinkingFundRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), fundflow.CreateSinkingFundInput{
		UserID:       userID,
		Name:         req.Name,
		TargetAmount: decimal.NewFromFloat(req.TargetAmount),
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSinkingFundResponse(output.Fund))
}

// Update handles PUT /sinking-funds/:id requests. This path is a manual
// correction and overwrites the fund without balance guards.
func (c *SinkingFundController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthorized(ctx)
		return
	}

	fundID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid fund ID format",
		})
		return
	}

	var req dto.UpdateSinkingFundRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), fundflow.UpdateSinkingFundInput{
		UserID:        userID,
		FundID:        fundID,
		Name:          req.Name,
		TargetAmount:  decimal.NewFromFloat(req.TargetAmount),
		CurrentAmount: decimal.NewFromFloat(req.CurrentAmount),
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSinkingFundResponse(output.Fund))
}

// Delete handles DELETE /sinking-funds/:id requests. The reserved amount
// flows back to the spendable pool implicitly.
func (c *SinkingFundController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthorized(ctx)
		return
	}

	fundID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid fund ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), fundflow.DeleteSinkingFundInput{
		UserID: userID,
		FundID: fundID,
	}); err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Allocate handles POST /sinking-funds/:id/allocate requests.
func (c *SinkingFundController) Allocate(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthorized(ctx)
		return
	}

	fundID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid fund ID format",
		})
		return
	}

	var req dto.AllocateToFundRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.allocateUseCase.Execute(ctx.Request.Context(), fundflow.AllocateToFundInput{
		UserID: userID,
		FundID: fundID,
		Amount: decimal.NewFromFloat(req.Amount),
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSinkingFundResponse(output.Fund))
}

// Spend handles POST /sinking-funds/:id/spend requests. The fund liquidates
// into an expense for its full current amount and ceases to exist.
func (c *SinkingFundController) Spend(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthorized(ctx)
		return
	}

	fundID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid fund ID format",
		})
		return
	}

	var req dto.SpendFromFundRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.spendUseCase.Execute(ctx.Request.Context(), fundflow.SpendFromFundInput{
		UserID:     userID,
		FundID:     fundID,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToExpenseResponse(output.Expense))
}
