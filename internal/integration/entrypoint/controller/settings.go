// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/budget-ledger/backend/internal/application/usecase/fundflow"
	"github.com/budget-ledger/backend/internal/integration/entrypoint/dto"
	"github.com/budget-ledger/backend/internal/integration/entrypoint/middleware"
)

// SettingsController handles ledger settings endpoints.
type SettingsController struct {
	getUseCase          *fundflow.GetSettingsUseCase
	setAllowanceUseCase *fundflow.SetAllowanceUseCase
}

// NewSettingsController creates a new settings controller instance.
func NewSettingsController(
	getUseCase *fundflow.GetSettingsUseCase,
	setAllowanceUseCase *fundflow.SetAllowanceUseCase,
) *SettingsController {
	return &SettingsController{
		getUseCase:          getUseCase,
		setAllowanceUseCase: setAllowanceUseCase,
	}
}

// Get handles GET /settings requests. First touch creates a zero-valued
// settings document.
func (c *SettingsController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthorized(ctx)
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), fundflow.GetSettingsInput{
		UserID: userID,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSettingsResponse(output.Settings))
}

// SetAllowance handles PUT /settings/allowance requests.
func (c *SettingsController) SetAllowance(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthorized(ctx)
		return
	}

	var req dto.SetAllowanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.setAllowanceUseCase.Execute(ctx.Request.Context(), fundflow.SetAllowanceInput{
		UserID: userID,
		Amount: decimal.NewFromFloat(req.Amount),
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSettingsResponse(output.Settings))
}
