// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/budget-ledger/backend/internal/application/usecase/summary"
	"github.com/budget-ledger/backend/internal/integration/entrypoint/dto"
	"github.com/budget-ledger/backend/internal/integration/entrypoint/middleware"
)

// SummaryController handles derived-metrics endpoints.
type SummaryController struct {
	summaryUseCase   *summary.GetSummaryUseCase
	breakdownUseCase *summary.GetCategoryBreakdownUseCase
}

// NewSummaryController creates a new summary controller instance.
func NewSummaryController(
	summaryUseCase *summary.GetSummaryUseCase,
	breakdownUseCase *summary.GetCategoryBreakdownUseCase,
) *SummaryController {
	return &SummaryController{
		summaryUseCase:   summaryUseCase,
		breakdownUseCase: breakdownUseCase,
	}
}

// Get handles GET /summary requests. All figures are recomputed from the
// current ledger state, never stored.
func (c *SummaryController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthorized(ctx)
		return
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), summary.GetSummaryInput{
		UserID: userID,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(output.Summary))
}

// Breakdown handles GET /summary/categories requests.
func (c *SummaryController) Breakdown(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthorized(ctx)
		return
	}

	output, err := c.breakdownUseCase.Execute(ctx.Request.Context(), summary.GetCategoryBreakdownInput{
		UserID: userID,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryBreakdownResponse(output.Entries))
}
