// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/budget-ledger/backend/internal/application/usecase/insights"
	"github.com/budget-ledger/backend/internal/integration/entrypoint/dto"
	"github.com/budget-ledger/backend/internal/integration/entrypoint/middleware"
)

// InsightsController handles the LLM-backed insight endpoints.
type InsightsController struct {
	suggestionUseCase *insights.GetSpendingSuggestionUseCase
	allocationUseCase *insights.GetAllocationHelperUseCase
}

// NewInsightsController creates a new insights controller instance.
func NewInsightsController(
	suggestionUseCase *insights.GetSpendingSuggestionUseCase,
	allocationUseCase *insights.GetAllocationHelperUseCase,
) *InsightsController {
	return &InsightsController{
		suggestionUseCase: suggestionUseCase,
		allocationUseCase: allocationUseCase,
	}
}

// SpendingSuggestion handles POST /insights/suggestion requests.
func (c *InsightsController) SpendingSuggestion(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthorized(ctx)
		return
	}

	output, err := c.suggestionUseCase.Execute(ctx.Request.Context(), insights.GetSpendingSuggestionInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusBadGateway, dto.ErrorResponse{
			Error: "The suggestion service is unavailable, please try again later",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.SuggestionResponse{Suggestion: output.Suggestion})
}

// AllocationHelper handles POST /insights/allocation requests.
func (c *InsightsController) AllocationHelper(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthorized(ctx)
		return
	}

	var req dto.AllocationHelperRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && ctx.Request.ContentLength > 0 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.allocationUseCase.Execute(ctx.Request.Context(), insights.GetAllocationHelperInput{
		UserID:      userID,
		UserContext: req.UserContext,
	})
	if err != nil {
		ctx.JSON(http.StatusBadGateway, dto.ErrorResponse{
			Error: "The suggestion service is unavailable, please try again later",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.SuggestionResponse{Suggestion: output.Suggestion})
}
