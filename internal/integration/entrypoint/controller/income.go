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

// IncomeController handles income endpoints.
type IncomeController struct {
	listUseCase   *fundflow.ListIncomesUseCase
	addUseCase    *fundflow.AddIncomeUseCase
	deleteUseCase *fundflow.DeleteIncomesUseCase
}

// NewIncomeController creates a new income controller instance.
func NewIncomeController(
	listUseCase *fundflow.ListIncomesUseCase,
	addUseCase *fundflow.AddIncomeUseCase,
	deleteUseCase *fundflow.DeleteIncomesUseCase,
) *IncomeController {
	return &IncomeController{
		listUseCase:   listUseCase,
		addUseCase:    addUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /incomes requests.
func (c *IncomeController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthorized(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), fundflow.ListIncomesInput{
		UserID: userID,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToIncomeListResponse(output.Incomes))
}

// Create handles POST /incomes requests. The allowance pool grows by the
// income amount in the same atomic unit.
func (c *IncomeController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthorized(ctx)
		return
	}

	var req dto.CreateIncomeRequest
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

	output, err := c.addUseCase.Execute(ctx.Request.Context(), fundflow.AddIncomeInput{
		UserID: userID,
		Amount: decimal.NewFromFloat(req.Amount),
		Source: req.Source,
		Date:   date,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToIncomeResponse(output.Income))
}

// Delete handles POST /incomes/delete requests. The allowance pool shrinks by
// the sum of the deleted amounts; missing ids are skipped.
func (c *IncomeController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthorized(ctx)
		return
	}

	var req dto.DeleteIncomesRequest
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
				Error: "Invalid income ID format",
			})
			return
		}
		ids[i] = id
	}

	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), fundflow.DeleteIncomesInput{
		UserID: userID,
		IDs:    ids,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DeleteIncomesResponse{DeletedCount: output.DeletedCount})
}
