// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/budget-ledger/backend/internal/domain/error"
	"github.com/budget-ledger/backend/internal/integration/entrypoint/dto"
)

// handleDomainError maps domain errors to HTTP responses. Coded errors carry
// their own message and code; bare sentinels from the persistence layer get a
// code assigned here.
func handleDomainError(ctx *gin.Context, err error) {
	var ledgerErr *domainerror.LedgerError
	if errors.As(err, &ledgerErr) {
		ctx.JSON(statusForLedgerCode(ledgerErr.Code), dto.ErrorResponse{
			Error: ledgerErr.Message,
			Code:  string(ledgerErr.Code),
		})
		return
	}

	var planErr *domainerror.PlanError
	if errors.As(err, &planErr) {
		ctx.JSON(statusForPlanCode(planErr.Code), dto.ErrorResponse{
			Error: planErr.Message,
			Code:  string(planErr.Code),
		})
		return
	}

	switch {
	case errors.Is(err, domainerror.ErrExpenseNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Expense not found",
			Code:  string(domainerror.ErrCodeExpenseNotFound),
		})
	case errors.Is(err, domainerror.ErrIncomeNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Income not found",
			Code:  string(domainerror.ErrCodeIncomeNotFound),
		})
	case errors.Is(err, domainerror.ErrSinkingFundNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Sinking fund not found",
			Code:  string(domainerror.ErrCodeSinkingFundNotFound),
		})
	case errors.Is(err, domainerror.ErrNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Document not found",
			Code:  string(domainerror.ErrCodeNotFound),
		})
	case errors.Is(err, domainerror.ErrConflict):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{
			Error: "The operation conflicted with a concurrent change, please retry",
			Code:  string(domainerror.ErrCodeConflict),
		})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
	}
}

// statusForLedgerCode maps ledger error codes to HTTP status codes.
func statusForLedgerCode(code domainerror.LedgerErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidAmount,
		domainerror.ErrCodeInvalidBudgetPeriod,
		domainerror.ErrCodeEmptyIDList:
		return http.StatusBadRequest
	case domainerror.ErrCodeInsufficientBalance,
		domainerror.ErrCodeFundTargetNotMet:
		return http.StatusUnprocessableEntity
	case domainerror.ErrCodeNotFound,
		domainerror.ErrCodeIncomeNotFound,
		domainerror.ErrCodeExpenseNotFound,
		domainerror.ErrCodeSinkingFundNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// statusForPlanCode maps budget-plan error codes to HTTP status codes.
func statusForPlanCode(code domainerror.PlanErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidPercentage,
		domainerror.ErrCodeEmptyPlan,
		domainerror.ErrCodeSavingsNotPlannable:
		return http.StatusBadRequest
	case domainerror.ErrCodePlanLocked,
		domainerror.ErrCodeNoPlanLocked,
		domainerror.ErrCodePercentageOverflow:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// unauthorized writes the standard missing-authentication response.
func unauthorized(ctx *gin.Context) {
	ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: "User not authenticated",
		Code:  string(domainerror.ErrCodeMissingToken),
	})
}
