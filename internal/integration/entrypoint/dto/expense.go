// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/budget-ledger/backend/internal/domain/entity"
)

// CreateExpenseRequest represents the request body for expense creation.
type CreateExpenseRequest struct {
	Amount     float64 `json:"amount" binding:"required,gt=0"`
	CategoryID string  `json:"category_id" binding:"required"`
	Notes      string  `json:"notes,omitempty"`
	Date       *string `json:"date,omitempty"`
}

// ImportExpensesRequest represents the request body for bulk expense import.
type ImportExpensesRequest struct {
	Expenses []CreateExpenseRequest `json:"expenses" binding:"required,min=1,dive"`
}

// UpdateExpenseRequest represents the request body for expense update.
type UpdateExpenseRequest struct {
	Amount     float64 `json:"amount" binding:"required,gt=0"`
	CategoryID string  `json:"category_id" binding:"required"`
	Notes      string  `json:"notes,omitempty"`
	Date       *string `json:"date,omitempty"`
}

// DeleteExpensesRequest represents the request body for bulk expense deletion.
type DeleteExpensesRequest struct {
	IDs []string `json:"ids" binding:"required,min=1,dive,uuid"`
}

// DeleteExpensesResponse reports how many expenses were actually removed.
type DeleteExpensesResponse struct {
	DeletedCount int64 `json:"deleted_count"`
}

// ExpenseResponse represents a single expense in API responses.
type ExpenseResponse struct {
	ID         string    `json:"id"`
	Amount     float64   `json:"amount"`
	CategoryID string    `json:"category_id"`
	Notes      string    `json:"notes,omitempty"`
	Date       string    `json:"date"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ExpenseListResponse represents the response for listing expenses.
type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
}

// ToExpenseResponse converts a domain Expense entity to an ExpenseResponse DTO.
func ToExpenseResponse(e *entity.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:         e.ID.String(),
		Amount:     e.Amount.InexactFloat64(),
		CategoryID: e.CategoryID,
		Notes:      e.Notes,
		Date:       e.Date.UTC().Format(time.RFC3339),
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

// ToExpenseListResponse converts a list of expenses to an ExpenseListResponse.
func ToExpenseListResponse(expenses []*entity.Expense) ExpenseListResponse {
	items := make([]ExpenseResponse, len(expenses))
	for i, e := range expenses {
		items[i] = ToExpenseResponse(e)
	}
	return ExpenseListResponse{Expenses: items}
}
