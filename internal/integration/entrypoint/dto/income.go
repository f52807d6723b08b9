// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/budget-ledger/backend/internal/domain/entity"
)

// CreateIncomeRequest represents the request body for income creation.
type CreateIncomeRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
	Source string  `json:"source,omitempty"`
	Date   *string `json:"date,omitempty"`
}

// DeleteIncomesRequest represents the request body for bulk income deletion.
type DeleteIncomesRequest struct {
	IDs []string `json:"ids" binding:"required,min=1,dive,uuid"`
}

// DeleteIncomesResponse reports how many income records were actually removed.
type DeleteIncomesResponse struct {
	DeletedCount int `json:"deleted_count"`
}

// IncomeResponse represents a single income record in API responses.
type IncomeResponse struct {
	ID        string    `json:"id"`
	Amount    float64   `json:"amount"`
	Source    string    `json:"source,omitempty"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IncomeListResponse represents the response for listing income records.
type IncomeListResponse struct {
	Incomes []IncomeResponse `json:"incomes"`
}

// ToIncomeResponse converts a domain Income entity to an IncomeResponse DTO.
func ToIncomeResponse(income *entity.Income) IncomeResponse {
	return IncomeResponse{
		ID:        income.ID.String(),
		Amount:    income.Amount.InexactFloat64(),
		Source:    income.Source,
		Date:      income.Date.UTC().Format(time.RFC3339),
		CreatedAt: income.CreatedAt,
		UpdatedAt: income.UpdatedAt,
	}
}

// ToIncomeListResponse converts a list of income records to an IncomeListResponse.
func ToIncomeListResponse(incomes []*entity.Income) IncomeListResponse {
	items := make([]IncomeResponse, len(incomes))
	for i, inc := range incomes {
		items[i] = ToIncomeResponse(inc)
	}
	return IncomeListResponse{Incomes: items}
}
