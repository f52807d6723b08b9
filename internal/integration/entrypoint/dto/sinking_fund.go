// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/budget-ledger/backend/internal/domain/entity"
)

// CreateSinkingFundRequest represents the request body for fund creation.
type CreateSinkingFundRequest struct {
	Name         string  `json:"name" binding:"required"`
	TargetAmount float64 `json:"target_amount" binding:"required,gt=0"`
}

// UpdateSinkingFundRequest represents the request body for a manual fund
// correction. All fields are overwritten.
type UpdateSinkingFundRequest struct {
	Name          string  `json:"name" binding:"required"`
	TargetAmount  float64 `json:"target_amount" binding:"required,gt=0"`
	CurrentAmount float64 `json:"current_amount" binding:"gte=0"`
}

// AllocateToFundRequest represents the request body for a fund allocation.
type AllocateToFundRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

// SpendFromFundRequest represents the request body for a fund liquidation.
type SpendFromFundRequest struct {
	CategoryID string `json:"category_id" binding:"required"`
}

// SinkingFundResponse represents a single sinking fund in API responses.
type SinkingFundResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	TargetAmount  float64   `json:"target_amount"`
	CurrentAmount float64   `json:"current_amount"`
	TargetMet     bool      `json:"target_met"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// SinkingFundListResponse represents the response for listing sinking funds.
type SinkingFundListResponse struct {
	Funds []SinkingFundResponse `json:"funds"`
}

// ToSinkingFundResponse converts a domain SinkingFund entity to a
// SinkingFundResponse DTO.
func ToSinkingFundResponse(f *entity.SinkingFund) SinkingFundResponse {
	return SinkingFundResponse{
		ID:            f.ID.String(),
		Name:          f.Name,
		TargetAmount:  f.TargetAmount.InexactFloat64(),
		CurrentAmount: f.CurrentAmount.InexactFloat64(),
		TargetMet:     f.TargetMet(),
		CreatedAt:     f.CreatedAt,
		UpdatedAt:     f.UpdatedAt,
	}
}

// ToSinkingFundListResponse converts a list of funds to a
// SinkingFundListResponse.
func ToSinkingFundListResponse(funds []*entity.SinkingFund) SinkingFundListResponse {
	items := make([]SinkingFundResponse, len(funds))
	for i, f := range funds {
		items[i] = ToSinkingFundResponse(f)
	}
	return SinkingFundListResponse{Funds: items}
}
