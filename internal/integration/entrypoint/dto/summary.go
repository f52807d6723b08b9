// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"math"

	"github.com/budget-ledger/backend/internal/application/usecase/summary"
)

// SummaryResponse represents the derived-metrics summary in API responses.
// SurvivalDays is null when the effective spend rate is zero (the balance
// lasts indefinitely), since JSON cannot encode infinity.
type SummaryResponse struct {
	Allowance             float64  `json:"allowance"`
	TotalSpent            float64  `json:"total_spent"`
	TotalSavingsBudget    float64  `json:"total_savings_budget"`
	TotalSinkingAllocated float64  `json:"total_sinking_allocated"`
	RemainingBalance      float64  `json:"remaining_balance"`
	PlanningBalance       float64  `json:"planning_balance"`
	PlanLocked            bool     `json:"plan_locked"`
	DailyAverage          float64  `json:"daily_average"`
	SurvivalDays          *float64 `json:"survival_days"`
}

// CategoryBreakdownEntryResponse represents one category row in the
// per-category breakdown.
type CategoryBreakdownEntryResponse struct {
	CategoryID     string  `json:"category_id"`
	Name           string  `json:"name"`
	Classification string  `json:"classification"`
	Color          string  `json:"color"`
	Spent          float64 `json:"spent"`
	Budgeted       float64 `json:"budgeted"`
}

// CategoryBreakdownResponse represents the per-category breakdown.
type CategoryBreakdownResponse struct {
	Entries []CategoryBreakdownEntryResponse `json:"entries"`
}

// ToSummaryResponse converts a computed Summary to a SummaryResponse DTO.
func ToSummaryResponse(s *summary.Summary) SummaryResponse {
	response := SummaryResponse{
		Allowance:             s.Allowance.InexactFloat64(),
		TotalSpent:            s.TotalSpent.InexactFloat64(),
		TotalSavingsBudget:    s.TotalSavingsBudget.InexactFloat64(),
		TotalSinkingAllocated: s.TotalSinkingAllocated.InexactFloat64(),
		RemainingBalance:      s.RemainingBalance.InexactFloat64(),
		PlanningBalance:       s.PlanningBalance.InexactFloat64(),
		PlanLocked:            s.PlanLocked,
		DailyAverage:          s.DailyAverage.InexactFloat64(),
	}
	if !math.IsInf(s.SurvivalDays, 1) {
		days := s.SurvivalDays
		response.SurvivalDays = &days
	}
	return response
}

// ToCategoryBreakdownResponse converts breakdown entries to the response DTO.
func ToCategoryBreakdownResponse(entries []summary.CategoryBreakdownEntry) CategoryBreakdownResponse {
	items := make([]CategoryBreakdownEntryResponse, len(entries))
	for i, e := range entries {
		items[i] = CategoryBreakdownEntryResponse{
			CategoryID:     e.Category.ID,
			Name:           e.Category.Name,
			Classification: string(e.Category.Classification),
			Color:          e.Category.Color,
			Spent:          e.Spent.InexactFloat64(),
			Budgeted:       e.Budgeted.InexactFloat64(),
		}
	}
	return CategoryBreakdownResponse{Entries: items}
}
