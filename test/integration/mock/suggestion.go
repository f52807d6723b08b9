package mock

import (
	"context"

	"github.com/budget-ledger/backend/internal/application/adapter"
)

// SuggestionService is a canned stand-in for the Gemini adapter so insight
// scenarios run without network access or an API key.
type SuggestionService struct {
	Available       bool
	SpendingReply   string
	AllocationReply string

	LastSpendingRequest   *adapter.SpendingSuggestionRequest
	LastAllocationRequest *adapter.AllocationHelperRequest
}

// NewSuggestionService returns an available stub with default replies.
func NewSuggestionService() *SuggestionService {
	return &SuggestionService{
		Available:       true,
		SpendingReply:   "## Spending Insights\n\nYou are on track this week.",
		AllocationReply: "## Suggested Allocation\n\n- Food: 40%\n- Transport: 20%",
	}
}

func (s *SuggestionService) IsAvailable() bool {
	return s.Available
}

func (s *SuggestionService) SuggestSpending(ctx context.Context, request *adapter.SpendingSuggestionRequest) (string, error) {
	s.LastSpendingRequest = request
	return s.SpendingReply, nil
}

func (s *SuggestionService) SuggestAllocation(ctx context.Context, request *adapter.AllocationHelperRequest) (string, error) {
	s.LastAllocationRequest = request
	return s.AllocationReply, nil
}
