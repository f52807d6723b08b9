// Package insights contains the AI-facing use cases.
package insights

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/budget-ledger/backend/internal/application/adapter"
	"github.com/budget-ledger/backend/internal/domain/entity"
)

// GetAllocationHelperInput represents the input for an allocation suggestion.
type GetAllocationHelperInput struct {
	UserID uuid.UUID
	// UserContext is optional freeform text steering the suggestion
	// (e.g. "it's summer break, no school expenses").
	UserContext string
}

// GetAllocationHelperOutput represents the output of an allocation suggestion.
type GetAllocationHelperOutput struct {
	Suggestion string
}

// GetAllocationHelperUseCase assembles the allocation context and asks the
// suggestion service for a percentage budget plan against the remaining
// balance.
type GetAllocationHelperUseCase struct {
	store      adapter.LedgerStore
	catalog    *entity.Catalog
	suggestion adapter.SuggestionService
}

// NewGetAllocationHelperUseCase creates a new GetAllocationHelperUseCase instance.
func NewGetAllocationHelperUseCase(
	store adapter.LedgerStore,
	catalog *entity.Catalog,
	suggestion adapter.SuggestionService,
) *GetAllocationHelperUseCase {
	return &GetAllocationHelperUseCase{
		store:      store,
		catalog:    catalog,
		suggestion: suggestion,
	}
}

// Execute performs the allocation-helper request.
func (uc *GetAllocationHelperUseCase) Execute(ctx context.Context, input GetAllocationHelperInput) (*GetAllocationHelperOutput, error) {
	if !uc.suggestion.IsAvailable() {
		return nil, fmt.Errorf("suggestion service is not configured")
	}

	snapshot, err := uc.store.GetSnapshot(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger snapshot: %w", err)
	}

	request := BuildAllocationContext(snapshot, uc.catalog, input.UserContext)
	text, err := uc.suggestion.SuggestAllocation(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("allocation suggestion request failed: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("suggestion service returned an empty response")
	}

	return &GetAllocationHelperOutput{Suggestion: text}, nil
}
