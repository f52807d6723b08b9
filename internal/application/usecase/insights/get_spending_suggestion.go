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

// GetSpendingSuggestionInput represents the input for a spending suggestion.
type GetSpendingSuggestionInput struct {
	UserID uuid.UUID
}

// GetSpendingSuggestionOutput represents the output of a spending suggestion.
type GetSpendingSuggestionOutput struct {
	Suggestion string
}

// GetSpendingSuggestionUseCase assembles the spending context and asks the
// suggestion service what to do with accumulated funds.
type GetSpendingSuggestionUseCase struct {
	store      adapter.LedgerStore
	catalog    *entity.Catalog
	suggestion adapter.SuggestionService
}

// NewGetSpendingSuggestionUseCase creates a new GetSpendingSuggestionUseCase instance.
func NewGetSpendingSuggestionUseCase(
	store adapter.LedgerStore,
	catalog *entity.Catalog,
	suggestion adapter.SuggestionService,
) *GetSpendingSuggestionUseCase {
	return &GetSpendingSuggestionUseCase{
		store:      store,
		catalog:    catalog,
		suggestion: suggestion,
	}
}

// Execute performs the suggestion request. The response is opaque text; only
// non-emptiness is checked.
func (uc *GetSpendingSuggestionUseCase) Execute(ctx context.Context, input GetSpendingSuggestionInput) (*GetSpendingSuggestionOutput, error) {
	if !uc.suggestion.IsAvailable() {
		return nil, fmt.Errorf("suggestion service is not configured")
	}

	snapshot, err := uc.store.GetSnapshot(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger snapshot: %w", err)
	}

	text, err := uc.suggestion.SuggestSpending(ctx, BuildSpendingContext(snapshot, uc.catalog))
	if err != nil {
		return nil, fmt.Errorf("suggestion request failed: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("suggestion service returned an empty response")
	}

	return &GetSpendingSuggestionOutput{Suggestion: text}, nil
}
