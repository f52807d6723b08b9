// Package summary computes derived ledger metrics.
package summary

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-ledger/backend/internal/application/adapter"
	"github.com/budget-ledger/backend/internal/domain/entity"
)

// CategoryBreakdownEntry pairs a catalog category with its spending and
// budgeted amounts.
type CategoryBreakdownEntry struct {
	Category entity.Category
	Spent    decimal.Decimal
	Budgeted decimal.Decimal
}

// GetCategoryBreakdownInput represents the input for the per-category breakdown.
type GetCategoryBreakdownInput struct {
	UserID uuid.UUID
}

// GetCategoryBreakdownOutput represents the output of the per-category breakdown.
type GetCategoryBreakdownOutput struct {
	Entries []CategoryBreakdownEntry
}

// GetCategoryBreakdownUseCase computes spent and budgeted amounts per catalog
// category, savings included.
type GetCategoryBreakdownUseCase struct {
	store   adapter.LedgerStore
	catalog *entity.Catalog
}

// NewGetCategoryBreakdownUseCase creates a new GetCategoryBreakdownUseCase instance.
func NewGetCategoryBreakdownUseCase(store adapter.LedgerStore, catalog *entity.Catalog) *GetCategoryBreakdownUseCase {
	return &GetCategoryBreakdownUseCase{
		store:   store,
		catalog: catalog,
	}
}

// Execute computes the breakdown.
func (uc *GetCategoryBreakdownUseCase) Execute(ctx context.Context, input GetCategoryBreakdownInput) (*GetCategoryBreakdownOutput, error) {
	snapshot, err := uc.store.GetSnapshot(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger snapshot: %w", err)
	}

	categories := uc.catalog.All()
	entries := make([]CategoryBreakdownEntry, 0, len(categories))
	for _, cat := range categories {
		entry := CategoryBreakdownEntry{
			Category: cat,
			Spent:    SpentForCategory(snapshot, cat.ID),
			Budgeted: decimal.Zero,
		}
		if b := snapshot.BudgetFor(cat.ID); b != nil {
			entry.Budgeted = b.Amount
		}
		entries = append(entries, entry)
	}

	return &GetCategoryBreakdownOutput{Entries: entries}, nil
}
