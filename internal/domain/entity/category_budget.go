// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SavingsCategoryID is the reserved category key for the savings budget.
// The savings CategoryBudget is always editable regardless of plan-lock state.
const SavingsCategoryID = "savings"

// CategoryBudget is a per-category allocation row. The category id is the
// document key (one row per category maximum), including the reserved
// "savings" key.
type CategoryBudget struct {
	UserID     uuid.UUID
	CategoryID string
	Amount     decimal.Decimal // absolute allocation, derived from percentage at plan save
	Percentage *float64        // 0-100 planning input; nil when never planned
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsSavings reports whether this row is the reserved savings budget.
func (b *CategoryBudget) IsSavings() bool {
	return b.CategoryID == SavingsCategoryID
}

// NewCategoryBudget creates a new CategoryBudget row.
func NewCategoryBudget(userID uuid.UUID, categoryID string, amount decimal.Decimal, percentage *float64) *CategoryBudget {
	now := time.Now().UTC()

	return &CategoryBudget{
		UserID:     userID,
		CategoryID: categoryID,
		Amount:     amount,
		Percentage: percentage,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
