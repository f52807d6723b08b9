// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense represents a single spending record in the Budget Ledger.
type Expense struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Amount     decimal.Decimal // always positive
	CategoryID string
	Notes      string
	Date       time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewExpense creates a new Expense entity.
func NewExpense(userID uuid.UUID, amount decimal.Decimal, categoryID, notes string, date time.Time) *Expense {
	now := time.Now().UTC()

	return &Expense{
		ID:         uuid.New(),
		UserID:     userID,
		Amount:     amount,
		CategoryID: categoryID,
		Notes:      notes,
		Date:       date,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
