// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Income represents a single income record. Creating or deleting an Income
// always co-occurs with an equal, opposite adjustment to Settings.Allowance.
type Income struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Amount    decimal.Decimal // always positive
	Source    string
	Date      time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewIncome creates a new Income entity.
func NewIncome(userID uuid.UUID, amount decimal.Decimal, source string, date time.Time) *Income {
	now := time.Now().UTC()

	return &Income{
		ID:        uuid.New(),
		UserID:    userID,
		Amount:    amount,
		Source:    source,
		Date:      date,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
