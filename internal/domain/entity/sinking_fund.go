// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SinkingFund is a named, goal-targeted reserve. Its current amount is
// excluded from the spendable balance while the fund exists, so deleting a
// fund implicitly returns the money to the spendable pool.
type SinkingFund struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Name          string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TargetMet reports whether the fund has been fully funded.
func (f *SinkingFund) TargetMet() bool {
	return f.CurrentAmount.GreaterThanOrEqual(f.TargetAmount)
}

// NewSinkingFund creates a new SinkingFund entity with a zero current amount.
func NewSinkingFund(userID uuid.UUID, name string, targetAmount decimal.Decimal) *SinkingFund {
	now := time.Now().UTC()

	return &SinkingFund{
		ID:            uuid.New(),
		UserID:        userID,
		Name:          name,
		TargetAmount:  targetAmount,
		CurrentAmount: decimal.Zero,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
