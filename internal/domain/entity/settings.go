// Package entity defines the core business entities for the domain layer.
package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetPeriod represents the period a budget target is expressed in.
type BudgetPeriod string

const (
	BudgetPeriodDaily   BudgetPeriod = "daily"
	BudgetPeriodWeekly  BudgetPeriod = "weekly"
	BudgetPeriodMonthly BudgetPeriod = "monthly"
)

// IsValid reports whether the period is one of the supported values.
func (p BudgetPeriod) IsValid() bool {
	return p == BudgetPeriodDaily || p == BudgetPeriodWeekly || p == BudgetPeriodMonthly
}

// BudgetTarget represents a self-imposed spending pace (amount per period).
type BudgetTarget struct {
	Amount decimal.Decimal
	Period BudgetPeriod
}

// Settings is the per-user ledger settings document. There is exactly one
// per user; it is created lazily with zero values and updated in place.
type Settings struct {
	UserID       uuid.UUID
	Allowance    decimal.Decimal // always equals the sum of all recorded income
	BudgetTarget BudgetTarget
	// BalanceAtBudgetSet is the remaining-balance snapshot the current budget
	// plan was locked against. Zero means no plan is locked.
	BalanceAtBudgetSet decimal.Decimal
}

// PlanLocked reports whether a budget plan is currently locked against a
// balance snapshot.
func (s *Settings) PlanLocked() bool {
	return s.BalanceAtBudgetSet.IsPositive()
}

// NewSettings creates a zero-valued Settings document for a user.
func NewSettings(userID uuid.UUID) *Settings {
	return &Settings{
		UserID:             userID,
		Allowance:          decimal.Zero,
		BudgetTarget:       BudgetTarget{Amount: decimal.Zero, Period: BudgetPeriodDaily},
		BalanceAtBudgetSet: decimal.Zero,
	}
}
