// Package entity defines the core business entities for the domain layer.
package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestSettingsPlanLocked(t *testing.T) {
	settings := NewSettings(uuid.New())

	if settings.PlanLocked() {
		t.Error("expected a fresh settings document to be unlocked")
	}

	settings.BalanceAtBudgetSet = decimal.NewFromInt(500)
	if !settings.PlanLocked() {
		t.Error("expected a positive balance snapshot to lock the plan")
	}

	settings.BalanceAtBudgetSet = decimal.Zero
	if settings.PlanLocked() {
		t.Error("expected clearing the snapshot to unlock the plan")
	}
}

func TestSinkingFundTargetMet(t *testing.T) {
	fund := NewSinkingFund(uuid.New(), "Emergency", decimal.NewFromInt(300))

	if fund.TargetMet() {
		t.Error("expected a fresh fund not to have met its target")
	}

	fund.CurrentAmount = decimal.NewFromInt(300)
	if !fund.TargetMet() {
		t.Error("expected an exactly funded target to be met")
	}

	fund.TargetAmount = decimal.NewFromInt(400)
	if fund.TargetMet() {
		t.Error("expected raising the target to unmeet it")
	}
}

func TestBudgetPeriodIsValid(t *testing.T) {
	for _, p := range []BudgetPeriod{BudgetPeriodDaily, BudgetPeriodWeekly, BudgetPeriodMonthly} {
		if !p.IsValid() {
			t.Errorf("expected %s to be valid", p)
		}
	}
	if BudgetPeriod("hourly").IsValid() {
		t.Error("expected hourly to be invalid")
	}
}
