// Package summary computes derived ledger metrics. Every value here is
// recomputed from a snapshot of the raw collections on each read; nothing is
// stored.
package summary

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budget-ledger/backend/internal/domain/entity"
)

// daysPerWeek and daysPerMonth normalize budget targets to a daily rate.
// The fixed 30-day month is a deliberate approximation, not calendar math.
const (
	daysPerWeek  = 7
	daysPerMonth = 30
)

// TotalSpent sums expense amounts whose category classification is not
// savings. Unknown categories count as spending.
func TotalSpent(snapshot *entity.Snapshot, catalog *entity.Catalog) decimal.Decimal {
	total := decimal.Zero
	for _, e := range snapshot.Expenses {
		if catalog.IsSavings(e.CategoryID) {
			continue
		}
		total = total.Add(e.Amount)
	}
	return total
}

// TotalSavingsBudget returns the amount of the reserved savings budget row,
// or zero when absent.
func TotalSavingsBudget(snapshot *entity.Snapshot) decimal.Decimal {
	if b := snapshot.BudgetFor(entity.SavingsCategoryID); b != nil {
		return b.Amount
	}
	return decimal.Zero
}

// TotalSinkingAllocated sums the current amounts reserved across all sinking
// funds.
func TotalSinkingAllocated(snapshot *entity.Snapshot) decimal.Decimal {
	total := decimal.Zero
	for _, f := range snapshot.Funds {
		total = total.Add(f.CurrentAmount)
	}
	return total
}

// RemainingBalance is the spendable money left after subtracting spent,
// saved, and sinking-fund-reserved amounts. It may be negative; callers show
// an overdrawn balance rather than clamping.
func RemainingBalance(snapshot *entity.Snapshot, catalog *entity.Catalog) decimal.Decimal {
	return snapshot.Settings.Allowance.
		Sub(TotalSpent(snapshot, catalog)).
		Sub(TotalSavingsBudget(snapshot)).
		Sub(TotalSinkingAllocated(snapshot))
}

// DailyAverage is total spending divided by the days elapsed since the
// earliest spending expense, inclusive (minimum one day). Zero when no
// spending expenses exist.
func DailyAverage(snapshot *entity.Snapshot, catalog *entity.Catalog, now time.Time) decimal.Decimal {
	var earliest time.Time
	found := false
	for _, e := range snapshot.Expenses {
		if catalog.IsSavings(e.CategoryID) {
			continue
		}
		if !found || e.Date.Before(earliest) {
			earliest = e.Date
			found = true
		}
	}
	if !found {
		return decimal.Zero
	}

	days := int64(now.Sub(earliest).Hours()/24) + 1
	if days < 1 {
		days = 1
	}
	return TotalSpent(snapshot, catalog).Div(decimal.NewFromInt(days))
}

// DailyRate normalizes a budget target to a daily spend rate. Zero when the
// target amount is not positive.
func DailyRate(target entity.BudgetTarget) decimal.Decimal {
	if !target.Amount.IsPositive() {
		return decimal.Zero
	}
	switch target.Period {
	case entity.BudgetPeriodWeekly:
		return target.Amount.Div(decimal.NewFromInt(daysPerWeek))
	case entity.BudgetPeriodMonthly:
		return target.Amount.Div(decimal.NewFromInt(daysPerMonth))
	default:
		return target.Amount
	}
}

// SurvivalDays is the runway: remaining balance divided by the effective
// daily spend rate. The budget target takes precedence over the observed
// daily average. Zero when the balance is not positive; +Inf when the
// effective rate is zero (unbounded runway).
func SurvivalDays(snapshot *entity.Snapshot, catalog *entity.Catalog, now time.Time) float64 {
	remaining := RemainingBalance(snapshot, catalog)
	if !remaining.IsPositive() {
		return 0
	}

	rate := DailyRate(snapshot.Settings.BudgetTarget)
	if !rate.IsPositive() {
		rate = DailyAverage(snapshot, catalog, now)
	}
	if !rate.IsPositive() {
		return math.Inf(1)
	}

	return remaining.Div(rate).InexactFloat64()
}

// SpentForCategory sums expense amounts for one category. Savings-classified
// categories are included here; only the TotalSpent aggregate excludes them.
func SpentForCategory(snapshot *entity.Snapshot, categoryID string) decimal.Decimal {
	total := decimal.Zero
	for _, e := range snapshot.Expenses {
		if e.CategoryID == categoryID {
			total = total.Add(e.Amount)
		}
	}
	return total
}

// PlanningBalance is the base percentage math multiplies against: the locked
// snapshot while a plan is active, otherwise the live remaining balance.
func PlanningBalance(snapshot *entity.Snapshot, catalog *entity.Catalog) decimal.Decimal {
	if snapshot.Settings.PlanLocked() {
		return snapshot.Settings.BalanceAtBudgetSet
	}
	return RemainingBalance(snapshot, catalog)
}
