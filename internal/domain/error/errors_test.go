// Package error defines domain-specific errors for the Budget Ledger application.
package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestLedgerErrorWrapping(t *testing.T) {
	ledgerErr := NewLedgerError(ErrCodeInsufficientBalance, "allocation exceeds remaining balance", ErrInsufficientBalance)

	t.Run("message includes the underlying error", func(t *testing.T) {
		want := "allocation exceeds remaining balance: insufficient remaining balance"
		if ledgerErr.Error() != want {
			t.Errorf("expected %q, got %q", want, ledgerErr.Error())
		}
	})

	t.Run("errors.Is sees the sentinel", func(t *testing.T) {
		if !errors.Is(ledgerErr, ErrInsufficientBalance) {
			t.Error("expected errors.Is to match the sentinel")
		}
	})

	t.Run("errors.As recovers the coded error through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("failed to allocate to sinking fund: %w", ledgerErr)

		var coded *LedgerError
		if !errors.As(wrapped, &coded) {
			t.Fatal("expected errors.As to find the LedgerError")
		}
		if coded.Code != ErrCodeInsufficientBalance {
			t.Errorf("expected code %s, got %s", ErrCodeInsufficientBalance, coded.Code)
		}
	})
}

func TestPlanErrorWrapping(t *testing.T) {
	planErr := NewPlanError(ErrCodePlanLocked, "a budget plan is already locked", ErrPlanLocked)

	if !errors.Is(planErr, ErrPlanLocked) {
		t.Error("expected errors.Is to match the sentinel")
	}

	wrapped := fmt.Errorf("failed to save budget plan: %w", planErr)
	var coded *PlanError
	if !errors.As(wrapped, &coded) {
		t.Fatal("expected errors.As to find the PlanError")
	}
	if coded.Code != ErrCodePlanLocked {
		t.Errorf("expected code %s, got %s", ErrCodePlanLocked, coded.Code)
	}
}

func TestErrorWithoutUnderlying(t *testing.T) {
	ledgerErr := NewLedgerError(ErrCodeInvalidAmount, "amount must be positive", nil)

	if ledgerErr.Error() != "amount must be positive" {
		t.Errorf("unexpected message: %q", ledgerErr.Error())
	}
	if errors.Unwrap(ledgerErr) != nil {
		t.Error("expected no underlying error")
	}
}
