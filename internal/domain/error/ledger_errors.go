// Package error defines domain-specific errors for the Budget Ledger application.
package error

import "errors"

// Ledger domain errors.
var (
	// ErrInvalidAmount is returned when a monetary input is zero, negative, or malformed.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInsufficientBalance is returned when an allocation would drive the
	// remaining balance negative against freshly read state.
	ErrInsufficientBalance = errors.New("insufficient remaining balance")

	// ErrConflict is returned on an optimistic-concurrency collision inside an
	// atomic transaction. The caller may retry the whole operation.
	ErrConflict = errors.New("transaction conflict")

	// ErrNotFound is returned when a referenced document vanished between
	// intent and commit.
	ErrNotFound = errors.New("document not found")

	// ErrIncomeNotFound is returned when an income record is not found.
	ErrIncomeNotFound = errors.New("income not found")

	// ErrExpenseNotFound is returned when an expense record is not found.
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrSinkingFundNotFound is returned when a sinking fund is not found.
	ErrSinkingFundNotFound = errors.New("sinking fund not found")

	// ErrFundTargetNotMet is returned when spending from a sinking fund whose
	// target has not been fully funded.
	ErrFundTargetNotMet = errors.New("sinking fund target not met")

	// ErrInvalidBudgetPeriod is returned when a budget target period is not
	// daily, weekly, or monthly.
	ErrInvalidBudgetPeriod = errors.New("invalid budget period")

	// ErrEmptyIDList is returned when a bulk operation receives no ids.
	ErrEmptyIDList = errors.New("id list cannot be empty")
)

// LedgerErrorCode defines error codes for ledger errors.
// Format: LGR-XXYYYY where XX is category and YYYY is specific error.
type LedgerErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidAmount       LedgerErrorCode = "LGR-010001"
	ErrCodeInsufficientBalance LedgerErrorCode = "LGR-010002"
	ErrCodeFundTargetNotMet    LedgerErrorCode = "LGR-010003"
	ErrCodeInvalidBudgetPeriod LedgerErrorCode = "LGR-010004"
	ErrCodeEmptyIDList         LedgerErrorCode = "LGR-010005"

	// Not-found errors (02XXXX)
	ErrCodeNotFound            LedgerErrorCode = "LGR-020001"
	ErrCodeIncomeNotFound      LedgerErrorCode = "LGR-020002"
	ErrCodeExpenseNotFound     LedgerErrorCode = "LGR-020003"
	ErrCodeSinkingFundNotFound LedgerErrorCode = "LGR-020004"

	// Concurrency errors (03XXXX)
	ErrCodeConflict LedgerErrorCode = "LGR-030001"
)

// LedgerError represents a ledger error with code and message.
type LedgerError struct {
	Code    LedgerErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *LedgerError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// NewLedgerError creates a new LedgerError with the given code and message.
func NewLedgerError(code LedgerErrorCode, message string, err error) *LedgerError {
	return &LedgerError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
