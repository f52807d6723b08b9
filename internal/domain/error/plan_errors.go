// Package error defines domain-specific errors for the Budget Ledger application.
package error

import "errors"

// Budget plan lifecycle errors.
var (
	// ErrPlanLocked is returned when mutating a non-savings category budget
	// while a plan is locked against a balance snapshot.
	ErrPlanLocked = errors.New("budget plan is locked")

	// ErrNoPlanLocked is returned when resetting while no plan is locked.
	ErrNoPlanLocked = errors.New("no budget plan is locked")

	// ErrPercentageOverflow is returned when the non-savings percentages sum
	// above 100.
	ErrPercentageOverflow = errors.New("percentages exceed 100")

	// ErrInvalidPercentage is returned when a percentage is outside 0-100.
	ErrInvalidPercentage = errors.New("invalid percentage")

	// ErrEmptyPlan is returned when saving a plan with no category percentages.
	ErrEmptyPlan = errors.New("plan has no category percentages")

	// ErrSavingsNotPlannable is returned when the reserved savings category is
	// included in a percentage plan. The savings budget is managed separately.
	ErrSavingsNotPlannable = errors.New("savings budget is not part of the percentage plan")
)

// PlanErrorCode defines error codes for budget plan errors.
// Format: PLN-XXYYYY where XX is category and YYYY is specific error.
type PlanErrorCode string

const (
	ErrCodePlanLocked          PlanErrorCode = "PLN-010001"
	ErrCodeNoPlanLocked        PlanErrorCode = "PLN-010002"
	ErrCodePercentageOverflow  PlanErrorCode = "PLN-010003"
	ErrCodeInvalidPercentage   PlanErrorCode = "PLN-010004"
	ErrCodeEmptyPlan           PlanErrorCode = "PLN-010005"
	ErrCodeSavingsNotPlannable PlanErrorCode = "PLN-010006"
)

// PlanError represents a budget plan error with code and message.
type PlanError struct {
	Code    PlanErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PlanError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PlanError) Unwrap() error {
	return e.Err
}

// NewPlanError creates a new PlanError with the given code and message.
func NewPlanError(code PlanErrorCode, message string, err error) *PlanError {
	return &PlanError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
