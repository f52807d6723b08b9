// Package error defines domain-specific errors for the Budget Ledger application.
package error

import "errors"

// Identity boundary errors. The engine is identity-agnostic; these cover the
// token verification performed at the HTTP edge.
var (
	// ErrMissingToken is returned when no bearer token accompanies a request.
	ErrMissingToken = errors.New("missing authentication token")

	// ErrInvalidToken is returned when the bearer token fails verification.
	ErrInvalidToken = errors.New("invalid authentication token")
)

// AuthErrorCode defines error codes for identity errors.
type AuthErrorCode string

const (
	ErrCodeMissingToken AuthErrorCode = "AUTH-010001"
	ErrCodeInvalidToken AuthErrorCode = "AUTH-010002"
	ErrCodeRateLimited  AuthErrorCode = "AUTH-010003"
)
