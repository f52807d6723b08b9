// Package adapters provides implementations for external service integrations.
package adapters

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	domainerror "github.com/budget-ledger/backend/internal/domain/error"
)

const testSecret = "test-secret"

func signTestToken(t *testing.T, secret, subject string, expiresAt time.Time) string {
	t.Helper()

	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

func TestValidateAccessToken(t *testing.T) {
	service := NewTokenService(testSecret)
	userID := uuid.New()

	t.Run("a valid token yields the subject user id", func(t *testing.T) {
		token := signTestToken(t, testSecret, userID.String(), time.Now().Add(time.Hour))

		got, err := service.ValidateAccessToken(token)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != userID {
			t.Errorf("expected %s, got %s", userID, got)
		}
	})

	t.Run("a token signed with another secret is rejected", func(t *testing.T) {
		token := signTestToken(t, "other-secret", userID.String(), time.Now().Add(time.Hour))

		if _, err := service.ValidateAccessToken(token); !errors.Is(err, domainerror.ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("an expired token is rejected", func(t *testing.T) {
		token := signTestToken(t, testSecret, userID.String(), time.Now().Add(-time.Minute))

		if _, err := service.ValidateAccessToken(token); !errors.Is(err, domainerror.ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("a non-uuid subject is rejected", func(t *testing.T) {
		token := signTestToken(t, testSecret, "someone@example.com", time.Now().Add(time.Hour))

		if _, err := service.ValidateAccessToken(token); !errors.Is(err, domainerror.ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("garbage input is rejected", func(t *testing.T) {
		if _, err := service.ValidateAccessToken("not-a-token"); !errors.Is(err, domainerror.ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})
}
