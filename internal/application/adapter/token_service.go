// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "github.com/google/uuid"

// TokenService is the identity-provider boundary. The engine only needs a
// stable user identifier out of a verified token; issuing tokens is handled
// by the external identity provider.
type TokenService interface {
	// ValidateAccessToken verifies the token and returns the user id it
	// carries.
	ValidateAccessToken(token string) (uuid.UUID, error)
}
