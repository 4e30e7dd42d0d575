package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/saleworks/catalog-api/internal/domain"
)

// JWTService defines operations for issuing and verifying bearer tokens.
type JWTService interface {
	// GenerateToken creates a signed token asserting the user's identity
	// and role. Returns the token string or an error if signing fails.
	GenerateToken(ctx context.Context, userID uuid.UUID, role domain.Role) (string, error)

	// ValidateToken verifies the token string and extracts its claims.
	// Returns ErrExpiredToken or ErrInvalidToken on failure; it never
	// panics past this boundary.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims is the decoded assertion a valid token carries: who the subject is
// and what role they hold. Tokens are stateless; expiry is the only
// revocation mechanism.
type Claims struct {
	// UserID is the unique identifier of the user the token was issued for.
	UserID uuid.UUID `json:"uid"`

	// Role is the subject's privilege level, checked by exact match.
	Role domain.Role `json:"role"`

	// Standard registered JWT claims
	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
