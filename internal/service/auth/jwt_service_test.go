package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saleworks/catalog-api/internal/config"
	"github.com/saleworks/catalog-api/internal/domain"
)

const testSecret = "test-secret-that-is-long-enough-for-testing"

func newTestJWTService(secret string, lifetime time.Duration, timeFunc func() time.Time) *hmacJWTService {
	return &hmacJWTService{
		signingKey:    []byte(secret),
		tokenLifetime: lifetime,
		timeFunc:      timeFunc,
		clockSkew:     2 * time.Minute,
	}
}

func TestNewJWTService(t *testing.T) {
	t.Parallel()

	t.Run("rejects short secret", func(t *testing.T) {
		t.Parallel()
		_, err := NewJWTService(config.AuthConfig{JWTSecret: "too-short", TokenLifetimeMinutes: 60})
		assert.Error(t, err)
	})

	t.Run("accepts sufficient secret", func(t *testing.T) {
		t.Parallel()
		svc, err := NewJWTService(config.AuthConfig{JWTSecret: testSecret, TokenLifetimeMinutes: 60})
		require.NoError(t, err)
		assert.NotNil(t, svc)
	})
}

func TestGenerateToken(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	tokenLifetime := 60 * time.Minute
	userID := uuid.New()

	svc := newTestJWTService(testSecret, tokenLifetime, func() time.Time { return fixedTime })

	t.Run("generates valid token carrying role", func(t *testing.T) {
		t.Parallel()
		token, err := svc.GenerateToken(context.Background(), userID, domain.RoleAdmin)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := svc.ValidateToken(context.Background(), token)
		require.NoError(t, err)

		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, domain.RoleAdmin, claims.Role)
		assert.Equal(t, userID.String(), claims.Subject)
		assert.Equal(t, fixedTime.Unix(), claims.IssuedAt.Unix())
		assert.Equal(t, fixedTime.Add(tokenLifetime).Unix(), claims.ExpiresAt.Unix())
		assert.NotEmpty(t, claims.ID)
	})

	t.Run("standard role round-trips", func(t *testing.T) {
		t.Parallel()
		token, err := svc.GenerateToken(context.Background(), userID, domain.RoleStandard)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(context.Background(), token)
		require.NoError(t, err)
		assert.Equal(t, domain.RoleStandard, claims.Role)
	})
}

func TestValidateToken(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	tokenLifetime := 60 * time.Minute
	userID := uuid.New()

	t.Run("rejects expired token", func(t *testing.T) {
		t.Parallel()
		issuer := newTestJWTService(testSecret, tokenLifetime, func() time.Time { return fixedTime })
		token, err := issuer.GenerateToken(context.Background(), userID, domain.RoleStandard)
		require.NoError(t, err)

		// Validate well past expiry plus the clock skew allowance.
		later := newTestJWTService(testSecret, tokenLifetime, func() time.Time {
			return fixedTime.Add(tokenLifetime + 10*time.Minute)
		})
		_, err = later.ValidateToken(context.Background(), token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("allows expiry within clock skew", func(t *testing.T) {
		t.Parallel()
		issuer := newTestJWTService(testSecret, tokenLifetime, func() time.Time { return fixedTime })
		token, err := issuer.GenerateToken(context.Background(), userID, domain.RoleStandard)
		require.NoError(t, err)

		within := newTestJWTService(testSecret, tokenLifetime, func() time.Time {
			return fixedTime.Add(tokenLifetime + time.Minute)
		})
		_, err = within.ValidateToken(context.Background(), token)
		assert.NoError(t, err)
	})

	t.Run("rejects token signed with another key", func(t *testing.T) {
		t.Parallel()
		issuer := newTestJWTService("wrong-secret-that-is-long-enough-for-testing", tokenLifetime,
			func() time.Time { return fixedTime })
		token, err := issuer.GenerateToken(context.Background(), userID, domain.RoleStandard)
		require.NoError(t, err)

		svc := newTestJWTService(testSecret, tokenLifetime, func() time.Time { return fixedTime })
		_, err = svc.ValidateToken(context.Background(), token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects malformed token", func(t *testing.T) {
		t.Parallel()
		svc := newTestJWTService(testSecret, tokenLifetime, func() time.Time { return fixedTime })
		_, err := svc.ValidateToken(context.Background(), "not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects unknown role claim", func(t *testing.T) {
		t.Parallel()
		svc := newTestJWTService(testSecret, tokenLifetime, func() time.Time { return fixedTime })

		claims := jwtCustomClaims{
			UserID: userID,
			Role:   domain.Role("superuser"),
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   userID.String(),
				IssuedAt:  jwt.NewNumericDate(fixedTime),
				ExpiresAt: jwt.NewNumericDate(fixedTime.Add(tokenLifetime)),
				ID:        uuid.New().String(),
			},
		}
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		signed, err := token.SignedString([]byte(testSecret))
		require.NoError(t, err)

		_, err = svc.ValidateToken(context.Background(), signed)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
