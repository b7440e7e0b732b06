//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"gym-booking/internal/pkg/errs"
	"gym-booking/internal/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	svc := jwt.NewService("test-secret", time.Hour)
	userID := uuid.New()

	t.Run("round trip", func(t *testing.T) {
		token, err := svc.GenerateToken(userID, "member", time.Now())
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)

		id, err := claims.UserID()
		require.NoError(t, err)
		assert.Equal(t, userID, id)
		assert.Equal(t, "member", claims.Role)
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := svc.GenerateToken(userID, "member", time.Now().Add(-2*time.Hour))
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.True(t, errs.Is(err, jwt.ErrExpiredToken))
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := jwt.NewService("other-secret", time.Hour)
		token, err := other.GenerateToken(userID, "member", time.Now())
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.True(t, errs.Is(err, jwt.ErrInvalidToken))
	})

	t.Run("unexpected signing method", func(t *testing.T) {
		token := gojwt.NewWithClaims(gojwt.SigningMethodHS512, gojwt.RegisteredClaims{
			Issuer:    "gym-booking",
			Subject:   userID.String(),
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
		})
		signed, err := token.SignedString([]byte("test-secret"))
		require.NoError(t, err)

		_, err = svc.ValidateToken(signed)
		assert.True(t, errs.Is(err, jwt.ErrInvalidToken))
	})

	t.Run("malformed token", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-token")
		assert.True(t, errs.Is(err, jwt.ErrInvalidToken))
	})
}
