package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateToken(t *testing.T) {
	v := NewValidator("test-secret")

	t.Run("round trips claims", func(t *testing.T) {
		token, err := v.GenerateToken(42, "nimal", "ADMIN", time.Hour)
		require.NoError(t, err)

		claims, err := v.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, uint(42), claims.UserID)
		assert.Equal(t, "nimal", claims.Username)
		assert.Equal(t, "ADMIN", claims.Role)
	})

	t.Run("rejects expired token", func(t *testing.T) {
		token, err := v.GenerateToken(1, "old", "ADMIN", -time.Minute)
		require.NoError(t, err)

		_, err = v.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("rejects token signed with another secret", func(t *testing.T) {
		token, err := NewValidator("other").GenerateToken(1, "x", "ADMIN", time.Hour)
		require.NoError(t, err)

		_, err = v.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects unsigned token", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{Username: "x"}).
			SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = v.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := v.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
