//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"storefront-partners/internal/domain/auth"
	"storefront-partners/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	svc := jwt.NewService("secret", "storefront", time.Hour)

	t.Run("round trip keeps subject and role", func(t *testing.T) {
		token, err := svc.GenerateToken("checkout-service", auth.RoleService)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "checkout-service", claims.Subject)
		assert.Equal(t, "service", claims.Role)
	})

	t.Run("wrong secret is rejected", func(t *testing.T) {
		other := jwt.NewService("other", "storefront", time.Hour)
		token, err := other.GenerateToken("x", auth.RoleAdmin)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		require.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("wrong issuer is rejected", func(t *testing.T) {
		other := jwt.NewService("secret", "someone-else", time.Hour)
		token, err := other.GenerateToken("x", auth.RoleAdmin)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		require.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		short := jwt.NewService("secret", "storefront", -time.Minute)
		token, err := short.GenerateToken("x", auth.RoleAdmin)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		require.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-token")
		require.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
