//go:build unit

package usecase_test

import (
	"testing"
	"time"

	"storefront-partners/internal/domain/auth"
	"storefront-partners/internal/pkg/jwt"
	"storefront-partners/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenValidator(t *testing.T) {
	svc := jwt.NewService("test-secret-key-with-32-characters!!", "storefront-partners", time.Hour)
	validator := usecase.NewTokenValidator(svc)

	t.Run("service token yields principal", func(t *testing.T) {
		token, err := svc.GenerateToken("checkout-service", auth.RoleService)
		require.NoError(t, err)

		p, err := validator.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "checkout-service", p.Subject())
		assert.True(t, p.Allows(auth.RoleService))
		assert.False(t, p.Allows(auth.RoleAdmin))
	})

	t.Run("token from another issuer is rejected", func(t *testing.T) {
		other := jwt.NewService("test-secret-key-with-32-characters!!", "someone-else", time.Hour)
		token, err := other.GenerateToken("ops", auth.RoleAdmin)
		require.NoError(t, err)

		_, err = validator.ValidateToken(token)
		require.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("empty subject is rejected", func(t *testing.T) {
		token, err := svc.GenerateToken("", auth.RoleAdmin)
		require.NoError(t, err)

		_, err = validator.ValidateToken(token)
		require.ErrorIs(t, err, auth.ErrEmptySubject)
	})
}
