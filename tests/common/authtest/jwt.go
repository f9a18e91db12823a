//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"storefront-partners/internal/domain/auth"
	"storefront-partners/internal/pkg/config"
	"storefront-partners/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

// JWTHelper mints tokens the way the upstream identity service does.
type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, subject string, role auth.Role) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	token, err := jwt.NewService(h.cfg.Secret, h.cfg.Issuer, duration).GenerateToken(subject, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) ServiceToken(t *testing.T) string {
	t.Helper()
	return h.GenerateToken(t, "storefront-checkout", auth.RoleService)
}

func (h *JWTHelper) AdminToken(t *testing.T) string {
	t.Helper()
	return h.GenerateToken(t, "ops@example.com", auth.RoleAdmin)
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, role auth.Role) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, h.cfg.Issuer, time.Millisecond).GenerateToken("expired", role)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
