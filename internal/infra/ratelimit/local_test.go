//go:build unit

package ratelimit_test

import (
	"context"
	"testing"
	"time"

	"storefront-partners/internal/infra/ratelimit"
	"storefront-partners/internal/pkg/clock"
	"storefront-partners/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalLimiter(t *testing.T) {
	ctx := context.Background()
	l := ratelimit.NewLocalLimiter(config.RateLimitConfig{ClicksPerWindow: 1, Window: time.Hour, Burst: 3})

	for i := range 3 {
		ok, err := l.Allow(ctx, "ip:10.0.0.1")
		require.NoError(t, err)
		assert.True(t, ok, "request %d should fit the burst", i+1)
	}
	ok, err := l.Allow(ctx, "ip:10.0.0.1")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = l.Allow(ctx, "ip:10.0.0.2")
	require.NoError(t, err)
	assert.True(t, ok, "budgets are per key")
}

func TestNewLimiter_FallsBackWithoutRedis(t *testing.T) {
	l := ratelimit.NewLimiter(config.RateLimitConfig{ClicksPerWindow: 10, Window: time.Minute, Burst: 1}, nil, clock.NewRealClock())
	assert.IsType(t, &ratelimit.LocalLimiter{}, l)
}
