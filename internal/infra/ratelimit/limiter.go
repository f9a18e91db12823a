package ratelimit

import (
	"context"
	"log/slog"

	"storefront-partners/internal/pkg/clock"
	"storefront-partners/internal/pkg/config"

	"github.com/redis/go-redis/v9"
)

//go:generate mockgen -source=limiter.go -destination=../../../tests/mock/ratelimit/limiter_mock.go -package=ratelimitmock

// Limiter decides whether one more request from key fits in its budget.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// NewLimiter shares counters through Redis when an address is configured.
// The local fallback only limits per process.
func NewLimiter(cfg config.RateLimitConfig, client *redis.Client, clk clock.Clock) Limiter {
	if client == nil {
		slog.Warn("REDIS_ADDR not set; click rate limit is enforced per instance only")
		return NewLocalLimiter(cfg)
	}
	return NewRedisLimiter(client, cfg, clk)
}
