package ratelimit

import (
	"context"
	"sync"
	"time"

	"storefront-partners/internal/pkg/config"

	"golang.org/x/time/rate"
)

// LocalLimiter keeps one token bucket per key in process memory.
type LocalLimiter struct {
	limiters sync.Map
	limit    rate.Limit
	burst    int
}

func NewLocalLimiter(cfg config.RateLimitConfig) *LocalLimiter {
	window := cfg.Window
	if window <= 0 {
		window = time.Minute
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}
	return &LocalLimiter{
		limit: rate.Limit(float64(cfg.ClicksPerWindow) / window.Seconds()),
		burst: burst,
	}
}

func (l *LocalLimiter) Allow(_ context.Context, key string) (bool, error) {
	if v, ok := l.limiters.Load(key); ok {
		return v.(*rate.Limiter).Allow(), nil
	}
	actual, _ := l.limiters.LoadOrStore(key, rate.NewLimiter(l.limit, l.burst))
	return actual.(*rate.Limiter).Allow(), nil
}
