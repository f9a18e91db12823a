package ratelimit

import (
	"context"
	"strconv"
	"strings"
	"time"

	"storefront-partners/internal/pkg/clock"
	"storefront-partners/internal/pkg/config"
	"storefront-partners/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "ratelimit:clicks:"

// RedisLimiter is a fixed-window counter shared by every instance.
type RedisLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
	clock  clock.Clock
}

func NewRedisLimiter(client *redis.Client, cfg config.RateLimitConfig, clk clock.Clock) *RedisLimiter {
	window := cfg.Window
	if window <= 0 {
		window = time.Minute
	}
	return &RedisLimiter{
		client: client,
		limit:  int64(cfg.ClicksPerWindow),
		window: window,
		clock:  clk,
	}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	slot := l.clock.Now().UnixNano() / int64(l.window)
	redisKey := keyPrefix + key + ":" + strconv.FormatInt(slot, 10)

	var incr *redis.IntCmd
	_, err := l.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		incr = p.Incr(ctx, redisKey)
		p.Expire(ctx, redisKey, l.window+time.Second)
		return nil
	})
	if err != nil {
		return false, errs.Wrap(err, "failed to count request")
	}
	return incr.Val() <= l.limit, nil
}

// Connect accepts either a redis:// URL or a bare host:port.
func Connect(ctx context.Context, addr string) (*redis.Client, error) {
	var opt *redis.Options
	if strings.HasPrefix(addr, "redis://") {
		parsed, err := redis.ParseURL(addr)
		if err != nil {
			return nil, errs.Wrap(err, "failed to parse redis url")
		}
		opt = parsed
	} else {
		opt = &redis.Options{Addr: addr}
	}

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errs.Wrap(err, "failed to reach redis")
	}
	return client, nil
}
