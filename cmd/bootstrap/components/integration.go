package components

import (
	"context"

	"storefront-partners/internal/infra/events"
	"storefront-partners/internal/infra/ratelimit"
	"storefront-partners/internal/infra/settlement"
	"storefront-partners/internal/pkg/clock"
	"storefront-partners/internal/pkg/config"
	"storefront-partners/internal/usecase/commands"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var IntegrationModule = fx.Module("integration",
	fx.Provide(
		NewSettlementGateway,
		NewEventPublisher,
		NewRedisClient,
		NewRateLimiter,
	),
)

func NewSettlementGateway(cfg config.Config) commands.SettlementGateway {
	return settlement.NewGateway(cfg.Settlement)
}

func NewEventPublisher(lc fx.Lifecycle, cfg config.Config) (commands.EventPublisher, error) {
	publisher, closeFn, err := events.NewPublisher(cfg.Kafka)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return closeFn()
		},
	})

	return publisher, nil
}

// NewRedisClient returns nil when REDIS_ADDR is unset.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config) (*redis.Client, error) {
	if cfg.RateLimit.RedisAddr == "" {
		return nil, nil
	}

	client, err := ratelimit.Connect(context.Background(), cfg.RateLimit.RedisAddr)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}

func NewRateLimiter(cfg config.Config, client *redis.Client, clk clock.Clock) ratelimit.Limiter {
	return ratelimit.NewLimiter(cfg.RateLimit, client, clk)
}
