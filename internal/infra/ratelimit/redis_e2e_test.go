//go:build e2e

package ratelimit_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"storefront-partners/internal/infra/ratelimit"
	"storefront-partners/internal/pkg/clock"
	"storefront-partners/internal/pkg/config"

	"github.com/docker/go-connections/nat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startRedis(t *testing.T) string {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(30 * time.Second),
			Labels:       map[string]string{"purpose": "e2e-tests"},
		},
		Started: true,
	})
	require.NoError(t, err, "failed to start redis container")
	t.Cleanup(func() {
		_ = c.Terminate(context.Background())
	})

	host, err := c.Host(ctx)
	require.NoError(t, err)
	port, err := c.MappedPort(ctx, nat.Port("6379/tcp"))
	require.NoError(t, err)
	return fmt.Sprintf("%s:%s", host, port.Port())
}

func TestRedisLimiter_FixedWindow(t *testing.T) {
	ctx := context.Background()
	client, err := ratelimit.Connect(ctx, startRedis(t))
	require.NoError(t, err)
	defer client.Close()

	clk := clock.NewMockClock(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
	cfg := config.RateLimitConfig{ClicksPerWindow: 2, Window: time.Minute}
	// Two limiters on one Redis behave like two service instances.
	first := ratelimit.NewLimiter(cfg, client, clk)
	second := ratelimit.NewLimiter(cfg, client, clk)

	ok, err := first.Allow(ctx, "ip:10.0.0.1")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = second.Allow(ctx, "ip:10.0.0.1")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = first.Allow(ctx, "ip:10.0.0.1")
	require.NoError(t, err)
	assert.False(t, ok, "third click in the window is over the shared budget")

	clk.Advance(time.Minute)
	ok, err = second.Allow(ctx, "ip:10.0.0.1")
	require.NoError(t, err)
	assert.True(t, ok, "a new window starts a new count")

	ttl, err := client.TTL(ctx, "ratelimit:clicks:ip:10.0.0.1:"+fmt.Sprint(clk.Now().UnixNano()/int64(time.Minute))).Result()
	require.NoError(t, err)
	assert.Positive(t, ttl)
}
