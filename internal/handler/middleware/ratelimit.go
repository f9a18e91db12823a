package middleware

import (
	"log/slog"
	"net/http"
	"strconv"

	"storefront-partners/internal/handler/httperr"
	"storefront-partners/internal/infra/ratelimit"
	"storefront-partners/internal/pkg/config"
	"storefront-partners/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

var errRateLimited = errs.New("rate limit exceeded")

// RateLimit throttles public storefront endpoints per client IP.
// A limiter outage lets traffic through rather than blocking checkout.
func RateLimit(limiter ratelimit.Limiter, cfg config.RateLimitConfig) gin.HandlerFunc {
	retryAfter := strconv.Itoa(max(int(cfg.Window.Seconds()), 1))
	return func(c *gin.Context) {
		key := "ip:" + c.ClientIP()
		allowed, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			slog.Warn("rate limiter unavailable; allowing request", "key", key, "error", err)
			c.Next()
			return
		}
		if !allowed {
			c.Header("Retry-After", retryAfter)
			err := errs.Wrapf(errRateLimited, "%s %s", c.Request.Method, c.FullPath())
			httperr.AbortWithError(c, http.StatusTooManyRequests, err, "Too many requests", nil)
			return
		}
		c.Next()
	}
}
