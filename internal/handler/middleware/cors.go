package middleware

import (
	"log/slog"
	"slices"

	"storefront-partners/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Headers the storefront reads from click and finalize responses.
var exposedHeaders = []string{"Location", "Retry-After", "X-Request-ID"}

// NewCORSMiddleware allows the storefront origins to call the public referral
// endpoints with the ref_sid cookie attached.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    mergeHeaders(cfg.ExposeHeaders, exposedHeaders),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}

	// Browsers drop credentials on wildcard responses, so the session cookie would never round-trip.
	if slices.Contains(cfg.AllowOrigins, "*") {
		if cfg.AllowCredentials {
			slog.Warn("CORS wildcard origin disables credentials; referral cookies will not be sent cross-origin")
		}
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	} else {
		corsCfg.AllowOrigins = cfg.AllowOrigins
	}

	slog.Info("CORS middleware initialized",
		"allow_origins", cfg.AllowOrigins,
		"allow_credentials", corsCfg.AllowCredentials)
	return cors.New(corsCfg)
}

func mergeHeaders(configured, required []string) []string {
	out := slices.Clone(configured)
	for _, h := range required {
		if !slices.Contains(out, h) {
			out = append(out, h)
		}
	}
	return out
}
