package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"storefront-partners/internal/domain/auth"
	"storefront-partners/internal/handler/httperr"
	"storefront-partners/internal/pkg/errs"
	"storefront-partners/internal/usecase"

	"github.com/gin-gonic/gin"
)

var (
	errTokenRequired = errs.New("access token required")
	errNoPrincipal   = errs.New("principal missing from context")
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const ctxPrincipalKey = "principal"

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errTokenRequired, "Access token required", nil)
			return
		}

		principal, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		c.Set(ctxPrincipalKey, principal)
		c.Set("jwt_claims", map[string]any{
			"subject": principal.Subject(),
			"role":    principal.Role().String(),
		})
		c.Next()
	}
}

// RequireRole must run after RequireAuth. Admin satisfies every role.
func (m *AuthMiddleware) RequireRole(required auth.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		if !ok {
			// Unexpected error: should be used after RequireAuth()
			httperr.AbortWithError(c, http.StatusInternalServerError, errNoPrincipal, "Internal server error", nil)
			return
		}

		if !principal.Allows(required) {
			httperr.AbortWithError(c, http.StatusForbidden, auth.ErrRoleNotAllowed, "Insufficient permissions", nil)
			return
		}

		c.Next()
	}
}

func GetPrincipal(c *gin.Context) (auth.Principal, bool) {
	v, exists := c.Get(ctxPrincipalKey)
	if !exists {
		return auth.Principal{}, false
	}

	p, ok := v.(auth.Principal)
	return p, ok
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}
