package cookie

import (
	"net/http"

	"storefront-partners/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

// ReferralSessionCookieName carries the anonymous browsing session a referral click is bound to.
const ReferralSessionCookieName = "ref_sid"

func SetReferralSession(c *gin.Context, cfg config.CookieConfig, sessionID string) {
	c.SetSameSite(getSameSite(cfg.SameSite))

	c.SetCookie(
		ReferralSessionCookieName,
		sessionID,
		int(cfg.MaxAge.Seconds()),
		"/",
		cfg.Domain,
		cfg.Secure,
		true, // HttpOnly
	)
}

func ClearReferralSession(c *gin.Context, cfg config.CookieConfig) {
	c.SetSameSite(getSameSite(cfg.SameSite))

	c.SetCookie(
		ReferralSessionCookieName,
		"",
		-1,
		"/",
		cfg.Domain,
		cfg.Secure,
		true,
	)
}

func GetReferralSession(c *gin.Context) string {
	sid, _ := c.Cookie(ReferralSessionCookieName)
	return sid
}

func getSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
