package cookie

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tourdesk/internal/pkg/config"
)

const AccessTokenCookieName = "access_token"

// SetTokenCookie stores the access token as an HttpOnly cookie scoped to the
// whole API.
func SetTokenCookie(c *gin.Context, cfg config.CookieConfig, accessToken string, accessExpiry time.Duration) {
	c.SetSameSite(sameSiteMode(cfg.SameSite))
	c.SetCookie(AccessTokenCookieName, accessToken, int(accessExpiry.Seconds()), "/", cfg.Domain, cfg.Secure, true)
}

func ClearTokenCookie(c *gin.Context, cfg config.CookieConfig) {
	c.SetSameSite(sameSiteMode(cfg.SameSite))
	c.SetCookie(AccessTokenCookieName, "", -1, "/", cfg.Domain, cfg.Secure, true)
}

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}

func sameSiteMode(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
