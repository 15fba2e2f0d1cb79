package helpers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// TokenCookie is the single cookie carrying the session credential.
const TokenCookie = "token"

type CookieManager struct {
	Domain string
	Secure bool
}

func NewCookie(domain string, secure bool) *CookieManager {
	return &CookieManager{Domain: domain, Secure: secure}
}

func (m *CookieManager) Set(c *gin.Context, token string, exp time.Time) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(TokenCookie, token, maxAgeFrom(exp), "/", m.Domain, m.Secure, true)
}

func (m *CookieManager) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(TokenCookie, "", -1, "/", m.Domain, m.Secure, true)
}

func maxAgeFrom(exp time.Time) int {
	sec := int(time.Until(exp).Seconds())
	if sec < 0 {
		return 0
	}
	return sec
}
