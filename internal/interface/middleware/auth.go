package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"notely/pkg/helpers"
)

const ctxIdentityKey = "identity"

// Identity is the authenticated identity attached to the request by the
// session gate. Handlers receive it as a value; the request itself is never
// mutated.
type Identity struct {
	UserID   string
	Email    string
	Username string
	Age      int
}

// SessionGate reads the token cookie and verifies it. A missing cookie
// redirects to login; an invalid or expired one is cleared first. On success
// the decoded identity is attached to the gin context.
func SessionGate(jwt *helpers.JWTManager, cookies *helpers.CookieManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(helpers.TokenCookie)
		if err != nil || token == "" {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		claims, err := jwt.Parse(token)
		if err != nil {
			cookies.Clear(c)
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Set(ctxIdentityKey, Identity{
			UserID:   claims.UserID,
			Email:    claims.Email,
			Username: claims.Username,
			Age:      claims.Age,
		})
		c.Next()
	}
}

// IdentityFrom returns the identity set by SessionGate.
func IdentityFrom(c *gin.Context) (Identity, bool) {
	v, ok := c.Get(ctxIdentityKey)
	if !ok {
		return Identity{}, false
	}
	id, ok := v.(Identity)
	return id, ok
}
