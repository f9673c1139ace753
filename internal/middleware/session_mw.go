package middleware

import (
	"net/http"

	"clinic_booking/internal/utils"

	"github.com/gin-gonic/gin"
)

const (
	AuthUserKey = "authUser"
	AuthRoleKey = "authRole"

	// SessionCookie is the name of the client-held session cookie.
	SessionCookie = "session"
)

// SessionAuthMiddleware reads the signed session cookie. A missing or invalid
// session redirects to the login page without invoking the handler. It never
// touches storage; the role in the payload is trusted as set at login.
func SessionAuthMiddleware(su *utils.SessionUtil) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(SessionCookie)
		if err != nil || cookie == "" {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}

		claims, err := su.ValidateSession(cookie)
		if err != nil {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}

		// Set user information in context
		c.Set(AuthUserKey, claims.UserID)
		c.Set(AuthRoleKey, claims.Role)

		c.Next()
	}
}
