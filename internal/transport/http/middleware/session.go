package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ContextSessionIDKey = "session_id"

// Session makes sure every request carries a session cookie and exposes the
// session ID to handlers. The cookie lives for the browser session only and
// is not marked Secure because the server listens on localhost.
func Session(cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(cookieName)
		if err != nil || id == "" {
			id = uuid.NewString()
			c.SetCookie(cookieName, id, 0, "/", "", false, true)
		}
		c.Set(ContextSessionIDKey, id)
		c.Next()
	}
}
