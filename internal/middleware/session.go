package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/yourusername/topic-advisor-api/pkg/auth"
)

// SessionHeader carries the client-generated session id identifying an
// anonymous quiz attempt.
const SessionHeader = "X-Session-Id"

// SessionToken returns the session id header value, or "" when the header
// is absent or not UUID-shaped. The shape check runs before any storage
// lookup.
func SessionToken(c *gin.Context) string {
	value := c.GetHeader(SessionHeader)
	if !auth.IsUUID(value) {
		return ""
	}
	return value
}
