package auth

import (
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "codeberg.org/techworld/server/internal/errors"
)

const sessionIDKey = "session_id"

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}

	return parts[1]
}

// RequireServiceToken guards endpoints meant for trusted callers only.
func (m *Manager) RequireServiceToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" || !m.VerifyServiceToken(token) {
			apperrors.Unauthorized(c, "invalid or missing bearer token")
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireSession accepts either a session token or the service token.
// The session id lands in the context for handlers to use.
func (m *Manager) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			apperrors.Unauthorized(c, "invalid or missing bearer token")
			c.Abort()
			return
		}

		if m.VerifyServiceToken(token) {
			c.Next()
			return
		}

		sessionID, err := m.VerifySession(token)
		if err != nil {
			apperrors.Unauthorized(c, "invalid or expired session token")
			c.Abort()
			return
		}

		c.Set(sessionIDKey, sessionID)
		c.Next()
	}
}

// SessionID returns the session id set by RequireSession, if any.
func SessionID(c *gin.Context) string {
	if v, ok := c.Get(sessionIDKey); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
