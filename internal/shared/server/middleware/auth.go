package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"resumebuilder-backend/internal/sessions"
	"resumebuilder-backend/internal/shared/server/respond"
)

// SessionCookie is the name of the session token cookie.
const SessionCookie = "session_id"

const userIDKey = "userId"

type ctxKey string

const requestUserIDKey ctxKey = "userId"

// Auth resolves the session cookie against the registry and stores the
// authenticated user id in the request context. Requests without a
// live session are rejected. Auth and health routes pass through.
func Auth(registry sessions.Registry, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		path := c.Request.URL.Path
		if !strings.HasPrefix(path, "/api/") || strings.HasPrefix(path, "/api/v1/auth/") || path == "/api/v1/health" {
			c.Next()
			return
		}

		token, err := c.Cookie(SessionCookie)
		if err != nil || strings.TrimSpace(token) == "" {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "Authentication required", nil)
			return
		}

		userID, ok := registry.Get(token)
		if !ok {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "Authentication required", nil)
			return
		}

		// Sliding expiry: every authenticated request renews the session.
		registry.Renew(token, ttl)

		c.Set(userIDKey, userID)

		// Also store in the request context for downstream services.
		ctx := context.WithValue(c.Request.Context(), requestUserIDKey, userID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// UserIDFromContext fetches the user id set by the auth middleware.
func UserIDFromContext(c *gin.Context) int64 {
	if c == nil {
		return 0
	}
	val, _ := c.Get(userIDKey)
	if id, ok := val.(int64); ok {
		return id
	}
	return 0
}

// UserIDFromRequestContext fetches the user id from a context
// populated by the auth middleware.
func UserIDFromRequestContext(ctx context.Context) int64 {
	if ctx == nil {
		return 0
	}
	if id, ok := ctx.Value(requestUserIDKey).(int64); ok {
		return id
	}
	return 0
}
