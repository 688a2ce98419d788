// Package middleware holds the request-scoped plumbing shared by all
// routes: the access guard and request logging.
package middleware

import (
	"net/http"
	"strings"

	"gigflow/backend/internal/auth"
	"gigflow/backend/internal/config"

	"github.com/gin-gonic/gin"
)

// ContextUserID is the gin context key the guard stores the authenticated
// user id under.
const ContextUserID = "userID"

// ExtractToken pulls the bearer token from the Authorization header, or
// falls back to the token cookie for browser sessions.
func ExtractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		if token := strings.TrimSpace(authHeader[len("Bearer "):]); token != "" {
			return token
		}
	}

	if cookie, err := c.Cookie(config.TokenCookie); err == nil {
		return cookie
	}
	return ""
}

// RequireAuth validates the caller's token and attaches the user id to the
// request context. Missing, expired and malformed tokens each produce their
// own 401 message. Ownership is not checked here; every mutating operation
// does that itself.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ExtractToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "No token, authorization denied"})
			return
		}

		userID, err := auth.Parse(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
			return
		}

		c.Set(ContextUserID, userID)
		c.Next()
	}
}

// UserID returns the authenticated user id set by RequireAuth.
func UserID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}
