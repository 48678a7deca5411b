package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"portal-gateway/internal/session"
	"portal-gateway/internal/shared/server/respond"
)

const (
	userIDKey   = "userId"
	userTypeKey = "userType"
	tokenKey    = "bearerToken"
)

// Auth requires a bearer token, decodes its claims (without verifying the
// signature; the upstream backend is the verifier) and stores identity in
// context. Callers receiving the auth_required code redirect to login.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			return
		}

		token, ok := bearerToken(c)
		if !ok {
			respond.Error(c, http.StatusUnauthorized, "auth_required", "missing or invalid token", nil)
			return
		}

		claims, err := session.DecodeClaims(token)
		if err != nil || claims.Expired(time.Now()) {
			respond.Error(c, http.StatusUnauthorized, "auth_required", "missing or invalid token", nil)
			return
		}

		c.Set(tokenKey, token)
		c.Set(userIDKey, claims.Sub)
		c.Set(userTypeKey, claims.UserType)
		c.Next()
	}
}

// OptionalAuth decodes a bearer token when present but never rejects the
// request. Used where anonymous access is allowed (search, download).
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := bearerToken(c); ok {
			if claims, err := session.DecodeClaims(token); err == nil {
				c.Set(tokenKey, token)
				c.Set(userIDKey, claims.Sub)
				c.Set(userTypeKey, claims.UserType)
			}
		}
		c.Next()
	}
}

// RequireUserType gates a route group to a single role from the token's
// userType claim.
func RequireUserType(userType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if got := c.GetString(userTypeKey); got != userType {
			respond.Error(c, http.StatusForbidden, "forbidden", "not available for this account type", nil)
			return
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	header := strings.TrimSpace(c.GetHeader("Authorization"))
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer"))
	if token == "" {
		return "", false
	}
	return token, true
}

// TokenFromContext fetches the raw bearer token stored by Auth.
func TokenFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(tokenKey)
	if token, ok := val.(string); ok {
		return token
	}
	return ""
}

// UserIDFromContext fetches the user ID set by the auth middleware.
func UserIDFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(userIDKey)
	if id, ok := val.(string); ok {
		return id
	}
	return ""
}

// UserTypeFromContext fetches the userType claim set by the auth middleware.
func UserTypeFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(userTypeKey)
	if userType, ok := val.(string); ok {
		return userType
	}
	return ""
}
