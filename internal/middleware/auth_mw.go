package middleware

import (
	"net/http"

	"jobportal/internal/utils"

	"github.com/gin-gonic/gin"
)

const (
	// TokenCookieName is the cookie carrying the session token.
	TokenCookieName = "token"
	// AuthUserKey is the gin context key holding the authenticated user id.
	AuthUserKey = "authUser"
)

// AuthRequired creates a middleware that re-derives the authenticated state
// from the bearer token in the session cookie. There is no server-side
// session record; a verified signature and unexpired token are the session.
func AuthRequired(jwtUtil *utils.JWTUtil) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(TokenCookieName)
		if err != nil || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "user not authenticated",
				"success": false,
			})
			return
		}

		claims, err := jwtUtil.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "invalid or expired token",
				"success": false,
			})
			return
		}

		c.Set(AuthUserKey, claims.UserID)
		c.Next()
	}
}

// UserID returns the authenticated user id set by AuthRequired.
func UserID(c *gin.Context) (string, bool) {
	v, exists := c.Get(AuthUserKey)
	if !exists {
		return "", false
	}
	id, ok := v.(string)
	return id, ok
}
