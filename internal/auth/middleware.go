package auth

import (
	"net/http"
	"strings"

	"skillswap/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// UsernameKey is the gin context key holding the verified token identity.
const UsernameKey = "username"

// AuthMiddleware requires a valid bearer token. A missing token aborts with
// 401; an invalid or expired one with 403. On success the verified username
// is stored in the context so handlers act on it rather than on a
// caller-supplied parameter.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No token provided"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Malformed authorization header"})
			return
		}

		username, err := jwt.ParseToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(UsernameKey, username)
		c.Next()
	}
}
