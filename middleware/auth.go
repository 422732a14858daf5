package middleware

import (
	"net/http"
	"strings"

	"fitgarden/backend"
	"fitgarden/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthStaffMiddleware guards back-office endpoints. Staff accounts and
// their credentials live in the core backend; this layer validates the
// signed token and forwards it on the request context so backend calls
// run under the caller's identity.
func JWTAuthStaffMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		// Validate the token signature and expiration.
		token, err := utils.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		if _, err := utils.ExtractIDFromToken(tokenString); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Request = c.Request.WithContext(backend.WithStaffToken(c.Request.Context(), tokenString))
		c.Next()
	}
}
