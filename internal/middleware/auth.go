package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/HUST-25-SE/SaveBite/internal/auth"
)

// AuthMiddleware rejects requests without a valid bearer token and attaches
// the caller's identity to the request context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, username, ok := bearerIdentity(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "authentication required",
			})
			c.Abort()
			return
		}

		c.Set("userID", userID)
		c.Set("username", username)
		c.Next()
	}
}

// OptionalAuth attaches the caller's identity when a valid token is present
// and lets anonymous requests through. Search uses it to flag favorites.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, username, ok := bearerIdentity(c); ok {
			c.Set("userID", userID)
			c.Set("username", username)
		}
		c.Next()
	}
}

func bearerIdentity(c *gin.Context) (string, string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", "", false
	}

	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", "", false
	}

	userID, username, err := auth.ValidateToken(parts[1])
	if err != nil {
		return "", "", false
	}
	return userID, username, true
}
