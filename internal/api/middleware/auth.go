package middleware

import (
	"portfolio-api/internal/models"
	"portfolio-api/internal/services"
	"strings"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware resolves the bearer token to a live user. The token only
// proves identity at issue time; the user row is re-read on every request so
// deleted accounts are rejected even while their token is still valid.
func AuthMiddleware(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(401, gin.H{"message": "Access token required"})
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(401, gin.H{"message": "Access token required"})
			c.Abort()
			return
		}

		userID, err := authService.VerifyToken(parts[1])
		if err != nil {
			c.JSON(403, gin.H{"message": "Invalid token"})
			c.Abort()
			return
		}

		user, err := authService.GetUser(userID)
		if err != nil {
			c.JSON(401, gin.H{"message": "User not found"})
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Next()
	}
}

// RequireAdmin assumes AuthMiddleware has already run.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, exists := c.Get("user")
		if !exists || !user.(*models.User).IsAdmin {
			c.JSON(403, gin.H{"message": "Admin access required"})
			c.Abort()
			return
		}

		c.Next()
	}
}
