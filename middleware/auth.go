package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jbook26/inventory-api/auth"
)

// RequireSession guards mutating routes behind a valid session cookie.
func RequireSession(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := svc.SessionFromRequest(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		// Expose the session identity to handlers downstream.
		c.Set("user_id", claims.UserID)
		c.Set("user_email", claims.Email)

		c.Next()
	}
}
