package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRole is the single role gate shared by every protected route group,
// replacing per-handler string comparisons. Must run after AuthMiddleware.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		got, _ := c.Get(ContextUserRole)
		if got != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}
		c.Next()
	}
}
