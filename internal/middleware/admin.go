package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminMiddleware authorizes admin-only routes. It assumes
// AuthMiddleware already ran and populated the identity.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		isAdmin, ok := c.Get(ContextIsAdmin)
		if !ok || isAdmin != true {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admins_only"})
			return
		}

		c.Next()
	}
}
