package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRoles returns a Gin middleware that allows only the listed roles.
// It must run after JWTAuth so the role claim is present in the context.
func RequireRoles(allowed ...string) gin.HandlerFunc {
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(c *gin.Context) {
		role := c.GetString("role")
		if _, ok := allowedSet[role]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "You do not have permission to perform this action",
			})
			return
		}
		c.Next()
	}
}
