package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Must run after CheckLoginMiddleware.
func CheckAdminPermissionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		admin, exists := c.Get("IsAdmin")
		if !exists || admin != true {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Forbidden",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// CanModify is the single ownership predicate: the owner may always act,
// an admin only where the route allows the override.
func CanModify(ownerID, callerID uint, isAdmin, allowAdmin bool) bool {
	if ownerID == callerID {
		return true
	}
	return allowAdmin && isAdmin
}
