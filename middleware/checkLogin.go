package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Aborts the request when no identity was attached by AuthMiddleware.
func CheckLoginMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		_, exists := c.Get("UserID")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Unauthorized",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
