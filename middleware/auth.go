package middleware

import (
	"Storefront/jwt"

	"github.com/gin-gonic/gin"
)

const TokenHeader = "x-auth-token"

// AuthMiddleware parses the x-auth-token header when present and attaches
// the resolved identity to the context. It never aborts: routes that need
// a login use CheckLoginMiddleware after it.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(TokenHeader)
		if token == "" {
			c.Next()
			return
		}

		userID, admin, err := jwt.VerifyToken(token, secret)
		if err != nil {
			// Invalid token behaves like no token at all.
			c.Next()
			return
		}

		c.Set("UserID", userID)
		c.Set("IsAdmin", admin)
		c.Next()
	}
}

// Identity reads the caller attached by AuthMiddleware.
func Identity(c *gin.Context) (uint, bool, bool) {
	rawID, exists := c.Get("UserID")
	if !exists {
		return 0, false, false
	}
	admin, _ := c.Get("IsAdmin")
	isAdmin, _ := admin.(bool)
	return rawID.(uint), isAdmin, true
}
