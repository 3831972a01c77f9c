package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// WSAuthMiddleware checks the JWT for websocket upgrades. Browsers cannot set
// headers on the handshake, so the token query parameter is tried first.
func WSAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := c.Query("token")
		if tokenStr == "" {
			tokenStr = bearerToken(c)
		}
		if tokenStr == "" {
			tokenStr, _ = c.Cookie(TokenCookie)
		}
		if !setClaims(c, tokenStr, secret) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Next()
	}
}
