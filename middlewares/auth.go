package middlewares

import (
	"net/http"
	"strings"

	"github.com/Techkepper/PoskepperApi/utils"

	"github.com/gin-gonic/gin"
)

const TokenCookie = "token"

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	return ""
}

// setClaims validates the token and puts the session user on the context.
func setClaims(c *gin.Context, tokenStr, secret string) bool {
	if tokenStr == "" {
		return false
	}
	claims, err := utils.ParseToken(tokenStr, secret)
	if err != nil {
		return false
	}
	c.Set(utils.CtxUserID, claims.IDUsuario)
	c.Set(utils.CtxUsername, claims.NombreUsuario)
	c.Set(utils.CtxRole, claims.Rol)
	c.Set(utils.CtxLogger, utils.Logger(c).WithField("user", claims.NombreUsuario))
	return true
}

// AuthMiddleware accepts the session token from the Authorization header or
// the token cookie and, when roles are given, requires one of them.
func AuthMiddleware(secret string, roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := bearerToken(c)
		if tokenStr == "" {
			tokenStr, _ = c.Cookie(TokenCookie)
		}
		if !setClaims(c, tokenStr, secret) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"mensaje": "No autorizado"})
			return
		}

		if len(roles) > 0 {
			role := utils.CurrentRole(c)
			allowed := false
			for _, r := range roles {
				if role == r {
					allowed = true
					break
				}
			}
			if !allowed {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Acceso denegado"})
				return
			}
		}

		c.Next()
	}
}
