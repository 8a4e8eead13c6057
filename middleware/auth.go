package middleware

import (
	"net/http"

	"github.com/HafizBasit7/ZES-Admin/auth"
	"github.com/HafizBasit7/ZES-Admin/config"
	"github.com/gin-gonic/gin"
)

// ContextAdminKey is where RequireAdmin stores the verified claims.
const ContextAdminKey = "admin"

// RequireAdmin gates a route group behind the admin session cookie. Absent,
// invalid and expired credentials are all answered with the same 401 so the
// response never leaks which case occurred.
func RequireAdmin(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(cfg.CookieName)
		if err != nil || tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			c.Abort()
			return
		}

		claims, err := auth.ParseAdminToken(cfg, tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			c.Abort()
			return
		}

		c.Set(ContextAdminKey, claims)
		c.Next()
	}
}
