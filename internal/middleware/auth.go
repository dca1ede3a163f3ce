package middleware

import (
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/tharunbanothpersonal-spec/radha-travels/pkg/utils"
)

func adminCookieName() string {
	if name := os.Getenv("ADMIN_COOKIE_NAME"); name != "" {
		return name
	}
	return "rt_admin_token"
}

// AuthAdmin guards the admin panel routes. The session token is read
// from the login cookie first so the dashboard works without scripting,
// with a Bearer header fallback for API clients.
func AuthAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		if cookie, err := c.Cookie(adminCookieName()); err == nil {
			tokenString = cookie
		}

		if tokenString == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" {
				parts := strings.Split(authHeader, " ")
				if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
					tokenString = parts[1]
				}
			}
		}

		if tokenString == "" {
			c.JSON(401, gin.H{"ok": false, "error": "unauthorized"})
			c.Abort()
			return
		}

		token, err := utils.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			c.JSON(401, gin.H{"ok": false, "error": "unauthorized"})
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.JSON(401, gin.H{"ok": false, "error": "unauthorized"})
			c.Abort()
			return
		}

		id, _ := claims["id"].(float64)
		email, _ := claims["email"].(string)
		c.Set("adminId", uint(id))
		c.Set("adminEmail", email)
		c.Next()
	}
}
