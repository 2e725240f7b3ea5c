package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/juju/loggo"
)

const (
	StaffIDKey  = "staffID"
	UsernameKey = "username"
)

var logger = loggo.GetLogger("inventory.auth")

// Middleware validates access tokens and injects the staff member into the
// gin context for protected endpoints.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing Authorization header"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid header format"})
			return
		}

		claims, err := ValidateToken(parts[1])
		if err != nil {
			logger.Debugf("rejected token path=%s err=%v", c.FullPath(), err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(StaffIDKey, claims.StaffID)
		c.Set(UsernameKey, claims.Username)
		c.Next()
	}
}
