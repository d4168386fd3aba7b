package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authUtils "promisewatch-be/utils"
)

// AdminKeyHeader carries the plaintext admin key.
const AdminKeyHeader = "X-Admin-Key"

// AdminMiddleware admits requests whose admin key matches keyHash.
func AdminMiddleware(keyHash string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if keyHash == "" {
			c.JSON(http.StatusForbidden, gin.H{"error": "admin access not configured"})
			c.Abort()
			return
		}
		if !authUtils.AdminKeyMatches(keyHash, c.GetHeader(AdminKeyHeader)) {
			c.JSON(http.StatusForbidden, gin.H{"error": "invalid admin key"})
			c.Abort()
			return
		}
		c.Next()
	}
}
