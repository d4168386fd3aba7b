package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	authUtils "promisewatch-be/utils"
)

// UIDKey is the gin context key holding the authenticated uid.
const UIDKey = "uid"

// AuthCookie carries the session token for browser clients.
const AuthCookie = "auth_token"

// AuthMiddleware accepts a bearer token or the auth_token cookie and sets
// the uid on the context.
func AuthMiddleware(secret string, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No authorization token provided"})
			c.Abort()
			return
		}

		if secret == "" {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "JWT secret not configured"})
			c.Abort()
			return
		}

		uid, err := authUtils.ParseToken(secret, tokenString)
		if err != nil {
			log.Debug().Err(err).Msg("token validation failed")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization token"})
			c.Abort()
			return
		}

		c.Set(UIDKey, uid)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	if header := c.Request.Header.Get("Authorization"); header != "" {
		return strings.TrimPrefix(header, "Bearer ")
	}
	if cookie, err := c.Cookie(AuthCookie); err == nil {
		return cookie
	}
	return ""
}

// UID returns the uid set by AuthMiddleware.
func UID(c *gin.Context) (string, bool) {
	uid := c.GetString(UIDKey)
	return uid, uid != ""
}
