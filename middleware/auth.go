package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"stayhub-backend/services"
	"stayhub-backend/utils"
)

const userIDKey = "userID"

// Auth validates the Bearer token and stores the caller's user id in the
// request context for handlers behind it.
func Auth(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			utils.JSONError(c, http.StatusUnauthorized, "missing bearer token")
			c.Abort()
			return
		}

		claims, err := auth.ParseToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(userIDKey, claims.UserID)
		c.Next()
	}
}

// CurrentUserID reads the authenticated user id set by Auth.
func CurrentUserID(c *gin.Context) uint {
	v, _ := c.Get(userIDKey)
	id, _ := v.(uint)
	return id
}
