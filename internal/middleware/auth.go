package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/llum/portfolio-api/internal/auth"
	"github.com/llum/portfolio-api/internal/constants"
	apierrors "github.com/llum/portfolio-api/internal/errors"
)

// RequireAuth verifies the bearer token on every request. There is no
// server-side session: a valid signature and expiry are the only state.
func RequireAuth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			apierrors.Unauthorized(c, "Missing authorization header")
			c.Abort()
			return
		}

		tokenStr, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || tokenStr == "" {
			apierrors.Unauthorized(c, "Invalid authorization format")
			c.Abort()
			return
		}

		claims, err := auth.ParseToken(tokenStr, jwtSecret)
		if err != nil {
			apierrors.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, claims.UserID)
		c.Next()
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}

	id, ok := userID.(uint64)
	return id, ok
}
