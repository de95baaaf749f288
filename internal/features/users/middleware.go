package users

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/amestri/cineshelf/internal/config"
	"github.com/amestri/cineshelf/internal/pkg/response"
	"github.com/amestri/cineshelf/internal/pkg/token"
)

const contextUserKey = "user"

// RequireAuth resolves the bearer token into a full user document and stores
// it on the context. The presented token must also match the one stored on the
// account, so signing out invalidates outstanding tokens immediately.
func RequireAuth(repo *Repository, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header required", "AUTH_REQUIRED")
			c.Abort()
			return
		}

		// Accept both "Bearer <token>" (case-insensitive) and a raw token
		fields := strings.Fields(authHeader)
		var tokenString string
		if len(fields) == 2 && strings.EqualFold(fields[0], "Bearer") {
			tokenString = fields[1]
		} else {
			tokenString = authHeader
		}

		claims, err := token.Validate(tokenString, cfg.JWTSecret)
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token", "INVALID_TOKEN")
			c.Abort()
			return
		}

		user, err := repo.FindByID(c.Request.Context(), claims.UserID)
		if err != nil {
			response.Unauthorized(c, "User not found", "USER_NOT_FOUND")
			c.Abort()
			return
		}

		if user.Token != tokenString {
			response.Unauthorized(c, "Token has been revoked", "TOKEN_REVOKED")
			c.Abort()
			return
		}

		c.Set(contextUserKey, user)
		c.Next()
	}
}

// Current returns the authenticated user placed on the context by
// RequireAuth, or nil when the request is unauthenticated.
func Current(c *gin.Context) *User {
	value, exists := c.Get(contextUserKey)
	if !exists {
		return nil
	}
	user, ok := value.(*User)
	if !ok {
		return nil
	}
	return user
}
