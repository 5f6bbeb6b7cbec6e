package api

import (
	"strings"

	"github.com/KirkDiggler/tavern/internal/models"
	"github.com/KirkDiggler/tavern/internal/services/auth"
	"github.com/gin-gonic/gin"
)

const (
	userIDKey = "userID"
	roleKey   = "role"
)

// RequireAuth resolves the bearer token to a user and aborts with 401 otherwise.
// A token query parameter is accepted too since browsers cannot set headers on
// a websocket upgrade.
func RequireAuth(svc auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			token = c.Query("token")
		}
		if token == "" {
			abortWithError(c, auth.ErrUnauthenticated)
			return
		}

		out, err := svc.Authenticate(c.Request.Context(), &auth.AuthenticateInput{Token: token})
		if err != nil {
			abortWithError(c, err)
			return
		}

		c.Set(userIDKey, out.UserID)
		c.Set(roleKey, out.Role)
		c.Next()
	}
}

func bearerToken(header string) string {
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

// UserID returns the authenticated caller set by RequireAuth
func UserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}

// Role returns the authenticated caller's role
func Role(c *gin.Context) models.UserRole {
	if role, ok := c.Get(roleKey); ok {
		if r, ok := role.(models.UserRole); ok {
			return r
		}
	}
	return models.UserRoleUser
}
