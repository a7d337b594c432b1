package middleware

import (
	"net/http"
	"strings"

	"uninest-housing-api/internal/models"
	"uninest-housing-api/pkg/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set by AuthMiddleware
const (
	ContextUserID = "userID"
	ContextRole   = "role"
)

// AuthMiddleware validates the JWT bearer token from the Authorization header
// and injects the caller's identity into the request context
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Authorization header required")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid authorization format. Use: Bearer <token>")
			c.Abort()
			return
		}

		claims, err := utils.ValidateAccessToken(parts[1])
		if err != nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		// The role set is closed; a token carrying anything else is rejected
		// outright rather than treated as some default.
		if !claims.Role.Valid() {
			utils.ErrorResponse(c, http.StatusForbidden, "Unknown role")
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextRole, claims.Role)

		c.Next()
	}
}

// RequireRole gates a route to one role. It runs before any resource lookup,
// so a failed check never reveals whether the target exists.
func RequireRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get(ContextRole)
		if !exists {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
			c.Abort()
			return
		}

		callerRole, ok := value.(models.Role)
		if !ok || !callerRole.Valid() {
			utils.ErrorResponse(c, http.StatusForbidden, "Unknown role")
			c.Abort()
			return
		}

		if callerRole != role {
			utils.ErrorResponse(c, http.StatusForbidden, "Insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireAdministrator gates a route to administrator accounts
func RequireAdministrator() gin.HandlerFunc {
	return RequireRole(models.RoleAdministrator)
}

// RequireStudent gates a route to student accounts
func RequireStudent() gin.HandlerFunc {
	return RequireRole(models.RoleStudent)
}
