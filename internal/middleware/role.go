package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gymhub/internal/pkg/response"
)

const (
	RoleSuperAdmin = "SUPER_ADMIN"
	RoleGymOwner   = "GYM_OWNER"
	RoleMember     = "MEMBER"
)

// RequireRole ensures the authenticated user has one of the given roles.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Role not found in token")
			c.Abort()
			return
		}

		if !allowed[role.(string)] {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

// SuperAdminOnly requires the SUPER_ADMIN role
func SuperAdminOnly() gin.HandlerFunc {
	return RequireRole(RoleSuperAdmin)
}

// OwnerOnly requires the GYM_OWNER role
func OwnerOnly() gin.HandlerFunc {
	return RequireRole(RoleGymOwner)
}
