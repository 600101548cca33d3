package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/parth1928/quickcourt-backend/internal/auth"
	"github.com/parth1928/quickcourt-backend/internal/user"
)

// RequireRole ensures the authenticated user carries one of the given
// roles in its token claims. It MUST be used after auth.AuthRequired.
func RequireRole(roles ...user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := auth.GetUserRole(c)
		if role == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		for _, r := range roles {
			if role == string(r) {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden: insufficient role"})
	}
}

// RequireAdmin restricts access to admin users.
func RequireAdmin() gin.HandlerFunc {
	return RequireRole(user.RoleAdmin)
}

// RequireFacilityOwner restricts access to facility owners. Admins are
// allowed through as well so they can manage any facility.
func RequireFacilityOwner() gin.HandlerFunc {
	return RequireRole(user.RoleFacilityOwner, user.RoleAdmin)
}
