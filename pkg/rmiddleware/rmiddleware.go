package rmiddleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rpatel-116/uniclash/internal/middleware"
	"github.com/rpatel-116/uniclash/internal/session"
	"github.com/rpatel-116/uniclash/internal/user"
)

// Require gates a route on the caller's session role. Unauthenticated requests
// get 401, authenticated ones outside the permitted set get 403, and in either
// case the handler chain is aborted before the operation runs.
func Require(permitted ...user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, _ := middleware.GetSession(c)
		if err := session.Authorize(s, permitted...); err != nil {
			if errors.Is(err, session.ErrUnauthenticated) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Please log in first."})
				return
			}
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "You don't have permission to access this resource"})
			return
		}
		c.Next()
	}
}

// AdminOnly is a convenience gate for the admin management surface.
func AdminOnly() gin.HandlerFunc {
	return Require(user.RoleSuperAdmin, user.RoleAdmin)
}

// StaffOnly covers routes CollegeReps may also reach.
func StaffOnly() gin.HandlerFunc {
	return Require(user.RoleSuperAdmin, user.RoleAdmin, user.RoleCollegeRep)
}

// PlayersOnly restricts a route to team players.
func PlayersOnly() gin.HandlerFunc {
	return Require(user.RolePlayer)
}
