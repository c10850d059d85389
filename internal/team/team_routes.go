package team

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rpatel-116/uniclash/internal/user"
	"github.com/rpatel-116/uniclash/pkg/rmiddleware"
)

// TeamRoutes sets up team and roster routes.
func TeamRoutes(router *gin.RouterGroup, db *gorm.DB) {
	repo := NewTeamRepository(db)
	controller := NewTeamController(repo)

	// Public reads
	router.GET("/teams", controller.GetAllTeams)
	router.GET("/team", controller.GetTeam)
	router.GET("/search-teams", controller.SearchTeams)
	router.GET("/team-members", controller.GetTeamMembers)
	router.GET("/teams-for-college", controller.GetCollegeRoster)

	// Team creation is open to CollegeReps as well
	router.POST("/add-team", rmiddleware.StaffOnly(), controller.AddTeam)
	router.PUT("/edit-team/:teamId", rmiddleware.StaffOnly(), controller.EditTeam)
	router.DELETE("/delete-team/:teamId", rmiddleware.Require(user.RoleSuperAdmin, user.RoleAdmin), controller.DeleteTeam)

	router.DELETE("/leave-team", rmiddleware.PlayersOnly(), controller.LeaveTeam)
}
