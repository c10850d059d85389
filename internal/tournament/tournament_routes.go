package tournament

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rpatel-116/uniclash/pkg/rmiddleware"
)

// TournamentRoutes sets up tournament and registration routes.
func TournamentRoutes(router *gin.RouterGroup, db *gorm.DB) {
	repo := NewTournamentRepository(db)
	controller := NewTournamentController(repo)

	router.GET("/tournaments", controller.GetAll)

	// Signup/cancel authenticate inside the handler: anyone logged in may
	// register, and cancellation rights depend on the registration itself.
	router.POST("/signup-tournament", controller.Signup)
	router.DELETE("/cancel-tournament-signup/:tournamentId", controller.CancelSignup)

	router.POST("/add-tournament", rmiddleware.AdminOnly(), controller.AddTournament)
}
