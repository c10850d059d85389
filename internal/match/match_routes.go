package match

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rpatel-116/uniclash/pkg/rmiddleware"
)

// MatchRoutes sets up schedule, result and report routes.
func MatchRoutes(router *gin.RouterGroup, db *gorm.DB) {
	repo := NewMatchRepository(db)
	controller := NewMatchController(repo)

	router.GET("/matches", controller.GetMatches)
	router.GET("/schedules", controller.GetSchedules)

	admin := router.Group("/")
	admin.Use(rmiddleware.AdminOnly())
	{
		admin.POST("/add-schedule", controller.AddSchedule)
		admin.POST("/post-results", controller.PostResults)
		admin.GET("/generate-report", controller.GenerateReport)
	}
}
