package university

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rpatel-116/uniclash/pkg/rmiddleware"
)

// UniversityRoutes sets up college routes. Reads are public; mutations and the
// admin search are restricted to Admin/SuperAdmin.
func UniversityRoutes(router *gin.RouterGroup, db *gorm.DB) {
	repo := NewUniversityRepository(db)
	controller := NewUniversityController(repo)

	router.GET("/universities", controller.GetAll)
	router.GET("/university", controller.GetOne)

	admin := router.Group("/")
	admin.Use(rmiddleware.AdminOnly())
	{
		admin.GET("/fetchColleges", controller.Search)
		admin.POST("/add-college", controller.AddCollege)
		admin.PUT("/edit-college/:collegeId", controller.EditCollege)
		admin.DELETE("/delete-college/:collegeId", controller.DeleteCollege)
	}
}
