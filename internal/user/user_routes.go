package user

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UserRoutes sets up the admin user-management routes. The caller applies the
// Admin/SuperAdmin gate on the group before handing it in; the rmiddleware
// package sits above this one, so the gate cannot be attached here.
func UserRoutes(router *gin.RouterGroup, db *gorm.DB) {
	repo := NewUserRepository(db)
	controller := NewUserController(repo)

	router.GET("/roles", controller.ListRoles)
	router.GET("/users", controller.ListUsers)
	router.POST("/add-user", controller.AddUser)
	router.PUT("/edit-user/:userId", controller.EditUser)
	router.DELETE("/delete-user/:userId", controller.DeleteUser)
}
