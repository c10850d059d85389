package auth

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rpatel-116/uniclash/config"
	"github.com/rpatel-116/uniclash/internal/session"
)

// AuthRoutes sets up authentication and session routes.
func AuthRoutes(router *gin.RouterGroup, db *gorm.DB, sessions *session.Store, appConfig *config.Config) {
	repo := NewAuthRepository(db)
	controller := NewAuthController(repo, sessions, appConfig)

	router.POST("/login", controller.Login)
	router.POST("/signup", controller.Signup)
	router.GET("/logout", controller.Logout)
	router.GET("/check-session", controller.CheckSession)
	router.GET("/user-info", controller.UserInfo)
}
