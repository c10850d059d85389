package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/rpatel-116/uniclash/config"
	"github.com/rpatel-116/uniclash/internal/auth"
	"github.com/rpatel-116/uniclash/internal/match"
	mw "github.com/rpatel-116/uniclash/internal/middleware"
	"github.com/rpatel-116/uniclash/internal/session"
	"github.com/rpatel-116/uniclash/internal/team"
	"github.com/rpatel-116/uniclash/internal/tournament"
	"github.com/rpatel-116/uniclash/internal/university"
	"github.com/rpatel-116/uniclash/internal/user"
	"github.com/rpatel-116/uniclash/pkg/rmiddleware"
)

// SetupRoutes wires the gin engine: CORS, session resolution, swagger and the
// full API surface.
func SetupRoutes(db *gorm.DB, sessions *session.Store, appConfig *config.Config) *gin.Engine {
	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{appConfig.App.FrontendURL}
	corsConfig.AllowCredentials = true
	r.Use(cors.New(corsConfig))

	// Every request gets its session resolved once, up front.
	r.Use(mw.SessionMiddleware(sessions, appConfig.Session.CookieName))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"name": "uniclash", "status": "ok"})
	})

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	api := r.Group("/")
	auth.AuthRoutes(api, db, sessions, appConfig)
	university.UniversityRoutes(api, db)
	team.TeamRoutes(api, db)
	tournament.TournamentRoutes(api, db)
	match.MatchRoutes(api, db)

	// Admin user management, gated here because the role middleware sits
	// above the user package.
	admin := api.Group("/")
	admin.Use(rmiddleware.AdminOnly())
	user.UserRoutes(admin, db)

	return r
}
