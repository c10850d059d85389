package main

import (
	"log"
	"time"

	"github.com/rpatel-116/uniclash/config"
	_ "github.com/rpatel-116/uniclash/docs"
	"github.com/rpatel-116/uniclash/internal/match"
	"github.com/rpatel-116/uniclash/internal/session"
	"github.com/rpatel-116/uniclash/internal/team"
	"github.com/rpatel-116/uniclash/internal/tournament"
	"github.com/rpatel-116/uniclash/internal/university"
	"github.com/rpatel-116/uniclash/internal/user"
	"github.com/rpatel-116/uniclash/routes"
)

// @title UniClash REST API
// @version 1.0
// @description Tournament management server for collegiate leagues.
// @host localhost:3000
// @BasePath /
func main() {
	if err := config.Initialize(); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	cfg := config.GetConfig()

	err := config.DB.AutoMigrate(
		&user.User{},
		&university.University{},
		&team.Team{}, &team.Player{},
		&tournament.Tournament{}, &tournament.Registration{},
		&match.Match{}, &match.Schedule{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	log.Println("AutoMigrate successful")

	sessions := session.NewStore(time.Duration(cfg.Session.TTLHours) * time.Hour)
	sessions.StartJanitor(time.Hour, make(chan struct{}))

	r := routes.SetupRoutes(config.DB, sessions, cfg)

	log.Printf("Starting server on port %s in %s mode\n", cfg.App.Port, cfg.App.Env)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
