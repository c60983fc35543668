// @title Recruit Assessment API
// @version 1.0
// @description Psychometric assessments (DISC, Big Five, leadership) for the recruiting platform.

// @host localhost:8080
// @BasePath /api

package main

import (
	"flag"
	"log"
	"recruit_backend/internal/app"
	"recruit_backend/internal/config"
	"recruit_backend/pkg/logger"
)

func main() {
	configDir := flag.String("config", "configs", "directory containing config.yaml")
	migrateOnly := flag.Bool("migrate-only", false, "migrate the database, seed the question bank and exit")
	migrate := flag.Bool("migrate", false, "force migration on startup even in release mode")
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cfg.ForceMigrate = *migrate || *migrateOnly
	cfg.MigrateOnly = *migrateOnly

	application := app.NewApp(cfg, *configDir)
	defer logger.Log.Sync()

	if *migrateOnly {
		log.Println("Database migrated and question bank seeded, exiting")
		return
	}

	application.Run()
}
