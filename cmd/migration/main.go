package main

import (
	"os"

	"server/cmd/migration/initialize"
	"server/cmd/migration/seed"
	"server/config"
	"server/internal/database"
	"server/internal/logger"
)

func main() {
	log := logger.New("migration")

	cfg, err := config.InitConfig()
	if err != nil {
		log.Er("failed to initialize config", err)
		os.Exit(1)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Er("failed to connect to database", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := initialize.InitializeTables(db, cfg, log); err != nil {
		os.Exit(1)
	}

	if !cfg.IsProduction() {
		if err := seed.Seed(db.SQL, cfg, log); err != nil {
			os.Exit(1)
		}
	}
}
