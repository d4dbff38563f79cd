package initialize

import (
	"server/config"
	"server/internal/database"
	"server/internal/logger"
)

// InitializeTables applies schema migrations and verifies the essential
// tables exist.
func InitializeTables(db database.DB, config config.Config, log logger.Logger) error {
	log = log.Function("InitializeTables")
	log.Info("Applying schema migrations")

	applied, err := db.Migrate()
	if err != nil {
		return log.Err("failed to apply migrations", err)
	}

	log.Info("Table initialization complete", "applied", applied)
	return nil
}
