package database

import (
	"embed"

	migrate "github.com/rubenv/sql-migrate"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// Migrate applies all pending schema migrations. Dialect follows the active
// GORM driver so the test suite can run against the embedded database.
func (s *DB) Migrate() (int, error) {
	log := s.log.Function("Migrate")

	sqlDB, err := s.SQL.DB()
	if err != nil {
		return 0, log.Err("failed to get database for migration", err)
	}

	source := &migrate.EmbedFileSystemMigrationSource{
		FileSystem: migrationFiles,
		Root:       "migrations",
	}

	applied, err := migrate.Exec(sqlDB, s.dialect(), source, migrate.Up)
	if err != nil {
		return 0, log.Err("failed to run migrations", err)
	}

	log.Info("Migrations applied", "count", applied)
	return applied, nil
}

func (s *DB) dialect() string {
	if s.SQL.Dialector.Name() == "sqlite" {
		return "sqlite3"
	}
	return "postgres"
}

// AutoMigrate keeps the schema current for models during development; the
// sql-migrate files are the source of truth for the hosted store.
func (s *DB) AutoMigrate(models ...any) error {
	return s.SQL.AutoMigrate(models...)
}
