package postgres

import (
	"embed"
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrate applies all pending migrations to the database at dbURL.
func Migrate(logger *slog.Logger, dbURL string) error {
	return runMigrations(logger, dbURL, "up", func(m *migrate.Migrate) error { return m.Up() })
}

// MigrateDown rolls back the most recent migration.
func MigrateDown(logger *slog.Logger, dbURL string) error {
	return runMigrations(logger, dbURL, "down", func(m *migrate.Migrate) error { return m.Steps(-1) })
}

func runMigrations(logger *slog.Logger, dbURL, direction string, run func(*migrate.Migrate) error) error {
	logger.Info("running database migrations", "direction", direction)

	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, dbURL)
	if err != nil {
		return fmt.Errorf("setup migrations: %w", err)
	}
	defer func() {
		sourceErr, dbErr := m.Close()
		if sourceErr != nil || dbErr != nil {
			logger.Warn("failed to close migrator", "source_err", sourceErr, "db_err", dbErr)
		}
	}()

	if err := run(m); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Info("no migrations required")
			return nil
		}
		return fmt.Errorf("migrate %s: %w", direction, err)
	}
	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("read migration version: %w", err)
	}
	logger.Info("database migrations complete", "version", version, "dirty", dirty)
	return nil
}
