package repository

import (
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"
)

const migrationsSource = "file://internal/repository/migrations"

// RunMigrations applies pending schema migrations for the snapshot store.
func RunMigrations(databaseURL string, logger *zap.Logger) error {
	m, err := migrate.New(migrationsSource, databaseURL)
	if err != nil {
		return fmt.Errorf("create migration instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		// A crashed previous run leaves the schema dirty; force back to the
		// last clean version and retry once.
		dirtyErr, ok := err.(migrate.ErrDirty)
		if !ok {
			return fmt.Errorf("run migrations: %w", err)
		}

		version, dirty, verr := m.Version()
		if verr != nil {
			return fmt.Errorf("get current migration version: %w", verr)
		}
		if !dirty {
			return fmt.Errorf("dirty migrations at version %d and could not auto-fix", dirtyErr.Version)
		}

		forceVersion := int(version) - 1
		if forceVersion < 0 {
			forceVersion = 0
		}
		logger.Warn("dirty migration state, forcing back and retrying",
			zap.Uint("dirty_version", uint(version)),
			zap.Int("force_version", forceVersion),
		)

		if ferr := m.Force(forceVersion); ferr != nil {
			return fmt.Errorf("force clean migration version %d: %w", forceVersion, ferr)
		}
		if err := m.Up(); err != nil && err != migrate.ErrNoChange {
			return fmt.Errorf("rerun migrations after dirty state: %w", err)
		}
	}

	if version, _, err := m.Version(); err == nil {
		logger.Info("database schema up to date", zap.Uint("version", uint(version)))
	}

	return nil
}
