package database

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"

	"github.com/ashhalliday14/Bookstore-API/internal/config"
	migrate "github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// RunMigrations applies any pending SQL migrations from the directory
// configured in database.migrations_path.
func RunMigrations(cfg *config.DatabaseConfig) error {
	absPath, err := filepath.Abs(cfg.MigrationsPath)
	if err != nil {
		return fmt.Errorf("resolve migrations path: %w", err)
	}
	sourceURL := fmt.Sprintf("file://%s", filepath.ToSlash(absPath))

	m, err := migrate.New(sourceURL, cfg.GetURL())
	if err != nil {
		return fmt.Errorf("init migrate: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("run migrate: %w", err)
	}

	if version, dirty, err := m.Version(); err == nil {
		log.Printf("Database schema at version %d (dirty=%v)", version, dirty)
	}

	return nil
}
