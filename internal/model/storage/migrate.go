package storage

import (
	"database/sql"
	"embed"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"max.ks1230/expense-tracker/internal/config"
	"max.ks1230/expense-tracker/internal/logger"
)

//go:embed migrations
var migrationsFS embed.FS

// runMigrations brings the schema up to date on its own connection; closing
// the migrate instance closes that connection too.
func runMigrations(driver, dsn string) error {
	migrateDB, err := sql.Open(driver, dsn)
	if err != nil {
		return errors.Wrap(err, "open migration database")
	}

	var target database.Driver
	switch driver {
	case config.DriverPostgres:
		target, err = postgres.WithInstance(migrateDB, &postgres.Config{})
	default:
		target, err = sqlite.WithInstance(migrateDB, &sqlite.Config{})
	}
	if err != nil {
		_ = migrateDB.Close()
		return errors.Wrap(err, "create migration driver")
	}

	source, err := iofs.New(migrationsFS, "migrations/"+driver)
	if err != nil {
		_ = target.Close()
		return errors.Wrap(err, "create migration source")
	}

	m, err := migrate.NewWithInstance("iofs", source, driver, target)
	if err != nil {
		_ = target.Close()
		return errors.Wrap(err, "create migrate instance")
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil || dbErr != nil {
			logger.Warn("error closing migrations", zap.NamedError("source", srcErr), zap.NamedError("database", dbErr))
		}
	}()

	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "run migrations")
	}

	version, _, _ := m.Version()
	logger.Info("schema migrated", zap.String("driver", driver), zap.Uint("version", version))
	return nil
}
