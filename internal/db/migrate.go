package db

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"kunooz-ads/db/migrations"
)

// Migrate brings the PostgreSQL schema at addr to migrations.Version and
// returns the version it ended on. A dirty schema is never forced.
func Migrate(addr string) (uint, error) {
	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return 0, fmt.Errorf("open migration source: %w", err)
	}
	defer src.Close()

	mg, err := migrate.NewWithSourceInstance("iofs", src, addr)
	if err != nil {
		return 0, fmt.Errorf("connect migrator: %w", err)
	}
	defer mg.Close()

	current, dirty, err := mg.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
	case err != nil:
		return 0, err
	case dirty:
		return current, fmt.Errorf("schema version %d is dirty, fix it manually", current)
	case current == migrations.Version:
		return current, nil
	}

	if err = mg.Migrate(migrations.Version); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return current, err
	}
	return migrations.Version, nil
}
