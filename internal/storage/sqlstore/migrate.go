package sqlstore

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// Migrate applies every pending up migration found in dir of the given
// filesystem. Files follow the golang-migrate naming scheme:
//
//	000001_create_studentinfo.up.sql / 000001_create_studentinfo.down.sql
//
// The migrate instance is not closed here: closing it would also close the
// *sql.DB behind driver, which the caller keeps using.
func Migrate(migrations fs.FS, dir, databaseName string, driver database.Driver) error {
	src, err := iofs.New(migrations, dir)
	if err != nil {
		return fmt.Errorf("Migrate: open source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, databaseName, driver)
	if err != nil {
		return fmt.Errorf("Migrate: new instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("Migrate: up: %w", err)
	}

	return nil
}
