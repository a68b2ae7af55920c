// Package sqlite opens the SQLite backend of the storage.Storage interface.
//
// SQLite stores everything in a single file on disk. There is no network,
// no separate server process, and no installation beyond the driver, which
// makes it the default backend and the one the tests run against.
package sqlite

import (
	"database/sql"
	"embed"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4/database/sqlite3"

	"github.com/aanand-mishra/studentinfo-api/internal/config"
	"github.com/aanand-mishra/studentinfo-api/internal/storage/sqlstore"

	// Blank import: side-effect only (registers the "sqlite3" driver).
	_ "github.com/mattn/go-sqlite3"
)

//go:embed migrations/*.sql
var migrations embed.FS

// New opens the SQLite database at cfg.Database.Path, applies pending
// migrations and returns a ready-to-use store.
func New(cfg *config.Config) (*sqlstore.Store, error) {
	db, err := sql.Open("sqlite3", dsn(cfg.Database.Path))
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: open db: %w", err)
	}

	// sql.Open does not connect; Ping surfaces a bad path right away.
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite.New: ping: %w", err)
	}

	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite.New: migrate driver: %w", err)
	}

	if err := sqlstore.Migrate(migrations, "migrations", "sqlite3", driver); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite.New: %w", err)
	}

	return sqlstore.New(db), nil
}

// dsn adds a busy timeout so concurrent writers wait on the file lock
// instead of failing with "database is locked".
func dsn(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_busy_timeout=5000"
}
