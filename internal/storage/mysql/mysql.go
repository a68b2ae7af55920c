// Package mysql opens the MySQL backend of the storage.Storage interface.
package mysql

import (
	"database/sql"
	"embed"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	migratemysql "github.com/golang-migrate/migrate/v4/database/mysql"

	"github.com/aanand-mishra/studentinfo-api/internal/config"
	"github.com/aanand-mishra/studentinfo-api/internal/storage/sqlstore"
)

//go:embed migrations/*.sql
var migrations embed.FS

// New connects to the MySQL server described by cfg.Database.DSN, applies
// pending migrations and returns a ready-to-use store.
func New(cfg *config.Config) (*sqlstore.Store, error) {
	dsn, err := normalizeDSN(cfg.Database.DSN)
	if err != nil {
		return nil, fmt.Errorf("mysql.New: %w", err)
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("mysql.New: open db: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("mysql.New: ping: %w", err)
	}

	driver, err := migratemysql.WithInstance(db, &migratemysql.Config{})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("mysql.New: migrate driver: %w", err)
	}

	if err := sqlstore.Migrate(migrations, "migrations", "mysql", driver); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("mysql.New: %w", err)
	}

	return sqlstore.New(db), nil
}

// normalizeDSN forces parseTime so TIMESTAMP columns scan into time.Time,
// and pins the session to UTC.
func normalizeDSN(raw string) (string, error) {
	c, err := mysql.ParseDSN(raw)
	if err != nil {
		return "", fmt.Errorf("parse dsn: %w", err)
	}

	c.ParseTime = true
	c.Loc = time.UTC

	return c.FormatDSN(), nil
}
