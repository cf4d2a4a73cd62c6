// Package sqlstore persists users and planets through a single sqlx handle
// backed by either SQLite or PostgreSQL. Queries are written with "?"
// placeholders and rebound for the active driver.
package sqlstore

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

//go:embed migrations/sqlite/*.sql migrations/postgres/*.sql
var migrations embed.FS

// Supported values of the DB_DRIVER setting.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type dialect struct {
	sqlDriver string
	goose     goose.Dialect
	dir       string
}

var dialects = map[string]dialect{
	DriverSQLite:   {sqlDriver: "sqlite", goose: goose.DialectSQLite3, dir: "migrations/sqlite"},
	DriverPostgres: {sqlDriver: "pgx", goose: goose.DialectPostgres, dir: "migrations/postgres"},
}

// Open connects to the database named by driver and dsn and pings it.
func Open(ctx context.Context, driver, dsn string) (*sqlx.DB, error) {
	d, ok := dialects[driver]
	if !ok {
		return nil, fmt.Errorf("unknown driver %q", driver)
	}

	db, err := sqlx.ConnectContext(ctx, d.sqlDriver, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", driver, err)
	}
	if driver == DriverSQLite {
		// SQLite serialises writers; one connection avoids SQLITE_BUSY.
		db.SetMaxOpenConns(1)
	}
	return db, nil
}

// Migrate applies every pending embedded migration for driver.
func Migrate(ctx context.Context, db *sqlx.DB, driver string) error {
	d, ok := dialects[driver]
	if !ok {
		return fmt.Errorf("unknown driver %q", driver)
	}

	fsys, err := fs.Sub(migrations, d.dir)
	if err != nil {
		return fmt.Errorf("migrations dir: %w", err)
	}
	provider, err := goose.NewProvider(d.goose, db.DB, fsys)
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("migrate up: %w", err)
	}
	return nil
}
