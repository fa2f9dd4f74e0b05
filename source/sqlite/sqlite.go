// Package sqlite opens SQLite databases for the table data source.
package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // SQLite driver (pure Go)

	"rangefilter/source"
)

// DriverName is the database/sql name of the modernc driver
const DriverName = "sqlite"

// MemoryPath opens a private in-memory database
const MemoryPath = ":memory:"

func init() {
	sqlx.BindDriver(DriverName, sqlx.QUESTION)
}

// Open opens the database at path and creates the settings table.
// Connections are limited to one so an in-memory database is shared by every query.
func Open(ctx context.Context, path string) (*sqlx.DB, error) {
	db, err := sqlx.Open(DriverName, path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("opening sqlite %s: %w", path, err)
	}

	if err = source.CreateSettingsTable(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating settings table: %w", err)
	}
	return db, nil
}
