package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	_ "github.com/uptrace/bun/driver/sqliteshim"

	"eventbite/internal/models"
)

// Open connects to the SQLite store at path and returns a Bun DB handle.
// Use ":memory:" for an in-process throwaway store.
func Open(path string) (*bun.DB, error) {
	sqldb, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite store %s: %w", path, err)
	}
	if err := sqldb.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to sqlite store %s: %w", path, err)
	}

	// SQLite serializes writers; a single connection avoids SQLITE_BUSY
	// under concurrent requests.
	sqldb.SetMaxOpenConns(1)

	return bun.NewDB(sqldb, sqlitedialect.New()), nil
}

// InitSchema creates all entity tables if they are absent. There is no
// migration path: a schema change requires a fresh store file.
func InitSchema(ctx context.Context, db *bun.DB) error {
	tables := []interface{}{
		(*models.Event)(nil),
		(*models.Goal)(nil),
		(*models.Contribution)(nil),
		(*models.Snack)(nil),
	}

	for _, table := range tables {
		if _, err := db.NewCreateTable().Model(table).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("failed to create table for %T: %w", table, err)
		}
	}
	return nil
}
