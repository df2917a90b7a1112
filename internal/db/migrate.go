package db

import (
	"context"
	"database/sql"

	_ "embed"
)

//go:embed schema.sql
var schemaSQL string

// execer is satisfied by *sql.DB, *sql.Conn and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Migrate creates the logs table if it does not already exist.  The schema
// is fixed; an existing table is never altered.
func Migrate(ctx context.Context, db execer) error {
	_, err := db.ExecContext(ctx, schemaSQL)
	return err
}
