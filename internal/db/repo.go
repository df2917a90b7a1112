package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"symptom-assistant/pkg"

	_ "modernc.org/sqlite"
)

// Supported database/sql driver names.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// DefaultDSN is the local file used when no database URL is configured.
const DefaultDSN = "diagnoses.db"

// DefaultListLimit bounds List when the caller passes no limit.
const DefaultListLimit = 50

// ErrStore wraps every failure to read or write the log.  An audit row that
// could not be written is reported, never dropped silently.
var ErrStore = errors.New("record store")

type queries struct {
	insert string
	list   string
}

var dialects = map[string]queries{
	DriverSQLite: {
		insert: `INSERT INTO logs (symptoms, diagnosis, timestamp) VALUES (?, ?, ?)`,
		list: `SELECT symptoms, diagnosis, timestamp FROM (
                 SELECT rowid AS seq, symptoms, diagnosis, timestamp
                 FROM logs ORDER BY rowid DESC LIMIT ?
               ) ORDER BY seq ASC`,
	},
	// logs has no key and is never updated, so ctid follows insertion order.
	DriverPostgres: {
		insert: `INSERT INTO logs (symptoms, diagnosis, timestamp) VALUES ($1, $2, $3)`,
		list: `SELECT symptoms, diagnosis, timestamp FROM (
                 SELECT ctid AS seq, symptoms, diagnosis, timestamp
                 FROM logs ORDER BY ctid DESC LIMIT $1
               ) recent ORDER BY seq ASC`,
	},
}

// Recorder appends exchanges to the logs table.  It holds no connection:
// every call opens the store, does its work and closes it again, so
// separate processes can share one store under its own locking.
type Recorder struct {
	Driver   string
	DSN      string
	Notifier Notifier
	q        queries
	now      func() time.Time
}

// NewRecorder validates the driver and returns a Recorder for dsn.  An empty
// dsn selects DefaultDSN for SQLite and is an error for PostgreSQL.
func NewRecorder(driver, dsn string) (*Recorder, error) {
	q, ok := dialects[driver]
	if !ok {
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
	if dsn == "" {
		if driver != DriverSQLite {
			return nil, fmt.Errorf("database URL is required for driver %q", driver)
		}
		dsn = DefaultDSN
	}
	return &Recorder{Driver: driver, DSN: dsn, q: q, now: time.Now}, nil
}

// Log appends one (symptoms, diagnosis, timestamp) row, creating the table
// first if needed.  The timestamp is the local time of the call.
func (r *Recorder) Log(ctx context.Context, symptoms, diagnosis string) error {
	ts := r.now().Format(pkg.TimestampLayout)
	err := r.withDB(ctx, func(db *sql.DB) error {
		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		defer tx.Rollback()
		if err := Migrate(ctx, tx); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
		if _, err := tx.ExecContext(ctx, r.q.insert, symptoms, diagnosis, ts); err != nil {
			return fmt.Errorf("insert: %w", err)
		}
		if r.Driver == DriverPostgres {
			if err := r.Notifier.Notify(ctx, tx, ts); err != nil {
				return fmt.Errorf("notify: %w", err)
			}
		}
		return tx.Commit()
	})
	if err != nil {
		return fmt.Errorf("%w: log exchange: %w", ErrStore, err)
	}
	return nil
}

// List returns up to limit of the most recent rows, oldest first.
func (r *Recorder) List(ctx context.Context, limit int) ([]pkg.LogRecord, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	var records []pkg.LogRecord
	err := r.withDB(ctx, func(db *sql.DB) error {
		if err := Migrate(ctx, db); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
		rows, err := db.QueryContext(ctx, r.q.list, limit)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var rec pkg.LogRecord
			if err := rows.Scan(&rec.Symptoms, &rec.Diagnosis, &rec.Timestamp); err != nil {
				return err
			}
			records = append(records, rec)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("%w: list exchanges: %w", ErrStore, err)
	}
	return records, nil
}

// withDB opens the store for the duration of fn.
func (r *Recorder) withDB(ctx context.Context, fn func(db *sql.DB) error) error {
	db, err := sql.Open(r.Driver, r.DSN)
	if err != nil {
		return err
	}
	defer db.Close()
	db.SetMaxOpenConns(1)
	if r.Driver == DriverSQLite {
		if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout = 5000"); err != nil {
			return err
		}
	}
	return fn(db)
}
