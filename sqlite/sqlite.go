// Package sqlite provides SQLite-based storage for dictionary entries.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// DefaultBusyTimeout is how long a write waits on a locked database.
const DefaultBusyTimeout = 5 * time.Second

// DB represents a SQLite database connection.
type DB struct {
	db          *sql.DB
	path        string
	busyTimeout time.Duration
}

// DBOption configures a DB.
type DBOption func(*DB)

// WithBusyTimeout sets how long a statement waits on a lock before failing.
func WithBusyTimeout(d time.Duration) DBOption {
	return func(db *DB) {
		db.busyTimeout = d
	}
}

// NewDB returns a DB for path. Use ":memory:" for an in-memory database.
func NewDB(path string, opts ...DBOption) *DB {
	db := &DB{path: path, busyTimeout: DefaultBusyTimeout}
	for _, opt := range opts {
		opt(db)
	}
	return db
}

func (db *DB) Path() string {
	return db.path
}

// Open opens the connection and applies the connection pragmas.
func (db *DB) Open() error {
	conn, err := sql.Open("sqlite3", db.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// One connection: SQLite has a single writer, and ":memory:" databases
	// live only as long as their connection.
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	for _, pragma := range db.pragmas() {
		if _, err := conn.Exec(pragma); err != nil {
			conn.Close()
			return fmt.Errorf("failed to apply %q: %w", pragma, err)
		}
	}

	db.db = conn
	return nil
}

func (db *DB) pragmas() []string {
	pragmas := []string{fmt.Sprintf("PRAGMA busy_timeout = %d", db.busyTimeout.Milliseconds())}
	if db.path != ":memory:" {
		pragmas = append(pragmas, "PRAGMA journal_mode = WAL")
	}
	return pragmas
}

// Close closes the database connection.
func (db *DB) Close() error {
	if db.db != nil {
		return db.db.Close()
	}
	return nil
}

// WithTx runs fn in a transaction, committing when fn returns nil and
// rolling back otherwise.
func (db *DB) WithTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := db.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (db *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return db.db.QueryRowContext(ctx, query, args...)
}

func (db *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.db.QueryContext(ctx, query, args...)
}

func (db *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.db.ExecContext(ctx, query, args...)
}
