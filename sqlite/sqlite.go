// Package sqlite provides SQLite-based storage implementations for sitedraft services.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// DB is the SQLite database shared by the artifact and response services.
type DB struct {
	db   *sql.DB
	path string
}

// NewDB returns a DB for path. Nothing is opened until Open is called;
// ":memory:" gives a private in-memory database.
func NewDB(path string) *DB {
	return &DB{path: path}
}

// pragmas are applied to every connection in order. journal_mode is skipped
// for in-memory databases, which cannot use WAL.
var pragmas = []struct {
	name   string
	stmt   string
	onDisk bool
}{
	{"busy timeout", "PRAGMA busy_timeout = 5000", false},
	{"WAL mode", "PRAGMA journal_mode = WAL", true},
	{"foreign keys", "PRAGMA foreign_keys = ON", false},
}

// Open opens the database connection and creates the schema if needed.
func (db *DB) Open() error {
	conn, err := sql.Open("sqlite3", db.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// One writer at a time.
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	for _, p := range pragmas {
		if p.onDisk && db.inMemory() {
			continue
		}
		if _, err := conn.Exec(p.stmt); err != nil {
			conn.Close()
			return fmt.Errorf("failed to set %s: %w", p.name, err)
		}
	}

	db.db = conn
	if err := db.createSchema(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

func (db *DB) inMemory() bool {
	return db.path == ":memory:" || strings.Contains(db.path, "mode=memory")
}

// Close closes the database connection.
func (db *DB) Close() error {
	if db.db == nil {
		return nil
	}
	return db.db.Close()
}

// QueryRowContext executes a query that returns a single row.
func (db *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return db.db.QueryRowContext(ctx, query, args...)
}

// QueryContext executes a query that returns rows.
func (db *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.db.QueryContext(ctx, query, args...)
}

// ExecContext executes a statement that doesn't return rows.
func (db *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.db.ExecContext(ctx, query, args...)
}

// BeginTx starts a transaction.
func (db *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error) {
	return db.db.BeginTx(ctx, opts)
}

// createSchema is idempotent.
func (db *DB) createSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS artifact_sets (
			id TEXT PRIMARY KEY,
			prompt TEXT NOT NULL DEFAULT '',
			css TEXT NOT NULL DEFAULT '',
			js TEXT NOT NULL DEFAULT '',
			content_hash TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS artifacts (
			id TEXT PRIMARY KEY,
			set_id TEXT NOT NULL REFERENCES artifact_sets(id) ON DELETE CASCADE,
			position INTEGER NOT NULL DEFAULT 0,
			filename TEXT NOT NULL,
			code TEXT NOT NULL DEFAULT ''
		);

		CREATE TABLE IF NOT EXISTS responses (
			id TEXT PRIMARY KEY,
			prompt TEXT NOT NULL,
			content TEXT NOT NULL DEFAULT '',
			language TEXT NOT NULL DEFAULT 'txt',
			created_at TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_artifacts_set_id ON artifacts(set_id);
		CREATE INDEX IF NOT EXISTS idx_artifact_sets_content_hash ON artifact_sets(content_hash);
	`

	_, err := db.db.Exec(schema)
	return err
}
