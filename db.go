// Package articledb loads preprocessed text-article files into a SQLite
// database and provides typed accessors over the result: ingestion, table
// listing, schema introspection, row counts, ad-hoc queries and archiving.
package articledb

import (
	"database/sql"
	"net/url"
	"sync/atomic"

	_ "github.com/mattn/go-sqlite3"
)

// DB is an open handle to one article database file. It owns a single
// read-write connection; callers must Close it when done and must not use it
// afterwards.
type DB struct {
	conn   *sql.DB
	path   string
	closed atomic.Bool
}

func createDSN(dbPath string) string {
	qp := url.Values{}
	qp.Add("_foreign_keys", "true")
	qp.Add("_busy_timeout", "5000")

	return dbPath + "?" + qp.Encode()
}

// Open opens the SQLite database at path, creating the file if it does not
// exist yet.
func Open(path string) (*DB, error) {
	conn, err := sql.Open("sqlite3", createDSN(path))
	if err != nil {
		return nil, storageErrorf("open", "failed to open database: %w", err)
	}

	conn.SetConnMaxIdleTime(0)
	conn.SetConnMaxLifetime(0)
	conn.SetMaxIdleConns(1)
	conn.SetMaxOpenConns(1)
	if err := conn.Ping(); err != nil {
		_ = conn.Close()
		return nil, storageErrorf("open", "failed to ping database: %w", err)
	}

	db := &DB{
		conn: conn,
		path: path,
	}
	return db, nil
}

// Path returns the filesystem path the handle was opened with.
func (db *DB) Path() string {
	return db.path
}

// Close releases the underlying connection. Closing an already closed handle
// is a no-op; any other operation on a closed handle returns ErrClosed.
func (db *DB) Close() error {
	if db.closed.Swap(true) {
		return nil
	}

	if err := db.conn.Close(); err != nil {
		return storageErrorf("close", "failed to close connection: %w", err)
	}
	return nil
}

// guard rejects operations on a closed handle.
func (db *DB) guard(op string) error {
	if db.closed.Load() {
		return storageErrorf(op, "%w", ErrClosed)
	}
	return nil
}
