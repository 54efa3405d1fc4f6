package articledb

import (
	"context"
	"fmt"

	"github.com/mattn/go-sqlite3"
	"github.com/orsinium-labs/enum"
)

// Result types as reported by Result.Type.
const (
	QueryRead  = "read"
	QueryWrite = "write"
)

// Result is the outcome of Run. Reads carry Columns and Values; writes carry
// RowsAffected and LastInsertID.
type Result struct {
	Type         string
	Columns      []string
	Values       [][]any
	RowsAffected int64
	LastInsertID int64
}

// queryType represents the type of a given SQLite query.
type queryType = enum.Member[string]

var (
	queryTypeUnknown = queryType{Value: "unknown"}
	queryTypeRead    = queryType{Value: QueryRead}
	queryTypeWrite   = queryType{Value: QueryWrite}
)

// detectQueryType classifies query as read or write through the driver's
// read-only flag on the prepared statement.
func (db *DB) detectQueryType(ctx context.Context, query string) (queryType, error) {
	conn, err := db.conn.Conn(ctx)
	if err != nil {
		return queryTypeUnknown, fmt.Errorf("failed to get connection: %w", err)
	}
	defer conn.Close()

	isReadOnly := false
	err = conn.Raw(func(driverConn any) error {
		sqliteConn := driverConn.(*sqlite3.SQLiteConn)
		drvStmt, err := sqliteConn.Prepare(query)
		if err != nil {
			return err
		}
		defer drvStmt.Close()
		sqliteStmt := drvStmt.(*sqlite3.SQLiteStmt)
		isReadOnly = sqliteStmt.Readonly()
		return nil
	})
	if err != nil {
		return queryTypeUnknown, fmt.Errorf("failed to prepare statement: %w", err)
	}

	if isReadOnly {
		return queryTypeRead, nil
	}
	return queryTypeWrite, nil
}

// Run executes one SQL statement against the database, routing it as a read
// or a write based on its type.
func (db *DB) Run(ctx context.Context, query string, args ...any) (Result, error) {
	const op = "run"

	if err := db.guard(op); err != nil {
		return Result{}, err
	}

	typeOfQuery, err := db.detectQueryType(ctx, query)
	if err != nil {
		return Result{}, storageErrorf(op, "%w", err)
	}

	if typeOfQuery == queryTypeRead {
		return db.runRead(ctx, query, args...)
	}
	return db.runWrite(ctx, query, args...)
}

func (db *DB) runRead(ctx context.Context, query string, args ...any) (Result, error) {
	const op = "run"

	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return Result{}, storageErrorf(op, "failed to execute read query: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return Result{}, storageErrorf(op, "failed to get result columns: %w", err)
	}

	values := [][]any{}
	for rows.Next() {
		row := make([]any, len(columns))
		scanTargets := make([]any, len(columns))
		for i := range row {
			scanTargets[i] = &row[i]
		}
		if err := rows.Scan(scanTargets...); err != nil {
			return Result{}, storageErrorf(op, "failed to scan result row: %w", err)
		}
		// The driver hands TEXT columns back as raw bytes.
		for i, v := range row {
			if b, ok := v.([]byte); ok {
				row[i] = string(b)
			}
		}
		values = append(values, row)
	}
	if err := rows.Err(); err != nil {
		return Result{}, storageErrorf(op, "failed to execute read query: %w", err)
	}

	return Result{
		Type:    QueryRead,
		Columns: columns,
		Values:  values,
	}, nil
}

func (db *DB) runWrite(ctx context.Context, query string, args ...any) (Result, error) {
	const op = "run"

	result, err := db.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return Result{}, storageErrorf(op, "failed to execute write query: %w", err)
	}

	// Not every statement reports these; fall back to zero when unsupported.
	rowsAffected, _ := result.RowsAffected()
	lastInsertID, _ := result.LastInsertId()

	return Result{
		Type:         QueryWrite,
		RowsAffected: rowsAffected,
		LastInsertID: lastInsertID,
	}, nil
}
