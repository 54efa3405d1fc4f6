package articledb

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// InsertCSV loads a CSV file into table. The first record is the header; when
// the table does not exist it is created with one TEXT column per header
// field. Every remaining record becomes one row.
//
// Like InsertTextFiles, the whole batch runs in one transaction.
func (db *DB) InsertCSV(ctx context.Context, table string, file string) error {
	const op = "insert csv"

	if err := db.guard(op); err != nil {
		return err
	}
	if err := validateIdent(table); err != nil {
		return storageErrorf(op, "%w", err)
	}

	f, err := os.Open(file)
	if err != nil {
		return ioErrorf(op, "failed to open csv file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return ioErrorf(op, "failed to read csv header: %w", err)
	}
	for _, column := range header {
		if err := validateIdent(column); err != nil {
			return storageErrorf(op, "bad csv header: %w", err)
		}
	}

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return storageErrorf(op, "failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	columnDefs := make([]string, len(header))
	quoted := make([]string, len(header))
	for i, column := range header {
		columnDefs[i] = fmt.Sprintf(`"%s" TEXT`, column)
		quoted[i] = fmt.Sprintf(`"%s"`, column)
	}

	createStmt := fmt.Sprintf(
		`CREATE TABLE IF NOT EXISTS "%s" (%s)`,
		table, strings.Join(columnDefs, ", "),
	)
	if _, err := tx.ExecContext(ctx, createStmt); err != nil {
		return storageErrorf(op, "failed to create table %s: %w", table, err)
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(header)), ", ")
	insertStmt, err := tx.PrepareContext(ctx, fmt.Sprintf(
		`INSERT INTO "%s" (%s) VALUES (%s)`,
		table, strings.Join(quoted, ", "), placeholders,
	))
	if err != nil {
		return storageErrorf(op, "failed to prepare insert: %w", err)
	}
	defer insertStmt.Close()

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return ioErrorf(op, "failed to read csv record: %w", err)
		}

		values := make([]any, len(record))
		for i, field := range record {
			values[i] = field
		}
		if _, err := insertStmt.ExecContext(ctx, values...); err != nil {
			return storageErrorf(op, "failed to insert csv record: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return storageErrorf(op, "failed to commit batch: %w", err)
	}
	return nil
}
