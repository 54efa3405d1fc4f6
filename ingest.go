package articledb

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/articledb/articledb/internal/progress"
)

// IngestOption customizes a call to InsertTextFiles.
type IngestOption func(*ingestOptions)

type ingestOptions struct {
	progress bool
}

// WithProgress renders a progress bar while the batch is inserted.
func WithProgress() IngestOption {
	return func(o *ingestOptions) {
		o.progress = true
	}
}

// InsertTextFiles loads every .txt file found directly in dir into table, one
// row per file: the file name becomes the "file" column and the full contents
// the "text" column. The table is created when absent.
//
// The whole batch runs in one transaction, so a failure mid-batch leaves zero
// new rows behind. Repeated ingestion of the same directory appends duplicate
// rows; deduplication is the caller's job.
func (db *DB) InsertTextFiles(ctx context.Context, table string, dir string, opts ...IngestOption) error {
	const op = "insert text files"

	if err := db.guard(op); err != nil {
		return err
	}
	if err := validateIdent(table); err != nil {
		return storageErrorf(op, "%w", err)
	}

	options := ingestOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return ioErrorf(op, "failed to read directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !strings.EqualFold(filepath.Ext(entry.Name()), ".txt") {
			continue
		}
		names = append(names, entry.Name())
	}

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return storageErrorf(op, "failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createStmt := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS "%s" (file TEXT, text TEXT)`, table)
	if _, err := tx.ExecContext(ctx, createStmt); err != nil {
		return storageErrorf(op, "failed to create table %s: %w", table, err)
	}

	insertStmt, err := tx.PrepareContext(
		ctx, fmt.Sprintf(`INSERT INTO "%s" (file, text) VALUES (?, ?)`, table),
	)
	if err != nil {
		return storageErrorf(op, "failed to prepare insert: %w", err)
	}
	defer insertStmt.Close()

	var bar *progress.Bar
	if options.progress {
		bar = progress.NewBar(fmt.Sprintf("Ingesting into %s", table), len(names))
	}

	for _, name := range names {
		text, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return ioErrorf(op, "failed to read file %s: %w", name, err)
		}
		if _, err := insertStmt.ExecContext(ctx, name, string(text)); err != nil {
			return storageErrorf(op, "failed to insert file %s: %w", name, err)
		}
		if bar != nil {
			bar.Inc()
		}
	}
	if bar != nil {
		bar.Finish()
	}

	if err := tx.Commit(); err != nil {
		return storageErrorf(op, "failed to commit batch: %w", err)
	}
	return nil
}
