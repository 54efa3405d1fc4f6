package articledb

import (
	"context"
	"fmt"
	"regexp"
)

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// validateIdent validates if name is usable as a table or column name.
func validateIdent(name string) error {
	if !identRe.MatchString(name) {
		return fmt.Errorf("invalid identifier %q", name)
	}
	return nil
}

// CreateTable creates table with a single TEXT primary key column named key.
func (db *DB) CreateTable(ctx context.Context, table string, key string) error {
	const op = "create table"

	if err := db.guard(op); err != nil {
		return err
	}
	if err := validateIdent(table); err != nil {
		return storageErrorf(op, "%w", err)
	}
	if err := validateIdent(key); err != nil {
		return storageErrorf(op, "%w", err)
	}

	stmt := fmt.Sprintf(`CREATE TABLE "%s" ("%s" TEXT PRIMARY KEY)`, table, key)
	if _, err := db.conn.ExecContext(ctx, stmt); err != nil {
		return storageErrorf(op, "failed to create table %s: %w", table, err)
	}
	return nil
}

// AddColumn adds a TEXT column to an existing table.
func (db *DB) AddColumn(ctx context.Context, table string, column string) error {
	const op = "add column"

	if err := db.guard(op); err != nil {
		return err
	}
	if err := validateIdent(table); err != nil {
		return storageErrorf(op, "%w", err)
	}
	if err := validateIdent(column); err != nil {
		return storageErrorf(op, "%w", err)
	}

	stmt := fmt.Sprintf(`ALTER TABLE "%s" ADD COLUMN "%s" TEXT`, table, column)
	if _, err := db.conn.ExecContext(ctx, stmt); err != nil {
		return storageErrorf(op, "failed to add column %s to table %s: %w", column, table, err)
	}
	return nil
}
