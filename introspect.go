package articledb

import (
	"context"
	"database/sql"
	"fmt"
)

// Column describes one column of a table as reported by PRAGMA table_info.
type Column struct {
	ID         int
	Name       string
	Type       string
	NotNull    bool
	Default    sql.NullString
	PrimaryKey bool
}

// Tables returns the names of all user tables in the database, sorted.
func (db *DB) Tables(ctx context.Context) ([]string, error) {
	const op = "tables"

	if err := db.guard(op); err != nil {
		return nil, err
	}

	rows, err := db.conn.QueryContext(ctx,
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name`,
	)
	if err != nil {
		return nil, storageErrorf(op, "failed to list tables: %w", err)
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, storageErrorf(op, "failed to scan table name: %w", err)
		}
		tables = append(tables, name)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErrorf(op, "failed to list tables: %w", err)
	}

	return tables, nil
}

// TableInfo returns the column descriptors of table.
func (db *DB) TableInfo(ctx context.Context, table string) ([]Column, error) {
	const op = "table info"

	if err := db.guard(op); err != nil {
		return nil, err
	}
	if err := validateIdent(table); err != nil {
		return nil, storageErrorf(op, "%w", err)
	}

	rows, err := db.conn.QueryContext(ctx, fmt.Sprintf(`PRAGMA table_info("%s")`, table))
	if err != nil {
		return nil, storageErrorf(op, "failed to read table info: %w", err)
	}
	defer rows.Close()

	var columns []Column
	for rows.Next() {
		var col Column
		var notNull, primaryKey int
		if err := rows.Scan(&col.ID, &col.Name, &col.Type, &notNull, &col.Default, &primaryKey); err != nil {
			return nil, storageErrorf(op, "failed to scan column info: %w", err)
		}
		col.NotNull = notNull != 0
		col.PrimaryKey = primaryKey != 0
		columns = append(columns, col)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErrorf(op, "failed to read table info: %w", err)
	}

	// PRAGMA table_info yields no rows for a missing table instead of failing.
	if len(columns) == 0 {
		return nil, storageErrorf(op, "no such table: %s", table)
	}

	return columns, nil
}

// ColumnNames returns just the column names of table, in schema order.
func (db *DB) ColumnNames(ctx context.Context, table string) ([]string, error) {
	columns, err := db.TableInfo(ctx, table)
	if err != nil {
		return nil, err
	}

	names := make([]string, len(columns))
	for i, col := range columns {
		names[i] = col.Name
	}
	return names, nil
}

// CountRows returns the total number of rows in table.
func (db *DB) CountRows(ctx context.Context, table string) (int64, error) {
	const op = "count rows"

	if err := db.guard(op); err != nil {
		return 0, err
	}
	if err := validateIdent(table); err != nil {
		return 0, storageErrorf(op, "%w", err)
	}

	var count int64
	row := db.conn.QueryRowContext(ctx, fmt.Sprintf(`SELECT COUNT(*) FROM "%s"`, table))
	if err := row.Scan(&count); err != nil {
		return 0, storageErrorf(op, "failed to count rows of %s: %w", table, err)
	}

	return count, nil
}
