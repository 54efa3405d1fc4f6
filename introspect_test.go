package articledb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTables(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	tables, err := db.Tables(ctx)
	assert.NoError(t, err)
	assert.Empty(t, tables)

	assert.NoError(t, db.CreateTable(ctx, "t2", "file"))
	assert.NoError(t, db.CreateTable(ctx, "t1", "file"))

	tables, err = db.Tables(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []string{"t1", "t2"}, tables)
}

func TestTableInfo(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	assert.NoError(t, db.CreateTable(ctx, "articles", "file"))
	assert.NoError(t, db.AddColumn(ctx, "articles", "text"))

	columns, err := db.TableInfo(ctx, "articles")
	assert.NoError(t, err)
	assert.Len(t, columns, 2)

	assert.Equal(t, 0, columns[0].ID)
	assert.Equal(t, "file", columns[0].Name)
	assert.Equal(t, "TEXT", columns[0].Type)
	assert.True(t, columns[0].PrimaryKey)

	assert.Equal(t, 1, columns[1].ID)
	assert.Equal(t, "text", columns[1].Name)
	assert.Equal(t, "TEXT", columns[1].Type)
	assert.False(t, columns[1].PrimaryKey)
}

func TestTableInfoMissingTable(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	_, err := db.TableInfo(ctx, "nope")
	assert.Error(t, err)
	assert.True(t, IsStorageError(err))
}

func TestColumnNames(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	assert.NoError(t, db.CreateTable(ctx, "articles", "file"))
	assert.NoError(t, db.AddColumn(ctx, "articles", "text"))
	assert.NoError(t, db.AddColumn(ctx, "articles", "source"))

	names, err := db.ColumnNames(ctx, "articles")
	assert.NoError(t, err)
	assert.Equal(t, []string{"file", "text", "source"}, names)
}

func TestCountRows(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	assert.NoError(t, db.CreateTable(ctx, "articles", "file"))

	count, err := db.CountRows(ctx, "articles")
	assert.NoError(t, err)
	assert.Zero(t, count)

	_, err = db.Run(ctx, `INSERT INTO articles (file) VALUES (?)`, "a.txt")
	assert.NoError(t, err)

	count, err = db.CountRows(ctx, "articles")
	assert.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestCountRowsMissingTable(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	_, err := db.CountRows(ctx, "nope")
	assert.Error(t, err)
	assert.True(t, IsStorageError(err))
}
