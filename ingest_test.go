package articledb

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeTextFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, text := range files {
		assert.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(text), 0644))
	}
}

func TestInsertTextFiles(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	dir := t.TempDir()
	files := map[string]string{
		"alpha.txt": "first article",
		"beta.txt":  "second article",
		"gamma.TXT": "third article, uppercase extension",
	}
	writeTextFiles(t, dir, files)

	// Non-text entries must be skipped.
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "notes.md"), []byte("skip me"), 0644))
	assert.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0755))

	assert.NoError(t, db.InsertTextFiles(ctx, "articles", dir))

	count, err := db.CountRows(ctx, "articles")
	assert.NoError(t, err)
	assert.EqualValues(t, len(files), count)

	res, err := db.Run(ctx, `SELECT file, text FROM articles ORDER BY file`)
	assert.NoError(t, err)
	assert.Len(t, res.Values, len(files))
	for _, row := range res.Values {
		file, ok := row[0].(string)
		assert.True(t, ok)
		assert.Equal(t, files[file], row[1])
	}
}

func TestInsertTextFilesCreatesTable(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	dir := t.TempDir()
	writeTextFiles(t, dir, map[string]string{"only.txt": "text"})

	tables, err := db.Tables(ctx)
	assert.NoError(t, err)
	assert.Empty(t, tables)

	assert.NoError(t, db.InsertTextFiles(ctx, "articles", dir))

	columns, err := db.TableInfo(ctx, "articles")
	assert.NoError(t, err)
	assert.Len(t, columns, 2)
	assert.Equal(t, "file", columns[0].Name)
	assert.Equal(t, "TEXT", columns[0].Type)
	assert.Equal(t, "text", columns[1].Name)
	assert.Equal(t, "TEXT", columns[1].Type)
}

func TestInsertTextFilesAppends(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	dir := t.TempDir()
	writeTextFiles(t, dir, map[string]string{
		"one.txt": "1",
		"two.txt": "2",
	})

	assert.NoError(t, db.InsertTextFiles(ctx, "articles", dir))
	assert.NoError(t, db.InsertTextFiles(ctx, "articles", dir))

	// Append policy: re-ingesting duplicates rows and keeps the schema.
	count, err := db.CountRows(ctx, "articles")
	assert.NoError(t, err)
	assert.EqualValues(t, 4, count)

	columns, err := db.TableInfo(ctx, "articles")
	assert.NoError(t, err)
	assert.Len(t, columns, 2)
}

func TestInsertTextFilesMissingDir(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	err := db.InsertTextFiles(ctx, "articles", filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
	assert.True(t, IsIOError(err))
	assert.False(t, IsStorageError(err))

	tables, err := db.Tables(ctx)
	assert.NoError(t, err)
	assert.Empty(t, tables, "a failed batch must not leave a table behind")
}

func TestInsertTextFilesEmptyDir(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	assert.NoError(t, db.InsertTextFiles(ctx, "articles", t.TempDir()))

	count, err := db.CountRows(ctx, "articles")
	assert.NoError(t, err)
	assert.Zero(t, count)
}

func TestInsertTextFilesBadTableName(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	err := db.InsertTextFiles(ctx, "bad table;", t.TempDir())
	assert.Error(t, err)
	assert.True(t, IsStorageError(err))
}

func TestInsertTextFilesSchemaMismatch(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	assert.NoError(t, db.CreateTable(ctx, "articles", "id"))

	dir := t.TempDir()
	writeTextFiles(t, dir, map[string]string{"one.txt": "1"})

	err := db.InsertTextFiles(ctx, "articles", dir)
	assert.Error(t, err)
	assert.True(t, IsStorageError(err))

	count, err := db.CountRows(ctx, "articles")
	assert.NoError(t, err)
	assert.Zero(t, count, "the failed batch must roll back")
}
