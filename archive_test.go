package articledb

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newPopulatedDB(t *testing.T) (*DB, string) {
	t.Helper()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "articles.db")
	db, err := Open(path)
	assert.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	dir := t.TempDir()
	writeTextFiles(t, dir, map[string]string{
		"one.txt": "first",
		"two.txt": "second",
	})
	assert.NoError(t, db.InsertTextFiles(ctx, "articles", dir))

	return db, path
}

func TestBackup(t *testing.T) {
	ctx := context.Background()
	db, _ := newPopulatedDB(t)

	dest := filepath.Join(t.TempDir(), "snapshot.db")
	assert.NoError(t, db.Backup(ctx, dest))

	snapshot, err := Open(dest)
	assert.NoError(t, err)
	defer snapshot.Close()

	count, err := snapshot.CountRows(ctx, "articles")
	assert.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

func TestBackupExistingDest(t *testing.T) {
	ctx := context.Background()
	db, _ := newPopulatedDB(t)

	dest := filepath.Join(t.TempDir(), "snapshot.db")
	assert.NoError(t, os.WriteFile(dest, []byte("occupied"), 0644))

	err := db.Backup(ctx, dest)
	assert.Error(t, err)
	assert.True(t, IsStorageError(err))
}

func TestPackUnpack(t *testing.T) {
	ctx := context.Background()
	db, path := newPopulatedDB(t)
	assert.NoError(t, db.Close())

	archive, err := Pack(path)
	assert.NoError(t, err)
	assert.Equal(t, path+".zip", archive)

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "Pack must remove the database file")

	restored, err := Unpack(archive)
	assert.NoError(t, err)
	assert.Equal(t, path, restored)

	_, err = os.Stat(archive)
	assert.True(t, os.IsNotExist(err), "Unpack must remove the archive")

	db2, err := Open(restored)
	assert.NoError(t, err)
	defer db2.Close()

	count, err := db2.CountRows(ctx, "articles")
	assert.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

func TestPackMissingFile(t *testing.T) {
	_, err := Pack(filepath.Join(t.TempDir(), "missing.db"))
	assert.Error(t, err)
	assert.True(t, IsIOError(err))
}

func TestUnpackBadArchive(t *testing.T) {
	archive := filepath.Join(t.TempDir(), "broken.zip")
	assert.NoError(t, os.WriteFile(archive, []byte("not a zip"), 0644))

	_, err := Unpack(archive)
	assert.Error(t, err)
	assert.True(t, IsIOError(err))
}
