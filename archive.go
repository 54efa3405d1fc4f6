package articledb

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Backup writes a consistent snapshot of the open database to dest using
// VACUUM INTO. The destination must not exist yet.
func (db *DB) Backup(ctx context.Context, dest string) error {
	const op = "backup"

	if err := db.guard(op); err != nil {
		return err
	}

	if _, err := db.conn.ExecContext(ctx, "VACUUM INTO ?", dest); err != nil {
		return storageErrorf(op, "failed to create backup: %w", err)
	}
	return nil
}

// Pack compresses the database file at path into path+".zip" and removes the
// original once the archive verifies. The database must be closed first.
func Pack(path string) (string, error) {
	const op = "pack"

	archivePath := path + ".zip"
	if err := writeZip(archivePath, path); err != nil {
		return "", ioErrorf(op, "%w", err)
	}

	zr, err := zip.OpenReader(archivePath)
	if err != nil {
		return "", ioErrorf(op, "failed to verify archive: %w", err)
	}
	_ = zr.Close()

	if err := os.Remove(path); err != nil {
		return "", ioErrorf(op, "failed to remove database file: %w", err)
	}
	return archivePath, nil
}

// Unpack restores a database file previously compressed with Pack into the
// archive's directory and removes the archive. It returns the restored path.
func Unpack(archive string) (string, error) {
	const op = "unpack"

	zr, err := zip.OpenReader(archive)
	if err != nil {
		return "", ioErrorf(op, "failed to open archive: %w", err)
	}

	if len(zr.File) != 1 {
		_ = zr.Close()
		return "", ioErrorf(op, "expected one file in archive, found %d", len(zr.File))
	}

	entry := zr.File[0]
	dest := filepath.Join(filepath.Dir(archive), filepath.Base(entry.Name))
	if err := extractZipEntry(entry, dest); err != nil {
		_ = zr.Close()
		return "", ioErrorf(op, "%w", err)
	}
	if err := zr.Close(); err != nil {
		return "", ioErrorf(op, "failed to close archive: %w", err)
	}

	if err := os.Remove(archive); err != nil {
		return "", ioErrorf(op, "failed to remove archive: %w", err)
	}
	return dest, nil
}

func writeZip(archivePath string, path string) error {
	src, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open database file: %w", err)
	}
	defer src.Close()

	out, err := os.Create(archivePath)
	if err != nil {
		return fmt.Errorf("failed to create archive: %w", err)
	}
	defer out.Close()

	zw := zip.NewWriter(out)
	w, err := zw.Create(filepath.Base(path))
	if err != nil {
		return fmt.Errorf("failed to create archive entry: %w", err)
	}
	if _, err := io.Copy(w, src); err != nil {
		return fmt.Errorf("failed to compress database file: %w", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to finish archive: %w", err)
	}
	return out.Close()
}

func extractZipEntry(entry *zip.File, dest string) error {
	rc, err := entry.Open()
	if err != nil {
		return fmt.Errorf("failed to open archive entry: %w", err)
	}
	defer rc.Close()

	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dest, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, rc); err != nil {
		return fmt.Errorf("failed to extract %s: %w", dest, err)
	}
	return out.Close()
}
