package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/wordspark/echo/internal/logger"
)

// ErrSeedMissing is returned when a seed copy is needed but the seed file
// does not exist.
var ErrSeedMissing = errors.New("seed database not found")

// EnsureSeeded makes dbPath a usable database. An existing non-empty file
// that opens read-only and answers a query is kept. Anything else at dbPath
// is removed and seedPath is copied in its place. With an empty seedPath
// nothing is copied and Open later creates an empty store.
func EnsureSeeded(ctx context.Context, dbPath, seedPath string) (copied bool, err error) {
	log := logger.FromContext(ctx).WithPrefix("seed")

	usable, err := validateExisting(ctx, dbPath)
	if err != nil {
		return false, err
	}
	if usable {
		log.Debug("existing database is valid: %s", dbPath)
		return false, nil
	}

	if seedPath == "" {
		log.Info("no seed configured, database will be created empty")
		return false, nil
	}
	if _, err := os.Stat(seedPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Warn("seed database not found: %s", seedPath)
			return false, fmt.Errorf("%w: %s", ErrSeedMissing, seedPath)
		}
		return false, err
	}

	log.Info("copying seed database %s -> %s", seedPath, dbPath)
	if err := copyFile(seedPath, dbPath); err != nil {
		log.Error("failed to copy seed database: %v", err)
		return false, err
	}
	return true, nil
}

// validateExisting reports whether path holds a readable SQLite database.
// Empty or unreadable files are removed.
func validateExisting(ctx context.Context, path string) (bool, error) {
	log := logger.FromContext(ctx).WithPrefix("seed")

	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if info.IsDir() {
		return false, fmt.Errorf("database path %s is a directory", path)
	}

	if info.Size() > 0 {
		if err := probeReadOnly(ctx, path); err == nil {
			return true, nil
		} else {
			log.Warn("existing database is unreadable, replacing: %v", err)
		}
	} else {
		log.Warn("existing database is empty, replacing: %s", path)
	}

	if err := removeDatabase(path); err != nil {
		return false, err
	}
	return false, nil
}

func probeReadOnly(ctx context.Context, path string) error {
	conn, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?mode=ro", path))
	if err != nil {
		return err
	}
	defer conn.Close()

	var n int
	return conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM sqlite_master`).Scan(&n)
}

func removeDatabase(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	for _, suffix := range []string{"-wal", "-shm"} {
		_ = os.Remove(path + suffix)
	}
	return nil
}

// copyFile writes src to a temporary file next to dst and renames it into
// place, so a crash never leaves a half-written database at dst.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	dir := filepath.Dir(dst)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(dst)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := io.Copy(tmp, in); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, dst)
}
