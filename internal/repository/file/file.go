// Package file is a key-value store that keeps one file per key in a
// directory. Writes go to a temporary file that is renamed into place.
package file

import (
	"context"
	stderrors "errors"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"

	"task-tracker/internal/errors"
	"task-tracker/internal/logging"
)

const fileMode = 0o600

// Store is a directory of key files.
type Store struct {
	dir string
}

// New returns a Store rooted at dir, creating it with perm if needed.
func New(dir string, perm os.FileMode) (*Store, error) {
	if err := os.MkdirAll(dir, perm); err != nil {
		return nil, errors.NewStorageError("create data directory", err).WithContext("dir", dir)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the root directory.
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the file a key is stored in.
func (s *Store) Path(key string) string {
	return filepath.Join(s.dir, url.PathEscape(key)+".json")
}

// Get reads the file for key.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path(key))
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.NewNotFoundError("key", key)
		}
		return nil, errors.NewStorageError("read "+key, err)
	}
	return data, nil
}

// Set replaces the file for key atomically.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, ".tmp-*")
	if err != nil {
		return errors.NewStorageError("create temp file", err)
	}
	tmpName := tmp.Name()
	defer func() {
		if tmpName != "" {
			os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		return errors.NewStorageError("write "+key, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return errors.NewStorageError("sync "+key, err)
	}
	if err := tmp.Close(); err != nil {
		return errors.NewStorageError("close "+key, err)
	}
	if err := os.Chmod(tmpName, fileMode); err != nil {
		return errors.NewStorageError("chmod "+key, err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.Rename(tmpName, s.Path(key)); err != nil {
		return errors.NewStorageError("replace "+key, err)
	}
	tmpName = ""

	logging.Debugf("file: wrote %d bytes to %s\n", len(value), s.Path(key))
	return nil
}

