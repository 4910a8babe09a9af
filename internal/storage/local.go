package storage

import (
	"context"
	"errors"
	"io/fs"
	"os"

	apperrors "github.com/spounge-ai/sealbox/internal/errors"
)

const (
	sealedFilePerm = 0o600
	sealedDirPerm  = 0o700
)

// LocalStore is the default blob backend: sealed files on the local
// filesystem. Reads and writes are whole-buffer operations; Write overwrites
// in place and never creates parent directories.
type LocalStore struct{}

// NewLocalStore creates a new LocalStore.
func NewLocalStore() *LocalStore {
	return &LocalStore{}
}

// Read returns the full contents at path. A missing file maps to the
// notFound storage error kind, anything else to ioError.
func (s *LocalStore) Read(ctx context.Context, path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &apperrors.StorageError{Kind: apperrors.StorageNotFound, Path: path, Err: err}
		}
		return nil, &apperrors.StorageError{Kind: apperrors.StorageIO, Path: path, Err: err}
	}
	return data, nil
}

// Write replaces the file at path with data in a single full-buffer write,
// created 0600 when new.
func (s *LocalStore) Write(ctx context.Context, path string, data []byte) error {
	if err := os.WriteFile(path, data, sealedFilePerm); err != nil {
		return &apperrors.StorageError{Kind: apperrors.StorageIO, Path: path, Err: err}
	}
	return nil
}

// EnsureDir creates the directory at path, with parents, if missing.
func (s *LocalStore) EnsureDir(ctx context.Context, path string) error {
	if err := os.MkdirAll(path, sealedDirPerm); err != nil {
		return &apperrors.StorageError{Kind: apperrors.StorageIO, Path: path, Err: err}
	}
	return nil
}
