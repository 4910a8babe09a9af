package domain

import "context"

// BlobStore abstracts the byte-level persistence a sealed file is written
// through. Write replaces the blob at path in full; it does not create
// parent locations. Callers that need the parent to exist call EnsureDir
// separately before writing.
type BlobStore interface {
	Read(ctx context.Context, path string) ([]byte, error)
	Write(ctx context.Context, path string, data []byte) error
	EnsureDir(ctx context.Context, path string) error
}
