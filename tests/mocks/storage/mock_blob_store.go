package storage

import (
	"context"
	"errors"
	"sync"

	apperrors "github.com/spounge-ai/sealbox/internal/errors"
)

// MockBlobStore is an in-memory blob store for tests. It mirrors the real
// backends' error mapping for missing blobs and lets tests inject failures
// per operation. Safe for concurrent use.
type MockBlobStore struct {
	mu sync.Mutex

	ReadErr  error
	WriteErr error

	blobs          map[string][]byte
	ensureDirCalls int
}

// NewMockBlobStore creates a new MockBlobStore.
func NewMockBlobStore() *MockBlobStore {
	return &MockBlobStore{blobs: make(map[string][]byte)}
}

// Read returns the blob at path, the injected ReadErr, or a notFound storage
// error when nothing was stored there.
func (m *MockBlobStore) Read(ctx context.Context, path string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ReadErr != nil {
		return nil, m.ReadErr
	}

	data, ok := m.blobs[path]
	if !ok {
		return nil, &apperrors.StorageError{Kind: apperrors.StorageNotFound, Path: path, Err: errors.New("mock: no blob at path")}
	}

	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Write replaces the blob at path, or returns the injected WriteErr.
func (m *MockBlobStore) Write(ctx context.Context, path string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.WriteErr != nil {
		return m.WriteErr
	}

	stored := make([]byte, len(data))
	copy(stored, data)
	m.blobs[path] = stored
	return nil
}

// EnsureDir records the call and succeeds.
func (m *MockBlobStore) EnsureDir(ctx context.Context, path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ensureDirCalls++
	return nil
}

// EnsureDirCalls reports how many times EnsureDir was invoked.
func (m *MockBlobStore) EnsureDirCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ensureDirCalls
}

// Put seeds a blob without going through Write.
func (m *MockBlobStore) Put(path string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := make([]byte, len(data))
	copy(stored, data)
	m.blobs[path] = stored
}

// Get returns the stored blob at path, if any.
func (m *MockBlobStore) Get(path string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.blobs[path]
	return data, ok
}
