// Package filestore implements the sealed file store: a file whose contents
// are encrypted and decrypted by a remote key vault, so plaintext never
// touches the blob backend. There is no local cryptography; each Write or
// Read is exactly one vault round trip plus one blob operation.
package filestore

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/spounge-ai/sealbox/internal/config"
	"github.com/spounge-ai/sealbox/internal/domain"
	apperrors "github.com/spounge-ai/sealbox/internal/errors"
	"github.com/spounge-ai/sealbox/internal/storage"
	"github.com/spounge-ai/sealbox/internal/vault"
)

// Store binds one file path to one vault client and one master key for its
// lifetime. Write seals plaintext into the file; Read unseals it back.
// Concurrent writers to the same path are last-write-wins; callers that need
// stronger ordering serialize externally.
type Store struct {
	path        string
	masterKeyID string
	client      domain.VaultClient
	blobs       domain.BlobStore
	logger      *slog.Logger
}

// Option overrides one of the store's collaborators.
type Option func(*Store)

// WithLogger sets the log sink. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// WithVaultClient binds an existing vault client instead of constructing one
// from cfg through the provider factory.
func WithVaultClient(client domain.VaultClient) Option {
	return func(s *Store) { s.client = client }
}

// WithBlobStore binds an existing blob store instead of the configured
// backend.
func WithBlobStore(blobs domain.BlobStore) Option {
	return func(s *Store) { s.blobs = blobs }
}

// New builds a Store for path. The master key id resolves to cfg.KeyID, or
// the default alias when unset; the vault client comes from the provider
// factory unless injected. An unrecognized cfg.Provider fails construction
// before any filesystem or network side effect.
func New(path string, cfg *config.Config, opts ...Option) (*Store, error) {
	s := &Store{
		path:        path,
		masterKeyID: cfg.MasterKeyID(),
		logger:      slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.client == nil {
		client, err := vault.New(cfg.Provider, cfg, s.logger)
		if err != nil {
			return nil, err
		}
		s.client = client
	}

	if s.blobs == nil {
		blobs, err := storage.New(cfg, s.logger)
		if err != nil {
			return nil, err
		}
		s.blobs = blobs
	}

	return s, nil
}

// Write seals plaintext: one vault encrypt call under the master key, then
// one full overwrite of the bound path with the returned ciphertext blob.
// Nothing is written when the encrypt call fails. A blob failure after a
// successful encrypt loses that ciphertext; re-running Write performs a
// fresh encrypt call, whose output need not match the lost one.
func (s *Store) Write(ctx context.Context, plaintext []byte) error {
	opID := uuid.New().String()

	ciphertext, err := s.client.Encrypt(ctx, s.masterKeyID, plaintext)
	if err != nil {
		s.logger.Error("vault encrypt failed",
			"op_id", opID, "path", s.path, "key_id", s.masterKeyID, "error", err)
		return &apperrors.VaultError{Op: apperrors.OpEncrypt, Err: err}
	}

	if err := s.blobs.Write(ctx, s.path, ciphertext); err != nil {
		s.logger.Error("ciphertext write failed", "op_id", opID, "path", s.path, "error", err)
		return err
	}

	s.logger.Info("file sealed",
		"op_id", opID, "path", s.path, "key_id", s.masterKeyID, "ciphertext_bytes", len(ciphertext))
	return nil
}

// Read unseals the file: one full read of the bound path, then one vault
// decrypt call on the blob. A missing or unreadable file fails before the
// vault is contacted. The plaintext is returned exactly as the vault
// produced it.
func (s *Store) Read(ctx context.Context) ([]byte, error) {
	opID := uuid.New().String()

	ciphertext, err := s.blobs.Read(ctx, s.path)
	if err != nil {
		s.logger.Error("ciphertext read failed", "op_id", opID, "path", s.path, "error", err)
		return nil, err
	}

	plaintext, err := s.client.Decrypt(ctx, ciphertext)
	if err != nil {
		s.logger.Error("vault decrypt failed", "op_id", opID, "path", s.path, "error", err)
		return nil, &apperrors.VaultError{Op: apperrors.OpDecrypt, Err: err}
	}

	s.logger.Info("file unsealed", "op_id", opID, "path", s.path, "key_id", s.masterKeyID)
	return plaintext, nil
}

// Path returns the file path the store is bound to.
func (s *Store) Path() string { return s.path }

// MasterKeyID returns the key identifier passed to every encrypt call.
func (s *Store) MasterKeyID() string { return s.masterKeyID }
