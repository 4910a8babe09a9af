package integration_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spounge-ai/sealbox/internal/config"
	"github.com/spounge-ai/sealbox/internal/filestore"
)

// TestSealUnsealAgainstKMS exercises the real provider path end to end: one
// Encrypt and one Decrypt against a live KMS master key. It needs ambient
// AWS credentials and a key the caller may use, so it skips unless
// SEALBOX_TEST_KMS_KEY_ID is set.
func TestSealUnsealAgainstKMS(t *testing.T) {
	keyID := os.Getenv("SEALBOX_TEST_KMS_KEY_ID")
	if keyID == "" {
		t.Skip("SEALBOX_TEST_KMS_KEY_ID not set")
	}

	region := os.Getenv("SEALBOX_TEST_AWS_REGION")
	if region == "" {
		region = "us-east-1"
	}

	cfg := &config.Config{
		Provider: config.DefaultProvider,
		Region:   region,
		KeyID:    keyID,
	}

	path := filepath.Join(t.TempDir(), "integration.sealed")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	store, err := filestore.New(path, cfg, filestore.WithLogger(logger))
	require.NoError(t, err)

	ctx := context.Background()
	plaintext := []byte("sealbox integration round trip")

	require.NoError(t, store.Write(ctx, plaintext))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotEqual(t, plaintext, raw, "the blob on disk must be ciphertext")

	got, err := store.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, plaintext, got)

	// Re-sealing rotates the blob in place.
	require.NoError(t, store.Write(ctx, []byte("second generation")))
	got, err = store.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte("second generation"), got)
}
