package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spounge-ai/sealbox/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SEALBOX_REGION", "us-east-1")

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, config.DefaultProvider, cfg.Provider)
	assert.Equal(t, "us-east-1", cfg.Region)
	assert.Empty(t, cfg.KeyID)
	assert.Equal(t, config.DefaultKeyAlias, cfg.MasterKeyID())
	assert.False(t, cfg.HasStaticCredentials())
	assert.Equal(t, "local", cfg.Storage.Backend)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	contents := `provider: aws
region: eu-central-1
api_key: AKIAEXAMPLE
api_secret: wJalrExample
key_id: alias/payments
storage:
  backend: s3
  bucket: sealbox-blobs
logging:
  level: debug
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "eu-central-1", cfg.Region)
	assert.True(t, cfg.HasStaticCredentials())
	assert.Equal(t, "alias/payments", cfg.KeyID)
	assert.Equal(t, "alias/payments", cfg.MasterKeyID())
	assert.Equal(t, "s3", cfg.Storage.Backend)
	assert.Equal(t, "sealbox-blobs", cfg.Storage.Bucket)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("region: eu-central-1\n"), 0o600))

	t.Setenv("SEALBOX_REGION", "ap-southeast-2")
	t.Setenv("SEALBOX_KEY_ID", "custom-key")
	t.Setenv("SEALBOX_STORAGE_BACKEND", "local")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "ap-southeast-2", cfg.Region)
	assert.Equal(t, "custom-key", cfg.MasterKeyID())
	assert.Equal(t, "local", cfg.Storage.Backend)
}

func TestLoadRejectsMissingRegion(t *testing.T) {
	cfg, err := config.Load("")
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "validation")
}

func TestLoadRejectsMalformedProvider(t *testing.T) {
	t.Setenv("SEALBOX_REGION", "us-east-1")
	t.Setenv("SEALBOX_PROVIDER", "Not A Provider")

	_, err := config.Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation")
}

func TestLoadRejectsMalformedKeyID(t *testing.T) {
	t.Setenv("SEALBOX_REGION", "us-east-1")
	t.Setenv("SEALBOX_KEY_ID", "not a key reference!!")

	_, err := config.Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation")
}

func TestLoadRejectsS3WithoutBucket(t *testing.T) {
	t.Setenv("SEALBOX_REGION", "us-east-1")
	t.Setenv("SEALBOX_STORAGE_BACKEND", "s3")

	_, err := config.Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation")
}

func TestLoadCredentialPairing(t *testing.T) {
	t.Setenv("SEALBOX_REGION", "us-east-1")

	t.Run("api_key without secret", func(t *testing.T) {
		t.Setenv("SEALBOX_API_KEY", "AKIAEXAMPLE")

		_, err := config.Load("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "api_secret")
	})

	t.Run("api_secret without key", func(t *testing.T) {
		t.Setenv("SEALBOX_API_SECRET", "wJalrExample")

		_, err := config.Load("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "api_key")
	})

	t.Run("parameter without key", func(t *testing.T) {
		t.Setenv("SEALBOX_API_SECRET_PARAMETER", "/sealbox/api-secret")

		_, err := config.Load("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "api_key")
	})

	t.Run("secret and parameter together", func(t *testing.T) {
		t.Setenv("SEALBOX_API_KEY", "AKIAEXAMPLE")
		t.Setenv("SEALBOX_API_SECRET", "wJalrExample")
		t.Setenv("SEALBOX_API_SECRET_PARAMETER", "/sealbox/api-secret")

		_, err := config.Load("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "mutually exclusive")
	})

	t.Run("api_key with parameter", func(t *testing.T) {
		t.Setenv("SEALBOX_API_KEY", "AKIAEXAMPLE")
		t.Setenv("SEALBOX_API_SECRET_PARAMETER", "/sealbox/api-secret")

		cfg, err := config.Load("")
		require.NoError(t, err)
		assert.Equal(t, "/sealbox/api-secret", cfg.APISecretParameter)
		assert.Empty(t, cfg.APISecret)
	})
}

func TestLoadVersionMetadata(t *testing.T) {
	t.Setenv("SEALBOX_REGION", "us-east-1")
	t.Setenv("SEALBOX_SERVICE_VERSION", "1.4.0")
	t.Setenv("SEALBOX_BUILD_COMMIT", "abc1234")

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, "1.4.0", cfg.ServiceVersion)
	assert.Equal(t, "abc1234", cfg.BuildCommit)
}
