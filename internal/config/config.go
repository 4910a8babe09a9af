// Package config loads and validates the sealbox configuration from a YAML
// file and SEALBOX_-prefixed environment variables.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	customvalidator "github.com/spounge-ai/sealbox/pkg/validator"
)

const (
	// DefaultProvider is the key-vault provider used when none is configured.
	DefaultProvider = "aws"

	// DefaultKeyAlias is the master-key alias used when no key_id is
	// configured. The alias resolves inside the vault; the key material it
	// names never leaves it.
	DefaultKeyAlias = "alias/sealbox"
)

// Config carries the vault provider binding, the blob storage selection, and
// the ambient logging settings. It is immutable once handed to construction;
// stores copy out the resolved master-key id and hold the built client.
type Config struct {
	Provider string `mapstructure:"provider" validate:"required,provider_id"`
	Region   string `mapstructure:"region"   validate:"required"`

	// APIKey and APISecret bind the vault client to a static credential
	// pair. With both empty the provider's ambient credential chain applies.
	// APISecretParameter names an SSM parameter to resolve the secret from
	// instead of embedding it.
	APIKey             string `mapstructure:"api_key"`
	APISecret          string `mapstructure:"api_secret"`
	APISecretParameter string `mapstructure:"api_secret_parameter"`

	// KeyID identifies the master key inside the vault. Empty means
	// DefaultKeyAlias. Only its shape is checked here; whether the vault
	// accepts it surfaces on the first remote call.
	KeyID string `mapstructure:"key_id" validate:"omitempty,keyref"`

	Storage StorageConfig `mapstructure:"storage"`
	Logging LoggingConfig `mapstructure:"logging"`

	ServiceVersion string
	BuildCommit    string
}

// StorageConfig selects the blob backend sealed files are written through.
type StorageConfig struct {
	Backend string `mapstructure:"backend" validate:"required,oneof=local s3"`
	Bucket  string `mapstructure:"bucket"  validate:"required_if=Backend s3"`
}

// LoggingConfig represents the logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"  validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=text json"`
}

// MasterKeyID returns the configured key id, or DefaultKeyAlias when unset.
func (c *Config) MasterKeyID() string {
	if c.KeyID != "" {
		return c.KeyID
	}
	return DefaultKeyAlias
}

// HasStaticCredentials reports whether a static credential pair was supplied.
func (c *Config) HasStaticCredentials() bool {
	return c.APIKey != ""
}

// Load reads the configuration from path, or from config.yaml in ./configs
// or the working directory when path is empty, then applies environment
// overrides and validates the result. Credential validity is not checked;
// only the configuration shape is.
func Load(path string) (*Config, error) {
	vip := viper.New()
	if path != "" {
		vip.SetConfigFile(path)
	} else {
		vip.SetConfigName("config")
		vip.AddConfigPath("./configs")
		vip.AddConfigPath(".")
	}

	vip.SetConfigType("yaml")
	vip.SetEnvPrefix("SEALBOX")
	vip.AutomaticEnv()
	vip.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Every key needs a default so environment-only values reach Unmarshal.
	vip.SetDefault("provider", DefaultProvider)
	vip.SetDefault("region", "")
	vip.SetDefault("api_key", "")
	vip.SetDefault("api_secret", "")
	vip.SetDefault("api_secret_parameter", "")
	vip.SetDefault("key_id", "")
	vip.SetDefault("storage.backend", "local")
	vip.SetDefault("storage.bucket", "")
	vip.SetDefault("logging.level", "info")
	vip.SetDefault("logging.format", "text")

	if err := vip.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := vip.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validator.New()
	if err := customvalidator.RegisterCustomValidators(validate); err != nil {
		return nil, fmt.Errorf("failed to register custom validators: %w", err)
	}

	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if err := validateCredentialPair(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	cfg.ServiceVersion = getenv("SEALBOX_SERVICE_VERSION", "unknown")
	cfg.BuildCommit = getenv("SEALBOX_BUILD_COMMIT", "unknown")

	return &cfg, nil
}

// validateCredentialPair enforces that static credentials arrive as a pair:
// an api_key needs an api_secret or a parameter to resolve it from, and a
// secret, embedded or parameter-resolved, is meaningless without its
// api_key.
func validateCredentialPair(cfg *Config) error {
	if cfg.APIKey != "" && cfg.APISecret == "" && cfg.APISecretParameter == "" {
		return fmt.Errorf("api_key is set but neither api_secret nor api_secret_parameter is")
	}
	if cfg.APISecret != "" && cfg.APIKey == "" {
		return fmt.Errorf("api_secret is set without api_key")
	}
	if cfg.APISecretParameter != "" && cfg.APIKey == "" {
		return fmt.Errorf("api_secret_parameter is set without api_key")
	}
	if cfg.APISecret != "" && cfg.APISecretParameter != "" {
		return fmt.Errorf("api_secret and api_secret_parameter are mutually exclusive")
	}
	return nil
}

// getenv returns an environment variable or a default value.
func getenv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
