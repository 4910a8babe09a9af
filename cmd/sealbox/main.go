package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/spounge-ai/sealbox/internal/config"
)

var (
	cfgPath string

	rootCmd = &cobra.Command{
		Use:   "sealbox",
		Short: "Seal files at rest through a managed key vault",
		Long: `Sealbox keeps a sensitive file encrypted at rest by delegating the
cryptography to a remote key vault. seal encrypts plaintext through the
vault and writes only the ciphertext blob; unseal reads the blob back and
asks the vault to decrypt it. The master key never leaves the vault and
plaintext is never persisted by sealbox itself.

Configuration comes from a YAML file (./config.yaml or --config) and
SEALBOX_* environment variables.`,
		SilenceUsage: true,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to the YAML configuration file")
	rootCmd.AddCommand(sealCmd)
	rootCmd.AddCommand(unsealCmd)
	rootCmd.AddCommand(statusCmd)
}

// loadConfig loads the configuration and builds the logger it asks for.
func loadConfig() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, nil, err
	}

	logger := newLogger(cfg.Logging)
	logger.Debug("sealbox configured",
		"version", cfg.ServiceVersion,
		"commit", cfg.BuildCommit,
		"provider", cfg.Provider,
		"region", cfg.Region,
		"storage_backend", cfg.Storage.Backend)
	return cfg, logger, nil
}

func newLogger(cfg config.LoggingConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
