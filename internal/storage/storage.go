// Package storage provides the blob backends sealed files are written
// through: local disk by default, S3 when configured.
package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spounge-ai/sealbox/internal/config"
	"github.com/spounge-ai/sealbox/internal/domain"
	infra_aws "github.com/spounge-ai/sealbox/internal/infra/aws"
)

// Blob backend identifiers.
const (
	BackendLocal = "local"
	BackendS3    = "s3"
)

// New selects the blob backend named by cfg.Storage.Backend. An empty
// backend means local disk.
func New(cfg *config.Config, logger *slog.Logger) (domain.BlobStore, error) {
	switch cfg.Storage.Backend {
	case "", BackendLocal:
		return NewLocalStore(), nil
	case BackendS3:
		awsCfg, err := infra_aws.LoadConfig(context.Background(), cfg.Region, cfg.APIKey, cfg.APISecret)
		if err != nil {
			return nil, fmt.Errorf("failed to load aws config: %w", err)
		}
		return NewS3Store(awsCfg, cfg.Storage.Bucket, logger), nil
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.Storage.Backend)
	}
}
