// Package vault dispatches provider identifiers to concrete key-vault
// client constructors. The identifier set is closed; adding a provider is
// one case in New plus one adapter, with no change at call sites.
package vault

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spounge-ai/sealbox/internal/config"
	"github.com/spounge-ai/sealbox/internal/domain"
	apperrors "github.com/spounge-ai/sealbox/internal/errors"
	infra_aws "github.com/spounge-ai/sealbox/internal/infra/aws"
	"github.com/spounge-ai/sealbox/internal/infra/secrets"
)

// ProviderAWS is the AWS KMS provider identifier, currently the only
// recognized one.
const ProviderAWS = "aws"

// New builds the vault client for provider, bound to cfg's region and
// credentials. An unrecognized identifier fails with
// UnsupportedProviderError before any client state is built. Credential
// validity is not checked here; the first remote call surfaces it.
func New(provider string, cfg *config.Config, logger *slog.Logger) (domain.VaultClient, error) {
	switch provider {
	case ProviderAWS:
		return newAWSClient(cfg, logger)
	default:
		return nil, &apperrors.UnsupportedProviderError{Provider: provider}
	}
}

func newAWSClient(cfg *config.Config, logger *slog.Logger) (domain.VaultClient, error) {
	ctx := context.Background()

	apiSecret := cfg.APISecret
	if apiSecret == "" && cfg.APISecretParameter != "" {
		bootCfg, err := infra_aws.LoadConfig(ctx, cfg.Region, "", "")
		if err != nil {
			return nil, fmt.Errorf("failed to load aws config for secret resolution: %w", err)
		}

		apiSecret, err = resolveAPISecret(ctx, secrets.NewParameterStore(bootCfg), cfg.APISecretParameter, logger)
		if err != nil {
			return nil, err
		}
	}

	awsCfg, err := infra_aws.LoadConfig(ctx, cfg.Region, cfg.APIKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	logger.Info("vault client created",
		"provider", ProviderAWS,
		"region", cfg.Region,
		"static_credentials", cfg.HasStaticCredentials())

	return infra_aws.NewKMSClient(awsCfg), nil
}

// resolveAPISecret pulls the vault API secret out of the secret source named
// by the configuration. The fetch itself rides the ambient credential chain,
// so a host can bootstrap its static pair without embedding it anywhere.
func resolveAPISecret(ctx context.Context, source domain.SecretSource, name string, logger *slog.Logger) (string, error) {
	secret, err := source.GetSecret(ctx, name)
	if err != nil {
		return "", fmt.Errorf("failed to resolve api secret: %w", err)
	}

	logger.Info("api secret resolved", "parameter", name)
	return secret, nil
}
