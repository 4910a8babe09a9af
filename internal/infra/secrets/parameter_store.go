package secrets

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

// ParameterStore resolves bootstrap secrets from SSM Parameter Store. It
// backs configurations that name an api_secret_parameter instead of
// embedding the secret itself, and is always reached through the ambient
// credential chain since the static pair is what it bootstraps.
type ParameterStore struct {
	client *ssm.Client
}

// NewParameterStore creates a ParameterStore bound to cfg.
func NewParameterStore(cfg aws.Config) *ParameterStore {
	return &ParameterStore{client: ssm.NewFromConfig(cfg)}
}

// GetSecret returns the decrypted value of the named parameter.
func (ps *ParameterStore) GetSecret(ctx context.Context, name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("secret name cannot be empty")
	}

	input := &ssm.GetParameterInput{
		Name:           &name,
		WithDecryption: aws.Bool(true),
	}

	result, err := ps.client.GetParameter(ctx, input)
	if err != nil {
		return "", fmt.Errorf("failed to get parameter %q: %w", name, err)
	}

	return *result.Parameter.Value, nil
}
