package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
)

// LoadConfig resolves the SDK configuration for region. A non-empty
// accessKey/secretKey pair is bound as a static credentials provider;
// otherwise the ambient default chain (environment, shared profile, instance
// metadata) applies. Nothing is validated against AWS here.
func LoadConfig(ctx context.Context, region, accessKey, secretKey string) (aws.Config, error) {
	opts := []func(*config.LoadOptions) error{config.WithRegion(region)}

	if accessKey != "" && secretKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, "")))
	}

	return config.LoadDefaultConfig(ctx, opts...)
}
