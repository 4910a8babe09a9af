package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/kms"
)

// KMSClient implements the domain.VaultClient interface against AWS KMS.
type KMSClient struct {
	client *kms.Client
}

// NewKMSClient creates a new KMSClient.
func NewKMSClient(cfg aws.Config) *KMSClient {
	return &KMSClient{
		client: kms.NewFromConfig(cfg),
	}
}

// Encrypt wraps plaintext under the master key named by keyID. The returned
// ciphertext blob is opaque; KMS owns its format.
func (c *KMSClient) Encrypt(ctx context.Context, keyID string, plaintext []byte) ([]byte, error) {
	input := &kms.EncryptInput{
		KeyId:     &keyID,
		Plaintext: plaintext,
	}

	result, err := c.client.Encrypt(ctx, input)
	if err != nil {
		return nil, err
	}

	return result.CiphertextBlob, nil
}

// Decrypt unwraps a ciphertext blob produced by Encrypt. Symmetric KMS
// ciphertext carries its own key reference, so no key id is supplied.
func (c *KMSClient) Decrypt(ctx context.Context, ciphertext []byte) ([]byte, error) {
	input := &kms.DecryptInput{
		CiphertextBlob: ciphertext,
	}

	result, err := c.client.Decrypt(ctx, input)
	if err != nil {
		return nil, err
	}

	return result.Plaintext, nil
}
