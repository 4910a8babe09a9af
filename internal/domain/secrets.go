package domain

import "context"

// SecretSource resolves bootstrap secrets by name, such as the vault API
// secret when configuration names a parameter instead of embedding the value.
type SecretSource interface {
	GetSecret(ctx context.Context, name string) (string, error)
}
