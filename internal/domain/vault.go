package domain

import "context"

// VaultClient is the capability a key-vault provider exposes: encrypt bytes
// under a named master key held inside the vault, and decrypt a ciphertext
// blob the same vault produced. The master key never leaves the vault.
//
// Decrypt takes no key identifier; the vault resolves the key from the
// ciphertext blob itself.
type VaultClient interface {
	Encrypt(ctx context.Context, keyID string, plaintext []byte) ([]byte, error)
	Decrypt(ctx context.Context, ciphertext []byte) ([]byte, error)
}
