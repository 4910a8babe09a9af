package vault

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"sync"
)

const ciphertextPrefix = "mock-vault:v1:"

// MockVaultClient is a faithful encrypt/decrypt pair for tests: Encrypt
// frames the plaintext with the key id it was called under, Decrypt reverses
// the frame, so a round trip through the pair is the identity. Calls and key
// ids are recorded, and errors can be injected per operation. Safe for
// concurrent use.
type MockVaultClient struct {
	mu sync.Mutex

	EncryptErr error
	DecryptErr error

	encryptCalls int
	decryptCalls int
	keyIDs       []string
}

// NewMockVaultClient creates a new MockVaultClient.
func NewMockVaultClient() *MockVaultClient {
	return &MockVaultClient{}
}

// Encrypt records the call and returns a framed ciphertext blob, or the
// injected EncryptErr.
func (m *MockVaultClient) Encrypt(ctx context.Context, keyID string, plaintext []byte) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.encryptCalls++
	m.keyIDs = append(m.keyIDs, keyID)

	if m.EncryptErr != nil {
		return nil, m.EncryptErr
	}

	blob := ciphertextPrefix +
		base64.StdEncoding.EncodeToString([]byte(keyID)) + ":" +
		base64.StdEncoding.EncodeToString(plaintext)
	return []byte(blob), nil
}

// Decrypt records the call and unwraps a blob Encrypt produced. Blobs this
// vault did not produce fail, as a real vault's would.
func (m *MockVaultClient) Decrypt(ctx context.Context, ciphertext []byte) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.decryptCalls++

	if m.DecryptErr != nil {
		return nil, m.DecryptErr
	}

	rest, ok := strings.CutPrefix(string(ciphertext), ciphertextPrefix)
	if !ok {
		return nil, fmt.Errorf("mock: ciphertext was not produced by this vault")
	}

	_, encoded, ok := strings.Cut(rest, ":")
	if !ok {
		return nil, fmt.Errorf("mock: malformed ciphertext frame")
	}

	plaintext, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("mock: malformed ciphertext payload: %w", err)
	}
	return plaintext, nil
}

// EncryptCalls reports how many times Encrypt was invoked.
func (m *MockVaultClient) EncryptCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.encryptCalls
}

// DecryptCalls reports how many times Decrypt was invoked.
func (m *MockVaultClient) DecryptCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.decryptCalls
}

// KeyIDs returns the key ids passed to Encrypt, in call order.
func (m *MockVaultClient) KeyIDs() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.keyIDs))
	copy(out, m.keyIDs)
	return out
}
