package errors

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedProvider = errors.New("unsupported vault provider")
	ErrVaultFailure        = errors.New("vault operation failed")
	ErrFileNotFound        = errors.New("sealed file not found")
	ErrStorageFailure      = errors.New("sealed file storage failed")
)

// VaultOp identifies which half of the vault round trip failed.
type VaultOp string

const (
	OpEncrypt VaultOp = "encrypt"
	OpDecrypt VaultOp = "decrypt"
)

// UnsupportedProviderError reports a provider identifier outside the
// recognized set. It is fatal to store construction; the caller must supply
// a valid provider.
type UnsupportedProviderError struct {
	Provider string
}

func (e *UnsupportedProviderError) Error() string {
	return fmt.Sprintf("unsupported vault provider %q", e.Provider)
}

func (e *UnsupportedProviderError) Is(target error) bool {
	return target == ErrUnsupportedProvider
}

// VaultError reports a failed remote encrypt or decrypt call, preserving the
// provider SDK error as its cause.
type VaultError struct {
	Op  VaultOp
	Err error
}

func (e *VaultError) Error() string {
	return fmt.Sprintf("vault %s failed: %v", e.Op, e.Err)
}

func (e *VaultError) Unwrap() error { return e.Err }

func (e *VaultError) Is(target error) bool { return target == ErrVaultFailure }

// StorageKind separates a missing sealed file from any other local blob
// access failure.
type StorageKind string

const (
	StorageNotFound StorageKind = "not_found"
	StorageIO       StorageKind = "io_error"
)

// StorageError reports a failed blob read or write at Path.
type StorageError struct {
	Kind StorageKind
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	if e.Kind == StorageNotFound {
		return fmt.Sprintf("sealed file %s not found: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("sealed file %s: %v", e.Path, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func (e *StorageError) Is(target error) bool {
	switch target {
	case ErrStorageFailure:
		return true
	case ErrFileNotFound:
		return e.Kind == StorageNotFound
	}
	return false
}
