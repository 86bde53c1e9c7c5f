package crypto

import "errors"

var (
	// ErrCredentialDecrypt is returned when stored ciphertext cannot be
	// opened with the configured key.
	ErrCredentialDecrypt = errors.New("credential cannot be decrypted")
	// ErrEmptyVaultKey is returned when a vault is built without key material.
	ErrEmptyVaultKey = errors.New("vault key is empty")
	// ErrUnknownVault is returned by [NewCredentialVault] for an
	// unrecognised strategy name.
	ErrUnknownVault = errors.New("unknown credential vault")
)
