// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// vaultKeySalt domain-separates the vault key from other uses of the same
// secret. It is not secret and must never change, or stored tokens become
// unreadable.
var vaultKeySalt = []byte("algo-sync/credential-vault/v1")

// aesVault is the AES-256-GCM implementation of [CredentialVault].
// Ciphertext layout: base64(nonce ‖ sealed).
type aesVault struct {
	aead cipher.AEAD
}

// NewAESVault derives a 256-bit key from secret with Argon2id and returns an
// AES-256-GCM vault. The derivation runs once, here.
func NewAESVault(secret string) (CredentialVault, error) {
	if secret == "" {
		return nil, ErrEmptyVaultKey
	}

	key := argon2.IDKey([]byte(secret), vaultKeySalt, 1, 64*1024, 4, 32)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return &aesVault{aead: aead}, nil
}

func (v *aesVault) Encrypt(plaintext string) (string, error) {
	nonce := make([]byte, v.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	blob := v.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(blob), nil
}

func (v *aesVault) Decrypt(ciphertext string) (string, error) {
	blob, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: decode base64: %w", ErrCredentialDecrypt, err)
	}

	nonceSize := v.aead.NonceSize()
	if len(blob) < nonceSize {
		return "", fmt.Errorf("%w: ciphertext too short", ErrCredentialDecrypt)
	}

	nonce, sealed := blob[:nonceSize], blob[nonceSize:]
	plaintext, err := v.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrCredentialDecrypt, err)
	}

	return string(plaintext), nil
}
