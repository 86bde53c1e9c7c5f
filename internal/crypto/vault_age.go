package crypto

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"filippo.io/age"
)

// ageVault implements [CredentialVault] with an X25519 age identity.
// Ciphertext is the base64 of the binary age file.
type ageVault struct {
	identity  *age.X25519Identity
	recipient *age.X25519Recipient
}

// NewAgeVault parses an "AGE-SECRET-KEY-1..." identity and returns a vault
// that encrypts to its recipient.
func NewAgeVault(identity string) (CredentialVault, error) {
	identity = strings.TrimSpace(identity)
	if identity == "" {
		return nil, ErrEmptyVaultKey
	}

	id, err := age.ParseX25519Identity(identity)
	if err != nil {
		return nil, fmt.Errorf("parsing age identity: %w", err)
	}

	return &ageVault{identity: id, recipient: id.Recipient()}, nil
}

func (v *ageVault) Encrypt(plaintext string) (string, error) {
	var buf bytes.Buffer

	w, err := age.Encrypt(&buf, v.recipient)
	if err != nil {
		return "", fmt.Errorf("creating encrypted writer: %w", err)
	}
	if _, err := io.WriteString(w, plaintext); err != nil {
		return "", fmt.Errorf("encrypting credential: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("finalizing encryption: %w", err)
	}

	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func (v *ageVault) Decrypt(ciphertext string) (string, error) {
	blob, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: decode base64: %w", ErrCredentialDecrypt, err)
	}

	r, err := age.Decrypt(bytes.NewReader(blob), v.identity)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrCredentialDecrypt, err)
	}

	plaintext, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("%w: reading plaintext: %w", ErrCredentialDecrypt, err)
	}

	return string(plaintext), nil
}
