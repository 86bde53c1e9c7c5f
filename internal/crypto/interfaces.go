package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/credential_vault_mock.go -package=mock

// CredentialVault protects repository access tokens at rest.
//
// Implementations hold one process-wide key loaded at startup. Ciphertext
// produced by Encrypt is opaque text safe to persist; Decrypt is its exact
// inverse under the same key.
type CredentialVault interface {
	// Encrypt seals plaintext and returns the storable ciphertext.
	Encrypt(plaintext string) (string, error)

	// Decrypt opens ciphertext produced by Encrypt. Malformed input or a key
	// mismatch yields an error wrapping ErrCredentialDecrypt.
	Decrypt(ciphertext string) (string, error)
}
