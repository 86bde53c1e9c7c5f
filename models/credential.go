package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidRepositoryRef is returned by [ParseRepositoryRef] when the input
// is not in the `owner/name` form.
var ErrInvalidRepositoryRef = errors.New("repository must be in `owner/name` form")

// RepositoryRef identifies a repository on the source-control host.
type RepositoryRef struct {
	Owner string `json:"owner"`
	Name  string `json:"name"`
}

// ParseRepositoryRef splits "owner/name" into a [RepositoryRef]. Surrounding
// whitespace is ignored; both segments must be non-empty and no further
// slashes are allowed.
func ParseRepositoryRef(raw string) (RepositoryRef, error) {
	parts := strings.Split(strings.TrimSpace(raw), "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return RepositoryRef{}, fmt.Errorf("%w: %q", ErrInvalidRepositoryRef, raw)
	}

	return RepositoryRef{Owner: parts[0], Name: parts[1]}, nil
}

// String returns the canonical `owner/name` form.
func (r RepositoryRef) String() string {
	return r.Owner + "/" + r.Name
}

// IsZero reports whether the reference is unset.
func (r RepositoryRef) IsZero() bool {
	return r.Owner == "" && r.Name == ""
}

// RepositoryCredential is the per-user link to a solutions repository.
//
// EncryptedToken is opaque ciphertext produced by a credential vault; the
// decrypted access token is never stored in this structure.
type RepositoryCredential struct {
	// UserID is the owner of the credential.
	UserID int64 `json:"-"`

	// EncryptedToken holds the vault-encrypted repository access token.
	EncryptedToken string `json:"-"`

	// Repository is the linked repository.
	Repository RepositoryRef `json:"repository"`

	// UpdatedAt is the time the credential was last saved.
	UpdatedAt time.Time `json:"updated_at"`
}
