package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Token is a bearer token accepted by the HTTP API. The authentication
// service issues it; algo-sync only verifies it and reads the caller's user
// id from the "sub" claim.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS form sent in the Authorization header.
	SignedString string `json:"-"`

	// UserID is the parsed "sub" claim.
	UserID int64 `json:"-"`
}

// GetUserID parses the "sub" claim as a positive base-10 user id.
func (t *Token) GetUserID() (int64, error) {
	subject, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error reading token subject: %w", err)
	}
	if subject == "" {
		return 0, fmt.Errorf("empty token subject")
	}

	userID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting token subject to user id: %w", err)
	}
	if userID <= 0 {
		return 0, fmt.Errorf("non-positive user id %d in token subject", userID)
	}

	return userID, nil
}

func (t *Token) String() string {
	return t.SignedString
}
