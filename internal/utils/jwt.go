package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/algo-sync/models"
)

// ErrInvalidAuthorizationHeader is returned by [ParseBearerToken].
var ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")

// GenerateJWTToken issues an HS256 token whose subject is userID. The
// algosyncctl token command uses it to mint operator tokens.
func GenerateJWTToken(issuer string, userID int64, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || tokenDuration <= 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   strconv.FormatInt(userID, 10),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error signing JWT token: %w", err)
	}

	return models.Token{Token: token, SignedString: signed, UserID: userID}, nil
}

// ValidateAndParseJWTToken verifies the signature, expiry and issuer of
// tokenString and returns it with UserID populated from the subject.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.Token{}, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.Token{}, fmt.Errorf("error validating token: %w", err)
	}

	claims, ok := token.Claims.(*models.Token)
	if !ok {
		return models.Token{}, errors.New("unexpected token claims type")
	}

	userID, err := claims.GetUserID()
	if err != nil {
		return models.Token{}, err
	}

	return models.Token{
		Token:            token,
		RegisteredClaims: claims.RegisteredClaims,
		SignedString:     tokenString,
		UserID:           userID,
	}, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <t>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(authorizationHeader), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", ErrInvalidAuthorizationHeader
	}
	return strings.TrimSpace(token), nil
}
