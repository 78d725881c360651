package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [jwt.RegisteredClaims] for standard claim access (subject, expiry, etc.).
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides access to the standard JWT claim set.
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the account id extracted from the "sub" claim.
	UserID string `json:"-"`
}

// GetUserID extracts the account identifier from the token's "sub" claim.
func (t *Token) GetUserID() (string, error) {
	userID, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting UserID from token: %w", err)
	}

	if userID == "" {
		return "", fmt.Errorf("error extracting UserID from token: empty subject")
	}

	return userID, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
