// Package auth holds the credential primitives of the platform: the password
// hasher and the session token issuer/verifier. The signing secret is loaded
// once at startup and immutable afterwards; rotating it invalidates every
// outstanding token. Tokens carry no expiry claim, so a session lasts until
// the secret rotates.
package auth

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for a missing, malformed, or badly signed token.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the identity payload embedded in a session token.
type Claims struct {
	UserID  string
	IsAdmin bool
}

// TokenIssuer signs and verifies session tokens with a process-wide secret.
type TokenIssuer struct {
	secret []byte
}

// NewTokenIssuer builds a TokenIssuer. An empty secret is a server
// misconfiguration and must be rejected at startup, before any request.
func NewTokenIssuer(secret string) (*TokenIssuer, error) {
	if secret == "" {
		return nil, errors.New("auth: signing secret is empty")
	}
	return &TokenIssuer{secret: []byte(secret)}, nil
}

// Issue signs claims into a compact token string.
func (t *TokenIssuer) Issue(claims Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":      claims.UserID,
		"isAdmin": claims.IsAdmin,
	})
	return token.SignedString(t.secret)
}

// Verify parses and validates a token, returning its claims. Any failure
// (empty string, garbage, foreign signature) yields ErrInvalidToken.
func (t *TokenIssuer) Verify(tokenString string) (Claims, error) {
	if tokenString == "" {
		return Claims{}, ErrInvalidToken
	}

	mapClaims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(tokenString, mapClaims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return t.secret, nil
	})
	if err != nil || !parsed.Valid {
		return Claims{}, ErrInvalidToken
	}

	userID, _ := mapClaims["id"].(string)
	isAdmin, _ := mapClaims["isAdmin"].(bool)
	if userID == "" {
		return Claims{}, ErrInvalidToken
	}

	return Claims{UserID: userID, IsAdmin: isAdmin}, nil
}
