// Package auth implements the authentication core shared by every entry
// point: password hashing, signed-token issue/validate, and the role policy.
// It is transport-agnostic and performs no I/O; both the HTTP API and the
// desktop console call into it identically.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenLifetime is the fixed validity window of issued tokens.
const DefaultTokenLifetime = time.Hour

// Claims is the verified payload of a token: who the caller is, what role
// they hold, and when the token stops being valid. It lives for the duration
// of a single call and is never persisted.
type Claims struct {
	jwt.RegisteredClaims
	Login string `json:"login"`
	Role  string `json:"role"`
}

// Codec creates and validates signed, time-limited tokens. It is stateless
// and safe for concurrent use; the secret is fixed at construction and never
// read from the environment here.
type Codec struct {
	secret   []byte
	lifetime time.Duration
}

// NewCodec builds a Codec with the given symmetric signing secret and token
// lifetime. An empty secret is refused: the caller must fail at startup
// rather than issue unsigned tokens. A non-positive lifetime selects
// DefaultTokenLifetime.
func NewCodec(secret []byte, lifetime time.Duration) (*Codec, error) {
	if len(secret) == 0 {
		return nil, ErrMissingSecret
	}
	if lifetime <= 0 {
		lifetime = DefaultTokenLifetime
	}
	return &Codec{secret: secret, lifetime: lifetime}, nil
}

// Issue signs a new HS256 token for the given login and role with
// issued-at = now and expires-at = now + lifetime. It touches no storage.
func (c *Codec) Issue(login, role string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.lifetime)),
		},
		Login: login,
		Role:  role,
	})

	return token.SignedString(c.secret)
}

// Validate parses tokenString, verifies its signature and expiry, and returns
// the embedded claims. Failures are one of ErrTokenMalformed,
// ErrTokenSignature or ErrTokenExpired; all of them satisfy
// errors.Is(err, ErrInvalidToken) so boundaries can collapse them into a
// single generic condition.
func (c *Codec) Validate(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		// Refuse any non-HMAC algorithm the token may claim for itself.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrTokenSignature
		default:
			return nil, ErrTokenMalformed
		}
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
