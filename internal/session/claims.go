package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carried in the access token payload.
//
// The token is issued and signed by the platform API; the console only reads
// it, so the payload is decoded without signature verification. Expiry is
// still honored locally.
type Claims struct {
	jwt.RegisteredClaims
	AccountID int64  `json:"accountId"`
	Scope     string `json:"scope"`
}

// DecodeClaims decodes the payload segment of a compact JWT.
//
// Returns nil for any malformed input: wrong segment count, invalid base64url
// or invalid JSON. Decode failures are expected (empty storage, legacy keys)
// and must never surface as errors.
func DecodeClaims(token string) *Claims {
	if token == "" {
		return nil
	}

	claims := &Claims{}
	parser := jwt.NewParser()

	_, _, err := parser.ParseUnverified(token, claims)
	if err != nil {
		return nil
	}

	return claims
}

// ExpiresAfter reports whether the token expiry (if any) is strictly after 'now'.
// Tokens without an expiry claim are treated as not expired.
func (c *Claims) ExpiresAfter(now time.Time) bool {
	if c.ExpiresAt == nil {
		return true
	}
	return c.ExpiresAt.Time.After(now)
}
