// Package jwtx issues and verifies the CMS session tokens. Tokens are
// HS256-signed JWTs carrying the user's id, email and role, valid for 24
// hours. There is no server-side revocation; logout is client-side token
// discard.
package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/risechangeslives/risecms/pkg/idx"
)

// DefaultSessionTTL is the fixed validity window for session tokens.
const DefaultSessionTTL = 24 * time.Hour

// Claims are the session-token claims. The id/email/role field names are
// part of the API surface: the frontend decodes them, so keep them stable.
type Claims struct {
	jwt.RegisteredClaims

	UserID int    `json:"id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// NewSessionClaims builds minimally-correct session claims.
func NewSessionClaims(userID int, email, role, issuer string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        idx.New().String(),
		},
		UserID: userID,
		Email:  email,
		Role:   role,
	}
}

// ValidateExpiry ensures the token hasn't expired (exp) and isn't used
// before it is valid (nbf).
func (c *Claims) ValidateExpiry() error {
	now := time.Now().UTC()

	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Time) {
		return ErrExpired
	}
	if c.NotBefore != nil && now.Before(c.NotBefore.Time) {
		return ErrNotYetValid
	}
	return nil
}
