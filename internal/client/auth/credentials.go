// Package auth holds the credential and token model for the TQL HTTP API
// and the token cache that keeps authenticated sessions alive.
package auth

import (
	"crypto/sha256"
	"encoding/hex"
)

// Credentials identifies a user against the server. It is an immutable
// value type: two Credentials with the same fields are the same cache key.
type Credentials struct {
	Username string
	Password string
}

// cacheKey derives a content-equality key for the token cache. Hashing the
// tuple keeps the password out of singleflight keys and log lines. The key
// depends only on field values, never on which Credentials instance carried
// them, so rebuilding the struct per call cannot defeat caching.
func (c Credentials) cacheKey() string {
	h := sha256.New()
	h.Write([]byte(c.Username))
	h.Write([]byte{0})
	h.Write([]byte(c.Password))
	return hex.EncodeToString(h.Sum(nil))
}

// Token is the opaque bearer credential returned by sign-in.
type Token struct {
	Token string `json:"token"`
}
