package utils // package utils provides helper functions for token creation and hashing

import (
	"crypto/rand"   // secure random number generation
	"crypto/sha256" // SHA-256 hashing of session tokens at rest
	"encoding/hex"  // hex encoding of random bytes and digests
)

// NewSessionToken returns an opaque, cryptographically random token that
// identifies a server-side session. The raw value travels only inside the
// session cookie; the store keys sessions by its SHA-256 hash so a leaked
// store dump cannot be replayed as cookies.
func NewSessionToken() (string, error) {
	return randomHex(32) // 32 bytes -> 64 hex chars
}

// HashSessionToken returns the SHA-256 digest of a raw session token as a
// hex string. This is the only form the session store ever sees.
func HashSessionToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// randomHex returns a hex-encoded string generated from n bytes of
// cryptographically secure random data.
func randomHex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
