package auth

import (
	"crypto/rand"
	"encoding/hex"
)

// NewVerificationToken returns 32 random bytes hex encoded (256 bits of
// entropy), the opaque value stored in a verification-token record.
func NewVerificationToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
