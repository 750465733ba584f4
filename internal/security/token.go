package security

import (
	"crypto/rand"
	"fmt"
)

// GenerateSessionToken returns a 64-char hex token. The value carries no
// claims; validity lives entirely in the session store.
func GenerateSessionToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return fmt.Sprintf("%x", b), nil
}
