package lib

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// RandomToken returns size random bytes encoded as URL-safe base64
func RandomToken(size int) (string, error) {
	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
