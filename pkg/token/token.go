package token

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// maxLength is the length of 20 random bytes once encoded
const maxLength = 26

// Generate returns a crypto-secure random string of length n
// The random string contains the following characters:
// ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_
func Generate(n int) (string, error) {
	if n <= 0 || n > maxLength {
		return "", fmt.Errorf("token length must be between 1 and %d, got %d", maxLength, n)
	}

	b := make([]byte, 20)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}

	return base64.RawURLEncoding.EncodeToString(b)[0:n], nil
}
