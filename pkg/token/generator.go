// Package token provides display id generation for unityvault tokens.
package token

import (
	"encoding/base64"
	"fmt"
	"io"
)

// DisplayIDLength is the length of a display id in characters.
const DisplayIDLength = 8

// displayIDBytes is the number of random bytes behind a display id.
// 6 bytes encode to exactly 8 base64 characters.
const displayIDBytes = 6

// DisplayID reads fresh bytes from r and returns an 8-character id.
func DisplayID(r io.Reader) (string, error) {
	b, err := GenerateBytes(r, displayIDBytes)
	if err != nil {
		return "", err
	}
	return Encode(b, DisplayIDLength)
}

// Encode base64 RawURL encodes b and returns the first n characters.
func Encode(b []byte, n int) (string, error) {
	encoded := base64.RawURLEncoding.EncodeToString(b)
	if n < 0 || len(encoded) < n {
		return "", fmt.Errorf("token: %d bytes encode to %d chars, need %d", len(b), len(encoded), n)
	}
	return encoded[:n], nil
}

// GenerateBytes reads exactly length bytes from r.
func GenerateBytes(r io.Reader, length int) ([]byte, error) {
	bytes := make([]byte, length)
	if _, err := io.ReadFull(r, bytes); err != nil {
		return nil, err
	}
	return bytes, nil
}
