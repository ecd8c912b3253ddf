package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// Session is the state stored against an opaque bearer token after a
// successful login.
type Session struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

// NewSessionToken returns a 64-character opaque token from a
// cryptographic random source.
func NewSessionToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
