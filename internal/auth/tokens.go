// SPDX-License-Identifier: MIT
package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// NewTokenID creates a random identifier used as a token's jti claim
func NewTokenID() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
