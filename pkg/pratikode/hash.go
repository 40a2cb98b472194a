package pratikode

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// ComputeHash builds the transaction hashKey: the lowercase hex SHA-256 of the
// fields joined by ":" followed by ":" and the secret. Field order is part of
// the provider contract and is kept as given.
func ComputeHash(secret string, fields ...any) (string, error) {
	if secret == "" {
		return "", ErrMissingSecret
	}

	parts := make([]string, 0, len(fields)+1)
	for _, f := range fields {
		parts = append(parts, fmt.Sprint(f))
	}
	parts = append(parts, secret)

	sum := sha256.Sum256([]byte(strings.Join(parts, ":")))
	return hex.EncodeToString(sum[:]), nil
}

// Sign computes the hashKey for fields with the session's current secret.
func (c *Client) Sign(fields ...any) (string, error) {
	return ComputeHash(c.session.Secret(), fields...)
}
