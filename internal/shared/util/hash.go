package util

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// HashBytes returns the hex SHA-256 of b.
func HashBytes(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

// HashDocument returns a stable content key for v. Struct fields marshal in
// declaration order and map keys sorted, so equal values hash equally.
func HashDocument(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("marshal document: %w", err)
	}
	return HashBytes(data), nil
}
