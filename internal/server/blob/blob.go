// Package blob stores sealed ciphertext. Handles are content addressed: the
// lowercase hex SHA-256 of the stored bytes.
package blob

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
)

// Repository is the ciphertext store used by the gateway.
type Repository interface {
	// Put stores data and returns its handle.
	Put(ctx context.Context, data []byte) (string, error)
	// Get returns the stored bytes or common.ErrorNotFound.
	Get(ctx context.Context, handle string) ([]byte, error)
	// Exists reports whether handle is stored.
	Exists(ctx context.Context, handle string) (bool, error)
	// Delete removes handle. Deleting an absent handle is not an error.
	Delete(ctx context.Context, handle string) error
}

// HandleFor computes the handle data is stored under.
func HandleFor(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// ValidHandle reports whether h has the shape of a handle. Backends refuse
// anything else before building an object key from it.
func ValidHandle(h string) bool {
	if len(h) != sha256.Size*2 {
		return false
	}
	for i := 0; i < len(h); i++ {
		c := h[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f') {
			return false
		}
	}
	return true
}

func objectKey(prefix, handle string) string {
	return prefix + handle
}
