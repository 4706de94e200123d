// Package shared provides secure memory wiping for key material.
package shared

// WipeByteArray overwrites the contents of the provided byte slice with zeros.
// Used to drop key material from memory once a decrypt or an eviction is done.
//
// If the slice is nil, the function does nothing.
func WipeByteArray(b []byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
}
