// Package cryptox implements the envelope cipher used for uploaded content
// and for wrapping custody keys at rest.
//
// Sealed buffers are self-describing: the first NonceSize bytes are the
// nonce, the remainder is the AES-GCM ciphertext followed by its 16-byte tag.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"

	"github.com/dmitrijs2005/timevault/internal/common"
	"github.com/dmitrijs2005/timevault/internal/shared"
	"golang.org/x/crypto/argon2"
)

const (
	// KeySize is the symmetric key length in bytes (AES-256).
	KeySize = 32
	// NonceSize is the GCM nonce length in bytes (96 bits).
	NonceSize = 12
	// TagSize is the GCM authentication tag length in bytes (128 bits).
	TagSize = 16
)

// Key is 256-bit symmetric key material.
type Key []byte

// Wipe zeroes the key in place.
func (k Key) Wipe() {
	shared.WipeByteArray(k)
}

// randRead is a seam for tests that need a failing randomness source.
var randRead = rand.Read

// GenerateKey returns a fresh random 256-bit key.
func GenerateKey() (Key, error) {
	key := make([]byte, KeySize)
	if _, err := randRead(key); err != nil {
		return nil, fmt.Errorf("generate key: %w", err)
	}
	return key, nil
}

func newGCM(key Key) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("invalid key size %d", len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// Seal encrypts plaintext under key with a freshly drawn nonce and returns
// nonce || ciphertext || tag.
func Seal(plaintext []byte, key Key) ([]byte, error) {
	aesgcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	out := make([]byte, NonceSize, NonceSize+len(plaintext)+TagSize)
	if _, err := randRead(out); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	return aesgcm.Seal(out, out[:NonceSize], plaintext, nil), nil
}

// Open reverses Seal. Any verification failure, including a buffer too
// short to hold a nonce and tag, returns common.ErrAuthenticationFailure and
// no plaintext.
func Open(sealed []byte, key Key) ([]byte, error) {
	aesgcm, err := newGCM(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrAuthenticationFailure, err)
	}

	if len(sealed) < NonceSize+TagSize {
		return nil, common.ErrAuthenticationFailure
	}

	plaintext, err := aesgcm.Open(nil, sealed[:NonceSize], sealed[NonceSize:], nil)
	if err != nil {
		return nil, common.ErrAuthenticationFailure
	}

	return plaintext, nil
}

// DeriveMasterKey stretches an operator secret into a key-encryption key
// with Argon2id.
func DeriveMasterKey(secret []byte, salt []byte) Key {
	return argon2.IDKey(secret, salt, 1, 64*1024, 4, KeySize)
}

// WrapKey seals a data key under the master key for storage at rest.
func WrapKey(dataKey Key, masterKey Key) ([]byte, error) {
	return Seal(dataKey, masterKey)
}

// UnwrapKey opens a data key previously produced by WrapKey.
func UnwrapKey(wrapped []byte, masterKey Key) (Key, error) {
	k, err := Open(wrapped, masterKey)
	if err != nil {
		return nil, err
	}
	if len(k) != KeySize {
		return nil, common.ErrAuthenticationFailure
	}
	return k, nil
}
