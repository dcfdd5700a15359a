// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nirmal Solanki

// Package crypto provides the at-rest cipher for the local cache database.
//
// Saved messages and clips mirror remote rows that already live behind the
// backend's access controls, but the local SQLite file sits on the operator's
// disk; the cache cipher keeps its content columns opaque when a passphrase
// is configured.
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// ErrCipherOpen is returned when a stored blob cannot be authenticated,
// typically because the passphrase changed after rows were written.
var ErrCipherOpen = errors.New("cannot open cached blob")

// cacheSalt pins key derivation to this application. The passphrase is the
// secret; the salt only prevents cross-application key reuse.
var cacheSalt = []byte("ghost-console.cache.v1")

// CacheCipher seals and opens content strings stored in the local cache.
type CacheCipher interface {
	// Seal encrypts plaintext for storage. The result is printable
	// (base64) so it can live in a TEXT column.
	Seal(plaintext string) (string, error)

	// Open decrypts a blob produced by Seal. Returns [ErrCipherOpen]
	// (wrapped) when authentication fails.
	Open(blob string) (string, error)
}

type aesGCMCipher struct {
	aead cipher.AEAD
}

type noopCipher struct{}

// NewCacheCipher derives a 256-bit key from passphrase with Argon2id
// (OWASP-recommended parameters) and returns an AES-256-GCM cipher over it.
// An empty passphrase yields a pass-through cipher: the cache then stores
// plaintext, which is the configured-out default.
func NewCacheCipher(passphrase string) (CacheCipher, error) {
	if passphrase == "" {
		return noopCipher{}, nil
	}

	key := argon2.IDKey([]byte(passphrase), cacheSalt, 1, 64*1024, 4, 32)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cache cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create cache cipher gcm: %w", err)
	}

	return &aesGCMCipher{aead: aead}, nil
}

// Seal implements [CacheCipher]. blob = base64(nonce ‖ ciphertext); the
// random 12-byte nonce is prepended so Open can locate it.
func (c *aesGCMCipher) Seal(plaintext string) (string, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate cache nonce: %w", err)
	}

	sealed := c.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Open implements [CacheCipher].
func (c *aesGCMCipher) Open(blob string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrCipherOpen, err)
	}
	if len(raw) < c.aead.NonceSize() {
		return "", fmt.Errorf("%w: blob too short", ErrCipherOpen)
	}

	nonce, ciphertext := raw[:c.aead.NonceSize()], raw[c.aead.NonceSize():]
	plaintext, err := c.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrCipherOpen, err)
	}

	return string(plaintext), nil
}

func (noopCipher) Seal(plaintext string) (string, error) { return plaintext, nil }

func (noopCipher) Open(blob string) (string, error) { return blob, nil }
