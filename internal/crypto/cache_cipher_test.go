// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nirmal Solanki

package crypto

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── AES-GCM cipher ───────────────────────────────────────────────────────────

func TestCacheCipher_SealOpenRoundtrip(t *testing.T) {
	c, err := NewCacheCipher("operator-passphrase")
	require.NoError(t, err)

	blob, err := c.Seal("classified content")
	require.NoError(t, err)
	assert.NotEqual(t, "classified content", blob)

	plaintext, err := c.Open(blob)
	require.NoError(t, err)
	assert.Equal(t, "classified content", plaintext)
}

func TestCacheCipher_SealIsRandomised(t *testing.T) {
	c, err := NewCacheCipher("operator-passphrase")
	require.NoError(t, err)

	first, err := c.Seal("same content")
	require.NoError(t, err)
	second, err := c.Seal("same content")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "a fresh nonce must make every blob unique")
}

func TestCacheCipher_WrongPassphrase(t *testing.T) {
	sealer, err := NewCacheCipher("first passphrase")
	require.NoError(t, err)
	opener, err := NewCacheCipher("second passphrase")
	require.NoError(t, err)

	blob, err := sealer.Seal("classified content")
	require.NoError(t, err)

	_, err = opener.Open(blob)
	assert.ErrorIs(t, err, ErrCipherOpen)
}

func TestCacheCipher_TamperedBlob(t *testing.T) {
	c, err := NewCacheCipher("operator-passphrase")
	require.NoError(t, err)

	blob, err := c.Seal("classified content")
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(blob)
	require.NoError(t, err)
	raw[len(raw)-1] ^= 0xFF

	_, err = c.Open(base64.StdEncoding.EncodeToString(raw))
	assert.ErrorIs(t, err, ErrCipherOpen)
}

func TestCacheCipher_MalformedBlobs(t *testing.T) {
	c, err := NewCacheCipher("operator-passphrase")
	require.NoError(t, err)

	_, err = c.Open("not base64 at all!!!")
	assert.ErrorIs(t, err, ErrCipherOpen)

	_, err = c.Open(base64.StdEncoding.EncodeToString([]byte("short")))
	assert.ErrorIs(t, err, ErrCipherOpen)
}

// ── Pass-through cipher ──────────────────────────────────────────────────────

func TestCacheCipher_EmptyPassphraseIsPassThrough(t *testing.T) {
	c, err := NewCacheCipher("")
	require.NoError(t, err)

	blob, err := c.Seal("plain content")
	require.NoError(t, err)
	assert.Equal(t, "plain content", blob)

	plaintext, err := c.Open(blob)
	require.NoError(t, err)
	assert.Equal(t, "plain content", plaintext)
}
