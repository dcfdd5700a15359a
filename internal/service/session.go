// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nirmal Solanki

package service

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"time"
)

const sessionRandLen = 9

// NewSessionID produces an opaque identifier unique enough to key one
// conversation: a prefix, the current epoch milliseconds, and nine base36
// characters of randomness. No uniqueness is guaranteed beyond collision
// improbability, and the id is never persisted past the active session.
func NewSessionID(prefix string) string {
	var b strings.Builder
	b.WriteString(prefix)
	b.WriteByte('_')
	b.WriteString(strconv.FormatInt(time.Now().UnixMilli(), 10))
	b.WriteByte('_')

	const alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	for range sessionRandLen {
		b.WriteByte(alphabet[rand.IntN(len(alphabet))])
	}

	return b.String()
}
