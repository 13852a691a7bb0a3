// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/sha3"
)

// fingerprintBytes is the number of digest bytes kept in a fingerprint.
const fingerprintBytes = 4

// KeyFingerprint returns a short, non-reversible identifier for a secret such
// as a hot wallet private key, suitable for log records. It is the first four
// bytes of the Keccak-256 digest of the trimmed secret, hex encoded with a
// "0x" prefix. An empty secret yields an empty fingerprint.
func KeyFingerprint(secret string) string {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return ""
	}

	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(secret))
	sum := h.Sum(nil)

	return "0x" + hex.EncodeToString(sum[:fingerprintBytes])
}
