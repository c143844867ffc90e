package crypto

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// fingerprintBytes is how much of the digest is kept for display.
const fingerprintBytes = 10

// Fingerprint returns a short hex fingerprint of b.
//
// It hashes with BLAKE2b-256 and truncates to 10 bytes (20 hex chars).
func Fingerprint(b []byte) string {
	sum := blake2b.Sum256(b)
	return hex.EncodeToString(sum[:fingerprintBytes])
}
