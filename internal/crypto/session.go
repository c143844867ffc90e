package crypto

import "intergalactic/internal/domain"

// SessionFingerprint digests the canonical encoding of a session snapshot.
// Two sessions holding the same words and prices share a fingerprint,
// regardless of the order they were defined in.
func SessionFingerprint(s domain.Snapshot) domain.Fingerprint {
	return domain.Fingerprint(Fingerprint(s.Canonical()))
}
