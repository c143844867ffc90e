// Package crypto derives short, stable fingerprints of session state.
//
// Contents
//
//   - Fingerprint: truncated BLAKE2b-256 hex digest of arbitrary bytes
//   - SessionFingerprint: fingerprint of a domain.Snapshot's canonical form
//
// # Notes
//
// Fingerprints are for display and comparing runs, not for authentication.
package crypto
