package crypto

import "errors"

// Sentinel errors returned by the crypto package. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrKeyLoad is returned when a persisted key file exists but cannot be
	// used: the encoding is corrupt or the decoded key has the wrong length.
	// There is no safe default key, so this condition is fatal at startup.
	ErrKeyLoad = errors.New("persisted key is malformed")

	// ErrEncryption is returned when the cipher cannot be constructed or
	// sealing fails. With a key honouring the KeyManager contract this
	// indicates a programming-invariant violation, not a runtime condition.
	ErrEncryption = errors.New("encryption failed")

	// ErrDecryption is returned when an artifact cannot be opened: the key
	// does not match, or the ciphertext is truncated or tampered with
	// (authentication-tag mismatch). Recoverable per artifact.
	ErrDecryption = errors.New("decryption failed")

	// ErrUnknownAlgorithm is returned when key material or an artifact
	// carries an algorithm identifier this build does not support.
	ErrUnknownAlgorithm = errors.New("unknown encryption algorithm")
)
