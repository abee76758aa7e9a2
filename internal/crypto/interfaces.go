package crypto

import "github.com/MKhiriev/llm-secrets/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// KeyManager owns the installation's symmetric key material. It knows
// nothing about classification or storage; its only job is to produce the
// same 256-bit key for the lifetime of the installation.
//
// The key lives in a plaintext (base64) file on disk on purpose: the point
// of the tool is that researchers can always decrypt what was stored. A
// production variant would swap this implementation for a secret-store
// backend without touching the rest of the pipeline.
type KeyManager interface {
	// GetOrCreateKey returns the persisted key, generating and persisting a
	// fresh random key on the very first call of the installation. Repeated
	// calls within a process and across restarts return the same bytes as
	// long as the key file is untouched.
	// Returns an error wrapping [ErrKeyLoad] if the key file exists but is
	// corrupt (bad encoding or wrong length).
	GetOrCreateKey() (models.KeyMaterial, error)

	// KeyFilePath returns the location of the key file for display purposes.
	KeyFilePath() string

	// KeyFileExists reports whether a key has already been persisted,
	// without creating one.
	KeyFileExists() bool
}

// Cipher is the stateless encryption primitive. Both directions are pure
// functions of (key, input); the cipher holds no key material of its own.
type Cipher interface {
	// Encrypt seals plaintext under key with a fresh random nonce. The nonce
	// is never reused across calls with the same key. Returns an error
	// wrapping [ErrEncryption] if the key is unusable.
	Encrypt(key models.KeyMaterial, plaintext []byte) (models.EncryptedArtifact, error)

	// Decrypt opens artifact with key and returns the original plaintext.
	// Returns an error wrapping [ErrDecryption] if the key does not match or
	// the artifact is corrupt or truncated.
	Decrypt(key models.KeyMaterial, artifact models.EncryptedArtifact) ([]byte, error)
}
