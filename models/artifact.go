// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Algorithm identifies the AEAD construction used for a key or an artifact.
type Algorithm string

const (
	// AlgorithmAESGCM is AES-256 in Galois/Counter Mode (12-byte nonce).
	AlgorithmAESGCM Algorithm = "aes-gcm"

	// AlgorithmXChaCha is XChaCha20-Poly1305 (24-byte nonce).
	AlgorithmXChaCha Algorithm = "xchacha20-poly1305"
)

// KeySize is the symmetric key length in bytes (256 bits). Both supported
// algorithms use the same key size, so KeyMaterial is algorithm-portable.
const KeySize = 32

// KeyMaterial is the installation-wide symmetric secret. It is generated
// once, owned exclusively by the key manager, and read-only everywhere else.
type KeyMaterial struct {
	Algorithm Algorithm
	Bytes     []byte
}

// EncryptedArtifact is the result of sealing one private span. The nonce is
// fresh per encryption call; ciphertext includes the authentication tag
// appended by the AEAD. An artifact is opaque without the exact KeyMaterial
// that produced it.
type EncryptedArtifact struct {
	Algorithm  Algorithm
	Nonce      []byte
	Ciphertext []byte
}
