// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20poly1305"

	"github.com/MKhiriev/llm-secrets/models"
)

// aeadCipher is the private implementation of [Cipher]. It supports
// AES-256-GCM and XChaCha20-Poly1305; the construction is chosen by the
// algorithm identifier carried in the key material, so the same cipher value
// serves every key.
type aeadCipher struct{}

// NewCipher constructs the default [Cipher].
func NewCipher() Cipher {
	return &aeadCipher{}
}

// Encrypt implements [Cipher]. It seals plaintext under key using the key's
// algorithm with a fresh random nonce read from the OS CSPRNG. The empty
// plaintext is valid input and round-trips like any other byte string.
func (c *aeadCipher) Encrypt(key models.KeyMaterial, plaintext []byte) (models.EncryptedArtifact, error) {
	aead, err := newAEAD(key)
	if err != nil {
		return models.EncryptedArtifact{}, fmt.Errorf("%w: %v", ErrEncryption, err)
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return models.EncryptedArtifact{}, fmt.Errorf("%w: generate nonce: %v", ErrEncryption, err)
	}

	return models.EncryptedArtifact{
		Algorithm:  key.Algorithm,
		Nonce:      nonce,
		Ciphertext: aead.Seal(nil, nonce, plaintext, nil),
	}, nil
}

// Decrypt implements [Cipher]. It opens artifact under key and verifies the
// authentication tag. An open failure almost always means the artifact was
// produced under different key material or has been corrupted on disk.
func (c *aeadCipher) Decrypt(key models.KeyMaterial, artifact models.EncryptedArtifact) ([]byte, error) {
	if artifact.Algorithm != key.Algorithm {
		return nil, fmt.Errorf("%w: artifact algorithm %q does not match key algorithm %q",
			ErrDecryption, artifact.Algorithm, key.Algorithm)
	}

	aead, err := newAEAD(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecryption, err)
	}

	if len(artifact.Nonce) != aead.NonceSize() {
		return nil, fmt.Errorf("%w: nonce is %d bytes, want %d", ErrDecryption, len(artifact.Nonce), aead.NonceSize())
	}

	plaintext, err := aead.Open(nil, artifact.Nonce, artifact.Ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecryption, err)
	}

	// aead.Open returns nil for an empty plaintext; normalise so the
	// round-trip law holds byte-for-byte.
	if plaintext == nil {
		plaintext = []byte{}
	}

	return plaintext, nil
}

// newAEAD builds the AEAD for the key's algorithm. Both constructions take a
// 256-bit key, so a length error here means the KeyManager contract was
// violated.
func newAEAD(key models.KeyMaterial) (cipher.AEAD, error) {
	switch key.Algorithm {
	case models.AlgorithmAESGCM:
		block, err := aes.NewCipher(key.Bytes)
		if err != nil {
			return nil, fmt.Errorf("create cipher: %w", err)
		}
		return cipher.NewGCM(block)
	case models.AlgorithmXChaCha:
		return chacha20poly1305.NewX(key.Bytes)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, key.Algorithm)
	}
}

// NonceSize returns the nonce length in bytes for the given algorithm.
// Used by the store when parsing artifact files back into their parts.
func NonceSize(algorithm models.Algorithm) (int, error) {
	switch algorithm {
	case models.AlgorithmAESGCM:
		return 12, nil
	case models.AlgorithmXChaCha:
		return chacha20poly1305.NonceSizeX, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
	}
}
