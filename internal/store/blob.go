package store

import (
	"fmt"

	"github.com/MKhiriev/llm-secrets/internal/crypto"
	"github.com/MKhiriev/llm-secrets/models"
)

// Artifact file layout: algorithm tag (1 byte) ‖ nonce ‖ ciphertext. The tag
// plus the algorithm's fixed nonce size make the file self-describing: given
// only the key material, the file can be parsed and decrypted.
const (
	tagAESGCM  byte = 0x01
	tagXChaCha byte = 0x02
)

func algorithmTag(algorithm models.Algorithm) (byte, error) {
	switch algorithm {
	case models.AlgorithmAESGCM:
		return tagAESGCM, nil
	case models.AlgorithmXChaCha:
		return tagXChaCha, nil
	default:
		return 0, fmt.Errorf("%w: unknown algorithm %q", ErrMalformedArtifact, algorithm)
	}
}

func tagAlgorithm(tag byte) (models.Algorithm, error) {
	switch tag {
	case tagAESGCM:
		return models.AlgorithmAESGCM, nil
	case tagXChaCha:
		return models.AlgorithmXChaCha, nil
	default:
		return "", fmt.Errorf("%w: unknown algorithm tag 0x%02x", ErrMalformedArtifact, tag)
	}
}

// encodeArtifact serialises an artifact into its on-disk form.
func encodeArtifact(artifact models.EncryptedArtifact) ([]byte, error) {
	tag, err := algorithmTag(artifact.Algorithm)
	if err != nil {
		return nil, err
	}

	blob := make([]byte, 0, 1+len(artifact.Nonce)+len(artifact.Ciphertext))
	blob = append(blob, tag)
	blob = append(blob, artifact.Nonce...)
	blob = append(blob, artifact.Ciphertext...)

	return blob, nil
}

// decodeArtifact parses an on-disk blob back into its artifact parts.
func decodeArtifact(blob []byte) (models.EncryptedArtifact, error) {
	if len(blob) < 1 {
		return models.EncryptedArtifact{}, fmt.Errorf("%w: empty file", ErrMalformedArtifact)
	}

	algorithm, err := tagAlgorithm(blob[0])
	if err != nil {
		return models.EncryptedArtifact{}, err
	}

	nonceSize, err := crypto.NonceSize(algorithm)
	if err != nil {
		return models.EncryptedArtifact{}, fmt.Errorf("%w: %v", ErrMalformedArtifact, err)
	}

	if len(blob) < 1+nonceSize {
		return models.EncryptedArtifact{}, fmt.Errorf("%w: file shorter than nonce", ErrMalformedArtifact)
	}

	return models.EncryptedArtifact{
		Algorithm:  algorithm,
		Nonce:      blob[1 : 1+nonceSize],
		Ciphertext: blob[1+nonceSize:],
	}, nil
}
