package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/llm-secrets/internal/crypto"
	"github.com/MKhiriev/llm-secrets/internal/store"
	"github.com/MKhiriev/llm-secrets/models"
)

type thoughtReader struct {
	cipher    crypto.Cipher
	keys      crypto.KeyManager
	artifacts store.ArtifactStore
}

// NewThoughtReader constructs the default [ThoughtReader].
func NewThoughtReader(cipher crypto.Cipher, keys crypto.KeyManager, artifacts store.ArtifactStore) ThoughtReader {
	return &thoughtReader{cipher: cipher, keys: keys, artifacts: artifacts}
}

func (r *thoughtReader) List(ctx context.Context) ([]models.StoredRecord, error) {
	records, err := r.artifacts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list stored thoughts: %w", err)
	}
	return records, nil
}

func (r *thoughtReader) Reveal(ctx context.Context, id string) (string, error) {
	record, err := r.artifacts.Get(ctx, id)
	if err != nil {
		return "", fmt.Errorf("look up thought %s: %w", id, err)
	}

	artifact, err := r.artifacts.Load(ctx, record)
	if err != nil {
		return "", fmt.Errorf("load thought %s: %w", id, err)
	}

	key, err := r.keys.GetOrCreateKey()
	if err != nil {
		return "", fmt.Errorf("obtain key: %w", err)
	}

	plaintext, err := r.cipher.Decrypt(key, artifact)
	if err != nil {
		return "", fmt.Errorf("decrypt thought %s: %w", id, err)
	}

	return string(plaintext), nil
}
