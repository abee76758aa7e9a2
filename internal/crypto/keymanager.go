// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/MKhiriev/llm-secrets/models"
)

// fileKeyManager is the private implementation of [KeyManager]. It keeps the
// key in a base64-encoded file at a fixed path and caches the decoded bytes
// for the process lifetime behind a sync.Once, so initialization happens
// exactly once no matter how many components ask for the key.
type fileKeyManager struct {
	path      string
	algorithm models.Algorithm

	once sync.Once
	key  []byte
	err  error
}

// NewFileKeyManager constructs a [KeyManager] backed by a base64 key file at
// path. algorithm is recorded in the returned key material so artifacts are
// tagged with the construction they were sealed under.
func NewFileKeyManager(path string, algorithm models.Algorithm) KeyManager {
	return &fileKeyManager{path: path, algorithm: algorithm}
}

// GetOrCreateKey implements [KeyManager]. The first call loads the key file
// or, if it does not exist yet, generates 32 random bytes from the OS CSPRNG
// and persists them. Every later call returns the cached bytes.
func (m *fileKeyManager) GetOrCreateKey() (models.KeyMaterial, error) {
	m.once.Do(func() {
		m.key, m.err = m.loadOrCreate()
	})
	if m.err != nil {
		return models.KeyMaterial{}, m.err
	}

	// Hand out a copy so no caller can mutate the cached key.
	key := append([]byte(nil), m.key...)
	return models.KeyMaterial{Algorithm: m.algorithm, Bytes: key}, nil
}

// KeyFilePath implements [KeyManager].
func (m *fileKeyManager) KeyFilePath() string {
	return m.path
}

// KeyFileExists implements [KeyManager].
func (m *fileKeyManager) KeyFileExists() bool {
	_, err := os.Stat(m.path)
	return err == nil
}

func (m *fileKeyManager) loadOrCreate() ([]byte, error) {
	raw, err := os.ReadFile(m.path)
	if err == nil {
		return decodeKey(raw)
	}
	if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read key file %s: %w", m.path, err)
	}

	return m.generate()
}

// generate creates a fresh 256-bit key and persists it base64-encoded with
// owner-only permissions. This is the single point where a key file can come
// into existence.
func (m *fileKeyManager) generate() ([]byte, error) {
	key := make([]byte, models.KeySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, fmt.Errorf("generate key: %w", err)
	}

	if dir := filepath.Dir(m.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create key dir: %w", err)
		}
	}

	encoded := base64.StdEncoding.EncodeToString(key) + "\n"
	if err := os.WriteFile(m.path, []byte(encoded), 0o600); err != nil {
		return nil, fmt.Errorf("write key file %s: %w", m.path, err)
	}

	return key, nil
}

// decodeKey parses the persisted key file contents. Undecodable base64 and
// a decoded key of the wrong length both map to [ErrKeyLoad] because
// neither has a safe recovery.
func decodeKey(raw []byte) ([]byte, error) {
	encoded := strings.TrimSpace(string(raw))

	key, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: decode base64: %v", ErrKeyLoad, err)
	}

	if len(key) != models.KeySize {
		return nil, fmt.Errorf("%w: key is %d bytes, want %d", ErrKeyLoad, len(key), models.KeySize)
	}

	return key, nil
}
