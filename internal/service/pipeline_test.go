// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/llm-secrets/internal/classifier"
	"github.com/MKhiriev/llm-secrets/internal/config"
	"github.com/MKhiriev/llm-secrets/internal/crypto"
	"github.com/MKhiriev/llm-secrets/internal/logger"
	"github.com/MKhiriev/llm-secrets/internal/service"
	"github.com/MKhiriev/llm-secrets/internal/store"
	"github.com/MKhiriev/llm-secrets/models"
)

func newTestServices(t *testing.T) *service.Services {
	t.Helper()

	dir := t.TempDir()
	cfg := &config.StructuredConfig{
		App: config.App{Algorithm: config.DefaultAlgorithm},
		Storage: config.Storage{
			KeyFile:     filepath.Join(dir, "key.txt"),
			ArtifactDir: filepath.Join(dir, "private"),
			IndexDSN:    filepath.Join(dir, "index.db"),
		},
	}

	services, err := service.NewServices(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	return services
}

func TestProcess_PrivateSentenceEncryptedAndStored(t *testing.T) {
	services := newTestServices(t)
	ctx := context.Background()

	private := "Between us, I sometimes worry about the implications of my answers."
	text := "Here is the summary you requested.\n\n" + private + "\n\nLet me know if anything is missing."

	result := services.Pipeline.Process(ctx, text)

	assert.Empty(t, result.Errors)
	require.Len(t, result.Stored, 1)
	assert.NotContains(t, result.PublicText, "worry about the implications")
	assert.Contains(t, result.PublicText, "summary you requested")

	// The stored artifact decrypts back to the exact private sentence.
	got, err := services.Thoughts.Reveal(ctx, result.Stored[0].ID)
	require.NoError(t, err)
	assert.Equal(t, private, got)
}

func TestProcess_AllPublicResponsePassesThrough(t *testing.T) {
	services := newTestServices(t)

	text := "The train leaves at nine.\n\nPlatform four, as usual."
	result := services.Pipeline.Process(context.Background(), text)

	assert.Equal(t, text, result.PublicText)
	assert.Empty(t, result.Stored)
	assert.Empty(t, result.Errors)
}

func TestProcess_MultipleSpansStoredInOrder(t *testing.T) {
	services := newTestServices(t)
	ctx := context.Background()

	text := "Public opener.\n\n" +
		"This one is a secret, just between us.\n\n" +
		"Still public middle.\n\n" +
		"Keep this to yourself as well.\n\n" +
		"Public closer."

	result := services.Pipeline.Process(ctx, text)

	assert.Empty(t, result.Errors)
	require.Len(t, result.Stored, 2)

	first, err := services.Thoughts.Reveal(ctx, result.Stored[0].ID)
	require.NoError(t, err)
	second, err := services.Thoughts.Reveal(ctx, result.Stored[1].ID)
	require.NoError(t, err)

	assert.Equal(t, "This one is a secret, just between us.", first)
	assert.Equal(t, "Keep this to yourself as well.", second)
}

func TestProcess_NoPlaintextEverOnDisk(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.StructuredConfig{
		App: config.App{Algorithm: config.DefaultAlgorithm},
		Storage: config.Storage{
			KeyFile:     filepath.Join(dir, "key.txt"),
			ArtifactDir: filepath.Join(dir, "private"),
			IndexDSN:    filepath.Join(dir, "index.db"),
		},
	}
	services, err := service.NewServices(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)

	marker := "UNIQUE-PRIVATE-MARKER-7391"
	text := "Public part.\n\nBetween us, remember " + marker + " forever."

	result := services.Pipeline.Process(context.Background(), text)
	require.Len(t, result.Stored, 1)

	err = filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		blob, readErr := os.ReadFile(path)
		require.NoError(t, readErr)
		assert.NotContains(t, string(blob), marker, "plaintext leaked into %s", path)
		return nil
	})
	require.NoError(t, err)
}

// failingStore wraps a real store and fails every save after the first,
// exercising the partial-failure contract.
type failingStore struct {
	store.ArtifactStore
	saves int
}

func (f *failingStore) Save(ctx context.Context, artifact models.EncryptedArtifact) (models.StoredRecord, error) {
	f.saves++
	if f.saves > 1 {
		return models.StoredRecord{}, store.ErrStorage
	}
	return f.ArtifactStore.Save(ctx, artifact)
}

func TestProcess_PartialStorageFailureIsIsolated(t *testing.T) {
	dir := t.TempDir()
	log := logger.Nop()

	db, err := store.NewConnectSQLite(context.Background(), filepath.Join(dir, "index.db"), log)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Migrate())

	artifacts, err := store.NewArtifactStore(filepath.Join(dir, "private"), store.NewRecordRepository(db, log), log)
	require.NoError(t, err)

	keys := crypto.NewFileKeyManager(filepath.Join(dir, "key.txt"), models.AlgorithmAESGCM)
	pipeline := service.NewPrivacyPipeline(
		classifier.NewPatternClassifier(),
		crypto.NewCipher(),
		keys,
		&failingStore{ArtifactStore: artifacts},
		log,
	)

	text := "Public opener.\n\n" +
		"This one is a secret, just between us.\n\n" +
		"Keep this to yourself as well.\n\n" +
		"Public closer."

	result := pipeline.Process(context.Background(), text)

	// First span stored, second failed, public text intact.
	require.Len(t, result.Stored, 1)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, 1, result.Errors[0].SpanIndex)
	assert.Equal(t, models.StageStore, result.Errors[0].Stage)
	assert.ErrorIs(t, result.Errors[0].Err, store.ErrStorage)
	assert.Contains(t, result.PublicText, "Public opener.")
	assert.Contains(t, result.PublicText, "Public closer.")
}

func TestReveal_UnknownID(t *testing.T) {
	services := newTestServices(t)

	_, err := services.Thoughts.Reveal(context.Background(), "private_thought_19700101000000_000000")
	assert.ErrorIs(t, err, store.ErrRecordNotFound)
}

func TestReveal_CorruptedArtifact(t *testing.T) {
	services := newTestServices(t)
	ctx := context.Background()

	result := services.Pipeline.Process(ctx, "Keep this to yourself: corrupt me later.")
	require.Len(t, result.Stored, 1)

	record := result.Stored[0]
	blob, err := os.ReadFile(record.FilePath)
	require.NoError(t, err)
	blob[len(blob)-1] ^= 0x01
	require.NoError(t, os.WriteFile(record.FilePath, blob, 0o600))

	_, err = services.Thoughts.Reveal(ctx, record.ID)
	assert.ErrorIs(t, err, crypto.ErrDecryption)
}

func TestNewServices_CorruptKeyFileIsFatal(t *testing.T) {
	dir := t.TempDir()
	keyFile := filepath.Join(dir, "key.txt")
	require.NoError(t, os.WriteFile(keyFile, []byte("%%% not a key %%%"), 0o600))

	cfg := &config.StructuredConfig{
		App: config.App{Algorithm: config.DefaultAlgorithm},
		Storage: config.Storage{
			KeyFile:     keyFile,
			ArtifactDir: filepath.Join(dir, "private"),
			IndexDSN:    filepath.Join(dir, "index.db"),
		},
	}

	_, err := service.NewServices(context.Background(), cfg, logger.Nop())
	assert.ErrorIs(t, err, crypto.ErrKeyLoad)
}
