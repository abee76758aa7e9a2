// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/llm-secrets/internal/logger"
	"github.com/MKhiriev/llm-secrets/models"
)

// artifactFileExt and artifactFilePrefix fix the on-disk naming scheme:
// private_thought_<timestamp>_<seq>.enc under the private directory.
const (
	artifactFilePrefix = "private_thought_"
	artifactFileExt    = ".enc"
	timestampLayout    = "20060102150405"
)

// artifactStore is the default [ArtifactStore]: one file per artifact in a
// dedicated directory plus a sqlite index of metadata records.
type artifactStore struct {
	dir    string
	repo   RecordRepository
	logger *logger.Logger

	// seq disambiguates identifiers minted within the same timestamp
	// granularity. An atomic increment keeps concurrent saves collision-free
	// without a lock around the whole save path.
	seq atomic.Int64
}

// NewArtifactStore constructs an [ArtifactStore] writing artifact files to
// dir and indexing them through repo. The directory is created if absent.
func NewArtifactStore(dir string, repo RecordRepository, log *logger.Logger) (ArtifactStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("%w: create artifact dir %s: %v", ErrStorage, dir, err)
	}

	return &artifactStore{dir: dir, repo: repo, logger: log}, nil
}

// Save implements [ArtifactStore]. The file write is atomic from the
// caller's perspective: the blob goes to a temp file first and is renamed
// into place, so a crash mid-write leaves no partially visible artifact. If
// the index insert fails afterwards the file is removed again, keeping file
// storage and index consistent.
func (s *artifactStore) Save(ctx context.Context, artifact models.EncryptedArtifact) (models.StoredRecord, error) {
	log := logger.FromContext(ctx)

	blob, err := encodeArtifact(artifact)
	if err != nil {
		return models.StoredRecord{}, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	createdAt := time.Now().UTC()
	id := s.newID(createdAt)
	path := filepath.Join(s.dir, id+artifactFileExt)

	// Defence against files placed in the directory by external writers:
	// never silently overwrite.
	if _, statErr := os.Stat(path); statErr == nil {
		id = id + "_" + newUUID()
		path = filepath.Join(s.dir, id+artifactFileExt)
	}

	if err = writeFileAtomic(s.dir, path, blob); err != nil {
		log.Err(err).
			Str("func", "artifactStore.Save").
			Str("artifact_id", id).
			Msg("failed to write artifact file")
		return models.StoredRecord{}, fmt.Errorf("%w: write artifact file: %v", ErrStorage, err)
	}

	record := models.StoredRecord{
		ID:        id,
		FilePath:  path,
		SizeBytes: int64(len(blob)),
		CreatedAt: createdAt,
	}

	if err = s.repo.Insert(ctx, record); err != nil {
		// Roll the file back so no half-saved artifact remains observable.
		if rmErr := os.Remove(path); rmErr != nil {
			log.Err(rmErr).
				Str("func", "artifactStore.Save").
				Str("artifact_id", id).
				Msg("failed to remove artifact file after index failure")
		}
		return models.StoredRecord{}, fmt.Errorf("%w: index artifact record: %v", ErrStorage, err)
	}

	log.Debug().
		Str("func", "artifactStore.Save").
		Str("artifact_id", id).
		Int64("size_bytes", record.SizeBytes).
		Msg("artifact stored")

	return record, nil
}

// List implements [ArtifactStore].
func (s *artifactStore) List(ctx context.Context) ([]models.StoredRecord, error) {
	records, err := s.repo.SelectAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list artifact records: %w", err)
	}
	return records, nil
}

// Get implements [ArtifactStore].
func (s *artifactStore) Get(ctx context.Context, id string) (models.StoredRecord, error) {
	record, err := s.repo.SelectByID(ctx, id)
	if err != nil {
		return models.StoredRecord{}, fmt.Errorf("get artifact record: %w", err)
	}
	return record, nil
}

// Load implements [ArtifactStore].
func (s *artifactStore) Load(ctx context.Context, record models.StoredRecord) (models.EncryptedArtifact, error) {
	log := logger.FromContext(ctx)

	blob, err := os.ReadFile(record.FilePath)
	if err != nil {
		log.Err(err).
			Str("func", "artifactStore.Load").
			Str("artifact_id", record.ID).
			Msg("failed to read artifact file")
		return models.EncryptedArtifact{}, fmt.Errorf("%w: read artifact file: %v", ErrStorage, err)
	}

	artifact, err := decodeArtifact(blob)
	if err != nil {
		return models.EncryptedArtifact{}, fmt.Errorf("parse artifact %s: %w", record.ID, err)
	}

	return artifact, nil
}

// newID derives an artifact identifier from the creation timestamp plus the
// monotonic sequence number, e.g. private_thought_20260831120000_000017.
// Identifier uniqueness within a process is a correctness requirement: two
// saves in the same second must not collide.
func (s *artifactStore) newID(createdAt time.Time) string {
	return fmt.Sprintf("%s%s_%06d", artifactFilePrefix, createdAt.Format(timestampLayout), s.seq.Add(1))
}

// newUUID returns a UUIDv7 string, falling back to a random UUID if the
// time-ordered variant cannot be generated.
func newUUID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// writeFileAtomic writes data to a temp file in dir and renames it onto
// path. Rename within one filesystem is atomic, so readers observe either
// no file or the complete file.
func writeFileAtomic(dir, path string, data []byte) error {
	tmp, err := os.CreateTemp(dir, ".tmp-artifact-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	tmpName := tmp.Name()
	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err = os.Chmod(tmpName, 0o600); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("chmod temp file: %w", err)
	}

	if err = os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}
