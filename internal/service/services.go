package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/llm-secrets/internal/classifier"
	"github.com/MKhiriev/llm-secrets/internal/config"
	"github.com/MKhiriev/llm-secrets/internal/crypto"
	"github.com/MKhiriev/llm-secrets/internal/logger"
	"github.com/MKhiriev/llm-secrets/internal/store"
	"github.com/MKhiriev/llm-secrets/models"
)

// Services bundles the constructed service layer for the command layer.
type Services struct {
	Pipeline  PrivacyPipeline
	Thoughts  ThoughtReader
	Generator ResponseGenerator
	Keys      crypto.KeyManager
	Artifacts store.ArtifactStore

	db *store.DB
}

// Close releases the sqlite index connection.
func (s *Services) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// NewServices wires the full service stack from configuration: sqlite index
// (migrated), artifact store, key manager, cipher, classifier, pipeline and
// reader.
//
// The key is loaded (or generated) eagerly here: a missing or corrupt key
// file is the one unrecoverable condition, and failing at wiring time keeps
// every later pipeline call key-safe.
func NewServices(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*Services, error) {
	db, err := store.NewConnectSQLite(ctx, cfg.Storage.IndexDSN, log)
	if err != nil {
		return nil, fmt.Errorf("connect artifact index: %w", err)
	}

	if err = db.Migrate(); err != nil {
		return nil, fmt.Errorf("migrate artifact index: %w", err)
	}

	repo := store.NewRecordRepository(db, log)
	artifacts, err := store.NewArtifactStore(cfg.Storage.ArtifactDir, repo, log)
	if err != nil {
		return nil, fmt.Errorf("create artifact store: %w", err)
	}

	keys := crypto.NewFileKeyManager(cfg.Storage.KeyFile, models.Algorithm(cfg.App.Algorithm))
	if _, err = keys.GetOrCreateKey(); err != nil {
		return nil, fmt.Errorf("initialise key material: %w", err)
	}

	cipher := crypto.NewCipher()
	cls := classifier.NewPatternClassifier()

	return &Services{
		Pipeline:  NewPrivacyPipeline(cls, cipher, keys, artifacts, log),
		Thoughts:  NewThoughtReader(cipher, keys, artifacts),
		Generator: NewSimulatedGenerator(),
		Keys:      keys,
		Artifacts: artifacts,
		db:        db,
	}, nil
}
