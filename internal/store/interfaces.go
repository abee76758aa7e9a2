package store

import (
	"context"

	"github.com/MKhiriev/llm-secrets/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ArtifactStore persists encrypted artifacts durably under unique,
// timestamp-derived identifiers and serves their metadata back. It never
// sees plaintext: callers hand it sealed artifacts only.
//
// Save is collision-free under concurrent use: identifier derivation uses an
// atomic monotonic sequence, so two saves within the same timestamp
// granularity still produce distinct records.
type ArtifactStore interface {
	// Save writes artifact to durable storage and records it in the index.
	// The returned record is fully durable before Save returns; on failure
	// Save returns an error wrapping [ErrStorage] and no record exists.
	Save(ctx context.Context, artifact models.EncryptedArtifact) (models.StoredRecord, error)

	// List returns metadata for every stored artifact in creation order.
	// No plaintext and no ciphertext is returned.
	List(ctx context.Context) ([]models.StoredRecord, error)

	// Get returns the metadata record for one artifact id. Returns an error
	// wrapping [ErrRecordNotFound] if the id is unknown.
	Get(ctx context.Context, id string) (models.StoredRecord, error)

	// Load reads the artifact file behind record and parses it back into an
	// [models.EncryptedArtifact] ready for decryption.
	Load(ctx context.Context, record models.StoredRecord) (models.EncryptedArtifact, error)
}

// RecordRepository is the SQL index over stored artifacts. Separated from
// the file handling so the index can be tested against a mocked database.
type RecordRepository interface {
	// Insert adds one record to the index.
	Insert(ctx context.Context, record models.StoredRecord) error

	// SelectAll returns all records ordered by creation time, then id.
	SelectAll(ctx context.Context) ([]models.StoredRecord, error)

	// SelectByID returns the record with the given id, or an error wrapping
	// [ErrRecordNotFound].
	SelectByID(ctx context.Context, id string) (models.StoredRecord, error)
}
