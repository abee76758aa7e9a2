package models

import "time"

// StoredRecord describes one persisted artifact without exposing any
// plaintext. Records are created on save and never mutated afterwards.
type StoredRecord struct {
	ID        string
	FilePath  string
	SizeBytes int64
	CreatedAt time.Time
}
