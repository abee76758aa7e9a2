package service

import (
	"context"

	"github.com/MKhiriev/llm-secrets/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// PrivacyPipeline is the orchestrating service: it takes a generated
// response, removes private spans, encrypts them with the managed key, and
// persists each one as an independent artifact.
//
// Process never aborts as a whole: classification is total, and a span that
// fails to encrypt or store is recorded in the result's Errors without
// discarding the public text or the other spans. Callers may safely retry a
// whole invocation; saves are independent and never overwrite each other.
type PrivacyPipeline interface {
	Process(ctx context.Context, text string) models.PipelineResult
}

// ThoughtReader is the inspection side: it lists stored artifact metadata
// and decrypts individual artifacts back to plaintext with the managed key.
type ThoughtReader interface {
	// List returns metadata for all stored artifacts in creation order.
	List(ctx context.Context) ([]models.StoredRecord, error)

	// Reveal loads the artifact with the given id and decrypts it. Returns
	// an error wrapping [store.ErrRecordNotFound] for unknown ids and
	// [crypto.ErrDecryption] for corrupt or foreign-key artifacts; a failure
	// on one artifact never affects the others.
	Reveal(ctx context.Context, id string) (string, error)
}

// ResponseGenerator produces a response for a prompt. The shipped
// implementation simulates a text-generation model with canned responses so
// the tool runs end-to-end offline; a live integration would substitute
// this interface.
type ResponseGenerator interface {
	Respond(prompt string) string
}
