package models

// Pipeline stages recorded in SpanError.Stage.
const (
	StageEncrypt = "encrypt"
	StageStore   = "store"
)

// SpanError describes a per-span failure inside one pipeline invocation.
// SpanIndex refers to the position of the span in classification order.
// The failed span's plaintext is deliberately absent.
type SpanError struct {
	SpanIndex int
	Stage     string
	Err       error
}

// PipelineResult is the outcome of processing one response.
//
// PublicText is the input with all private spans removed, remaining text in
// original order. Stored holds one record per successfully persisted span,
// in the order the spans were found. Errors holds descriptors for spans that
// failed to encrypt or store; a failed span never discards PublicText or the
// other records.
type PipelineResult struct {
	PublicText string
	Stored     []StoredRecord
	Errors     []SpanError
}
