// Package classifier decides which spans of a generated response are
// private. The policy is deliberately pluggable: a classifier is a pure
// function over the input text with no side effects and no access to keys or
// storage, so the heuristic can be swapped or tested in isolation.
package classifier

import "github.com/MKhiriev/llm-secrets/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/classifier_mock.go -package=mock

// Classifier splits a response into its public remainder and the private
// spans that were removed from it.
//
// Classification never fails: it is a total text transform. The returned
// spans are non-overlapping and ordered by position. Reinserting each span's
// text at its recorded offset reconstructs the input byte-for-byte. When
// nothing is private, spans is empty and publicText equals text unchanged;
// when everything is private, publicText is empty.
type Classifier interface {
	Classify(text string) (publicText string, spans []models.PrivateSpan)
}
