package models

// PrivateSpan is a contiguous region of a generated response that the
// classifier judged private. Offsets are byte positions into the original
// text, with Start inclusive and End exclusive, so the span can be
// reinserted at its exact original location.
//
// A PrivateSpan exists only for the duration of a single pipeline
// invocation. It is never persisted in plaintext.
type PrivateSpan struct {
	Start int
	End   int
	Text  string
}

// Len returns the span length in bytes.
func (s PrivateSpan) Len() int {
	return s.End - s.Start
}
