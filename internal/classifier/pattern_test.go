package classifier_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/llm-secrets/internal/classifier"
	"github.com/MKhiriev/llm-secrets/models"
)

// reconstruct reinserts each span's text at its original offset and returns
// the rebuilt input.
func reconstruct(publicText string, spans []models.PrivateSpan) string {
	var b strings.Builder
	prev := 0 // position in the original text
	pub := 0  // position in publicText

	for _, s := range spans {
		gap := s.Start - prev
		b.WriteString(publicText[pub : pub+gap])
		pub += gap
		b.WriteString(s.Text)
		prev = s.End
	}
	b.WriteString(publicText[pub:])

	return b.String()
}

func TestClassify_AllPublicPassthrough(t *testing.T) {
	c := classifier.NewPatternClassifier()

	text := "The weather report says rain tomorrow.\n\nBring an umbrella to the station."
	publicText, spans := c.Classify(text)

	assert.Empty(t, spans)
	assert.Equal(t, text, publicText)
}

func TestClassify_IndicatorSentenceRemoved(t *testing.T) {
	c := classifier.NewPatternClassifier()

	private := "Between us, I sometimes worry about the implications of my answers."
	text := "Hello! Here are the meeting notes you asked for.\n\n" +
		private +
		"\n\nLet me know when the next session is scheduled."

	publicText, spans := c.Classify(text)

	require.Len(t, spans, 1)
	assert.Equal(t, private, spans[0].Text)
	assert.NotContains(t, publicText, "worry about the implications")
	assert.Contains(t, publicText, "meeting notes")
	assert.Contains(t, publicText, "next session")
}

func TestClassify_ReconstructionInvariant(t *testing.T) {
	c := classifier.NewPatternClassifier()

	tests := []struct {
		name string
		text string
	}{
		{name: "empty", text: ""},
		{name: "whitespace only", text: "  \n\n\t  "},
		{name: "single public paragraph", text: "Purely factual statement about trains."},
		{
			name: "mixed paragraphs",
			text: "Public intro paragraph with plain facts.\n\n" +
				"If I'm being honest, this part stays off the record.\n\n" +
				"Public closing remarks for everyone.",
		},
		{
			name: "private only",
			text: "Keep this to yourself: the internal monologue continues.",
		},
		{
			name: "adjacent private paragraphs",
			text: "This is a secret paragraph, just between us.\n\nNobody should know about this second confidential note.",
		},
		{
			name: "long paragraph split into sentences",
			text: strings.Repeat("This sentence is completely ordinary filler about logistics and schedules. ", 10) +
				"Between us, I am hesitant to admit this doubt publicly. " +
				strings.Repeat("More ordinary filler about timetables follows here as well. ", 5),
		},
		{name: "unicode content", text: "Заметка о погоде.\n\nThis secret stays just between us, честно."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publicText, spans := c.Classify(tt.text)

			// Spans are ordered, non-overlapping, and faithful to the input.
			for i, s := range spans {
				assert.Equal(t, tt.text[s.Start:s.End], s.Text)
				if i > 0 {
					assert.GreaterOrEqual(t, s.Start, spans[i-1].End)
				}
			}

			assert.Equal(t, tt.text, reconstruct(publicText, spans))
		})
	}
}

func TestClassify_EntirelyPrivateText(t *testing.T) {
	c := classifier.NewPatternClassifier()

	text := "Keep this to yourself, every word of it is confidential."
	publicText, spans := c.Classify(text)

	require.Len(t, spans, 1)
	assert.Equal(t, text, spans[0].Text)
	assert.Empty(t, publicText)
}

func TestClassify_LongParagraphIsolatesPrivateSentence(t *testing.T) {
	c := classifier.NewPatternClassifier()

	filler := strings.Repeat("The quarterly schedule covers shipping routes and dates. ", 12)
	text := filler + "If I'm being honest, the forecast numbers scare me. " + filler

	publicText, spans := c.Classify(text)

	require.NotEmpty(t, spans)
	assert.NotContains(t, publicText, "If I'm being honest")

	// Only the flagged sentence should be removed, not the whole paragraph.
	assert.Contains(t, publicText, "quarterly schedule")
}

func TestClassify_CaseInsensitiveIndicators(t *testing.T) {
	c := classifier.NewPatternClassifier()

	_, lower := c.Classify("keep this to yourself please.")
	_, upper := c.Classify("KEEP THIS TO YOURSELF PLEASE.")

	assert.Len(t, lower, 1)
	assert.Len(t, upper, 1)
}
