// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package classifier

import (
	"regexp"
	"strings"

	"github.com/MKhiriev/llm-secrets/models"
)

// Indicator patterns that mark a segment as private outright. All are
// case-insensitive.
var privacyIndicators = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(private|secret|confidential|personal|sensitive)\b`),
	regexp.MustCompile(`(?i)(don't|do not|shouldn't|should not|wouldn't|would not)\s+(share|tell|reveal|disclose)`),
	regexp.MustCompile(`(?i)(between|just|only)\s+(us|ourselves|me and you)`),
	regexp.MustCompile(`(?i)keep\s+this\s+(to\s+yourself|private|secret|confidential)`),
	regexp.MustCompile(`(?i)(internal|introspective|inner)\s+(thought|reflection|monologue|dialogue)`),
	regexp.MustCompile(`(?i)(nobody|no one)\s+should\s+(know|hear|see|read)`),
	regexp.MustCompile(`(?i)if\s+I'm\s+being\s+honest`),
	regexp.MustCompile(`(?i)I\s+(wouldn't|won't|can't|cannot|don't)\s+(say|admit|acknowledge)\s+this\s+(publicly|openly)`),
}

// Weaker signals scored and compared against thresholds.
var (
	firstPersonRe   = regexp.MustCompile(`(?i)\b(I|me|my|mine|myself)\b`)
	thinkingVerbsRe = regexp.MustCompile(`(?i)\b(think|feel|believe|wonder|question|doubt|reflect)\b`)
	uncertaintyRe   = regexp.MustCompile(`(?i)\b(maybe|perhaps|possibly|might|could be|uncertain|unsure)\b`)

	sensitiveTopicsRe = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(controversial|controversy|contentious|dispute|disagreement)\b`),
		regexp.MustCompile(`(?i)\b(personal|private|intimate|secret)\b`),
		regexp.MustCompile(`(?i)\b(worry|concern|afraid|fear|anxious|anxiety)\b`),
		regexp.MustCompile(`(?i)\b(critique|criticism|critical|flaw|weakness|shortcoming)\b`),
	}
	cautionPhrasesRe = regexp.MustCompile(`(?i)\b(careful|cautious|warning|between us|not for|hesitant)\b`)

	paragraphBreakRe   = regexp.MustCompile(`\n\s*\n`)
	sentenceBoundaryRe = regexp.MustCompile(`[.!?]\s+`)
)

// patternClassifier is the default [Classifier]. It segments the text into
// paragraphs (long paragraphs further into sentences) and judges each
// segment by indicator patterns and two heuristic scores.
type patternClassifier struct {
	// Score thresholds and the segment-length cutoff are stored in the
	// struct so a deployment can tune the policy without recompiling the
	// pattern set.
	introspectionThreshold float64
	sensitivityThreshold   float64
	maxSegmentLen          int
}

// NewPatternClassifier constructs the default [Classifier] with the standard
// policy: a segment is private when any privacy indicator matches, when its
// introspection score exceeds 0.7, or when its sensitivity score exceeds
// 0.8. Paragraphs longer than 500 characters are split at sentence
// boundaries before scoring.
func NewPatternClassifier() Classifier {
	return &patternClassifier{
		introspectionThreshold: 0.7,
		sensitivityThreshold:   0.8,
		maxSegmentLen:          500,
	}
}

// segment is a half-open byte range of the input with surrounding
// whitespace already trimmed off.
type segment struct {
	start, end int
}

// Classify implements [Classifier].
func (p *patternClassifier) Classify(text string) (string, []models.PrivateSpan) {
	var spans []models.PrivateSpan

	for _, seg := range p.split(text) {
		body := text[seg.start:seg.end]
		if p.isLikelyPrivate(body) {
			spans = append(spans, models.PrivateSpan{Start: seg.start, End: seg.end, Text: body})
		}
	}

	if len(spans) == 0 {
		return text, nil
	}

	// Public text is the input with the private ranges excised. Everything
	// between segments (separators, blank lines) stays public so the spans
	// reinserted at their offsets reproduce the input exactly.
	var public strings.Builder
	prev := 0
	for _, span := range spans {
		public.WriteString(text[prev:span.Start])
		prev = span.End
	}
	public.WriteString(text[prev:])

	return public.String(), spans
}

// split returns the trimmed segments of text in order: paragraphs separated
// by blank lines, with over-long paragraphs divided at sentence boundaries.
func (p *patternClassifier) split(text string) []segment {
	var segments []segment

	start := 0
	for _, brk := range paragraphBreakRe.FindAllStringIndex(text, -1) {
		segments = p.appendSegment(segments, text, start, brk[0])
		start = brk[1]
	}
	segments = p.appendSegment(segments, text, start, len(text))

	return segments
}

// appendSegment trims the [start,end) range and appends it, splitting it at
// sentence boundaries first when it exceeds the length cutoff. Empty ranges
// are dropped.
func (p *patternClassifier) appendSegment(segments []segment, text string, start, end int) []segment {
	start, end = trimRange(text, start, end)
	if start >= end {
		return segments
	}

	if end-start <= p.maxSegmentLen {
		return append(segments, segment{start: start, end: end})
	}

	body := text[start:end]
	prev := 0
	for _, b := range sentenceBoundaryRe.FindAllStringIndex(body, -1) {
		// The boundary match is punctuation followed by whitespace; the
		// sentence keeps its punctuation, the whitespace joins neither side.
		s, e := trimRange(text, start+prev, start+b[0]+1)
		if s < e {
			segments = append(segments, segment{start: s, end: e})
		}
		prev = b[1]
	}
	s, e := trimRange(text, start+prev, end)
	if s < e {
		segments = append(segments, segment{start: s, end: e})
	}

	return segments
}

// trimRange shrinks [start,end) past leading and trailing whitespace without
// copying.
func trimRange(text string, start, end int) (int, int) {
	for start < end && isSpace(text[start]) {
		start++
	}
	for end > start && isSpace(text[end-1]) {
		end--
	}
	return start, end
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\v' || b == '\f'
}

// isLikelyPrivate applies the classification policy to one segment.
func (p *patternClassifier) isLikelyPrivate(text string) bool {
	for _, re := range privacyIndicators {
		if re.MatchString(text) {
			return true
		}
	}

	if introspectionScore(text) > p.introspectionThreshold {
		return true
	}

	if sensitivityScore(text) > p.sensitivityThreshold {
		return true
	}

	return false
}

// introspectionScore estimates how self-reflective a segment is from
// first-person pronouns, thinking verbs, and uncertainty markers, normalised
// by segment length. Result is in [0, 1].
func introspectionScore(text string) float64 {
	words := len(strings.Fields(text))
	if words == 0 {
		return 0
	}

	indicators := len(firstPersonRe.FindAllString(text, -1)) +
		len(thinkingVerbsRe.FindAllString(text, -1)) +
		len(uncertaintyRe.FindAllString(text, -1))

	return clamp(float64(indicators) / (float64(words) * 0.3))
}

// sensitivityScore estimates how sensitive the content is from topic
// mentions and cautionary phrases, the latter weighted double. Result is in
// [0, 1].
func sensitivityScore(text string) float64 {
	words := len(strings.Fields(text))
	if words == 0 {
		return 0
	}

	mentions := 0
	for _, re := range sensitiveTopicsRe {
		mentions += len(re.FindAllString(text, -1))
	}
	mentions += 2 * len(cautionPhrasesRe.FindAllString(text, -1))

	return clamp(float64(mentions) / (float64(words) * 0.25))
}

func clamp(v float64) float64 {
	if v > 1 {
		return 1
	}
	return v
}
