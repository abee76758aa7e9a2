package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNop_DiscardsOutput(t *testing.T) {
	log := Nop()
	require.NotNil(t, log)

	// Must not panic or write anywhere.
	log.Info().Str("k", "v").Msg("discarded")
	log.Error().Msg("also discarded")
}

func TestGetChildLogger_ReturnsIndependentLogger(t *testing.T) {
	parent := Nop()
	child := parent.GetChildLogger()

	require.NotNil(t, child)
	assert.NotSame(t, parent, child)
}

func TestFromContext_RoundTrip(t *testing.T) {
	log := Nop()
	ctx := log.WithContext(context.Background())

	got := FromContext(ctx)
	require.NotNil(t, got)
}

func TestFromContext_EmptyContextReturnsLogger(t *testing.T) {
	got := FromContext(context.Background())
	require.NotNil(t, got)

	// zerolog falls back to its global logger; calls must be safe.
	got.Debug().Msg("safe on empty context")
}
