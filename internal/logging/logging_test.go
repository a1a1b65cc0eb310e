package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  zerolog.Level
	}{
		{name: "debug", level: "debug", want: zerolog.DebugLevel},
		{name: "warn", level: "warn", want: zerolog.WarnLevel},
		{name: "empty defaults to info", level: "", want: zerolog.InfoLevel},
		{name: "garbage defaults to info", level: "loud", want: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := New(Config{Level: tt.level})
			assert.Equal(t, tt.want, logger.GetLevel())
		})
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "info", Format: "json", Output: &buf})

	logger.Info().Str("event", "loaded").Msg("reference data")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "loaded", entry["event"])
	assert.Equal(t, "reference data", entry["message"])
	assert.NotEmpty(t, entry["time"])
}

func TestComponentLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := ComponentLogger(New(Config{Format: "json", Output: &buf}), "session")

	logger.Info().Msg("started")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "session", entry["component"])
}

func TestFromContextWithoutLogger(t *testing.T) {
	logger := FromContext(context.Background())

	require.NotNil(t, logger)
	// Safe to log into the void.
	logger.Info().Msg("dropped")
}

func TestTraceIDRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Format: "json", Output: &buf})
	ctx := logger.WithContext(context.Background())

	id := NewTraceID()
	require.Len(t, id, 26, "ULIDs encode to 26 characters")

	ctx = ContextWithTraceID(ctx, id)
	assert.Equal(t, id, TraceIDFromContext(ctx))
	assert.Equal(t, id, GetOrGenerateTraceID(ctx))

	// The context logger carries the trace ID on every event.
	FromContext(ctx).Info().Msg("calc started")
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, id, entry["trace_id"])
}

func TestGetOrGenerateTraceID(t *testing.T) {
	id := GetOrGenerateTraceID(context.Background())
	assert.Len(t, id, 26)

	other := GetOrGenerateTraceID(context.Background())
	assert.NotEqual(t, id, other)
}
