package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}

	for in, expected := range tests {
		assert.Equal(t, expected, ParseLevel(in), "level %q", in)
	}
}

func TestNewJSONWithSession(t *testing.T) {
	var buf bytes.Buffer
	logger := WithSession(New(&buf, Config{Level: "debug", Format: "json"}))

	logger.Debug("catheter moved", "contacting", 3)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "catheter moved", record["msg"])
	assert.Equal(t, float64(3), record["contacting"])

	_, err := uuid.Parse(record["session"].(string))
	assert.NoError(t, err)
}

func TestNewTextRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, Config{Level: "warn"})

	logger.Info("hidden")
	logger.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "")

	cfg := FromEnv(Config{Level: "info", Format: "text"})
	assert.Equal(t, "debug", cfg.Level)
	assert.Equal(t, "text", cfg.Format)
}
