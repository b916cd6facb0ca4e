package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]LogLevel{
		"debug":   LevelDebug,
		"info":    LevelInfo,
		"warn":    LevelWarn,
		"warning": LevelWarn,
		"error":   LevelError,
		"ERROR":   LevelError,
	}

	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseLevel("chatty")
	assert.Error(t, err)
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "DEBUG", LevelDebug.String())
	assert.Equal(t, "INFO", LevelInfo.String())
	assert.Equal(t, "WARN", LevelWarn.String())
	assert.Equal(t, "ERROR", LevelError.String())
}

func TestLogger_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&LoggerConfig{
		Level:     LevelDebug,
		Format:    "json",
		Output:    &buf,
		Component: "engine",
	})

	logger.Info(context.Background(), "node inserted", "value", 42)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "node inserted", entry["msg"])
	assert.Equal(t, "engine", entry["component"])
	assert.Equal(t, float64(42), entry["value"])
}

func TestLogger_ErrorFieldIncluded(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&LoggerConfig{Level: LevelDebug, Format: "json", Output: &buf})

	logger.Error(context.Background(), errors.New("broken chain"), "operation failed")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "broken chain", entry["error"])
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&LoggerConfig{Level: LevelError, Format: "text", Output: &buf})

	ctx := context.Background()
	logger.Debug(ctx, "debug message")
	logger.Info(ctx, "info message")
	logger.Warn(ctx, nil, "warn message")

	assert.Zero(t, buf.Len())

	logger.Error(ctx, nil, "error message")
	assert.Contains(t, buf.String(), "error message")
}

func TestLogger_WithFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&LoggerConfig{Level: LevelDebug, Format: "json", Output: &buf})

	child := logger.With("list", "demo").With("step", 3)
	child.Info(context.Background(), "step completed")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "demo", entry["list"])
	assert.Equal(t, float64(3), entry["step"])
}

func TestLogger_WithComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&LoggerConfig{Level: LevelDebug, Format: "json", Output: &buf})

	logger.WithComponent("watcher").Info(context.Background(), "started")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "watcher", entry["component"])
}

func TestOpTimer(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&LoggerConfig{Level: LevelDebug, Format: "json", Output: &buf})

	timer := logger.StartOperation("insert-sorted")
	timer.End(context.Background())

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "insert-sorted", entry["operation"])
	assert.Contains(t, entry, "duration_ms")
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, LevelInfo, cfg.Level)
	assert.Equal(t, "text", cfg.Format)

	// Nil config falls back to defaults
	assert.NotNil(t, NewLogger(nil))
}
