package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rickgao/coinboard/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"":      slog.LevelInfo,
		"WARN":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("trace")
	assert.Error(t, err)
}

func TestNewHandlerFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(newHandler(&buf, "json", slog.LevelInfo))
	logger.Debug("hidden")
	logger.Info("fetch complete", "rows", 10)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "fetch complete", rec["msg"])
	assert.Equal(t, float64(10), rec["rows"])
}

func TestNewWithFile(t *testing.T) {
	cfg := config.Default().Logging
	cfg.File = filepath.Join(t.TempDir(), "logs", "coinboard.log")

	logger, closer, err := New(cfg)
	require.NoError(t, err)
	defer closer.Close()

	logger.Info("hello file")

	data, err := os.ReadFile(cfg.File)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello file")
}

func TestNewRejectsBadLevel(t *testing.T) {
	cfg := config.Default().Logging
	cfg.Level = "loud"

	_, _, err := New(cfg)
	assert.Error(t, err)
}
