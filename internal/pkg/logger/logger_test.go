package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestNewTo_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := newTo(&buf, Config{Level: "warn", Format: "json"})

	log.Info("skipped")
	log.Warn("cache get failed", "key", "catalog")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "cache get failed", rec["msg"])
	assert.Equal(t, "catalog", rec["key"])
}

func TestNewTo_Text(t *testing.T) {
	var buf bytes.Buffer
	log := newTo(&buf, Config{Level: "debug"})
	log.Debug("cache stored", "key", "top_coins:usd:100")
	assert.Contains(t, buf.String(), "key=top_coins:usd:100")
}
