package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/treeboard/pkg/utils/logging"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			gt.Equal(t, logging.ParseLogLevel(tt.input), tt.expected)
		})
	}
}

func TestParseFormat(t *testing.T) {
	f, err := logging.ParseFormat("json")
	gt.NoError(t, err)
	gt.Equal(t, f, logging.FormatJSON)

	f, err = logging.ParseFormat("")
	gt.NoError(t, err)
	gt.Equal(t, f, logging.FormatAuto)

	_, err = logging.ParseFormat("xml")
	gt.Error(t, err)
}

func TestNewLoggerWithFormat_AutoUsesJSONForBuffers(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewLogger(slog.LevelInfo, &buf)

	logger.Debug("hidden")
	logger.Info("Species list loaded", "count", 132)

	var entry map[string]any
	gt.NoError(t, json.Unmarshal(buf.Bytes(), &entry)).Required()
	gt.Equal(t, entry["msg"], any("Species list loaded"))
	gt.Equal(t, entry["count"], any(float64(132)))
}

func TestNewLoggerWithFormat_Console(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewLoggerWithFormat(slog.LevelDebug, &buf, logging.FormatConsole)
	logger.Debug("Querying tree census", "query", "species")

	gt.S(t, buf.String()).Contains("Querying tree census")
}
