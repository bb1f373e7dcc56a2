package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"trace":  zerolog.TraceLevel,
		"DEBUG":  zerolog.DebugLevel,
		" info ": zerolog.InfoLevel,
		"Warn":   zerolog.WarnLevel,
		"ERROR":  zerolog.ErrorLevel,
		"":       zerolog.InfoLevel,
		"loud":   zerolog.InfoLevel,
	}
	for name, want := range tests {
		assert.Equal(t, want, ParseLevel(name), name)
	}
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "INFO", true)

	logger.Debug().Msg("hidden")
	logger.Info().Str("position", "P4").Msg("projected")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "P4", entry["position"])
	assert.Equal(t, "projected", entry["message"])
	assert.Contains(t, entry, "time")
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "DEBUG", false)

	logger.Debug().Msg("visible")

	assert.Contains(t, buf.String(), "visible")
	assert.Contains(t, buf.String(), "DBG")
}
