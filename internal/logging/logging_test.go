package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/hance08/tally/internal/config"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]pterm.LogLevel{
		"":      pterm.LogLevelInfo,
		"DEBUG": pterm.LogLevelDebug,
		"warn":  pterm.LogLevelWarn,
		"error": pterm.LogLevelError,
		"off":   pterm.LogLevelDisabled,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestJSONLoggerWritesStructuredLines(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(config.LogConfig{Level: "info", Format: "json"}, &buf)
	require.NoError(t, err)

	logger.Info("transfer completed", logger.Args("tx", "tx-1"))
	logger.Debug("hidden")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "transfer completed", entry["msg"])
	assert.Equal(t, "tx-1", entry["tx"])
}

func TestUnknownFormat(t *testing.T) {
	_, err := New(config.LogConfig{Format: "xml"}, &bytes.Buffer{})
	assert.Error(t, err)
}
