package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/PedroCamargo-dev/transfers-client/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONFormatterAndLevel(t *testing.T) {
	var buf bytes.Buffer

	l, err := logger.New(&buf, logger.Options{Level: "warn", Format: "json"})
	require.NoError(t, err)

	l.Info("dropped")
	l.Warn("kept", "transfer_id", "t_1")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "kept", entry["msg"])
	assert.Equal(t, "t_1", entry["transfer_id"])
}

func TestNew_TextFormatterWithPrefix(t *testing.T) {
	var buf bytes.Buffer

	l, err := logger.New(&buf, logger.Options{Level: "debug", Prefix: "sandbox"})
	require.NoError(t, err)

	l.Debug("listening", "addr", ":8080")

	assert.Contains(t, buf.String(), "sandbox")
	assert.Contains(t, buf.String(), "listening")
	assert.Contains(t, buf.String(), "addr=:8080")
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := logger.New(&bytes.Buffer{}, logger.Options{Level: "loud"})
	assert.Error(t, err)
}
