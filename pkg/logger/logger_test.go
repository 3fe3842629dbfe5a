package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

func TestLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewWithWriter(&buf, "warn")
	require.NoError(t, err)

	log.Info("booking %d created", 1)
	log.Warn("slot %s unavailable", "09:00")
	log.Error("store failed: %v", assert.AnError)

	out := buf.String()
	assert.NotContains(t, out, "booking 1 created")
	assert.Contains(t, out, "[WARN] slot 09:00 unavailable")
	assert.Contains(t, out, "[ERROR] store failed")
}

func TestLogger_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")

	log, err := New(path, "debug")
	require.NoError(t, err)

	log.Debug("resolver produced %d slots", 11)
	require.NoError(t, log.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[DEBUG] resolver produced 11 slots")
}

func TestLogger_Fatal(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewWithWriter(&buf, "info")
	require.NoError(t, err)

	var code int
	log.exit = func(c int) { code = c }

	log.Fatal("cannot start: %s", "port busy")

	assert.Equal(t, 1, code)
	assert.Contains(t, buf.String(), "[FATAL] cannot start: port busy")
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("WARNING")
	require.NoError(t, err)
	assert.Equal(t, LevelWarn, lvl)

	_, err = ParseLevel("verbose")
	assert.ErrorIs(t, err, ErrUnknownLevel)
}
