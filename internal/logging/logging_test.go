package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want log.Level
	}{
		{"debug", log.DebugLevel},
		{"info", log.InfoLevel},
		{"", log.InfoLevel},
		{"WARN", log.WarnLevel},
		{"warning", log.WarnLevel},
		{" error ", log.ErrorLevel},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		require.NoError(t, err, "level %q", tt.in)
		assert.Equal(t, tt.want, got, "level %q", tt.in)
	}
}

func TestParseLevel_Invalid(t *testing.T) {
	_, err := ParseLevel("verbose")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"verbose"`)
}

func TestNewHandler_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, log.WarnLevel))

	logger.Info("hidden")
	logger.Warn("store slow", "task_id", 7)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "store slow")
	assert.Contains(t, out, "task_id=7")
}

func TestInit_WritesLogFile(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() {
		slog.SetDefault(prev)
		Logger = prev
	})

	dir := filepath.Join(t.TempDir(), "logs")
	require.NoError(t, Init(dir, "debug"))

	slog.Debug("task added", "task_id", 1)

	data, err := os.ReadFile(filepath.Join(dir, LogFile))
	require.NoError(t, err)
	assert.Contains(t, string(data), "task added")
}

func TestInit_RejectsBadLevel(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	require.Error(t, Init(dir, "loud"))

	_, err := os.Stat(dir)
	assert.True(t, os.IsNotExist(err), "no directory should be created for a bad level")
}
