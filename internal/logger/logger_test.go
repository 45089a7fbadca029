package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/natefinch/lumberjack.v2"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"WARNING", slog.LevelWarn},
		{"warn", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"invalid", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLevel(tt.input))
		})
	}
}

func TestNew_ConsoleText(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Level = "INFO"
	l, c := New(cfg, &buf)
	defer c.Close()

	l.Debug("hidden")
	l.Info("solved", "side", 3)
	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=solved")
	assert.Contains(t, out, "side=3")
}

func TestNew_ConsoleJSON(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.ConsoleFormat = "json"
	l, _ := New(cfg, &buf)

	l.Warn("budget", "states", 42)
	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "budget", rec["msg"])
	assert.Equal(t, float64(42), rec["states"])
}

func TestNew_FileAndConsole(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "jigsaw.log")
	cfg := DefaultConfig()
	cfg.Level = "DEBUG"
	cfg.FileEnabled = true
	cfg.FilePath = path
	l, c := New(cfg, &buf)
	_, ok := l.Handler().(*multiHandler)
	assert.True(t, ok)

	l.With("stage", "border").Debug("ring closed")
	require.NoError(t, c.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "stage=border")
	assert.Contains(t, buf.String(), "msg=\"ring closed\"")
}

func TestNew_NoHandlers(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ConsoleEnabled = false
	l, _ := New(cfg, nil)
	assert.False(t, l.Enabled(context.Background(), slog.LevelError))
}

func TestInitialize(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Level = "ERROR"
	require.NoError(t, Initialize(cfg))
	defer func() { assert.NoError(t, Close()) }()

	assert.True(t, Logger().Enabled(context.Background(), slog.LevelError))
	assert.False(t, Logger().Enabled(context.Background(), slog.LevelWarn))
}

type countingCloser struct{ closed int }

func (c *countingCloser) Close() error {
	c.closed++
	return nil
}

func TestInitialize_ReleasesPrevious(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.ConsoleEnabled = false
	cfg.FileEnabled = true

	earlier := &countingCloser{}
	closer = earlier
	cfg.FilePath = filepath.Join(dir, "first.log")
	require.NoError(t, Initialize(cfg))
	assert.Equal(t, 1, earlier.closed)

	first, ok := closer.(*lumberjack.Logger)
	require.True(t, ok)
	Logger().Warn("first")

	cfg.FilePath = filepath.Join(dir, "second.log")
	require.NoError(t, Initialize(cfg))
	second, ok := closer.(*lumberjack.Logger)
	require.True(t, ok)
	assert.NotSame(t, first, second)
	assert.Equal(t, cfg.FilePath, second.Filename)
	Logger().Warn("second")

	require.NoError(t, Close())
	assert.IsType(t, nopCloser{}, closer)
	assert.False(t, Logger().Enabled(context.Background(), slog.LevelError))

	data, err := os.ReadFile(filepath.Join(dir, "first.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=first")
	assert.NotContains(t, string(data), "msg=second")
}

func TestMultiHandler_Enabled(t *testing.T) {
	var a, b bytes.Buffer
	h := newMultiHandler(
		slog.NewTextHandler(&a, &slog.HandlerOptions{Level: slog.LevelError}),
		slog.NewTextHandler(&b, &slog.HandlerOptions{Level: slog.LevelDebug}),
	)
	l := slog.New(h.WithGroup("search"))
	l.Info("expanded", "n", 1)

	assert.Empty(t, a.String())
	assert.True(t, strings.Contains(b.String(), "search.n=1"))
}
