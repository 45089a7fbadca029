// Package logger builds the process logger: log/slog handlers for the
// console and an optional size-rotated file.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// levelOff is above every level slog defines.
const levelOff = slog.Level(127)

var (
	logger *slog.Logger = discard()
	closer io.Closer    = nopCloser{}
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: levelOff}))
}

// New builds a logger from config. Console output goes to console
// (os.Stderr when nil). The returned closer releases the log file, if any.
func New(config Config, console io.Writer) (*slog.Logger, io.Closer) {
	var handlers []slog.Handler
	opts := &slog.HandlerOptions{Level: ParseLevel(config.Level)}

	if config.ConsoleEnabled {
		if console == nil {
			console = os.Stderr
		}
		handlers = append(handlers, newHandler(console, config.ConsoleFormat, opts))
	}

	var closer io.Closer = nopCloser{}
	if config.FileEnabled && config.FilePath != "" {
		file := &lumberjack.Logger{
			Filename:   config.FilePath,
			MaxSize:    config.FileMaxSizeMB,
			MaxBackups: config.FileMaxBackups,
			MaxAge:     config.FileMaxAgeDays,
		}
		handlers = append(handlers, newHandler(file, config.FileFormat, opts))
		closer = file
	}

	switch len(handlers) {
	case 0:
		return discard(), closer
	case 1:
		return slog.New(handlers[0]), closer
	default:
		return slog.New(newMultiHandler(handlers...)), closer
	}
}

// Initialize installs the process logger built from config. A logger
// installed earlier is replaced and its file released; the error is from
// that release.
func Initialize(config Config) error {
	l, c := New(config, nil)
	prev := closer
	logger, closer = l, c

	return prev.Close()
}

// Logger returns the process logger. Before Initialize it discards everything.
func Logger() *slog.Logger { return logger }

// Close releases the file opened by the last Initialize and reverts to the
// discarding logger.
func Close() error {
	prev := closer
	logger, closer = discard(), nopCloser{}

	return prev.Close()
}

// ParseLevel converts a level name (case-insensitive) to slog.Level.
// Unknown names map to INFO.
func ParseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARNING", "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func newHandler(w io.Writer, format string, opts *slog.HandlerOptions) slog.Handler {
	if format == "json" {
		return slog.NewJSONHandler(w, opts)
	}

	return slog.NewTextHandler(w, opts)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// multiHandler fans records out to several handlers.
type multiHandler struct {
	handlers []slog.Handler
}

func newMultiHandler(handlers ...slog.Handler) *multiHandler {
	return &multiHandler{handlers: handlers}
}

// Enabled reports whether any handler accepts level.
func (h *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

// Handle passes r to every handler that accepts its level.
func (h *multiHandler) Handle(ctx context.Context, r slog.Record) error {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, r.Level) {
			if err := handler.Handle(ctx, r.Clone()); err != nil {
				return err
			}
		}
	}
	return nil
}

func (h *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		handlers[i] = handler.WithAttrs(attrs)
	}
	return newMultiHandler(handlers...)
}

func (h *multiHandler) WithGroup(name string) slog.Handler {
	handlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		handlers[i] = handler.WithGroup(name)
	}
	return newMultiHandler(handlers...)
}
