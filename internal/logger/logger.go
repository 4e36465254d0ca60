// SPDX-License-Identifier: MIT
// Package logger builds the slog logger used by wgraph.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config mirrors config.LogConfig without importing it.
type Config struct {
	Level      string // debug, info, warn, error
	Format     string // auto, json, text
	Output     string // stderr, stdout, file
	FilePath   string
	MaxSize    int // MB
	MaxBackups int
	MaxAge     int // days
	Compress   bool

	// Writer, when set, replaces Output. Used by tests.
	Writer io.Writer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New builds a logger and returns the closer for its sink (a no-op for
// stdout/stderr).
func New(cfg Config) (*slog.Logger, io.Closer, error) {
	lvl, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}

	var (
		writer io.Writer
		closer io.Closer = nopCloser{}
	)
	switch {
	case cfg.Writer != nil:
		writer = cfg.Writer
	case cfg.Output == "stdout":
		writer = os.Stdout
	case cfg.Output == "file":
		if cfg.FilePath == "" {
			return nil, nil, fmt.Errorf("logger: file output needs a path")
		}
		if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0o755); err != nil {
			return nil, nil, fmt.Errorf("logger: %w", err)
		}
		lj := &lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		}
		writer, closer = lj, lj
	default:
		writer = os.Stderr
	}

	opts := &slog.HandlerOptions{
		Level:     lvl,
		AddSource: lvl == slog.LevelDebug,
	}

	var handler slog.Handler
	if useText(cfg.Format, writer) {
		handler = slog.NewTextHandler(writer, opts)
	} else {
		handler = slog.NewJSONHandler(writer, opts)
	}

	return slog.New(handler), closer, nil
}

// ParseLevel maps debug/info/warn/error (any case) to a slog.Level.
// Empty means info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("logger: unknown level %q", s)
	}
}

// useText picks the handler: text for "text", JSON for "json", and for
// "auto" text on an interactive terminal and JSON otherwise.
func useText(format string, w io.Writer) bool {
	switch format {
	case "text":
		return true
	case "json":
		return false
	}

	return IsTerminal(w)
}

// IsTerminal reports whether w is an *os.File attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// WithRunID tags l with a fresh run_id and returns it.
func WithRunID(l *slog.Logger) (*slog.Logger, string) {
	id := uuid.NewString()

	return l.With("run_id", id), id
}
