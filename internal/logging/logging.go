// Package logging builds the slog loggers used by the retrotype binary.
//
// The TUI owns the terminal, so interactive sessions log JSON to a file.
// One-shot commands log to stderr through tint.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// File opens path for appending and returns a JSON logger writing to it.
// The caller closes the returned file.
func File(path string, level slog.Leveler) (*slog.Logger, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return JSON(f, level), f, nil
}

// JSON returns a JSON logger over w with secrets redacted.
func JSON(w io.Writer, level slog.Leveler) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: redact,
	}))
}

// Console returns a colourised human logger over w.
func Console(w io.Writer, level slog.Leveler, noColor bool) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:       level,
		TimeFormat:  time.Kitchen,
		NoColor:     noColor,
		ReplaceAttr: redact,
	}))
}

func redact(_ []string, a slog.Attr) slog.Attr {
	if sensitive(a.Key) {
		a.Value = slog.StringValue("[REDACTED]")
	}
	return a
}

func sensitive(key string) bool {
	k := strings.ToLower(key)
	for _, s := range []string{"api_key", "apikey", "token", "secret", "password"} {
		if strings.Contains(k, s) {
			return true
		}
	}
	return false
}
