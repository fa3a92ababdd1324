// Package logging builds the colorized slog logger used by wpproject.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"
	"github.com/pirakansa/wpproject/internal/cli/shared"
)

// ParseLevel maps a textual level to a slog.Level, defaulting to info.
func ParseLevel(value string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger returns a tint-backed logger writing to w, or stderr when w is nil.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:   level,
		NoColor: !shared.IsTerminal(w),
	}))
}
