// Package logging configures colored structured logging with tint.
//
// Usage:
//
//	logging.Setup(os.Stderr)                             // level from LOG_LEVEL env
//	logging.SetupWithLevel(f, slog.LevelDebug, true)     // explicit level, no color
//
// Environment variables:
//
//	LOG_LEVEL: debug, info, warn, error (default: info)
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Setup configures colored logging on w at the level specified by the
// LOG_LEVEL env var (default: INFO).
func Setup(w io.Writer) {
	SetupWithLevel(w, ParseLevel(os.Getenv("LOG_LEVEL")), false)
}

// SetupWithLevel configures logging on w at the given level. Color escapes are
// dropped when noColor is set, which is what you want for log files.
func SetupWithLevel(w io.Writer, level slog.Level, noColor bool) {
	slog.SetDefault(slog.New(NewHandler(w, level, noColor)))
}

// NewHandler returns the tint handler used by SetupWithLevel.
func NewHandler(w io.Writer, level slog.Level, noColor bool) slog.Handler {
	return tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		AddSource:  true,
		NoColor:    noColor,
	})
}

// ParseLevel maps debug, info, warn and error (any case) to a slog level.
// Anything else is INFO.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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

// ValidLevel reports whether s names a level ParseLevel understands.
// The empty string is valid and means INFO.
func ValidLevel(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "debug", "info", "warn", "warning", "error":
		return true
	}
	return false
}
