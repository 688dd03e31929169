package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/rs/zerolog"
)

// Supported output formats.
const (
	FormatJSON    = "json"
	FormatText    = "text"
	FormatConsole = "console"
)

// New builds a Logger writing to w. "console" gives a human-friendly zerolog
// writer, "text" a slog text handler, anything else slog JSON.
func New(w io.Writer, format, level string) Logger {
	switch strings.ToLower(format) {
	case FormatConsole:
		zl := zerolog.New(zerolog.ConsoleWriter{Out: w}).
			Level(ParseZerologLevel(level)).
			With().Timestamp().Logger()
		return NewZerologLogger(zl)
	case FormatText:
		h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)})
		return NewSlogLogger(slog.New(h))
	default:
		h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)})
		return NewSlogLogger(slog.New(h))
	}
}

// ParseLevel converts a level name to slog.Level. Unknown names map to Info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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

// ParseZerologLevel is ParseLevel for zerolog.
func ParseZerologLevel(level string) zerolog.Level {
	switch ParseLevel(level) {
	case slog.LevelDebug:
		return zerolog.DebugLevel
	case slog.LevelWarn:
		return zerolog.WarnLevel
	case slog.LevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
