// Package logging builds the logr.Logger used across lexi from configuration.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/zerologr"
	"github.com/rs/zerolog"

	"github.com/sghaida/lexi/internal/config"
)

// ParseLevel maps a configured level name to its slog level.
func ParseLevel(level string) (slog.Level, error) {
	switch level {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("logging: unknown level %q", level)
	}
}

// New returns a logger writing to w.
//
// json and text go through log/slog; console uses a zerolog ConsoleWriter.
// Either way, logr V(1) messages are emitted only at debug level.
func New(cfg config.Log, w io.Writer) (logr.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return logr.Discard(), err
	}

	opts := &slog.HandlerOptions{Level: level}
	switch cfg.Format {
	case "json", "":
		return logr.FromSlogHandler(slog.NewJSONHandler(w, opts)), nil
	case "text":
		return logr.FromSlogHandler(slog.NewTextHandler(w, opts)), nil
	case "console":
		return newConsole(w, level), nil
	default:
		return logr.Discard(), fmt.Errorf("logging: unknown format %q", cfg.Format)
	}
}

func init() {
	zerologr.NameFieldName = "logger"
	zerologr.NameSeparator = "/"
}

func newConsole(w io.Writer, level slog.Level) logr.Logger {
	output := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}
	zl := zerolog.New(output).Level(zerologLevel(level)).With().Timestamp().Logger()
	return zerologr.New(&zl)
}

func zerologLevel(level slog.Level) zerolog.Level {
	switch {
	case level <= slog.LevelDebug:
		return zerolog.DebugLevel
	case level <= slog.LevelInfo:
		return zerolog.InfoLevel
	case level <= slog.LevelWarn:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}
