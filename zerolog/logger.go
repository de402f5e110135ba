// Package zerolog implements logging using the zerolog library.
package zerolog

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/fwojciec/gitcmd"
)

// Compile-time interface verification.
var _ gitcmd.Logger = (*Logger)(nil)

// Logger adapts a zerolog.Logger to the gitcmd.Logger interface.
type Logger struct {
	log zerolog.Logger
}

// New creates a Logger writing structured lines to w at the given level.
// Unknown level names fall back to info.
func New(w io.Writer, level string) *Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return &Logger{log: zerolog.New(w).Level(lvl).With().Timestamp().Logger()}
}

// NewConsole creates a Logger with human-readable console output.
func NewConsole(w io.Writer, level string) *Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	out := zerolog.ConsoleWriter{Out: w}
	return &Logger{log: zerolog.New(out).Level(lvl).With().Timestamp().Logger()}
}

func (l *Logger) Debugf(format string, args ...any) {
	l.log.Debug().Msgf(format, args...)
}

func (l *Logger) Warnf(format string, args ...any) {
	l.log.Warn().Msgf(format, args...)
}

func (l *Logger) Errorf(format string, args ...any) {
	l.log.Error().Msgf(format, args...)
}
