package simlog

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

// Logger is the structured-logging surface this module depends on.
// engine.Run logs one line per finished pass at Info and per-tick counts
// at Debug; it returns errors to its caller without logging them.
type Logger interface {
	Info(msg string)
	Infof(format string, args ...any)
	Debugf(format string, args ...any)
	Error(msg string, err error)
}

type zerologLogger struct {
	zl zerolog.Logger
}

// New wraps a zerolog.Logger writing JSON lines to w at the given level.
func New(w io.Writer, level zerolog.Level) Logger {
	zl := zerolog.New(w).With().Timestamp().Logger().Level(level)
	return &zerologLogger{zl: zl}
}

// Nop returns a Logger that discards everything, for tests and callers
// with no interest in run diagnostics.
func Nop() Logger {
	return &zerologLogger{zl: zerolog.Nop()}
}

func (l *zerologLogger) Info(msg string) { l.zl.Info().Msg(msg) }

func (l *zerologLogger) Infof(format string, args ...any) {
	l.zl.Info().Msg(fmt.Sprintf(format, args...))
}

func (l *zerologLogger) Debugf(format string, args ...any) {
	l.zl.Debug().Msg(fmt.Sprintf(format, args...))
}

func (l *zerologLogger) Error(msg string, err error) {
	l.zl.Error().Err(err).Msg(msg)
}
