// Package logging provides the diagnostic logging capability consumed by the
// toodle boundary. Tracing is fire-and-forget: nothing in the library depends
// on a log call for correctness, and the no-op sink is always a valid choice.
package logging

import "log/slog"

// Logger is the subset of slog functionality the boundary uses. The
// interface is intentionally small so applications can swap in their own
// sink (a platform logcat bridge, a test recorder) without adapters.
type Logger interface {
	Debug(msg string, args ...any)
	Error(msg string, args ...any)
	With(args ...any) Logger
}

// New returns a Logger backed by the provided slog.Logger. Passing nil binds
// to slog.Default().
func New(logger *slog.Logger) Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return &slogLogger{logger: logger}
}

// Discard returns a Logger that drops everything.
func Discard() Logger {
	return nopLogger{}
}

type slogLogger struct {
	logger *slog.Logger
}

func (l *slogLogger) Debug(msg string, args ...any) {
	l.logger.Debug(msg, args...)
}

func (l *slogLogger) Error(msg string, args ...any) {
	l.logger.Error(msg, args...)
}

func (l *slogLogger) With(args ...any) Logger {
	return &slogLogger{logger: l.logger.With(args...)}
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Error(string, ...any) {}

func (l nopLogger) With(...any) Logger { return l }
