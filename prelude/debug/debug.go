// Package debug provides tracing functions for inspecting values inside
// expressions.
//
// Each function logs through a zap logger at debug level and returns its
// argument unchanged:
//
//	total := fold.Sum(debug.TraceShow(xs))
package debug

import (
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/lguimbarda/min-prelude/prelude/text"
)

var logger atomic.Pointer[zap.Logger]

func init() {
	logger.Store(NewLogger())
}

// Logger returns the logger used by the trace functions.
func Logger() *zap.Logger {
	return logger.Load()
}

// SetLogger replaces the trace logger and returns a function that restores
// the previous one. A nil logger silences tracing. Each trace function logs
// directly, so a logger built with zap.AddCallerSkip(1) reports the line
// that called it.
func SetLogger(l *zap.Logger) (restore func()) {
	if l == nil {
		l = zap.NewNop()
	}
	prev := logger.Swap(l)
	return func() { logger.Store(prev) }
}

// Trace logs msg and returns x.
func Trace[T any](msg string, x T) T {
	Logger().Debug(msg)
	return x
}

// Tracef logs a formatted message and returns x.
func Tracef[T any](x T, format string, args ...any) T {
	if l := Logger(); l.Core().Enabled(zap.DebugLevel) {
		l.Debug(fmt.Sprintf(format, args...))
	}
	return x
}

// TraceShow logs the shown form of x and returns x. Values that cannot be
// shown as JSON are logged with %v.
func TraceShow[T any](x T) T {
	if l := Logger(); l.Core().Enabled(zap.DebugLevel) {
		l.Debug(show(x))
	}
	return x
}

// TraceWith logs f(x) and returns x. f is only called when debug logging
// is enabled.
func TraceWith[T any](f func(T) string, x T) T {
	if l := Logger(); l.Core().Enabled(zap.DebugLevel) {
		l.Debug(f(x))
	}
	return x
}

func show[T any](x T) string {
	s, err := text.Show(x)
	if err != nil {
		return fmt.Sprintf("%v", x)
	}
	return s
}
