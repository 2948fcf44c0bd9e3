// Package log is a small leveled logger over log/slog.
//
// Output defaults to stderr so it never interleaves with the animation on
// stdout. The TUI points it at a file or discards it entirely.
package log

import (
	"io"
	"log/slog"
	"os"
	"sync/atomic"
)

var (
	level  slog.LevelVar
	logger atomic.Pointer[slog.Logger]
)

func init() {
	Init(os.Stderr, false)
}

// Init replaces the global logger. verbose enables debug output.
func Init(w io.Writer, verbose bool) {
	if verbose {
		level.Set(slog.LevelDebug)
	} else {
		level.Set(slog.LevelInfo)
	}
	logger.Store(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: &level})))
}

// Discard drops all output.
func Discard() { Init(io.Discard, false) }

func Logger() *slog.Logger { return logger.Load() }

func Debug(msg string, args ...any) { logger.Load().Debug(msg, args...) }
func Info(msg string, args ...any)  { logger.Load().Info(msg, args...) }
func Warn(msg string, args ...any)  { logger.Load().Warn(msg, args...) }
func Error(msg string, args ...any) { logger.Load().Error(msg, args...) }
