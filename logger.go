// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fractal

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for fractal and its sub-packages.
// By default, fractal produces no log output.
//
// SetLogger is safe for concurrent use. Pass nil to restore the silent default.
// Strategies created through the registry receive the logger that is current
// at creation time; call SetLogger before selecting a strategy.
//
// Log levels used by fractal:
//   - [slog.LevelDebug]: per-frame diagnostics (compute time, buffer sizes)
//   - [slog.LevelInfo]: lifecycle events (strategy selected, GPU adapter)
//   - [slog.LevelWarn]: non-fatal issues (strategy fallback, screenshot failures)
//
// Example:
//
//	fractal.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by fractal.
// Sub-packages call this to share the same logger configuration.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// loggerSetter is implemented by strategies that keep their own logger.
type loggerSetter interface {
	SetLogger(*slog.Logger)
}

func propagateLogger(s Strategy, l *slog.Logger) {
	if ls, ok := s.(loggerSetter); ok {
		ls.SetLogger(l)
	}
}
