// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !nogpu

package gpu

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discardHandler drops every record. The kernel stays silent until a
// strategy logger is installed.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return discardHandler{} }
func (discardHandler) WithGroup(string) slog.Handler             { return discardHandler{} }

// kernelLogger is shared by every MandelbrotKernel in the process.
var kernelLogger atomic.Pointer[slog.Logger]

func init() {
	kernelLogger.Store(slog.New(discardHandler{}))
}

// slogger returns the kernel logger. It carries:
//   - Info: device opened (adapter name)
//   - Debug: shared device switch, color table upload size, target
//     buffer reallocation on resize, and per-frame dispatch (frame size,
//     iteration limit, workgroup count, elapsed time including readback)
func slogger() *slog.Logger { return kernelLogger.Load() }

// setLogger installs l as the kernel logger; nil silences it again.
// MandelbrotKernel.SetLogger calls it when fractal.Get creates the strategy.
func setLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(discardHandler{})
	}
	kernelLogger.Store(l)
}
