// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fractal

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"time"
)

// ErrTerminated is returned by Step after the loop has terminated.
var ErrTerminated = errors.New("fractal: render loop terminated")

// State is the render loop state.
type State int

const (
	// StateRunning is the state while frames are being produced.
	StateRunning State = iota

	// StateTerminated is the state after a quit signal.
	StateTerminated
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateTerminated:
		return "terminated"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Presenter displays frames.
//
// Present may only read f for the duration of the call; the loop reuses the
// frame on the next tick. Implementations copy what they keep.
type Presenter interface {
	// Clear resets the presentation target before a tick.
	Clear()

	// Present displays f.
	Present(f *Frame) error
}

// Stats describes the most recent tick.
type Stats struct {
	Frames   uint64
	FPS      float64
	Delta    time.Duration
	Strategy string
	Viewport Viewport
}

// Loop ties input, viewport, strategy and presentation together once per tick.
//
// Each Step runs, in order: clear, controller update, compute, HUD, present,
// screenshot trigger, quit poll, clock tick. There is no frame cap and no
// frame skipping. Loop is single-threaded; the only concurrency is inside
// the strategy's Compute.
type Loop struct {
	strategy   Strategy
	table      *ColorTable
	presenter  Presenter
	input      InputSource
	controller *Controller
	clock      Clock
	shots      *Screenshotter
	hud        func(*Frame, Stats)

	viewport Viewport
	frame    *Frame
	state    State

	delta    time.Duration
	frames   uint64
	fps      fpsMeter
	lastShot bool
}

// NewLoop creates a render loop producing width x height frames.
// The viewport starts at DefaultViewport(width, height) unless WithViewport
// is given.
func NewLoop(width, height int, s Strategy, table *ColorTable, p Presenter, in InputSource, opts ...LoopOption) (*Loop, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrFrameSize
	}
	if s == nil {
		return nil, ErrNoStrategy
	}
	if table == nil {
		return nil, ErrNilColorTable
	}
	if p == nil || in == nil {
		return nil, errors.New("fractal: loop requires a presenter and an input source")
	}

	o := defaultLoopOptions(width, height)
	for _, opt := range opts {
		opt(&o)
	}
	o.viewport.Clamp()

	return &Loop{
		strategy:   s,
		table:      table,
		presenter:  p,
		input:      in,
		controller: o.controller,
		clock:      o.clock,
		shots:      o.screenshotter,
		hud:        o.hud,
		viewport:   o.viewport,
		frame:      NewFrame(width, height),
		state:      StateRunning,
	}, nil
}

// State returns the current loop state.
func (l *Loop) State() State {
	return l.state
}

// Viewport returns a copy of the current viewport.
func (l *Loop) Viewport() Viewport {
	return l.viewport
}

// Frame returns the frame produced by the most recent Step.
// It is overwritten by the next Step.
func (l *Loop) Frame() *Frame {
	return l.frame
}

// FPS returns the frame rate averaged over the last ten ticks.
func (l *Loop) FPS() float64 {
	return l.fps.fps()
}

// Stats returns statistics for the most recent tick.
func (l *Loop) Stats() Stats {
	return Stats{
		Frames:   l.frames,
		FPS:      l.fps.fps(),
		Delta:    l.delta,
		Strategy: l.strategy.Name(),
		Viewport: l.viewport,
	}
}

// Resize changes the frame dimensions for subsequent ticks.
func (l *Loop) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return ErrFrameSize
	}
	if width != l.frame.Width() || height != l.frame.Height() {
		l.frame.Resize(width, height)
		Logger().Debug("render loop resized", "width", width, "height", height)
	}
	return nil
}

// Terminate moves the loop to StateTerminated.
func (l *Loop) Terminate() {
	l.state = StateTerminated
}

// Step runs one tick. Compute errors are returned and leave the loop
// running; presentation and screenshot errors are logged.
func (l *Loop) Step() error {
	if l.state == StateTerminated {
		return ErrTerminated
	}

	l.presenter.Clear()

	in := l.input.Poll()
	l.controller.Update(in, l.delta.Seconds(), &l.viewport)

	start := time.Now()
	if err := l.strategy.Compute(l.frame, l.viewport, l.table); err != nil {
		return fmt.Errorf("fractal: compute frame %d: %w", l.frames, err)
	}
	Logger().Debug("frame computed",
		"frame", l.frames, "strategy", l.strategy.Name(),
		"maxIter", l.viewport.MaxIter, "elapsed", time.Since(start))

	if l.hud != nil {
		l.hud(l.frame, l.Stats())
	}

	if err := l.presenter.Present(l.frame); err != nil {
		Logger().Warn("present failed", "frame", l.frames, "err", err)
	}

	shot := in.Pressed(Screenshot)
	if shot && !l.lastShot && l.shots != nil {
		if path, err := l.shots.Save(l.frame); err != nil {
			Logger().Warn("screenshot failed", "err", err)
		} else {
			Logger().Info("screenshot saved", "path", path)
		}
	}
	l.lastShot = shot

	if in.Pressed(Quit) {
		l.state = StateTerminated
	}

	l.delta = l.clock.Tick()
	if l.delta > 0 {
		l.fps.add(l.delta)
	}
	l.frames++
	return nil
}

// Run calls Step until the loop terminates, Step fails or ctx is done.
// It returns nil on a normal quit.
func (l *Loop) Run(ctx context.Context) error {
	for l.state == StateRunning {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := l.Step(); err != nil {
			return err
		}
	}
	return nil
}

// ClearPresenter is a Presenter helper that fills a frame target with black.
type ClearPresenter struct {
	Target *Frame
}

// Clear fills the target with opaque black.
func (p ClearPresenter) Clear() {
	if p.Target != nil {
		p.Target.Clear(color.RGBA{A: 255})
	}
}

// Present copies f into the target.
func (p ClearPresenter) Present(f *Frame) error {
	if p.Target == nil {
		return errors.New("fractal: nil presenter target")
	}
	p.Target.CopyFrom(f)
	return nil
}
