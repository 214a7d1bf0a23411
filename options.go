// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fractal

// LoopOption configures a Loop during creation.
//
// Example:
//
//	loop, err := fractal.NewLoop(800, 450, s, table, presenter, input,
//	    fractal.WithScreenshotter(fractal.NewScreenshotter("shots")))
type LoopOption func(*loopOptions)

type loopOptions struct {
	viewport      Viewport
	controller    *Controller
	clock         Clock
	screenshotter *Screenshotter
	hud           func(*Frame, Stats)
}

func defaultLoopOptions(width, height int) loopOptions {
	return loopOptions{
		viewport:   DefaultViewport(width, height),
		controller: NewController(),
		clock:      &SystemClock{},
	}
}

// WithViewport sets the starting viewport. It is clamped before use.
func WithViewport(vp Viewport) LoopOption {
	return func(o *loopOptions) {
		o.viewport = vp
	}
}

// WithController replaces the default controller.
func WithController(c *Controller) LoopOption {
	return func(o *loopOptions) {
		if c != nil {
			o.controller = c
		}
	}
}

// WithClock replaces the system clock, typically with a fake in tests.
func WithClock(c Clock) LoopOption {
	return func(o *loopOptions) {
		if c != nil {
			o.clock = c
		}
	}
}

// WithScreenshotter enables the Screenshot action.
// Without it, screenshot requests are ignored.
func WithScreenshotter(s *Screenshotter) LoopOption {
	return func(o *loopOptions) {
		o.screenshotter = s
	}
}

// WithHUD installs a function that draws over each computed frame before it
// is presented.
func WithHUD(draw func(*Frame, Stats)) LoopOption {
	return func(o *loopOptions) {
		o.hud = draw
	}
}
