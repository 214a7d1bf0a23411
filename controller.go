// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fractal

// Controller applies held input to a Viewport once per tick.
//
// Pan moves the offset by Velocity*dt pixels per held direction. Zoom in
// multiplies both Zoom and Velocity by Scale; zoom out multiplies both by
// 2-Scale. The two factors are not reciprocal, so zooming in and back out for
// the same number of ticks does not restore the exact zoom. The iteration
// limit moves by one per tick. Zoom, Velocity and MaxIter are re-clamped every
// tick, so held zoom keys stop at MinZoom or MaxZoom.
//
// Update never blocks and has no side effects beyond the viewport.
type Controller struct{}

// NewController creates a controller.
func NewController() *Controller {
	return &Controller{}
}

// Update applies in to vp. dt is the previous frame time in seconds.
func (c *Controller) Update(in Input, dt float64, vp *Viewport) {
	if in == nil || vp == nil {
		return
	}
	if dt < 0 {
		dt = 0
	}

	d := vp.Velocity * dt
	if in.Pressed(PanLeft) {
		vp.Offset.X += d
	}
	if in.Pressed(PanRight) {
		vp.Offset.X -= d
	}
	if in.Pressed(PanUp) {
		vp.Offset.Y += d
	}
	if in.Pressed(PanDown) {
		vp.Offset.Y -= d
	}

	if in.Pressed(ZoomIn) {
		vp.Zoom *= vp.Scale
		vp.Velocity *= vp.Scale
	}
	if in.Pressed(ZoomOut) {
		inv := 2 - vp.Scale
		vp.Zoom *= inv
		vp.Velocity *= inv
	}

	if in.Pressed(IterDown) {
		vp.MaxIter--
	}
	if in.Pressed(IterUp) {
		vp.MaxIter++
	}
	vp.Clamp()
}
