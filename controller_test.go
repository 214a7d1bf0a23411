// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fractal

import (
	"math"
	"testing"
)

func TestController_Pan(t *testing.T) {
	tests := []struct {
		action Action
		dx, dy float64
	}{
		{PanLeft, 5, 0},
		{PanRight, -5, 0},
		{PanUp, 0, 5},
		{PanDown, 0, -5},
	}
	c := NewController()
	for _, tt := range tests {
		t.Run(tt.action.String(), func(t *testing.T) {
			vp := DefaultViewport(800, 450)
			start := vp.Offset
			c.Update(Keys(tt.action), 0.01, &vp) // 500 px/s * 10ms
			if got := vp.Offset.X - start.X; math.Abs(got-tt.dx) > 1e-9 {
				t.Errorf("dx = %g, want %g", got, tt.dx)
			}
			if got := vp.Offset.Y - start.Y; math.Abs(got-tt.dy) > 1e-9 {
				t.Errorf("dy = %g, want %g", got, tt.dy)
			}
		})
	}
}

func TestController_OppositePansCancel(t *testing.T) {
	vp := DefaultViewport(800, 450)
	start := vp.Offset
	NewController().Update(Keys(PanLeft, PanRight, PanUp, PanDown), 0.5, &vp)
	if vp.Offset != start {
		t.Errorf("Offset = %+v, want %+v", vp.Offset, start)
	}
}

func TestController_ZoomScalesVelocity(t *testing.T) {
	vp := DefaultViewport(800, 450)
	z0, v0 := vp.Zoom, vp.Velocity
	NewController().Update(Keys(ZoomIn), 0.016, &vp)
	if vp.Zoom != z0*DefaultScale || vp.Velocity != v0*DefaultScale {
		t.Errorf("ZoomIn: zoom %g velocity %g", vp.Zoom, vp.Velocity)
	}

	vp = DefaultViewport(800, 450)
	NewController().Update(Keys(ZoomOut), 0.016, &vp)
	if want := z0 * (2 - DefaultScale); vp.Zoom != want {
		t.Errorf("ZoomOut: zoom = %g, want %g", vp.Zoom, want)
	}
	if want := v0 * (2 - DefaultScale); vp.Velocity != want {
		t.Errorf("ZoomOut: velocity = %g, want %g", vp.Velocity, want)
	}
}

// Zoom in followed by zoom out does not return exactly to the start, but the
// drift per round trip is (2-s)*s = 1 - (1-s)^2.
func TestController_ZoomRoundTripDrift(t *testing.T) {
	vp := DefaultViewport(800, 450)
	z0 := vp.Zoom
	c := NewController()
	const rounds = 100
	for i := 0; i < rounds; i++ {
		c.Update(Keys(ZoomIn), 0.016, &vp)
		c.Update(Keys(ZoomOut), 0.016, &vp)
	}
	ratio := vp.Zoom / z0
	want := math.Pow(1-math.Pow(1-DefaultScale, 2), rounds)
	if math.Abs(ratio-want) > 1e-9 {
		t.Errorf("zoom ratio after %d round trips = %.12f, want %.12f", rounds, ratio, want)
	}
	if ratio >= 1 || ratio < 0.99 {
		t.Errorf("zoom ratio %.6f outside [0.99, 1)", ratio)
	}
}

func TestController_Iterations(t *testing.T) {
	c := NewController()
	vp := DefaultViewport(800, 450)

	c.Update(Keys(IterUp), 0.016, &vp)
	if vp.MaxIter != DefaultMaxIter+1 {
		t.Errorf("IterUp: MaxIter = %d, want %d", vp.MaxIter, DefaultMaxIter+1)
	}
	c.Update(Keys(IterDown), 0.016, &vp)
	c.Update(Keys(IterDown), 0.016, &vp)
	if vp.MaxIter != DefaultMaxIter-1 {
		t.Errorf("IterDown: MaxIter = %d, want %d", vp.MaxIter, DefaultMaxIter-1)
	}

	for i := 0; i < 100; i++ {
		c.Update(Keys(IterDown), 0.016, &vp)
	}
	if vp.MaxIter != MinIter {
		t.Errorf("MaxIter = %d after many IterDown, want %d", vp.MaxIter, MinIter)
	}

	vp.MaxIter = DefaultMaxIterLimit
	c.Update(Keys(IterUp), 0.016, &vp)
	if vp.MaxIter != DefaultMaxIterLimit {
		t.Errorf("MaxIter = %d past the limit, want %d", vp.MaxIter, DefaultMaxIterLimit)
	}
}

func TestController_NoInput(t *testing.T) {
	c := NewController()
	vp := DefaultViewport(800, 450)
	want := vp
	c.Update(Keys(), 1, &vp)
	c.Update(nil, 1, &vp)
	c.Update(Keys(PanLeft), -1, &vp)
	c.Update(Keys(PanLeft), 1, nil)
	if vp != want {
		t.Errorf("viewport changed without effective input: %+v", vp)
	}
}

func TestController_HeldZoomStaysBounded(t *testing.T) {
	tests := []struct {
		action   Action
		wantZoom float64
	}{
		{ZoomOut, MaxZoom},
		{ZoomIn, MinZoom},
	}
	c := NewController()
	for _, tt := range tests {
		t.Run(tt.action.String(), func(t *testing.T) {
			vp := DefaultViewport(800, 450)
			for i := 0; i < 200_000; i++ {
				c.Update(Keys(tt.action, PanLeft), 0.016, &vp)
				if !vp.Valid() {
					t.Fatalf("tick %d: invalid viewport %+v", i, vp)
				}
			}
			if vp.Zoom != tt.wantZoom {
				t.Errorf("Zoom = %g, want %g", vp.Zoom, tt.wantZoom)
			}
			if vp.Velocity < MinVelocity || vp.Velocity > MaxVelocity || math.IsNaN(vp.Offset.X) {
				t.Errorf("Velocity = %g, Offset = %+v", vp.Velocity, vp.Offset)
			}
		})
	}
}

func TestController_ZoomBackFromLimit(t *testing.T) {
	c := NewController()
	vp := DefaultViewport(800, 450)
	for vp.Zoom < MaxZoom {
		c.Update(Keys(ZoomOut), 0, &vp)
	}
	atLimit := vp.Velocity
	c.Update(Keys(ZoomOut), 0, &vp)
	if math.Abs(vp.Velocity-atLimit) > 1e-9*atLimit {
		t.Errorf("Velocity changed at MaxZoom: %g -> %g", atLimit, vp.Velocity)
	}
	c.Update(Keys(ZoomIn), 0, &vp)
	if vp.Zoom >= MaxZoom {
		t.Errorf("Zoom = %g, want below MaxZoom after ZoomIn", vp.Zoom)
	}
}
