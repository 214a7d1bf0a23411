// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fractal

import (
	"math"
	"testing"
)

func TestDefaultViewport(t *testing.T) {
	vp := DefaultViewport(800, 450)
	if vp.Offset != (Point{X: 520, Y: 225}) {
		t.Errorf("Offset = %+v, want {520 225}", vp.Offset)
	}
	if want := 2.2 / 450; math.Abs(vp.Zoom-want) > 1e-15 {
		t.Errorf("Zoom = %g, want %g", vp.Zoom, want)
	}
	if vp.Velocity != DefaultVelocity || vp.Scale != DefaultScale {
		t.Errorf("Velocity/Scale = %g/%g", vp.Velocity, vp.Scale)
	}
	if vp.MaxIter != DefaultMaxIter || vp.MaxIterLimit != DefaultMaxIterLimit {
		t.Errorf("MaxIter/Limit = %d/%d", vp.MaxIter, vp.MaxIterLimit)
	}
	if !vp.Valid() {
		t.Error("default viewport is not valid")
	}
}

func TestDefaultViewport_OddSizes(t *testing.T) {
	vp := DefaultViewport(101, 51)
	if vp.Offset != (Point{X: 65, Y: 25}) {
		t.Errorf("Offset = %+v, want {65 25}", vp.Offset)
	}
	if vp := DefaultViewport(10, 0); !vp.Valid() {
		t.Error("zero height produced an invalid viewport")
	}
}

func TestViewport_Sample(t *testing.T) {
	vp := DefaultViewport(800, 450)
	cx, cy := vp.Sample(520, 225)
	if cx != 0 || cy != 0 {
		t.Errorf("Sample(520,225) = (%g,%g), want (0,0)", cx, cy)
	}
	cx, cy = vp.Sample(0, 0)
	if want := -520 * vp.Zoom; cx != want {
		t.Errorf("Sample(0,0).x = %g, want %g", cx, want)
	}
	if want := -225 * vp.Zoom; cy != want {
		t.Errorf("Sample(0,0).y = %g, want %g", cy, want)
	}
}

func TestViewport_Clamp(t *testing.T) {
	tests := []struct {
		name               string
		iter, limit        int
		wantIter, wantLim  int
	}{
		{"in range", 30, 5500, 30, 5500},
		{"below min", 0, 5500, MinIter, 5500},
		{"above limit", 6000, 5500, 5500, 5500},
		{"limit below min", 10, 1, MinIter, MinIter},
		{"negative", -100, 50, MinIter, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vp := Viewport{MaxIter: tt.iter, MaxIterLimit: tt.limit}
			vp.Clamp()
			if vp.MaxIter != tt.wantIter || vp.MaxIterLimit != tt.wantLim {
				t.Errorf("Clamp() = %d/%d, want %d/%d", vp.MaxIter, vp.MaxIterLimit, tt.wantIter, tt.wantLim)
			}
		})
	}
}

func TestViewport_ClampZoom(t *testing.T) {
	tests := []struct {
		name         string
		zoom, vel    float64
		wantZoom     float64
		wantVelocity float64
	}{
		{"in range", 0.01, 500, 0.01, 500},
		{"too far out", 2 * MaxZoom, 500, MaxZoom, 250},
		{"infinite", math.Inf(1), 500, MaxZoom, MinVelocity},
		{"too far in", MinZoom / 2, 500, MinZoom, 1000},
		{"zero", 0, 500, MinZoom, 500},
		{"nan", math.NaN(), math.NaN(), MinZoom, MinVelocity},
		{"velocity overflow", 1, math.Inf(1), 1, MaxVelocity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vp := Viewport{Zoom: tt.zoom, Velocity: tt.vel, MaxIter: 30, MaxIterLimit: 100}
			vp.Clamp()
			if vp.Zoom != tt.wantZoom || vp.Velocity != tt.wantVelocity {
				t.Errorf("Clamp() zoom/velocity = %g/%g, want %g/%g",
					vp.Zoom, vp.Velocity, tt.wantZoom, tt.wantVelocity)
			}
			if !vp.Valid() {
				t.Errorf("Valid() = false after Clamp: %+v", vp)
			}
		})
	}
}

func TestViewport_Valid(t *testing.T) {
	base := DefaultViewport(100, 100)
	tests := []struct {
		name   string
		mutate func(*Viewport)
		want   bool
	}{
		{"default", func(*Viewport) {}, true},
		{"zero zoom", func(v *Viewport) { v.Zoom = 0 }, false},
		{"negative zoom", func(v *Viewport) { v.Zoom = -1 }, false},
		{"infinite zoom", func(v *Viewport) { v.Zoom = math.Inf(1) }, false},
		{"nan offset", func(v *Viewport) { v.Offset.X = math.NaN() }, false},
		{"iter below min", func(v *Viewport) { v.MaxIter = 1 }, false},
		{"iter above limit", func(v *Viewport) { v.MaxIter = v.MaxIterLimit + 1 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vp := base
			tt.mutate(&vp)
			if got := vp.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}
