// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package hud

import (
	"image/color"
	"strings"
	"testing"

	"github.com/gogpu/fractal"
)

func newTestHUD(t *testing.T) *HUD {
	t.Helper()
	h, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = h.Close() })
	return h
}

func testStats() fractal.Stats {
	vp := fractal.DefaultViewport(800, 450)
	return fractal.Stats{
		Frames:   12345,
		FPS:      59.94,
		Strategy: "parallel",
		Viewport: vp,
	}
}

func TestLines(t *testing.T) {
	h := newTestHUD(t)
	lines := h.Lines(testStats())
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if !strings.HasPrefix(lines[0], "parallel") || !strings.Contains(lines[0], "59.9 fps") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.Contains(lines[1], "30 / 5,500") {
		t.Errorf("line 1 = %q, want grouped iteration limit", lines[1])
	}
	if !strings.Contains(lines[2], "frame 12,345") {
		t.Errorf("line 2 = %q, want grouped frame count", lines[2])
	}
}

func TestDrawTouchesCornerOnly(t *testing.T) {
	h := newTestHUD(t)
	f := fractal.NewFrame(400, 200)
	f.Clear(color.RGBA{R: 200, G: 0, B: 0, A: 255})

	h.Draw(f, testStats())

	if got := f.RGBAAt(1, 1); got == (color.RGBA{R: 200, A: 255}) {
		t.Error("backdrop not drawn at (1,1)")
	}
	if got := f.RGBAAt(399, 199); got != (color.RGBA{R: 200, A: 255}) {
		t.Errorf("far corner changed to %v", got)
	}

	lit := 0
	for y := 0; y < 60; y++ {
		for x := 0; x < 200; x++ {
			if c := f.RGBAAt(x, y); c.G > 128 {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("no glyph pixels drawn")
	}
}

func TestDrawClipsToSmallFrame(t *testing.T) {
	h := newTestHUD(t)
	f := fractal.NewFrame(8, 4)
	h.Draw(f, testStats())
	h.Draw(nil, testStats())
	h.Draw(&fractal.Frame{}, testStats())
}

func TestDrawReusesLineMasks(t *testing.T) {
	h := newTestHUD(t)
	f := fractal.NewFrame(400, 200)
	s := testStats()

	h.Draw(f, s)
	first := h.CacheStats()
	if first.Misses != 3 || first.Len != 3 {
		t.Fatalf("after first draw: %+v, want 3 misses and 3 entries", first)
	}

	// Only the frame counter line changes.
	s.Frames++
	h.Draw(f, s)
	second := h.CacheStats()
	if second.Hits != 2 || second.Misses != 4 {
		t.Errorf("after second draw: %+v, want 2 hits and 4 misses", second)
	}
}

func TestCloseDropsLineMasks(t *testing.T) {
	h, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	h.Draw(fractal.NewFrame(400, 200), testStats())
	if err := h.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if s := h.CacheStats(); s.Len != 0 {
		t.Errorf("cached masks after Close = %d, want 0", s.Len)
	}
}
