// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fractal

import "time"

// Clock measures frame time.
type Clock interface {
	// Tick marks the end of a frame and returns the time since the previous
	// Tick. The first call returns 0.
	Tick() time.Duration
}

// SystemClock is a Clock backed by the monotonic wall clock.
type SystemClock struct {
	last time.Time
}

// Tick implements Clock.
func (c *SystemClock) Tick() time.Duration {
	now := time.Now()
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	d := now.Sub(c.last)
	c.last = now
	return d
}

// fpsWindow is the number of frames averaged by fpsMeter.
const fpsWindow = 10

// fpsMeter averages the last fpsWindow frame times.
type fpsMeter struct {
	samples [fpsWindow]time.Duration
	n       int
	next    int
	sum     time.Duration
}

func (m *fpsMeter) add(d time.Duration) {
	if m.n == fpsWindow {
		m.sum -= m.samples[m.next]
	} else {
		m.n++
	}
	m.samples[m.next] = d
	m.sum += d
	m.next = (m.next + 1) % fpsWindow
}

func (m *fpsMeter) fps() float64 {
	if m.n == 0 || m.sum <= 0 {
		return 0
	}
	return float64(m.n) / m.sum.Seconds()
}
