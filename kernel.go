// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fractal

// divergence is the squared-magnitude escape threshold (|z| > 2).
const divergence = 4.0

// Escape returns the number of completed iterations of z = z*z + c, starting
// from z = 0, before |z|^2 exceeds 4. It returns limit if z never diverges
// within limit steps, and 0 for a non-positive limit.
//
// |z|^2 == 4 does not count as divergence.
func Escape(cx, cy float64, limit int) int {
	var zx, zy float64
	for i := 0; i < limit; i++ {
		zx, zy = step(zx, zy, cx, cy)
		if magnitude2(zx, zy) > divergence {
			return i
		}
	}
	return max(limit, 0)
}

// step advances z by one iteration. The explicit float64 conversions force
// rounding after every product so the compiler cannot fuse multiply-adds;
// every CPU strategy must round identically.
func step(zx, zy, cx, cy float64) (float64, float64) {
	nx := float64(zx*zx) - float64(zy*zy) + cx
	ny := float64(2*zx*zy) + cy
	return nx, ny
}

func magnitude2(zx, zy float64) float64 {
	return float64(zx*zx) + float64(zy*zy)
}
