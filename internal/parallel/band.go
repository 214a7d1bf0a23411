// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package parallel

// DefaultBandHeight is the number of rows per band.
const DefaultBandHeight = 16

// Band is a half-open range of rows [Y0, Y1).
type Band struct {
	Y0, Y1 int
}

// Rows returns the number of rows in the band.
func (b Band) Rows() int {
	return b.Y1 - b.Y0
}

// SplitRows splits height rows into bands of bandHeight rows.
// The last band is shorter if height is not divisible by bandHeight.
// A non-positive bandHeight uses DefaultBandHeight.
func SplitRows(height, bandHeight int) []Band {
	if height <= 0 {
		return nil
	}
	if bandHeight <= 0 {
		bandHeight = DefaultBandHeight
	}

	bands := make([]Band, 0, (height+bandHeight-1)/bandHeight)
	for y := 0; y < height; y += bandHeight {
		bands = append(bands, Band{Y0: y, Y1: min(y+bandHeight, height)})
	}
	return bands
}
