// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fractal

// ScalarStrategy computes each pixel with a nested loop calling Escape.
// It is the correctness baseline for the other strategies.
//
// ScalarStrategy keeps a reusable count buffer and is not safe for
// concurrent Compute calls.
type ScalarStrategy struct {
	counts []int32
}

var (
	_ Strategy         = (*ScalarStrategy)(nil)
	_ IterationCounter = (*ScalarStrategy)(nil)
)

// NewScalarStrategy creates a scalar strategy.
func NewScalarStrategy() *ScalarStrategy {
	return &ScalarStrategy{}
}

// Name returns the strategy identifier.
func (s *ScalarStrategy) Name() string { return StrategyScalar }

// Init validates the color table.
func (s *ScalarStrategy) Init(table *ColorTable) error {
	if table == nil {
		return ErrNilColorTable
	}
	return nil
}

// Close releases the count buffer.
func (s *ScalarStrategy) Close() { s.counts = nil }

// Compute renders vp into dst.
func (s *ScalarStrategy) Compute(dst *Frame, vp Viewport, table *ColorTable) error {
	if err := checkCompute(dst, vp, table); err != nil {
		return err
	}
	s.counts = countScratch(s.counts, dst.width*dst.height)
	s.Iterations(s.counts, dst.width, dst.height, vp)
	colorize(dst.data, s.counts, vp.MaxIter, table)
	return nil
}

// Iterations writes the escape count of every pixel into dst.
func (s *ScalarStrategy) Iterations(dst []int32, width, height int, vp Viewport) {
	scalarRows(dst, width, 0, height, vp)
}

// scalarRows fills rows [y0, y1) of a width-wide count grid.
func scalarRows(dst []int32, width, y0, y1 int, vp Viewport) {
	for y := y0; y < y1; y++ {
		row := dst[y*width : (y+1)*width]
		for x := range row {
			cx, cy := vp.Sample(x, y)
			row[x] = int32(Escape(cx, cy, vp.MaxIter)) //nolint:gosec // bounded by MaxIterLimit
		}
	}
}
