// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fractal

// BatchStrategy iterates the whole pixel grid one recurrence step at a time.
//
// All samples are computed up front. Each step updates only the pixels that
// are still iterating; a pixel's count is written once, the first time it
// diverges, and the pixel then leaves the active set so it can never be
// overwritten. Pixels still active after MaxIter steps keep MaxIter.
//
// The active set is kept as a compacted index list rather than a boolean mask,
// so each step touches only live pixels. Results are identical to
// ScalarStrategy.
//
// BatchStrategy keeps reusable buffers and is not safe for concurrent Compute calls.
type BatchStrategy struct {
	cx, cy []float64
	zx, zy []float64
	active []int32
	counts []int32
}

var (
	_ Strategy         = (*BatchStrategy)(nil)
	_ IterationCounter = (*BatchStrategy)(nil)
)

// NewBatchStrategy creates a batch strategy.
func NewBatchStrategy() *BatchStrategy {
	return &BatchStrategy{}
}

// Name returns the strategy identifier.
func (s *BatchStrategy) Name() string { return StrategyBatch }

// Init validates the color table.
func (s *BatchStrategy) Init(table *ColorTable) error {
	if table == nil {
		return ErrNilColorTable
	}
	return nil
}

// Close releases the batch buffers.
func (s *BatchStrategy) Close() {
	*s = BatchStrategy{}
}

// Compute renders vp into dst.
func (s *BatchStrategy) Compute(dst *Frame, vp Viewport, table *ColorTable) error {
	if err := checkCompute(dst, vp, table); err != nil {
		return err
	}
	s.counts = countScratch(s.counts, dst.width*dst.height)
	s.Iterations(s.counts, dst.width, dst.height, vp)
	colorize(dst.data, s.counts, vp.MaxIter, table)
	return nil
}

// Iterations writes the escape count of every pixel into dst.
func (s *BatchStrategy) Iterations(dst []int32, width, height int, vp Viewport) {
	n := width * height
	s.grow(n)

	// Samples for the whole grid, one batch.
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p := y*width + x
			s.cx[p], s.cy[p] = vp.Sample(x, y)
		}
	}

	limit := int32(max(vp.MaxIter, 0)) //nolint:gosec // bounded by MaxIterLimit
	for p := 0; p < n; p++ {
		s.zx[p], s.zy[p] = 0, 0
		s.active[p] = int32(p) //nolint:gosec // pixel count fits int32
		dst[p] = limit
	}

	active := s.active[:n]
	for i := int32(0); i < limit && len(active) > 0; i++ {
		live := active[:0]
		for _, p := range active {
			zx, zy := step(s.zx[p], s.zy[p], s.cx[p], s.cy[p])
			if magnitude2(zx, zy) > divergence {
				dst[p] = i
				continue
			}
			s.zx[p], s.zy[p] = zx, zy
			live = append(live, p)
		}
		active = live
	}
}

func (s *BatchStrategy) grow(n int) {
	if cap(s.cx) >= n {
		s.cx, s.cy = s.cx[:n], s.cy[:n]
		s.zx, s.zy = s.zx[:n], s.zy[:n]
		s.active = s.active[:n]
		return
	}
	s.cx = make([]float64, n)
	s.cy = make([]float64, n)
	s.zx = make([]float64, n)
	s.zy = make([]float64, n)
	s.active = make([]int32, n)
}
