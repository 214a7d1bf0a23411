// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fractal

import (
	"github.com/gogpu/fractal/internal/parallel"
)

// ParallelOption configures a ParallelStrategy.
type ParallelOption func(*parallelOptions)

type parallelOptions struct {
	workers    int
	bandHeight int
}

// WithWorkers sets the number of worker goroutines.
// Zero or negative uses GOMAXPROCS.
func WithWorkers(n int) ParallelOption {
	return func(o *parallelOptions) {
		o.workers = n
	}
}

// WithBandHeight sets the number of rows per task.
// Zero or negative uses the package default (16 rows).
func WithBandHeight(rows int) ParallelOption {
	return func(o *parallelOptions) {
		o.bandHeight = rows
	}
}

// ParallelStrategy runs the scalar kernel with rows split into bands, each
// band an independent task on a worker pool. A task reads only the viewport
// snapshot and writes only its own rows, so tasks never synchronize.
//
// The worker pool is started by Init and stopped by Close.
// ParallelStrategy is not safe for concurrent Compute calls.
type ParallelStrategy struct {
	opts   parallelOptions
	pool   *parallel.WorkerPool
	counts []int32
}

var (
	_ Strategy         = (*ParallelStrategy)(nil)
	_ IterationCounter = (*ParallelStrategy)(nil)
)

// NewParallelStrategy creates a parallel strategy.
func NewParallelStrategy(opts ...ParallelOption) *ParallelStrategy {
	s := &ParallelStrategy{}
	for _, opt := range opts {
		opt(&s.opts)
	}
	return s
}

// Name returns the strategy identifier.
func (s *ParallelStrategy) Name() string { return StrategyParallel }

// Init validates the color table and starts the worker pool.
func (s *ParallelStrategy) Init(table *ColorTable) error {
	if table == nil {
		return ErrNilColorTable
	}
	if s.pool == nil {
		s.pool = parallel.NewWorkerPool(s.opts.workers)
		Logger().Debug("parallel strategy started", "workers", s.pool.Workers())
	}
	return nil
}

// Close stops the worker pool.
func (s *ParallelStrategy) Close() {
	if s.pool != nil {
		s.pool.Close()
		s.pool = nil
	}
	s.counts = nil
}

// Compute renders vp into dst.
func (s *ParallelStrategy) Compute(dst *Frame, vp Viewport, table *ColorTable) error {
	if err := checkCompute(dst, vp, table); err != nil {
		return err
	}
	if s.pool == nil {
		if err := s.Init(table); err != nil {
			return err
		}
	}

	w, h := dst.width, dst.height
	s.counts = countScratch(s.counts, w*h)
	counts := s.counts
	bands := parallel.SplitRows(h, s.opts.bandHeight)
	work := make([]func(), len(bands))
	for i, b := range bands {
		work[i] = func() {
			scalarRows(counts, w, b.Y0, b.Y1, vp)
			lo, hi := b.Y0*w, b.Y1*w
			colorize(dst.data[lo*4:hi*4], counts[lo:hi], vp.MaxIter, table)
		}
	}
	s.pool.ExecuteAll(work)
	return nil
}

// Iterations writes the escape count of every pixel into dst.
func (s *ParallelStrategy) Iterations(dst []int32, width, height int, vp Viewport) {
	bands := parallel.SplitRows(height, s.opts.bandHeight)
	work := make([]func(), len(bands))
	for i, b := range bands {
		work[i] = func() { scalarRows(dst, width, b.Y0, b.Y1, vp) }
	}
	if s.pool == nil {
		for _, fn := range work {
			fn()
		}
		return
	}
	s.pool.ExecuteAll(work)
}
