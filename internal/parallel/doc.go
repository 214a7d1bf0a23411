// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package parallel provides the worker pool and row-band partitioning used by
// the parallel frame strategy.
//
// A frame is cut into horizontal bands of whole rows. Each band is an
// independent task: it reads only the viewport snapshot and writes only its
// own rows of the output, so no synchronization is needed between tasks.
// Bands of 16 rows keep a band's counts (16 x 800 x 4 bytes) well inside L1
// while leaving enough tasks to balance slow rows near the set boundary.
package parallel
