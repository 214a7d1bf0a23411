// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package cache

import (
	"sync"
	"testing"
)

// constant returns a create func yielding v and counting its calls.
func constant(v int, calls *int) func() int {
	return func() int {
		*calls++
		return v
	}
}

func TestGetOrCreate(t *testing.T) {
	c := New[string, int](2)
	calls := 0

	if v := c.GetOrCreate("x", constant(7, &calls)); v != 7 {
		t.Errorf("GetOrCreate = %d, want 7", v)
	}
	if v := c.GetOrCreate("x", constant(8, &calls)); v != 7 {
		t.Errorf("cached GetOrCreate = %d, want 7", v)
	}
	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}

	s := c.Stats()
	if s.Hits != 1 || s.Misses != 1 || s.HitRate != 0.5 || s.Len != 1 || s.Capacity != 2 {
		t.Errorf("Stats = %+v, want 1 hit, 1 miss, rate 0.5, 1 of 2 entries", s)
	}
}

func TestEvictsLeastRecentlyUsed(t *testing.T) {
	c := New[int, int](3)
	calls := 0
	for k := 1; k <= 3; k++ {
		c.GetOrCreate(k, constant(k, &calls))
	}

	// Touch 1 so 2 becomes the oldest.
	c.GetOrCreate(1, constant(1, &calls))
	c.GetOrCreate(4, constant(4, &calls))
	if s := c.Stats(); s.Evictions != 1 || s.Len != 3 {
		t.Fatalf("Stats = %+v, want 1 eviction and 3 entries", s)
	}

	calls = 0
	for _, k := range []int{1, 3, 4} {
		c.GetOrCreate(k, constant(k, &calls))
	}
	if calls != 0 {
		t.Errorf("surviving keys recreated %d times", calls)
	}
	c.GetOrCreate(2, constant(2, &calls))
	if calls != 1 {
		t.Error("key 2 should have been evicted")
	}
}

func TestUnlimited(t *testing.T) {
	c := New[int, int](0)
	calls := 0
	for i := range 1000 {
		c.GetOrCreate(i, constant(i, &calls))
	}
	if s := c.Stats(); s.Len != 1000 || s.Evictions != 0 {
		t.Errorf("Stats = %+v, want 1000 entries and no evictions", s)
	}
}

func TestClear(t *testing.T) {
	c := New[string, int](4)
	calls := 0
	c.GetOrCreate("a", constant(1, &calls))
	c.GetOrCreate("b", constant(2, &calls))

	c.Clear()
	if s := c.Stats(); s.Len != 0 || s.Misses != 2 {
		t.Errorf("Stats after Clear = %+v, want empty with counters kept", s)
	}
	if v := c.GetOrCreate("a", constant(3, &calls)); v != 3 {
		t.Errorf("GetOrCreate after Clear = %d, want fresh value 3", v)
	}
}

func TestConcurrent(t *testing.T) {
	c := New[int, int](16)
	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 200 {
				k := (g*7 + i) % 32
				if v := c.GetOrCreate(k, func() int { return k }); v != k {
					t.Errorf("GetOrCreate(%d) = %d", k, v)
				}
			}
		}()
	}
	wg.Wait()
	if s := c.Stats(); s.Len > 16 || s.Hits+s.Misses != 1600 {
		t.Errorf("Stats = %+v, want at most 16 entries and 1600 lookups", s)
	}
}
