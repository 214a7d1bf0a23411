// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package cache provides a small generic LRU cache.
//
//	c := cache.New[string, *image.Alpha](64)
//	mask := c.GetOrCreate(line, func() *image.Alpha { return render(line) })
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
