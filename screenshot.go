// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fractal

import (
	"errors"
	"fmt"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// DefaultScreenshotDir is the directory screenshots are written to.
const DefaultScreenshotDir = "screenshots"

// maxNameAttempts bounds the search for an unused screenshot name.
const maxNameAttempts = 100

// Screenshotter persists frames as uniquely named PNG files.
//
// Names are screenshot_<ms>.png where <ms> is the time since the
// Screenshotter was created; a -N suffix is added if the name is taken.
type Screenshotter struct {
	dir   string
	start time.Time
}

// NewScreenshotter creates a screenshotter writing to dir.
// The directory is created on first save.
func NewScreenshotter(dir string) *Screenshotter {
	if dir == "" {
		dir = DefaultScreenshotDir
	}
	return &Screenshotter{dir: dir, start: time.Now()}
}

// Dir returns the output directory.
func (s *Screenshotter) Dir() string {
	return s.dir
}

// Save writes f to a new file and returns its path.
func (s *Screenshotter) Save(f *Frame) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: create dir: %w", err)
	}

	ticks := time.Since(s.start).Milliseconds()
	for attempt := 0; attempt < maxNameAttempts; attempt++ {
		name := fmt.Sprintf("screenshot_%d.png", ticks)
		if attempt > 0 {
			name = fmt.Sprintf("screenshot_%d-%d.png", ticks, attempt)
		}
		path := filepath.Join(s.dir, name)

		out, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644) //nolint:gosec // path built from configured dir
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("screenshot: create file: %w", err)
		}
		if err := png.Encode(out, f); err != nil {
			_ = out.Close()
			return "", fmt.Errorf("screenshot: encode: %w", err)
		}
		if err := out.Close(); err != nil {
			return "", fmt.Errorf("screenshot: close: %w", err)
		}
		return path, nil
	}
	return "", fmt.Errorf("screenshot: no free name for tick %d in %s", ticks, s.dir)
}
