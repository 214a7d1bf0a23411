// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fractal

import (
	"errors"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	if c.Width != DefaultWidth || c.Height != DefaultHeight {
		t.Errorf("size = %dx%d", c.Width, c.Height)
	}
	if c.ScreenshotDir != DefaultScreenshotDir || c.Strategy != "" || c.Texture != "" {
		t.Errorf("DefaultConfig() = %+v", c)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestConfig_Builders(t *testing.T) {
	base := DefaultConfig()
	c := base.WithSize(320, 200).
		WithStrategy(StrategyBatch).
		WithTexture("gradient.png").
		WithScreenshotDir("out").
		WithIterations(50, 1000)

	if c.Width != 320 || c.Height != 200 || c.Strategy != StrategyBatch ||
		c.Texture != "gradient.png" || c.ScreenshotDir != "out" ||
		c.MaxIter != 50 || c.MaxIterLimit != 1000 {
		t.Errorf("builders produced %+v", c)
	}
	if base != DefaultConfig() {
		t.Error("builders mutated the receiver")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{"zero size", DefaultConfig().WithSize(0, 10), ErrFrameSize},
		{"unknown strategy", DefaultConfig().WithStrategy("quantum"), ErrUnknownStrategy},
		{"limit too low", DefaultConfig().WithIterations(0, 1), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}

	both := DefaultConfig().WithSize(-1, -1).WithStrategy("quantum")
	err := both.Validate()
	if !errors.Is(err, ErrFrameSize) || !errors.Is(err, ErrUnknownStrategy) {
		t.Errorf("joined errors = %v", err)
	}
}

func TestConfig_Viewport(t *testing.T) {
	vp := DefaultConfig().Viewport()
	if vp != DefaultViewport(DefaultWidth, DefaultHeight) {
		t.Errorf("Viewport() = %+v", vp)
	}

	vp = DefaultConfig().WithIterations(100, 64).Viewport()
	if vp.MaxIterLimit != 64 || vp.MaxIter != 64 {
		t.Errorf("MaxIter/Limit = %d/%d, want 64/64", vp.MaxIter, vp.MaxIterLimit)
	}
}

func TestConfig_NewStrategy(t *testing.T) {
	table := testTable(t)
	s, err := DefaultConfig().WithStrategy(StrategyScalar).NewStrategy(table)
	if err != nil {
		t.Fatalf("NewStrategy: %v", err)
	}
	defer s.Close()
	if s.Name() != StrategyScalar {
		t.Errorf("Name() = %q", s.Name())
	}

	auto, err := DefaultConfig().NewStrategy(table)
	if err != nil {
		t.Fatalf("NewStrategy(auto): %v", err)
	}
	defer auto.Close()
	if !IsRegistered(auto.Name()) {
		t.Errorf("auto strategy %q is not registered", auto.Name())
	}
}
