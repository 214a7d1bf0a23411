// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"errors"
	"flag"
	"io"
	"strings"
	"testing"

	"github.com/gogpu/fractal"
)

func TestRegisterParsesFlags(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	o := Register(fs, fractal.DefaultConfig())

	args := []string{"-width", "320", "-height", "200", "-strategy", "batch", "-iter", "64", "-v"}
	if err := fs.Parse(args); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if o.Config.Width != 320 || o.Config.Height != 200 {
		t.Errorf("size = %dx%d, want 320x200", o.Config.Width, o.Config.Height)
	}
	if o.Config.Strategy != fractal.StrategyBatch {
		t.Errorf("strategy = %q, want batch", o.Config.Strategy)
	}
	if o.Config.MaxIter != 64 {
		t.Errorf("iter = %d, want 64", o.Config.MaxIter)
	}
	if !o.Verbose {
		t.Error("Verbose = false, want true")
	}
}

func TestRegisterDefaults(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg := fractal.DefaultConfig()
	o := Register(fs, cfg)
	if err := fs.Parse(nil); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if o.Config != cfg {
		t.Errorf("Config = %+v, want %+v", o.Config, cfg)
	}
}

func TestSetupLogging(t *testing.T) {
	orig := fractal.Logger()
	t.Cleanup(func() { fractal.SetLogger(orig) })

	var buf bytes.Buffer
	SetupLogging(&buf, true)
	fractal.Logger().Debug("debug line", "k", 1)
	if !strings.Contains(buf.String(), "debug line") {
		t.Errorf("debug record not written: %q", buf.String())
	}

	buf.Reset()
	SetupLogging(&buf, false)
	fractal.Logger().Debug("hidden")
	if buf.Len() != 0 {
		t.Errorf("debug record written at info level: %q", buf.String())
	}
}

func TestOpen(t *testing.T) {
	cfg := fractal.DefaultConfig().WithSize(64, 36).WithStrategy(fractal.StrategyScalar)
	table, s, err := Open(cfg)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()
	if table == nil || table.Size() < 1 {
		t.Fatal("no color table")
	}
	if s.Name() != fractal.StrategyScalar {
		t.Errorf("strategy = %q, want scalar", s.Name())
	}
}

func TestOpenErrors(t *testing.T) {
	_, _, err := Open(fractal.DefaultConfig().WithStrategy("quantum"))
	if !errors.Is(err, fractal.ErrUnknownStrategy) {
		t.Errorf("unknown strategy: err = %v", err)
	}

	_, _, err = Open(fractal.DefaultConfig().WithTexture("/nonexistent/texture.png"))
	if err == nil {
		t.Error("missing texture: expected error")
	}
}
