// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !nogpu

package gpu

import (
	"testing"

	"github.com/gogpu/fractal"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

type mockDevice struct{}

func (m *mockDevice) Poll(wait bool) {}
func (m *mockDevice) Destroy()       {}

type mockQueue struct{}

type mockAdapter struct{}

// mockProvider implements gpucontext.DeviceProvider without HAL access.
type mockProvider struct{}

func (m *mockProvider) Device() gpucontext.Device             { return &mockDevice{} }
func (m *mockProvider) Queue() gpucontext.Queue               { return &mockQueue{} }
func (m *mockProvider) Adapter() gpucontext.Adapter           { return &mockAdapter{} }
func (m *mockProvider) SurfaceFormat() gputypes.TextureFormat { return gputypes.TextureFormatRGBA8Unorm }

func TestStrategyRegistered(t *testing.T) {
	if !fractal.IsRegistered(fractal.StrategyGPU) {
		t.Fatal("gpu strategy not registered")
	}
	avail := fractal.Available()
	if len(avail) == 0 || avail[0] != fractal.StrategyGPU {
		t.Errorf("Available() = %v, want gpu first", avail)
	}

	s := fractal.Get(fractal.StrategyGPU)
	if s == nil {
		t.Fatal("Get(gpu) returned nil")
	}
	defer s.Close()
	if s.Name() != fractal.StrategyGPU {
		t.Errorf("Name() = %q, want %q", s.Name(), fractal.StrategyGPU)
	}
}

func TestSetDeviceProviderRejectsNonHAL(t *testing.T) {
	if err := SetDeviceProvider(&mockProvider{}); err == nil {
		t.Fatal("expected error for provider without HAL access")
	}
	if err := SetDeviceProvider(nil); err != nil {
		t.Fatalf("SetDeviceProvider(nil) = %v", err)
	}
}
