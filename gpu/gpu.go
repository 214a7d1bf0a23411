// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !nogpu

package gpu

import (
	"sync"

	"github.com/gogpu/fractal"
	gpuimpl "github.com/gogpu/fractal/internal/gpu"
	"github.com/gogpu/gpucontext"
)

// ErrGPUUnavailable is returned when no usable GPU device exists.
var ErrGPUUnavailable = gpuimpl.ErrGPUUnavailable

var (
	providerMu sync.RWMutex
	provider   gpucontext.DeviceProvider
)

func init() {
	fractal.Register(fractal.StrategyGPU, newStrategy)
}

func newStrategy() fractal.Strategy {
	k := gpuimpl.NewMandelbrotKernel()
	providerMu.RLock()
	p := provider
	providerMu.RUnlock()
	if p != nil {
		if err := k.SetDeviceProvider(p); err != nil {
			fractal.Logger().Warn("shared GPU device rejected, opening own device", "err", err)
		}
	}
	return k
}

// SetDeviceProvider makes strategies created afterwards share the device
// of an external provider (e.g., gogpu) instead of opening their own.
//
// The provider must also expose HalDevice() any and HalQueue() any
// returning hal.Device and hal.Queue. Passing nil restores the default.
func SetDeviceProvider(p gpucontext.DeviceProvider) error {
	if p != nil {
		if err := gpuimpl.CheckProvider(p); err != nil {
			return err
		}
	}
	providerMu.Lock()
	defer providerMu.Unlock()
	provider = p
	return nil
}
