// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !nogpu

package gpu

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gogpu/fractal"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	// Import Vulkan backend so it registers via init().
	_ "github.com/gogpu/wgpu/hal/vulkan"
)

// ErrGPUUnavailable is returned by Init when no usable GPU device exists.
var ErrGPUUnavailable = errors.New("gpu: no usable GPU device")

// fenceTimeout bounds the wait for a single frame dispatch.
const fenceTimeout = 5 * time.Second

// MandelbrotKernel computes frames with a WGSL compute shader on wgpu/hal.
//
// The color table is uploaded once in Init. Output and staging buffers are
// kept across frames and recreated only when the frame size changes.
// It implements fractal.Strategy.
type MandelbrotKernel struct {
	mu sync.Mutex

	instance hal.Instance
	device   hal.Device
	queue    hal.Queue

	shader     hal.ShaderModule
	bindLayout hal.BindGroupLayout
	pipeLayout hal.PipelineLayout
	pipeline   hal.ComputePipeline

	paramsBuf hal.Buffer
	tableBuf  hal.Buffer
	tableSize uint64
	table     *fractal.ColorTable

	// Per-size resources.
	outputBuf  hal.Buffer
	stagingBuf hal.Buffer
	bindGroup  hal.BindGroup
	width      int
	height     int
	readback   []byte

	gpuReady       bool
	externalDevice bool // true when using shared device (don't destroy on Close)
}

var _ fractal.Strategy = (*MandelbrotKernel)(nil)

// NewMandelbrotKernel returns an uninitialized kernel.
func NewMandelbrotKernel() *MandelbrotKernel {
	return &MandelbrotKernel{}
}

// Name returns "gpu".
func (k *MandelbrotKernel) Name() string { return fractal.StrategyGPU }

// SetLogger routes internal/gpu logging to l.
func (k *MandelbrotKernel) SetLogger(l *slog.Logger) { setLogger(l) }

// Init opens a device (unless one was provided), builds the compute
// pipeline and uploads the color table.
func (k *MandelbrotKernel) Init(table *fractal.ColorTable) error {
	if table == nil {
		return fractal.ErrNilColorTable
	}
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.device == nil {
		if err := k.initGPU(); err != nil {
			k.releaseDevice()
			return fmt.Errorf("%w: %w", ErrGPUUnavailable, err)
		}
	}
	if k.pipeline == nil {
		if err := k.createPipeline(); err != nil {
			k.destroyPipeline()
			return fmt.Errorf("create pipeline: %w", err)
		}
	}
	if err := k.uploadTable(table); err != nil {
		return err
	}
	k.gpuReady = true
	return nil
}

// SetDeviceProvider switches the kernel to a shared GPU device from an
// external provider. The provider must implement HalDevice() any and
// HalQueue() any returning hal.Device and hal.Queue.
func (k *MandelbrotKernel) SetDeviceProvider(provider any) error {
	device, queue, err := halFromProvider(provider)
	if err != nil {
		return err
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	k.destroyTargets()
	k.destroyTable()
	k.destroyPipeline()
	k.releaseDevice()

	k.device = device
	k.queue = queue
	k.externalDevice = true
	k.gpuReady = false
	slogger().Debug("switched to shared GPU device")
	return nil
}

// Compute renders vp into dst on the GPU and reads the pixels back.
func (k *MandelbrotKernel) Compute(dst *fractal.Frame, vp fractal.Viewport, table *fractal.ColorTable) error {
	if table == nil {
		return fractal.ErrNilColorTable
	}
	if dst == nil || dst.Empty() {
		return fractal.ErrFrameSize
	}
	if !vp.Valid() {
		return fmt.Errorf("gpu: invalid viewport (zoom=%g, maxIter=%d)", vp.Zoom, vp.MaxIter)
	}

	k.mu.Lock()
	defer k.mu.Unlock()
	if !k.gpuReady {
		return ErrGPUUnavailable
	}
	if table != k.table {
		if err := k.uploadTable(table); err != nil {
			return err
		}
	}
	w, h := dst.Width(), dst.Height()
	if err := k.ensureTargets(w, h); err != nil {
		return err
	}

	params := makeFrameParams(w, h, vp, table.Size())
	k.queue.WriteBuffer(k.paramsBuf, 0, params.bytes())

	start := time.Now()
	if err := k.dispatch(uint32(w), uint32(h)); err != nil { //nolint:gosec // frame dimensions fit uint32
		return err
	}
	unpackPixels(k.readback, dst.Data(), w*h)
	slogger().Debug("frame dispatched",
		"width", w, "height", h, "maxIter", vp.MaxIter,
		"groups", workgroups(uint32(w))*workgroups(uint32(h)), //nolint:gosec // frame dimensions fit uint32
		"elapsed", time.Since(start))
	return nil
}

// Close releases all GPU resources.
func (k *MandelbrotKernel) Close() {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.destroyTargets()
	k.destroyTable()
	k.destroyPipeline()
	k.releaseDevice()
	k.gpuReady = false
	k.externalDevice = false
}

// CheckProvider reports whether provider exposes a HAL device and queue.
func CheckProvider(provider any) error {
	_, _, err := halFromProvider(provider)
	return err
}

func halFromProvider(provider any) (hal.Device, hal.Queue, error) {
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, nil, fmt.Errorf("gpu: provider does not expose HAL types")
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, nil, fmt.Errorf("gpu: provider HalDevice is not hal.Device")
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, nil, fmt.Errorf("gpu: provider HalQueue is not hal.Queue")
	}
	return device, queue, nil
}

func (k *MandelbrotKernel) initGPU() error {
	backend, ok := hal.GetBackend(gputypes.BackendVulkan)
	if !ok {
		return fmt.Errorf("vulkan backend not available")
	}
	instance, err := backend.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return fmt.Errorf("create instance: %w", err)
	}
	k.instance = instance
	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		return fmt.Errorf("no GPU adapters found")
	}
	var selected *hal.ExposedAdapter
	for i := range adapters {
		if adapters[i].Info.DeviceType == gputypes.DeviceTypeDiscreteGPU ||
			adapters[i].Info.DeviceType == gputypes.DeviceTypeIntegratedGPU {
			selected = &adapters[i]
			break
		}
	}
	if selected == nil {
		selected = &adapters[0]
	}
	openDev, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		return fmt.Errorf("open device: %w", err)
	}
	k.device = openDev.Device
	k.queue = openDev.Queue
	slogger().Info("GPU device opened", "adapter", selected.Info.Name)
	return nil
}

// releaseDevice drops the device and instance, destroying them if owned.
func (k *MandelbrotKernel) releaseDevice() {
	if !k.externalDevice {
		if k.device != nil {
			k.device.Destroy()
		}
		if k.instance != nil {
			k.instance.Destroy()
		}
	}
	k.device = nil
	k.instance = nil
	k.queue = nil
}

func (k *MandelbrotKernel) createPipeline() error {
	spirv, err := compileSPIRV(mandelbrotShaderWGSL)
	if err != nil {
		return err
	}
	shader, err := k.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "mandelbrot",
		Source: hal.ShaderSource{SPIRV: spirv},
	})
	if err != nil {
		return fmt.Errorf("create shader module: %w", err)
	}
	k.shader = shader

	bindLayout, err := k.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "mandelbrot_bind_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{Binding: 0, Visibility: gputypes.ShaderStageCompute, Buffer: &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform}},
			{Binding: 1, Visibility: gputypes.ShaderStageCompute, Buffer: &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeReadOnlyStorage}},
			{Binding: 2, Visibility: gputypes.ShaderStageCompute, Buffer: &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeStorage}},
		},
	})
	if err != nil {
		return fmt.Errorf("create bind group layout: %w", err)
	}
	k.bindLayout = bindLayout

	pipeLayout, err := k.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label: "mandelbrot_pipe_layout", BindGroupLayouts: []hal.BindGroupLayout{k.bindLayout},
	})
	if err != nil {
		return fmt.Errorf("create pipeline layout: %w", err)
	}
	k.pipeLayout = pipeLayout

	pipeline, err := k.device.CreateComputePipeline(&hal.ComputePipelineDescriptor{
		Label: "mandelbrot_pipeline", Layout: k.pipeLayout,
		Compute: hal.ComputeState{Module: k.shader, EntryPoint: "main"},
	})
	if err != nil {
		return fmt.Errorf("create compute pipeline: %w", err)
	}
	k.pipeline = pipeline

	if k.paramsBuf == nil {
		k.paramsBuf, err = k.device.CreateBuffer(&hal.BufferDescriptor{
			Label: "mandelbrot_params", Size: paramsSize,
			Usage: gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst,
		})
		if err != nil {
			return fmt.Errorf("create params buffer: %w", err)
		}
	}
	return nil
}

func (k *MandelbrotKernel) destroyPipeline() {
	if k.device == nil {
		return
	}
	if k.pipeline != nil {
		k.device.DestroyComputePipeline(k.pipeline)
	}
	if k.pipeLayout != nil {
		k.device.DestroyPipelineLayout(k.pipeLayout)
	}
	if k.bindLayout != nil {
		k.device.DestroyBindGroupLayout(k.bindLayout)
	}
	if k.shader != nil {
		k.device.DestroyShaderModule(k.shader)
	}
	if k.paramsBuf != nil {
		k.device.DestroyBuffer(k.paramsBuf)
	}
	k.pipeline = nil
	k.pipeLayout = nil
	k.bindLayout = nil
	k.shader = nil
	k.paramsBuf = nil
}

// uploadTable replaces the device copy of the color table.
func (k *MandelbrotKernel) uploadTable(table *fractal.ColorTable) error {
	data := packTable(table)
	size := uint64(len(data))
	if k.tableBuf == nil || k.tableSize != size {
		// The bind group references the old buffer.
		k.destroyTargets()
		k.destroyTable()
		buf, err := k.device.CreateBuffer(&hal.BufferDescriptor{
			Label: "mandelbrot_table", Size: size,
			Usage: gputypes.BufferUsageStorage | gputypes.BufferUsageCopyDst,
		})
		if err != nil {
			return fmt.Errorf("create table buffer: %w", err)
		}
		k.tableBuf = buf
		k.tableSize = size
	}
	k.queue.WriteBuffer(k.tableBuf, 0, data)
	k.table = table
	slogger().Debug("color table uploaded", "size", table.Size(), "bytes", size)
	return nil
}

func (k *MandelbrotKernel) destroyTable() {
	if k.tableBuf != nil && k.device != nil {
		k.device.DestroyBuffer(k.tableBuf)
	}
	k.tableBuf = nil
	k.tableSize = 0
	k.table = nil
}

// ensureTargets (re)creates the output, staging and bind group for w x h.
func (k *MandelbrotKernel) ensureTargets(w, h int) error {
	if k.bindGroup != nil && k.width == w && k.height == h {
		return nil
	}
	k.destroyTargets()

	pixelBufSize := uint64(w) * uint64(h) * 4 //nolint:gosec // frame dimensions are positive
	outputBuf, err := k.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "mandelbrot_output", Size: pixelBufSize,
		Usage: gputypes.BufferUsageStorage | gputypes.BufferUsageCopySrc,
	})
	if err != nil {
		return fmt.Errorf("create output buffer: %w", err)
	}
	k.outputBuf = outputBuf

	stagingBuf, err := k.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "mandelbrot_staging", Size: pixelBufSize,
		Usage: gputypes.BufferUsageMapRead | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		k.destroyTargets()
		return fmt.Errorf("create staging buffer: %w", err)
	}
	k.stagingBuf = stagingBuf

	bg, err := k.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label: "mandelbrot_bind", Layout: k.bindLayout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.BufferBinding{Buffer: k.paramsBuf.NativeHandle(), Offset: 0, Size: paramsSize}},
			{Binding: 1, Resource: gputypes.BufferBinding{Buffer: k.tableBuf.NativeHandle(), Offset: 0, Size: k.tableSize}},
			{Binding: 2, Resource: gputypes.BufferBinding{Buffer: k.outputBuf.NativeHandle(), Offset: 0, Size: pixelBufSize}},
		},
	})
	if err != nil {
		k.destroyTargets()
		return fmt.Errorf("create bind group: %w", err)
	}
	k.bindGroup = bg
	k.width, k.height = w, h
	k.readback = make([]byte, pixelBufSize)
	slogger().Debug("GPU targets allocated", "width", w, "height", h)
	return nil
}

func (k *MandelbrotKernel) destroyTargets() {
	if k.device != nil {
		if k.bindGroup != nil {
			k.device.DestroyBindGroup(k.bindGroup)
		}
		if k.stagingBuf != nil {
			k.device.DestroyBuffer(k.stagingBuf)
		}
		if k.outputBuf != nil {
			k.device.DestroyBuffer(k.outputBuf)
		}
	}
	k.bindGroup = nil
	k.stagingBuf = nil
	k.outputBuf = nil
	k.width, k.height = 0, 0
}

// dispatch runs one compute pass over w x h and copies the result into
// k.readback.
func (k *MandelbrotKernel) dispatch(w, h uint32) error {
	pixelBufSize := uint64(len(k.readback))

	encoder, err := k.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{Label: "mandelbrot_encoder"})
	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("mandelbrot"); err != nil {
		return fmt.Errorf("begin encoding: %w", err)
	}

	computePass := encoder.BeginComputePass(&hal.ComputePassDescriptor{Label: "mandelbrot_pass"})
	computePass.SetPipeline(k.pipeline)
	computePass.SetBindGroup(0, k.bindGroup, nil)
	computePass.Dispatch(workgroups(w), workgroups(h), 1)
	computePass.End()

	encoder.CopyBufferToBuffer(k.outputBuf, k.stagingBuf, []hal.BufferCopy{
		{SrcOffset: 0, DstOffset: 0, Size: pixelBufSize},
	})
	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return fmt.Errorf("end encoding: %w", err)
	}
	defer k.device.FreeCommandBuffer(cmdBuf)

	fence, err := k.device.CreateFence()
	if err != nil {
		return fmt.Errorf("create fence: %w", err)
	}
	defer k.device.DestroyFence(fence)
	if err := k.queue.Submit([]hal.CommandBuffer{cmdBuf}, fence, 1); err != nil {
		return fmt.Errorf("submit: %w", err)
	}
	fenceOK, err := k.device.Wait(fence, 1, fenceTimeout)
	if err != nil || !fenceOK {
		return fmt.Errorf("wait for GPU: ok=%v err=%w", fenceOK, err)
	}

	if err := k.queue.ReadBuffer(k.stagingBuf, 0, k.readback); err != nil {
		return fmt.Errorf("readback: %w", err)
	}
	return nil
}
