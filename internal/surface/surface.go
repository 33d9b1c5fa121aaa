// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package surface owns the window, its presentable surface, and the GPU
// device every other part of the program renders and computes with.
//
// All functions must be called from the main OS thread.
package surface

import (
	"errors"
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/interop"
	"github.com/gogpu/interop/internal/share"
	"github.com/gogpu/wgpu/hal"

	// Registers the Vulkan HAL backend.
	_ "github.com/gogpu/wgpu/hal/vulkan"
)

// ErrInitFailed is wrapped by every error from Open.
var ErrInitFailed = errors.New("surface: initialization failed")

var errNoNativeHandle = errors.New("no native window handle")

// Format is the color format of the presented surface.
const Format = gputypes.TextureFormatBGRA8Unorm

const backend = gputypes.BackendVulkan

// Surface is a window with a configured GPU surface.
type Surface struct {
	window   *glfw.Window
	instance hal.Instance
	surf     hal.Surface
	device   hal.Device
	queue    hal.Queue

	adapter hal.Adapter
	info    gpucontext.AdapterInfo
	display uintptr
	native  uintptr
	width   uint32
	height  uint32

	frame *hal.AcquiredSurfaceTexture
	view  hal.TextureView

	glfwLive bool
}

var _ gpucontext.DeviceProvider = (*Surface)(nil)

// Open creates the window and GPU surface described by cfg. On failure
// everything created so far is released and the error wraps ErrInitFailed.
func Open(cfg interop.Config) (*Surface, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInitFailed, err)
	}
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("%w: glfw init: %w", ErrInitFailed, err)
	}

	s := &Surface{
		glfwLive: true,
		width:    uint32(cfg.Width),  //nolint:gosec // validated positive
		height:   uint32(cfg.Height), //nolint:gosec // validated positive
	}
	if err := s.open(cfg); err != nil {
		s.Close()
		return nil, fmt.Errorf("%w: %w", ErrInitFailed, err)
	}
	interop.Logger().Info("surface: window open",
		"title", cfg.Title, "width", cfg.Width, "height", cfg.Height,
		"adapter", s.info.Name, "type", s.info.Type)
	return s, nil
}

func (s *Surface) open(cfg interop.Config) error {
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	s.window = window

	s.display, s.native, err = nativeHandles(window)
	if err != nil {
		return err
	}

	api, ok := hal.GetBackend(backend)
	if !ok {
		return fmt.Errorf("%v backend not available", backend)
	}
	instance, err := api.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return fmt.Errorf("create instance: %w", err)
	}
	s.instance = instance

	surf, err := instance.CreateSurface(s.display, s.native)
	if err != nil {
		return fmt.Errorf("create surface: %w", err)
	}
	s.surf = surf

	adapters := instance.EnumerateAdapters(surf)
	if len(adapters) == 0 {
		return fmt.Errorf("no GPU adapters found")
	}
	selected := &adapters[0]
	for i := range adapters {
		if share.IsGPU(share.AdapterType(adapters[i].Info.DeviceType)) {
			selected = &adapters[i]
			break
		}
	}
	openDev, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		return fmt.Errorf("open device: %w", err)
	}
	s.device = openDev.Device
	s.queue = openDev.Queue
	s.adapter = selected.Adapter
	s.info = gpucontext.AdapterInfo{
		Name: selected.Info.Name,
		Type: share.AdapterType(selected.Info.DeviceType),
	}

	if err := surf.Configure(s.device, &hal.SurfaceConfiguration{
		Width:       s.width,
		Height:      s.height,
		Format:      Format,
		Usage:       gputypes.TextureUsageRenderAttachment,
		PresentMode: hal.PresentModeFifo,
		AlphaMode:   hal.CompositeAlphaModeOpaque,
	}); err != nil {
		return fmt.Errorf("configure surface: %w", err)
	}
	return nil
}

// ShouldClose reports whether the user or RequestClose asked to close.
func (s *Surface) ShouldClose() bool { return s.window.ShouldClose() }

// RequestClose sets the close flag, as if the user closed the window.
func (s *Surface) RequestClose() {
	if s.window != nil {
		s.window.SetShouldClose(true)
	}
}

// PollEvents processes pending window events.
func (s *Surface) PollEvents() { glfw.PollEvents() }

// AcquireView returns the view of this frame's surface texture. The
// texture is acquired on the first call of a frame and released by Present.
func (s *Surface) AcquireView() (hal.TextureView, error) {
	if s.view != nil {
		return s.view, nil
	}
	frame, err := s.surf.AcquireTexture(nil)
	if err != nil {
		return nil, fmt.Errorf("acquire surface texture: %w", err)
	}
	view, err := s.device.CreateTextureView(frame.Texture, &hal.TextureViewDescriptor{Label: "surface_view"})
	if err != nil {
		s.surf.DiscardTexture(frame.Texture)
		return nil, fmt.Errorf("create surface view: %w", err)
	}
	s.frame = frame
	s.view = view
	return view, nil
}

// Present shows the frame drawn into the acquired texture. Without an
// acquired texture it does nothing.
func (s *Surface) Present() error {
	if s.frame == nil {
		return nil
	}
	frame, view := s.frame, s.view
	s.frame, s.view = nil, nil
	s.device.DestroyTextureView(view)
	if err := s.queue.Present(s.surf, frame.Texture, nil); err != nil {
		return fmt.Errorf("present: %w", err)
	}
	return nil
}

// Handles returns the native display and window the surface was created
// from.
func (s *Surface) Handles() share.ContextHandles {
	return share.ContextHandles{Display: s.display, Window: s.native}
}

// HalDevice returns the device for graphics-side resource creation.
func (s *Surface) HalDevice() hal.Device { return s.device }

// HalQueue returns the queue graphics submits to.
func (s *Surface) HalQueue() hal.Queue { return s.queue }

// Device returns the hal.Device shared with compute.
func (s *Surface) Device() gpucontext.Device { return s.device }

// Queue returns the hal.Queue shared with compute.
func (s *Surface) Queue() gpucontext.Queue { return s.queue }

// SurfaceFormat returns the surface color format.
func (s *Surface) SurfaceFormat() gputypes.TextureFormat { return Format }

// Adapter returns the hal.Adapter the device was opened on.
func (s *Surface) Adapter() gpucontext.Adapter { return s.adapter }

// AdapterInfo returns the name and type of the adapter.
func (s *Surface) AdapterInfo() gpucontext.AdapterInfo { return s.info }

// Close releases the surface, device, instance and window in reverse
// creation order, then terminates glfw. Safe to call multiple times and on a
// partially opened surface.
func (s *Surface) Close() {
	if s.view != nil {
		s.device.DestroyTextureView(s.view)
		s.view = nil
	}
	if s.frame != nil {
		s.surf.DiscardTexture(s.frame.Texture)
		s.frame = nil
	}
	if s.surf != nil && s.device != nil {
		s.surf.Unconfigure(s.device)
	}
	if s.device != nil {
		s.device.Destroy()
		s.device = nil
		s.queue = nil
		s.adapter = nil
	}
	if s.surf != nil {
		s.surf.Destroy()
		s.surf = nil
	}
	if s.instance != nil {
		s.instance.Destroy()
		s.instance = nil
	}
	if s.window != nil {
		s.window.Destroy()
		s.window = nil
	}
	if s.glfwLive {
		s.glfwLive = false
		glfw.Terminate()
	}
}
