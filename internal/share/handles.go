// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package share

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// ContextHandles are the native handles the graphics surface was created
// from. The device and queue themselves travel through a
// gpucontext.DeviceProvider.
type ContextHandles struct {
	// Display is the display connection (X11 Display*, wl_display* or
	// HINSTANCE).
	Display uintptr
	// Window is the window the surface presents to (X11 XID, wl_surface*
	// or HWND).
	Window uintptr
}

// AdapterType classifies a HAL device type.
func AdapterType(t gputypes.DeviceType) gpucontext.AdapterType {
	switch t {
	case gputypes.DeviceTypeDiscreteGPU:
		return gpucontext.AdapterTypeDiscrete
	case gputypes.DeviceTypeIntegratedGPU:
		return gpucontext.AdapterTypeIntegrated
	case gputypes.DeviceTypeCPU:
		return gpucontext.AdapterTypeSoftware
	default:
		return gpucontext.AdapterTypeUnknown
	}
}

// IsGPU reports whether t is a discrete or integrated GPU.
func IsGPU(t gpucontext.AdapterType) bool {
	return t == gpucontext.AdapterTypeDiscrete || t == gpucontext.AdapterTypeIntegrated
}

// Buffer is a GPU buffer created by one domain that another can import.
type Buffer interface {
	// Handle returns the underlying HAL buffer.
	Handle() hal.Buffer
	// Device returns the device the buffer was created on.
	Device() hal.Device
	Size() uint64
	Usage() gputypes.BufferUsage
	// Handoff returns the buffer's ownership token.
	Handoff() *Handoff
}
