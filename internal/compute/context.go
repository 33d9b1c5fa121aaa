// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package compute

import (
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/interop/internal/share"
	"github.com/gogpu/wgpu/hal"
)

// Context is a compute context running on a device owned by the graphics
// side. It never destroys that device.
type Context struct {
	dev    *Device
	device hal.Device
	queue  *Queue
	closed bool
}

// NewSharedContext adopts the device and queue of graphics, the provider
// that owns them. The provider must expose a hal.Device and hal.Queue
// opened on a GPU adapter with the same name as dev; anything else returns
// ErrNoSharedContext. h are the native handles graphics was created from.
func NewSharedContext(dev *Device, graphics gpucontext.DeviceProvider, h share.ContextHandles) (*Context, error) {
	if graphics == nil {
		return nil, fmt.Errorf("%w: no graphics device provider", ErrNoSharedContext)
	}
	device, ok := graphics.Device().(hal.Device)
	if !ok || device == nil {
		return nil, fmt.Errorf("%w: graphics device is %T, want hal.Device", ErrNoSharedContext, graphics.Device())
	}
	queue, ok := graphics.Queue().(hal.Queue)
	if !ok || queue == nil {
		return nil, fmt.Errorf("%w: graphics queue is %T, want hal.Queue", ErrNoSharedContext, graphics.Queue())
	}
	if dev == nil {
		return nil, fmt.Errorf("%w: no compute device", ErrNoSharedContext)
	}
	info := graphics.AdapterInfo()
	if !share.IsGPU(info.Type) {
		return nil, fmt.Errorf("%w: graphics runs on %v adapter %q", ErrNoSharedContext, info.Type, info.Name)
	}
	if info.Name != dev.Name() {
		return nil, fmt.Errorf("%w: graphics adapter %q, compute device %q", ErrNoSharedContext, info.Name, dev.Name())
	}

	ctx := &Context{dev: dev, device: device}
	ctx.queue = &Queue{ctx: ctx, queue: queue}

	slogger().Info("compute: sharing graphics device",
		"adapter", info.Name, "type", info.Type, "backend", dev.Backend(),
		"display", h.Display, "window", h.Window)
	return ctx, nil
}

// Bind runs platform enumeration, device enumeration and context creation
// in that order, stopping at the first failure. It uses the first platform
// and prefers the device graphics runs on. The platforms are returned so
// the caller can destroy them after the context.
func Bind(list func() ([]*Platform, error), graphics gpucontext.DeviceProvider, h share.ContextHandles) (*Context, []*Platform, error) {
	platforms, err := list()
	if err != nil {
		return nil, nil, err
	}
	if len(platforms) == 0 {
		return nil, nil, ErrNoPlatform
	}

	devices, err := platforms[0].GPUDevices()
	if err != nil {
		return nil, platforms, err
	}
	dev := devices[0]
	if graphics != nil {
		want := graphics.AdapterInfo()
		for _, d := range devices {
			if d.Info() == want {
				dev = d
				break
			}
		}
	}

	ctx, err := NewSharedContext(dev, graphics, h)
	if err != nil {
		return nil, platforms, err
	}
	return ctx, platforms, nil
}

// Device returns the compute device the context was created for.
func (c *Context) Device() *Device { return c.dev }

// Queue returns the context's command queue.
func (c *Context) Queue() *Queue { return c.queue }

// Close releases the context's own objects. The adopted device is left to
// its owner. Safe to call multiple times.
func (c *Context) Close() {
	if c == nil || c.closed {
		return
	}
	c.closed = true
	c.queue.destroy()
}
