// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package compute runs a kernel on the device owned by the graphics side,
// directly on the graphics vertex buffer.
//
// Setup is Platforms, GPUDevices, NewSharedContext (or Bind for all three),
// BuildProgram, CreateKernel, ImportGraphicsBuffer and BindArgument. Each
// frame is Acquire, Dispatch, Release and Finish on the context queue.
package compute

import (
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/interop/internal/share"
	"github.com/gogpu/wgpu/hal"
)

// candidateBackends are tried in order by Platforms. Only backends whose
// HAL package has been linked into the binary are found.
var candidateBackends = []gputypes.Backend{
	gputypes.BackendVulkan,
	gputypes.BackendMetal,
	gputypes.BackendDX12,
}

// Platform is one HAL backend with a live instance.
type Platform struct {
	Backend gputypes.Backend

	instance  hal.Instance
	enumerate func() []hal.ExposedAdapter
}

// NewPlatform creates an instance of api and wraps it as a platform.
func NewPlatform(backend gputypes.Backend, api hal.Backend) (*Platform, error) {
	instance, err := api.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return nil, fmt.Errorf("create %v instance: %w", backend, err)
	}
	return &Platform{
		Backend:   backend,
		instance:  instance,
		enumerate: func() []hal.ExposedAdapter { return instance.EnumerateAdapters(nil) },
	}, nil
}

// Platforms returns one platform per registered backend. It returns
// ErrNoPlatform if none could be created.
func Platforms() ([]*Platform, error) {
	var out []*Platform
	for _, b := range candidateBackends {
		api, ok := hal.GetBackend(b)
		if !ok {
			continue
		}
		p, err := NewPlatform(b, api)
		if err != nil {
			slogger().Warn("compute: backend unavailable", "backend", b, "err", err)
			continue
		}
		out = append(out, p)
	}
	if len(out) == 0 {
		return nil, ErrNoPlatform
	}
	return out, nil
}

// GPUDevices returns the platform's discrete and integrated GPUs in
// enumeration order. It returns ErrNoDevice if there are none.
func (p *Platform) GPUDevices() ([]*Device, error) {
	var out []*Device
	for _, a := range p.enumerate() {
		if !share.IsGPU(share.AdapterType(a.Info.DeviceType)) {
			continue
		}
		out = append(out, &Device{platform: p, adapter: a})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w on %v", ErrNoDevice, p.Backend)
	}
	return out, nil
}

// Destroy releases the platform instance. Safe to call multiple times.
func (p *Platform) Destroy() {
	if p == nil || p.instance == nil {
		return
	}
	p.instance.Destroy()
	p.instance = nil
}

// DestroyAll releases every platform in ps.
func DestroyAll(ps []*Platform) {
	for _, p := range ps {
		p.Destroy()
	}
}

// Device is one GPU exposed by a platform.
type Device struct {
	platform *Platform
	adapter  hal.ExposedAdapter
}

// Name returns the adapter name.
func (d *Device) Name() string { return d.adapter.Info.Name }

// Info returns the adapter name and type.
func (d *Device) Info() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{
		Name: d.adapter.Info.Name,
		Type: share.AdapterType(d.adapter.Info.DeviceType),
	}
}

// Backend returns the backend of the owning platform.
func (d *Device) Backend() gputypes.Backend { return d.platform.Backend }
