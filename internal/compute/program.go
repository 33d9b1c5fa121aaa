// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package compute

import (
	_ "embed"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/interop/internal/shader"
	"github.com/gogpu/wgpu/hal"
)

//go:embed shaders/nudge.wgsl
var nudgeSource string

// NudgeEntryPoint is the kernel entry point in NudgeSource.
const NudgeEntryPoint = "nudge"

// Step is the distance the nudge kernel adds to every x per dispatch.
const Step float32 = 0.01

// NudgeSource returns the kernel program used by the demo.
func NudgeSource() string { return nudgeSource }

// Program is a built compute shader module.
type Program struct {
	ctx     *Context
	module  hal.ShaderModule
	entries []string
}

// BuildProgram validates source and creates its shader module. On failure
// the returned error is a *BuildError holding the diagnostic log.
func BuildProgram(ctx *Context, source string) (*Program, error) {
	if ctx == nil || ctx.closed {
		return nil, ErrClosed
	}
	info, err := shader.Inspect(source)
	if err != nil {
		return nil, &BuildError{Log: err.Error()}
	}
	module, err := ctx.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "compute_program",
		Source: hal.ShaderSource{WGSL: source},
	})
	if err != nil {
		return nil, &BuildError{Log: err.Error()}
	}
	slogger().Debug("compute: program built", "entry_points", info.EntryPoints)
	return &Program{ctx: ctx, module: module, entries: info.EntryPoints}, nil
}

// Destroy releases the shader module. Safe to call multiple times.
func (p *Program) Destroy() {
	if p == nil || p.module == nil {
		return
	}
	p.ctx.device.DestroyShaderModule(p.module)
	p.module = nil
}

// Kernel is one entry point of a program with its single storage buffer
// argument at binding 0.
type Kernel struct {
	ctx        *Context
	name       string
	bindLayout hal.BindGroupLayout
	pipeLayout hal.PipelineLayout
	pipeline   hal.ComputePipeline

	bindGroup hal.BindGroup
	arg       *SharedBuffer
}

// CreateKernel creates the compute pipeline for entryPoint.
func CreateKernel(prog *Program, entryPoint string) (*Kernel, error) {
	if prog == nil || prog.module == nil {
		return nil, fmt.Errorf("%w: program not built", ErrKernelCreateFailed)
	}
	found := false
	for _, e := range prog.entries {
		if e == entryPoint {
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: entry point %q not in program %v", ErrKernelCreateFailed, entryPoint, prog.entries)
	}

	device := prog.ctx.device
	k := &Kernel{ctx: prog.ctx, name: entryPoint}

	bindLayout, err := device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: entryPoint + "_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageCompute,
				Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeStorage},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: create bind group layout: %w", ErrKernelCreateFailed, err)
	}
	k.bindLayout = bindLayout

	pipeLayout, err := device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            entryPoint + "_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{bindLayout},
	})
	if err != nil {
		k.Destroy()
		return nil, fmt.Errorf("%w: create pipeline layout: %w", ErrKernelCreateFailed, err)
	}
	k.pipeLayout = pipeLayout

	pipeline, err := device.CreateComputePipeline(&hal.ComputePipelineDescriptor{
		Label:  entryPoint + "_pipeline",
		Layout: pipeLayout,
		Compute: hal.ComputeState{
			Module:     prog.module,
			EntryPoint: entryPoint,
		},
	})
	if err != nil {
		k.Destroy()
		return nil, fmt.Errorf("%w: create compute pipeline: %w", ErrKernelCreateFailed, err)
	}
	k.pipeline = pipeline

	slogger().Debug("compute: kernel created", "entry_point", entryPoint)
	return k, nil
}

// Name returns the kernel entry point.
func (k *Kernel) Name() string { return k.name }

// BindArgument binds buf as argument index. The kernel has exactly one
// argument, index 0. Binding again replaces the previous buffer.
func (k *Kernel) BindArgument(index int, buf *SharedBuffer) error {
	if index != 0 {
		return fmt.Errorf("%w: %d", ErrArgumentIndex, index)
	}
	if buf == nil || buf.handle == nil {
		return fmt.Errorf("%w: nil buffer", ErrUnboundArgument)
	}
	if buf.ctx != k.ctx {
		return ErrForeignBuffer
	}

	bg, err := k.ctx.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  k.name + "_bind_group",
		Layout: k.bindLayout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.BufferBinding{
				Buffer: buf.handle.NativeHandle(), Offset: 0, Size: buf.size,
			}},
		},
	})
	if err != nil {
		return fmt.Errorf("create bind group: %w", err)
	}
	if k.bindGroup != nil {
		k.ctx.device.DestroyBindGroup(k.bindGroup)
	}
	k.bindGroup = bg
	k.arg = buf
	return nil
}

// Destroy releases all kernel objects in reverse creation order. Safe to
// call multiple times.
func (k *Kernel) Destroy() {
	if k == nil || k.ctx == nil {
		return
	}
	device := k.ctx.device
	if k.bindGroup != nil {
		device.DestroyBindGroup(k.bindGroup)
		k.bindGroup = nil
	}
	if k.pipeline != nil {
		device.DestroyComputePipeline(k.pipeline)
		k.pipeline = nil
	}
	if k.pipeLayout != nil {
		device.DestroyPipelineLayout(k.pipeLayout)
		k.pipeLayout = nil
	}
	if k.bindLayout != nil {
		device.DestroyBindGroupLayout(k.bindLayout)
		k.bindLayout = nil
	}
	k.arg = nil
}
