// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// Program is a linked render pipeline: one vertex stage and one fragment
// stage drawing triangle lists into a single color target.
type Program struct {
	device     hal.Device
	format     gputypes.TextureFormat
	pipeLayout hal.PipelineLayout
	pipeline   hal.RenderPipeline
}

// Format returns the color target format the program was linked for.
func (p *Program) Format() gputypes.TextureFormat { return p.format }

// Link builds a program from exactly one vertex and one fragment stage.
// The stages remain owned by the caller. On failure the returned error is
// a *LinkError.
func Link(device hal.Device, format gputypes.TextureFormat, stages ...*Stage) (*Program, error) {
	var vs, fs *Stage
	for _, s := range stages {
		if s == nil || s.module == nil {
			return nil, &LinkError{Log: "nil or destroyed stage"}
		}
		switch s.kind {
		case StageVertex:
			if vs != nil {
				return nil, &LinkError{Log: "more than one vertex stage"}
			}
			vs = s
		case StageFragment:
			if fs != nil {
				return nil, &LinkError{Log: "more than one fragment stage"}
			}
			fs = s
		}
	}
	if vs == nil || fs == nil {
		return nil, &LinkError{Log: fmt.Sprintf("need a vertex and a fragment stage, got %d stages", len(stages))}
	}

	pipeLayout, err := device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label: "triangle_pipe_layout",
	})
	if err != nil {
		return nil, &LinkError{Log: fmt.Sprintf("create pipeline layout: %v", err)}
	}

	pipeline, err := device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  "triangle_pipeline",
		Layout: pipeLayout,
		Vertex: hal.VertexState{
			Module:     vs.module,
			EntryPoint: vs.kind.EntryPoint(),
			Buffers:    vertexLayout(),
		},
		Fragment: &hal.FragmentState{
			Module:     fs.module,
			EntryPoint: fs.kind.EntryPoint(),
			Targets: []gputypes.ColorTargetState{
				{
					Format:    format,
					WriteMask: gputypes.ColorWriteMaskAll,
				},
			},
		},
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleList,
			CullMode: gputypes.CullModeNone,
		},
		Multisample: gputypes.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		device.DestroyPipelineLayout(pipeLayout)
		return nil, &LinkError{Log: fmt.Sprintf("create render pipeline: %v", err)}
	}

	slogger().Debug("render: program linked", "format", format)
	return &Program{
		device:     device,
		format:     format,
		pipeLayout: pipeLayout,
		pipeline:   pipeline,
	}, nil
}

// Destroy releases the pipeline in reverse creation order. Safe to call
// multiple times.
func (p *Program) Destroy() {
	if p == nil || p.device == nil {
		return
	}
	if p.pipeline != nil {
		p.device.DestroyRenderPipeline(p.pipeline)
		p.pipeline = nil
	}
	if p.pipeLayout != nil {
		p.device.DestroyPipelineLayout(p.pipeLayout)
		p.pipeLayout = nil
	}
}

// vertexLayout describes one vec3 position per VertexStride bytes.
func vertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: VertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
			},
		},
	}
}
