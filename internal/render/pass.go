// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/interop/internal/share"
	"github.com/gogpu/wgpu/hal"
)

// Target supplies the color attachment for the current frame.
type Target interface {
	AcquireView() (hal.TextureView, error)
}

// ClearColor is the color the target is cleared to each frame.
var ClearColor = gputypes.Color{R: 0, G: 0, B: 0, A: 1}

// Pass draws a vertex buffer with a program into a target. Each frame is
// Clear, UseProgram, Draw.
type Pass struct {
	device  hal.Device
	queue   hal.Queue
	target  Target
	program *Program
	buffer  *VertexBuffer
	count   uint32

	view    hal.TextureView
	clear   bool
	current *Program
	draws   uint64
}

// NewPass returns a pass drawing count vertices of buffer with program.
func NewPass(device hal.Device, queue hal.Queue, target Target, program *Program, buffer *VertexBuffer, count uint32) *Pass {
	return &Pass{
		device:  device,
		queue:   queue,
		target:  target,
		program: program,
		buffer:  buffer,
		count:   count,
	}
}

// Clear fetches this frame's target view and arms a clear to ClearColor.
// The clear is executed as the load operation of the next Draw.
func (p *Pass) Clear() error {
	view, err := p.target.AcquireView()
	if err != nil {
		return fmt.Errorf("acquire target: %w", err)
	}
	p.view = view
	p.clear = true
	return nil
}

// UseProgram makes the pass's program the active one.
func (p *Pass) UseProgram() {
	p.current = p.program
}

// Draw encodes one render pass drawing the vertex buffer, submits it and
// waits for completion. The vertex buffer must be graphics-owned.
func (p *Pass) Draw() error {
	if p.current == nil || p.current.pipeline == nil {
		return ErrNoProgram
	}
	if p.view == nil {
		return fmt.Errorf("render: draw before clear")
	}
	if err := p.buffer.handoff.Require(share.Graphics); err != nil {
		return fmt.Errorf("draw: %w", err)
	}

	loadOp := gputypes.LoadOpLoad
	if p.clear {
		loadOp = gputypes.LoadOpClear
	}

	encoder, err := p.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{Label: "triangle_encoder"})
	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("triangle_frame"); err != nil {
		return fmt.Errorf("begin encoding: %w", err)
	}

	rp := encoder.BeginRenderPass(&hal.RenderPassDescriptor{
		Label: "triangle_pass",
		ColorAttachments: []hal.RenderPassColorAttachment{{
			View:       p.view,
			LoadOp:     loadOp,
			StoreOp:    gputypes.StoreOpStore,
			ClearValue: ClearColor,
		}},
	})
	rp.SetPipeline(p.current.pipeline)
	rp.SetVertexBuffer(0, p.buffer.buf, 0)
	rp.Draw(p.count, 1, 0, 0)
	rp.End()

	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return fmt.Errorf("end encoding: %w", err)
	}
	defer p.device.FreeCommandBuffer(cmdBuf)

	if err := share.SubmitAndWait(p.device, p.queue, cmdBuf); err != nil {
		return err
	}
	p.clear = false
	p.view = nil
	p.draws++
	return nil
}

// Draws returns the number of completed draws.
func (p *Pass) Draws() uint64 { return p.draws }
