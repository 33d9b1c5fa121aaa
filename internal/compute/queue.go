// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package compute

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/interop/internal/share"
	"github.com/gogpu/wgpu/hal"
)

// Queue records acquire, dispatch and release commands and submits them on
// Finish. Commands execute in the order they were recorded.
type Queue struct {
	ctx   *Context
	queue hal.Queue

	encoder    hal.CommandEncoder
	dispatches uint64
}

// Acquire hands buf from graphics to compute and records the usage
// transition from vertex input to storage.
func (q *Queue) Acquire(buf *SharedBuffer) error {
	if err := q.check(buf); err != nil {
		return err
	}
	if err := buf.handoff.Acquire(); err != nil {
		return err
	}
	enc, err := q.begin()
	if err != nil {
		_ = buf.handoff.Release()
		return err
	}
	enc.TransitionBuffers([]hal.BufferBarrier{{
		Buffer: buf.handle,
		Usage: hal.BufferUsageTransition{
			OldUsage: gputypes.BufferUsageVertex,
			NewUsage: gputypes.BufferUsageStorage,
		},
	}})
	return nil
}

// Dispatch records kernel over globalWorkSize work items. The kernel's
// argument must be compute-owned.
func (q *Queue) Dispatch(kernel *Kernel, globalWorkSize uint32) error {
	if kernel == nil || kernel.pipeline == nil {
		return fmt.Errorf("%w: kernel destroyed", ErrKernelCreateFailed)
	}
	if kernel.arg == nil || kernel.bindGroup == nil {
		return ErrUnboundArgument
	}
	if kernel.ctx != q.ctx {
		return ErrForeignBuffer
	}
	if err := kernel.arg.handoff.Require(share.Compute); err != nil {
		return fmt.Errorf("dispatch %s: %w", kernel.name, err)
	}
	enc, err := q.begin()
	if err != nil {
		return err
	}

	pass := enc.BeginComputePass(&hal.ComputePassDescriptor{Label: kernel.name + "_pass"})
	pass.SetPipeline(kernel.pipeline)
	pass.SetBindGroup(0, kernel.bindGroup, nil)
	pass.Dispatch(globalWorkSize, 1, 1)
	pass.End()
	q.dispatches++
	return nil
}

// Release hands buf back to graphics and records the usage transition
// from storage to vertex input.
func (q *Queue) Release(buf *SharedBuffer) error {
	if err := q.check(buf); err != nil {
		return err
	}
	enc, err := q.begin()
	if err != nil {
		return err
	}
	if err := buf.handoff.Release(); err != nil {
		return err
	}
	enc.TransitionBuffers([]hal.BufferBarrier{{
		Buffer: buf.handle,
		Usage: hal.BufferUsageTransition{
			OldUsage: gputypes.BufferUsageStorage,
			NewUsage: gputypes.BufferUsageVertex,
		},
	}})
	return nil
}

// Finish submits everything recorded since the last Finish and blocks
// until the GPU has executed it. With nothing recorded it returns at once.
func (q *Queue) Finish() error {
	if q.encoder == nil {
		return nil
	}
	enc := q.encoder
	q.encoder = nil

	cmdBuf, err := enc.EndEncoding()
	if err != nil {
		return fmt.Errorf("end encoding: %w", err)
	}
	defer q.ctx.device.FreeCommandBuffer(cmdBuf)

	return share.SubmitAndWait(q.ctx.device, q.queue, cmdBuf)
}

// Dispatches returns the number of recorded dispatches.
func (q *Queue) Dispatches() uint64 { return q.dispatches }

func (q *Queue) check(buf *SharedBuffer) error {
	if q.ctx.closed {
		return ErrClosed
	}
	if buf == nil || buf.ctx != q.ctx {
		return ErrForeignBuffer
	}
	return nil
}

// begin returns the open encoder, creating one if needed.
func (q *Queue) begin() (hal.CommandEncoder, error) {
	if q.encoder != nil {
		return q.encoder, nil
	}
	enc, err := q.ctx.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{Label: "compute_encoder"})
	if err != nil {
		return nil, fmt.Errorf("create command encoder: %w", err)
	}
	if err := enc.BeginEncoding("compute_frame"); err != nil {
		return nil, fmt.Errorf("begin encoding: %w", err)
	}
	q.encoder = enc
	return enc, nil
}

func (q *Queue) destroy() {
	if q.encoder != nil {
		q.encoder.DiscardEncoding()
		q.encoder = nil
	}
}
