// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"unsafe"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/interop/internal/share"
	"github.com/gogpu/wgpu/hal"
)

// vertexBufferUsage marks the buffer as frequently updated: it is drawn as
// vertices, written by compute as storage, and copyable for readback.
const vertexBufferUsage = gputypes.BufferUsageVertex |
	gputypes.BufferUsageStorage |
	gputypes.BufferUsageCopyDst |
	gputypes.BufferUsageCopySrc

// VertexBuffer is the buffer shared with compute. It starts graphics-owned.
type VertexBuffer struct {
	device  hal.Device
	queue   hal.Queue
	buf     hal.Buffer
	size    uint64
	count   uint32
	handoff share.Handoff
}

var _ share.Buffer = (*VertexBuffer)(nil)

// NewVertexBuffer creates the shared buffer and uploads vertices into it.
func NewVertexBuffer(device hal.Device, queue hal.Queue, vertices []Vertex) (*VertexBuffer, error) {
	if len(vertices) == 0 {
		return nil, ErrNoVertices
	}
	data := PackVertices(vertices)
	buf, err := device.CreateBuffer(&hal.BufferDescriptor{
		Label: "triangle_vertices",
		Size:  uint64(len(data)),
		Usage: vertexBufferUsage,
	})
	if err != nil {
		return nil, fmt.Errorf("create vertex buffer: %w", err)
	}
	if err := queue.WriteBuffer(buf, 0, data); err != nil {
		device.DestroyBuffer(buf)
		return nil, fmt.Errorf("upload vertices: %w", err)
	}

	slogger().Debug("render: vertex buffer created", "vertices", len(vertices), "bytes", len(data))
	return &VertexBuffer{
		device: device,
		queue:  queue,
		buf:    buf,
		size:   uint64(len(data)),
		count:  uint32(len(vertices)), //nolint:gosec // vertex count is tiny
	}, nil
}

func (b *VertexBuffer) Handle() hal.Buffer          { return b.buf }
func (b *VertexBuffer) Device() hal.Device          { return b.device }
func (b *VertexBuffer) Size() uint64                { return b.size }
func (b *VertexBuffer) Usage() gputypes.BufferUsage { return vertexBufferUsage }
func (b *VertexBuffer) Handoff() *share.Handoff     { return &b.handoff }

// Count returns the number of vertices in the buffer.
func (b *VertexBuffer) Count() uint32 { return b.count }

// Snapshot copies the buffer through a staging buffer and returns the
// current positions. The buffer must be graphics-owned.
func (b *VertexBuffer) Snapshot() ([]Vertex, error) {
	if err := b.handoff.Require(share.Graphics); err != nil {
		return nil, err
	}

	staging, err := b.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "triangle_readback",
		Size:  b.size,
		Usage: gputypes.BufferUsageMapRead | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("create staging buffer: %w", err)
	}
	defer b.device.DestroyBuffer(staging)

	encoder, err := b.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{Label: "readback_encoder"})
	if err != nil {
		return nil, fmt.Errorf("create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("readback"); err != nil {
		return nil, fmt.Errorf("begin encoding: %w", err)
	}
	encoder.CopyBufferToBuffer(b.buf, staging, []hal.BufferCopy{
		{SrcOffset: 0, DstOffset: 0, Size: b.size},
	})
	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return nil, fmt.Errorf("end encoding: %w", err)
	}
	defer b.device.FreeCommandBuffer(cmdBuf)

	if err := share.SubmitAndWait(b.device, b.queue, cmdBuf); err != nil {
		return nil, err
	}

	mapping, err := b.device.MapBuffer(staging, 0, b.size)
	if err != nil {
		return nil, fmt.Errorf("map staging buffer: %w", err)
	}
	data := make([]byte, b.size)
	copy(data, unsafe.Slice((*byte)(mapping.Ptr), b.size))
	if err := b.device.UnmapBuffer(staging); err != nil {
		return nil, fmt.Errorf("unmap staging buffer: %w", err)
	}
	return UnpackVertices(data), nil
}

// Destroy releases the buffer. Safe to call multiple times.
func (b *VertexBuffer) Destroy() {
	if b == nil || b.buf == nil {
		return
	}
	b.device.DestroyBuffer(b.buf)
	b.buf = nil
}
