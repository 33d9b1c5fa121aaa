// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package compute

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/interop/internal/share"
	"github.com/gogpu/wgpu/hal"
)

// elementSize is the size of one kernel element (vec4<f32>).
const elementSize = 16

// SharedBuffer is a graphics buffer imported into a compute context. It
// aliases the graphics buffer; no memory is copied or allocated.
type SharedBuffer struct {
	ctx     *Context
	handle  hal.Buffer
	size    uint64
	handoff *share.Handoff
}

// ImportGraphicsBuffer wraps buf for use as a kernel argument. The buffer
// must live on the context's device, carry storage usage, and hold whole
// vec4 elements.
func ImportGraphicsBuffer(ctx *Context, buf share.Buffer) (*SharedBuffer, error) {
	if ctx == nil || ctx.closed {
		return nil, ErrClosed
	}
	if buf == nil || buf.Handle() == nil {
		return nil, fmt.Errorf("%w: nil buffer", ErrImportFailed)
	}
	if buf.Device() != ctx.device {
		return nil, fmt.Errorf("%w: buffer was created on another device", ErrImportFailed)
	}
	if buf.Usage()&gputypes.BufferUsageStorage == 0 {
		return nil, fmt.Errorf("%w: buffer lacks storage usage", ErrImportFailed)
	}
	if buf.Size() == 0 || buf.Size()%elementSize != 0 {
		return nil, fmt.Errorf("%w: size %d is not a multiple of %d", ErrImportFailed, buf.Size(), elementSize)
	}

	slogger().Debug("compute: graphics buffer imported", "bytes", buf.Size())
	return &SharedBuffer{
		ctx:     ctx,
		handle:  buf.Handle(),
		size:    buf.Size(),
		handoff: buf.Handoff(),
	}, nil
}

// Elements returns the number of vec4 elements in the buffer.
func (b *SharedBuffer) Elements() uint32 {
	return uint32(b.size / elementSize) //nolint:gosec // bounded by buffer size limits
}

// Owner returns the domain currently owning the buffer.
func (b *SharedBuffer) Owner() share.Domain { return b.handoff.Owner() }
