// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package share holds the state shared between the rendering and compute
// sides: which domain currently owns the vertex buffer, and the context
// handles that let compute adopt the graphics device.
package share

import (
	"errors"
	"fmt"
	"sync/atomic"
)

// Domain identifies who may touch a shared buffer.
type Domain uint32

const (
	// Graphics owns the buffer while it is drawn. Buffers start here.
	Graphics Domain = iota
	// Compute owns the buffer between acquire and release.
	Compute
)

func (d Domain) String() string {
	switch d {
	case Graphics:
		return "graphics"
	case Compute:
		return "compute"
	default:
		return fmt.Sprintf("Domain(%d)", uint32(d))
	}
}

// ErrNotOwner is matched by every OwnershipError.
var ErrNotOwner = errors.New("share: buffer not owned by caller")

// OwnershipError reports an access or transfer attempted by the wrong domain.
type OwnershipError struct {
	Op    string
	Want  Domain
	Owner Domain
}

func (e *OwnershipError) Error() string {
	return fmt.Sprintf("share: %s needs %s ownership, buffer is owned by %s", e.Op, e.Want, e.Owner)
}

func (e *OwnershipError) Unwrap() error { return ErrNotOwner }

// Handoff is the ownership token of one shared buffer. Exactly one domain
// owns it at any time. The zero value is graphics-owned and ready to use.
type Handoff struct {
	owner     atomic.Uint32
	transfers atomic.Uint64
}

// Owner returns the current owner.
func (h *Handoff) Owner() Domain { return Domain(h.owner.Load()) }

// Acquire moves ownership from graphics to compute.
func (h *Handoff) Acquire() error {
	return h.transfer("acquire", Graphics, Compute)
}

// Release moves ownership from compute back to graphics.
func (h *Handoff) Release() error {
	return h.transfer("release", Compute, Graphics)
}

// Require fails unless d currently owns the buffer.
func (h *Handoff) Require(d Domain) error {
	if owner := h.Owner(); owner != d {
		return &OwnershipError{Op: "access", Want: d, Owner: owner}
	}
	return nil
}

// Transfers returns the number of completed acquires and releases.
func (h *Handoff) Transfers() uint64 { return h.transfers.Load() }

func (h *Handoff) transfer(op string, from, to Domain) error {
	if !h.owner.CompareAndSwap(uint32(from), uint32(to)) {
		return &OwnershipError{Op: op, Want: from, Owner: h.Owner()}
	}
	h.transfers.Add(1)
	return nil
}
