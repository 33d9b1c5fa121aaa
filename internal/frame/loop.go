// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package frame runs the per-frame sequence: compute kernel, draw call,
// present. Every step of a frame completes before the next one starts.
package frame

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gogpu/interop"
)

// Surface is the window side of the loop.
type Surface interface {
	ShouldClose() bool
	RequestClose()
	PollEvents()
	Present() error
}

// Graphics is the rendering side of the loop.
type Graphics interface {
	Clear() error
	UseProgram()
	Draw() error
}

// Compute is the compute side of the loop.
type Compute interface {
	Acquire() error
	Dispatch() error
	Release() error
	Finish() error
}

// Loop drives one Surface, Graphics and Compute.
type Loop struct {
	surface  Surface
	graphics Graphics
	compute  Compute
	frames   uint64
}

// New returns a loop over s, g and c.
func New(s Surface, g Graphics, c Compute) *Loop {
	return &Loop{surface: s, graphics: g, compute: c}
}

// Frames returns the number of completed frames.
func (l *Loop) Frames() uint64 { return l.frames }

// Run executes frames until the surface asks to close. A done ctx is
// turned into a close request on the surface. Both are checked only before
// a frame starts, so a frame in progress always completes. A canceled ctx
// is a normal stop and returns nil.
func (l *Loop) Run(ctx context.Context) error {
	log := slogger()
	log.Info("frame loop running")
	for !l.surface.ShouldClose() {
		if ctx.Err() != nil {
			log.Info("frame loop interrupted", "frames", l.frames)
			l.surface.RequestClose()
			continue
		}
		if err := l.Frame(); err != nil {
			return fmt.Errorf("frame %d: %w", l.frames, err)
		}
		if log.Enabled(ctx, slog.LevelDebug) && l.frames%600 == 0 {
			log.Debug("frame loop", "frames", l.frames)
		}
	}
	log.Info("frame loop stopped", "frames", l.frames)
	return nil
}

// Frame runs one frame. It stops at the first failing step.
func (l *Loop) Frame() error {
	l.surface.PollEvents()

	if err := l.graphics.Clear(); err != nil {
		return fmt.Errorf("clear: %w", err)
	}
	l.graphics.UseProgram()

	if err := l.compute.Acquire(); err != nil {
		return fmt.Errorf("acquire: %w", err)
	}
	if err := l.compute.Dispatch(); err != nil {
		return fmt.Errorf("dispatch: %w", err)
	}
	if err := l.compute.Release(); err != nil {
		return fmt.Errorf("release: %w", err)
	}
	if err := l.compute.Finish(); err != nil {
		return fmt.Errorf("finish: %w", err)
	}

	if err := l.graphics.Draw(); err != nil {
		return fmt.Errorf("draw: %w", err)
	}
	if err := l.surface.Present(); err != nil {
		return fmt.Errorf("present: %w", err)
	}
	l.frames++
	return nil
}

func slogger() *slog.Logger { return interop.Logger() }
