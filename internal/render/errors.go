// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"fmt"
)

var (
	// ErrCompileFailed is matched by every CompileError.
	ErrCompileFailed = errors.New("render: shader stage failed to compile")

	// ErrLinkFailed is matched by every LinkError.
	ErrLinkFailed = errors.New("render: program failed to link")

	// ErrNoProgram is returned by Pass.Draw when no program is in use.
	ErrNoProgram = errors.New("render: no program in use")

	// ErrNoVertices is returned when a vertex buffer would be empty.
	ErrNoVertices = errors.New("render: no vertices")
)

// CompileError carries the diagnostic log of a stage that failed to compile.
type CompileError struct {
	Stage StageKind
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("render: compile %s stage: %s", e.Stage, e.Log)
}

func (e *CompileError) Unwrap() error { return ErrCompileFailed }

// LinkError carries the diagnostic log of a program that failed to link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return "render: link program: " + e.Log
}

func (e *LinkError) Unwrap() error { return ErrLinkFailed }
