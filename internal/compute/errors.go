// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package compute

import "errors"

var (
	// ErrNoPlatform is returned when no compute platform is available.
	ErrNoPlatform = errors.New("compute: no platform available")

	// ErrNoDevice is returned when a platform exposes no GPU device.
	ErrNoDevice = errors.New("compute: no GPU device available")

	// ErrNoSharedContext is returned when the graphics context cannot be
	// adopted: wrong handle types, a different backend, or a different GPU.
	ErrNoSharedContext = errors.New("compute: cannot share graphics context")

	// ErrBuildFailed is matched by every BuildError.
	ErrBuildFailed = errors.New("compute: program build failed")

	// ErrKernelCreateFailed is returned when a kernel cannot be created.
	ErrKernelCreateFailed = errors.New("compute: kernel creation failed")

	// ErrImportFailed is returned when a graphics buffer cannot be imported.
	ErrImportFailed = errors.New("compute: buffer import failed")

	// ErrArgumentIndex is returned for a kernel argument index that does not exist.
	ErrArgumentIndex = errors.New("compute: kernel argument index out of range")

	// ErrUnboundArgument is returned when dispatching a kernel with no buffer bound.
	ErrUnboundArgument = errors.New("compute: kernel argument not bound")

	// ErrForeignBuffer is returned for a buffer imported into a different context.
	ErrForeignBuffer = errors.New("compute: buffer belongs to another context")

	// ErrClosed is returned by operations on a closed context.
	ErrClosed = errors.New("compute: context closed")
)

// BuildError carries the diagnostic log of a program that failed to build.
type BuildError struct {
	Log string
}

func (e *BuildError) Error() string { return "compute: build program: " + e.Log }

func (e *BuildError) Unwrap() error { return ErrBuildFailed }
