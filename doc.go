// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package interop draws a triangle whose vertices are moved every frame by a
// compute kernel working on the very buffer the draw call reads.
//
// # Overview
//
// A window surface owns one GPU device. The rendering pipeline creates a
// vertex buffer on that device with both vertex and storage usage, and the
// compute side adopts the same device and imports the buffer. Each frame the
// buffer is handed to compute, nudged, handed back and drawn. Nothing is ever
// copied to the host in between.
//
// # Architecture
//
// The program is organized into:
//   - Root: Config, SetLogger/Logger
//   - internal/share: ownership handoff and context handles
//   - internal/surface: window, events, presentation (glfw + wgpu/hal)
//   - internal/render: shader stages, program, vertex buffer, draw pass
//   - internal/compute: platforms, shared context, kernel, command queue
//   - internal/frame: the strictly ordered frame loop
//   - cmd/interopdemo: wiring and exit codes
//
// # Logging
//
// Nothing is logged unless SetLogger is called:
//
//	interop.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
package interop
