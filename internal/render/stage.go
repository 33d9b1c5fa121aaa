// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package render compiles and links the triangle program, owns the vertex
// buffer shared with compute, and records the per-frame draw.
package render

import (
	_ "embed"
	"fmt"

	"github.com/gogpu/interop/internal/shader"
	"github.com/gogpu/wgpu/hal"
)

//go:embed shaders/passthrough.wgsl
var passthroughSource string

//go:embed shaders/solid.wgsl
var solidSource string

// PassthroughSource returns the vertex stage used by the demo.
func PassthroughSource() string { return passthroughSource }

// SolidSource returns the fragment stage used by the demo. It writes opaque
// red for every covered pixel.
func SolidSource() string { return solidSource }

// StageKind selects the pipeline stage a shader module is compiled for.
type StageKind uint8

const (
	StageVertex StageKind = iota
	StageFragment
)

func (k StageKind) String() string {
	switch k {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return fmt.Sprintf("StageKind(%d)", uint8(k))
	}
}

// EntryPoint returns the entry point name a stage of this kind must declare.
func (k StageKind) EntryPoint() string {
	if k == StageFragment {
		return "fs_main"
	}
	return "vs_main"
}

// Stage is a compiled shader stage. It stays valid until Destroy or until
// the device is destroyed.
type Stage struct {
	kind   StageKind
	device hal.Device
	module hal.ShaderModule
}

// Kind returns the stage kind.
func (s *Stage) Kind() StageKind { return s.kind }

// CompileStage compiles WGSL source for the given stage. On failure the
// returned error is a *CompileError holding the diagnostic log.
func CompileStage(device hal.Device, kind StageKind, source string) (*Stage, error) {
	if kind != StageVertex && kind != StageFragment {
		return nil, &CompileError{Stage: kind, Log: "unknown stage kind"}
	}
	if _, err := shader.Check(source, kind.EntryPoint()); err != nil {
		return nil, &CompileError{Stage: kind, Log: err.Error()}
	}

	module, err := device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  kind.String() + "_shader",
		Source: hal.ShaderSource{WGSL: source},
	})
	if err != nil {
		return nil, &CompileError{Stage: kind, Log: err.Error()}
	}
	slogger().Debug("render: stage compiled", "stage", kind.String())
	return &Stage{kind: kind, device: device, module: module}, nil
}

// Destroy releases the shader module. Safe to call multiple times.
func (s *Stage) Destroy() {
	if s == nil || s.module == nil {
		return
	}
	s.device.DestroyShaderModule(s.module)
	s.module = nil
}
