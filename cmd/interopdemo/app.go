// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/gogpu/interop"
	"github.com/gogpu/interop/internal/compute"
	"github.com/gogpu/interop/internal/frame"
	"github.com/gogpu/interop/internal/render"
	"github.com/gogpu/interop/internal/surface"
)

// app holds everything created during setup, in creation order.
type app struct {
	surface *surface.Surface

	vertexStage   *render.Stage
	fragmentStage *render.Stage
	program       *render.Program
	vertices      *render.VertexBuffer

	platforms []*compute.Platform
	compute   *compute.Context
	kernelSrc *compute.Program
	kernel    *compute.Kernel

	loop *frame.Loop
}

// newApp runs the setup sequence. Any failure releases what was created
// and is returned; the loop is never entered after a failed setup.
func newApp(cfg interop.Config) (*app, error) {
	a := &app{}
	if err := a.setup(cfg); err != nil {
		a.close()
		return nil, err
	}
	return a, nil
}

func (a *app) setup(cfg interop.Config) error {
	var err error
	if a.surface, err = surface.Open(cfg); err != nil {
		return err
	}
	device, queue := a.surface.HalDevice(), a.surface.HalQueue()

	if a.vertexStage, err = render.CompileStage(device, render.StageVertex, render.PassthroughSource()); err != nil {
		return err
	}
	if a.fragmentStage, err = render.CompileStage(device, render.StageFragment, render.SolidSource()); err != nil {
		return err
	}
	if a.program, err = render.Link(device, a.surface.SurfaceFormat(), a.vertexStage, a.fragmentStage); err != nil {
		return err
	}
	if a.compute, a.platforms, err = compute.Bind(compute.Platforms, a.surface, a.surface.Handles()); err != nil {
		return err
	}

	// The shared context exists before the buffer it will import.
	if a.vertices, err = render.NewVertexBuffer(device, queue, render.Triangle); err != nil {
		return err
	}
	if a.kernelSrc, err = compute.BuildProgram(a.compute, compute.NudgeSource()); err != nil {
		return err
	}
	if a.kernel, err = compute.CreateKernel(a.kernelSrc, compute.NudgeEntryPoint); err != nil {
		return err
	}
	shared, err := compute.ImportGraphicsBuffer(a.compute, a.vertices)
	if err != nil {
		return err
	}
	if err := a.kernel.BindArgument(0, shared); err != nil {
		return err
	}

	pass := render.NewPass(device, queue, a.surface, a.program, a.vertices, a.vertices.Count())
	job := compute.NewJob(a.compute.Queue(), a.kernel, shared, shared.Elements())
	a.loop = frame.New(a.surface, pass, job)
	return nil
}

// logFinalPositions reads the vertex buffer back once and logs it.
func (a *app) logFinalPositions() {
	log := interop.Logger()
	vs, err := a.vertices.Snapshot()
	if err != nil {
		log.Warn("final readback failed", "err", err)
		return
	}
	log.Info("final vertex positions", "frames", a.loop.Frames(), "vertices", fmt.Sprint(vs))
}

// close releases everything in reverse creation order. The compute context
// goes before the surface because it runs on the surface's device.
func (a *app) close() {
	a.kernel.Destroy()
	a.kernelSrc.Destroy()
	a.compute.Close()
	compute.DestroyAll(a.platforms)
	a.vertices.Destroy()
	a.program.Destroy()
	a.fragmentStage.Destroy()
	a.vertexStage.Destroy()
	if a.surface != nil {
		a.surface.Close()
	}
}
