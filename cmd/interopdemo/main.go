// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command interopdemo opens an 800x600 window and draws a red triangle that
// a compute kernel moves right a little every frame, in place, on the GPU.
//
// It exits with status 0 when the window is closed or on interrupt, and -1
// if anything fails during setup.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"runtime"

	"github.com/gogpu/interop"
)

const (
	exitOK      = 0
	exitFailure = -1
)

func init() {
	// glfw and the surface must stay on the main OS thread.
	runtime.LockOSThread()
}

func main() {
	os.Exit(run())
}

func run() int {
	interop.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))
	log := interop.Logger()

	a, err := newApp(interop.DefaultConfig())
	if err != nil {
		log.Error("setup failed", "err", err)
		return exitFailure
	}
	defer a.close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := a.loop.Run(ctx); err != nil {
		log.Error("frame loop failed", "err", err)
		return exitFailure
	}
	a.logFinalPositions()
	return exitOK
}
