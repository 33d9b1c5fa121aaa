// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !(linux && !android) && !windows

package surface

import (
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// nativeHandles fails: the Vulkan backend has no window surface here that
// glfw can supply handles for. On macOS it wants a CAMetalLayer, which
// glfw does not create.
func nativeHandles(*glfw.Window) (display, window uintptr, err error) {
	return 0, 0, unsupportedPlatform(runtime.GOOS, runtime.GOARCH)
}
