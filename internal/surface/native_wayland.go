// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build linux && wayland && !android

package surface

import (
	"os"
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// nativeHandles returns the wl_display and the window's wl_surface.
func nativeHandles(w *glfw.Window) (display, window uintptr, err error) {
	if err := checkSession(true, os.Getenv); err != nil {
		return 0, 0, err
	}
	display = uintptr(unsafe.Pointer(glfw.GetWaylandDisplay()))
	window = uintptr(unsafe.Pointer(w.GetWaylandWindow()))
	if display == 0 || window == 0 {
		return 0, 0, errNoNativeHandle
	}
	return display, window, nil
}
