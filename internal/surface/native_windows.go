// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build windows

package surface

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"
	"golang.org/x/sys/windows"
)

// nativeHandles returns the module HINSTANCE and the window HWND.
func nativeHandles(w *glfw.Window) (display, window uintptr, err error) {
	var module windows.Handle
	if err := windows.GetModuleHandleEx(0, nil, &module); err != nil {
		return 0, 0, fmt.Errorf("get module handle: %w", err)
	}
	window = uintptr(unsafe.Pointer(w.GetWin32Window()))
	if window == 0 {
		return 0, 0, errNoNativeHandle
	}
	return uintptr(module), window, nil
}
