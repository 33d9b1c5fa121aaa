// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"fmt"
)

// waylandDisplayEnv is read by the Vulkan backend on Linux: when it is set,
// CreateSurface takes the handles as wl_display* and wl_surface*, otherwise
// as an X11 Display* and window XID.
const waylandDisplayEnv = "WAYLAND_DISPLAY"

var errSessionMismatch = errors.New("window system mismatch")

// checkSession reports whether the handles glfw was built to return match
// the ones Vulkan will expect in this session.
func checkSession(wayland bool, getenv func(string) string) error {
	display := getenv(waylandDisplayEnv)
	switch {
	case wayland && display == "":
		return fmt.Errorf("%w: built for Wayland but %s is unset; Vulkan would read the handles as X11", errSessionMismatch, waylandDisplayEnv)
	case !wayland && display != "":
		return fmt.Errorf("%w: built for X11 but %s=%q; Vulkan would read the handles as Wayland (build with -tags wayland or unset %s)",
			errSessionMismatch, waylandDisplayEnv, display, waylandDisplayEnv)
	}
	return nil
}

func unsupportedPlatform(goos, goarch string) error {
	return fmt.Errorf("%w: no Vulkan window surface for %s/%s", errNoNativeHandle, goos, goarch)
}
