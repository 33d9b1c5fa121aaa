// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package interop

import (
	"errors"
	"fmt"
)

// Default window parameters.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
	DefaultTitle  = "Compute-Graphics Interop"
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("interop: invalid config")

// Config holds the window parameters. The zero value is not usable; start
// from DefaultConfig.
//
// Example:
//
//	cfg := interop.DefaultConfig().WithTitle("nudge").WithSize(1024, 768)
type Config struct {
	Width  int
	Height int
	Title  string
}

// DefaultConfig returns an 800x600 window with the default title.
func DefaultConfig() Config {
	return Config{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Title:  DefaultTitle,
	}
}

// WithTitle returns a copy of c with the given title.
func (c Config) WithTitle(title string) Config {
	c.Title = title
	return c
}

// WithSize returns a copy of c with the given window size.
func (c Config) WithSize(width, height int) Config {
	c.Width = width
	c.Height = height
	return c
}

// Validate reports whether c can be used to open a window.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	return nil
}
