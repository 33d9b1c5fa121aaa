// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package shader inspects WGSL source with naga: it reports parse and
// lowering diagnostics and lists the declared entry points.
package shader

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gogpu/naga"
)

// Info describes a WGSL module that parsed and lowered cleanly.
type Info struct {
	// EntryPoints lists the entry point names in declaration order.
	EntryPoints []string
}

// Has reports whether the module declares the named entry point.
func (i *Info) Has(entry string) bool {
	return slices.Contains(i.EntryPoints, entry)
}

// Inspect parses and lowers source. The returned error text is the
// diagnostic log.
func Inspect(source string) (*Info, error) {
	if strings.TrimSpace(source) == "" {
		return nil, fmt.Errorf("empty source")
	}
	ast, err := naga.Parse(source)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	module, err := naga.Lower(ast)
	if err != nil {
		return nil, fmt.Errorf("lower: %w", err)
	}

	info := &Info{}
	for _, ep := range module.EntryPoints {
		info.EntryPoints = append(info.EntryPoints, ep.Name)
	}
	return info, nil
}

// Check is Inspect followed by an entry point lookup.
func Check(source, entry string) (*Info, error) {
	info, err := Inspect(source)
	if err != nil {
		return nil, err
	}
	if !info.Has(entry) {
		return nil, fmt.Errorf("entry point %q not found (have %v)", entry, info.EntryPoints)
	}
	return info, nil
}
