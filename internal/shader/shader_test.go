// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package shader

import (
	"strings"
	"testing"
)

const twoStages = `
@vertex
fn vs_main(@location(0) position: vec3<f32>) -> @builtin(position) vec4<f32> {
    return vec4<f32>(position, 1.0);
}

@fragment
fn fs_main() -> @location(0) vec4<f32> {
    return vec4<f32>(1.0, 0.0, 0.0, 1.0);
}
`

func TestInspectEntryPoints(t *testing.T) {
	info, err := Inspect(twoStages)
	if err != nil {
		t.Fatalf("Inspect() = %v", err)
	}
	for _, name := range []string{"vs_main", "fs_main"} {
		if !info.Has(name) {
			t.Errorf("entry point %s missing from %v", name, info.EntryPoints)
		}
	}
	if info.Has("cs_main") {
		t.Error("Has(cs_main) = true for a module without it")
	}
}

func TestInspectRejectsBadSource(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{"empty", ""},
		{"whitespace", "  \n\t"},
		{"syntax", "fn broken( {"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Inspect(tt.source); err == nil {
				t.Error("Inspect() = nil error, want diagnostic")
			}
		})
	}
}

func TestCheckMissingEntryPoint(t *testing.T) {
	_, err := Check(twoStages, "nudge")
	if err == nil {
		t.Fatal("Check() = nil error for missing entry point")
	}
	if !strings.Contains(err.Error(), "nudge") {
		t.Errorf("diagnostic %q does not name the entry point", err)
	}
}
