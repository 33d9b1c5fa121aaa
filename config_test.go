// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package interop

import (
	"errors"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Width != 800 || cfg.Height != 600 {
		t.Errorf("size = %dx%d, want 800x600", cfg.Width, cfg.Height)
	}
	if cfg.Title == "" {
		t.Error("default title is empty")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestConfigBuildersCopy(t *testing.T) {
	base := DefaultConfig()
	got := base.WithTitle("nudge").WithSize(320, 240)

	if got.Title != "nudge" || got.Width != 320 || got.Height != 240 {
		t.Errorf("builders produced %+v", got)
	}
	if base != DefaultConfig() {
		t.Errorf("builders mutated the receiver: %+v", base)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		w, h    int
		wantErr bool
	}{
		{"default", 800, 600, false},
		{"one pixel", 1, 1, false},
		{"zero width", 0, 600, true},
		{"zero height", 800, 0, true},
		{"negative", -1, -1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := DefaultConfig().WithSize(tt.w, tt.h).Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("error %v does not wrap ErrInvalidConfig", err)
			}
		})
	}
}
