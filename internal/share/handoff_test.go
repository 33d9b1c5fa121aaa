// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package share

import (
	"errors"
	"sync"
	"testing"
)

func TestHandoffStartsGraphicsOwned(t *testing.T) {
	var h Handoff
	if got := h.Owner(); got != Graphics {
		t.Fatalf("Owner() = %v, want graphics", got)
	}
	if err := h.Require(Graphics); err != nil {
		t.Errorf("Require(Graphics) = %v", err)
	}
	if err := h.Require(Compute); !errors.Is(err, ErrNotOwner) {
		t.Errorf("Require(Compute) = %v, want ErrNotOwner", err)
	}
}

func TestHandoffRoundTrip(t *testing.T) {
	var h Handoff
	for i := range 3 {
		if err := h.Acquire(); err != nil {
			t.Fatalf("frame %d: Acquire() = %v", i, err)
		}
		if h.Owner() != Compute {
			t.Fatalf("frame %d: owner after acquire = %v", i, h.Owner())
		}
		if err := h.Release(); err != nil {
			t.Fatalf("frame %d: Release() = %v", i, err)
		}
	}
	if h.Owner() != Graphics {
		t.Errorf("owner = %v, want graphics", h.Owner())
	}
	if got := h.Transfers(); got != 6 {
		t.Errorf("Transfers() = %d, want 6", got)
	}
}

func TestHandoffOutOfOrder(t *testing.T) {
	tests := []struct {
		name string
		run  func(h *Handoff) error
		op   string
	}{
		{"release before acquire", func(h *Handoff) error { return h.Release() }, "release"},
		{"double acquire", func(h *Handoff) error {
			if err := h.Acquire(); err != nil {
				return nil
			}
			return h.Acquire()
		}, "acquire"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var h Handoff
			err := tt.run(&h)
			var oe *OwnershipError
			if !errors.As(err, &oe) {
				t.Fatalf("error = %v, want *OwnershipError", err)
			}
			if oe.Op != tt.op {
				t.Errorf("Op = %q, want %q", oe.Op, tt.op)
			}
			if !errors.Is(err, ErrNotOwner) {
				t.Error("OwnershipError does not match ErrNotOwner")
			}
		})
	}
}

func TestHandoffFailedTransferNotCounted(t *testing.T) {
	var h Handoff
	_ = h.Release()
	if h.Transfers() != 0 {
		t.Errorf("Transfers() = %d after failed release", h.Transfers())
	}
}

func TestHandoffConcurrentAcquire(t *testing.T) {
	var h Handoff
	var wg sync.WaitGroup
	var mu sync.Mutex
	won := 0
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if h.Acquire() == nil {
				mu.Lock()
				won++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	if won != 1 {
		t.Errorf("%d goroutines acquired the buffer, want exactly 1", won)
	}
}

func TestDomainString(t *testing.T) {
	if Graphics.String() != "graphics" || Compute.String() != "compute" {
		t.Errorf("got %q and %q", Graphics, Compute)
	}
	if got := Domain(7).String(); got != "Domain(7)" {
		t.Errorf("Domain(7).String() = %q", got)
	}
}
