// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package share

import (
	"errors"
	"strings"
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/hal/noop"
)

func createNoopDevice(t *testing.T) (hal.Device, hal.Queue) {
	t.Helper()
	instance, err := noop.API{}.CreateInstance(nil)
	if err != nil {
		t.Fatalf("CreateInstance failed: %v", err)
	}
	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		instance.Destroy()
		t.Fatal("noop backend exposed no adapters")
	}
	openDev, err := adapters[0].Adapter.Open(0, gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		openDev.Device.Destroy()
		instance.Destroy()
	})
	return openDev.Device, openDev.Queue
}

// stalledQueue never reports a submission as completed.
type stalledQueue struct{ hal.Queue }

func (stalledQueue) PollCompleted() uint64 { return 0 }

type rejectingQueue struct{ hal.Queue }

func (rejectingQueue) Submit([]hal.CommandBuffer) (uint64, error) {
	return 0, hal.ErrDeviceLost
}

type lostDevice struct{ hal.Device }

func (lostDevice) WaitIdle() error { return hal.ErrDeviceLost }

func TestSubmitAndWait(t *testing.T) {
	device, queue := createNoopDevice(t)
	for range 3 {
		if err := SubmitAndWait(device, queue); err != nil {
			t.Fatalf("SubmitAndWait() = %v", err)
		}
	}
}

func TestSubmitAndWaitFailures(t *testing.T) {
	device, queue := createNoopDevice(t)

	tests := []struct {
		name   string
		device hal.Device
		queue  hal.Queue
		want   error
	}{
		{"submit rejected", device, rejectingQueue{queue}, hal.ErrDeviceLost},
		{"device lost while waiting", lostDevice{device}, stalledQueue{queue}, hal.ErrDeviceLost},
		{"idle but not retired", device, stalledQueue{queue}, ErrNotCompleted},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := SubmitAndWait(tt.device, tt.queue)
			if !errors.Is(err, tt.want) {
				t.Fatalf("SubmitAndWait() = %v, want %v", err, tt.want)
			}
			if strings.Contains(err.Error(), "%!") {
				t.Errorf("malformed error text %q", err)
			}
		})
	}
}

func TestAdapterType(t *testing.T) {
	tests := []struct {
		device gputypes.DeviceType
		want   gpucontext.AdapterType
		gpu    bool
	}{
		{gputypes.DeviceTypeDiscreteGPU, gpucontext.AdapterTypeDiscrete, true},
		{gputypes.DeviceTypeIntegratedGPU, gpucontext.AdapterTypeIntegrated, true},
		{gputypes.DeviceTypeCPU, gpucontext.AdapterTypeSoftware, false},
		{gputypes.DeviceTypeVirtualGPU, gpucontext.AdapterTypeUnknown, false},
		{gputypes.DeviceTypeOther, gpucontext.AdapterTypeUnknown, false},
	}
	for _, tt := range tests {
		got := AdapterType(tt.device)
		if got != tt.want {
			t.Errorf("AdapterType(%v) = %v, want %v", tt.device, got, tt.want)
		}
		if IsGPU(got) != tt.gpu {
			t.Errorf("IsGPU(%v) = %v, want %v", got, IsGPU(got), tt.gpu)
		}
	}
}
