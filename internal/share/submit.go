// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package share

import (
	"errors"
	"fmt"

	"github.com/gogpu/wgpu/hal"
)

// ErrNotCompleted is returned when the device reports idle but the queue
// has not retired a submission.
var ErrNotCompleted = errors.New("share: GPU work not completed")

// SubmitAndWait submits cmdBufs and blocks until the queue reports them
// complete. There is no timeout; a lost device surfaces as an error from
// WaitIdle.
func SubmitAndWait(device hal.Device, queue hal.Queue, cmdBufs ...hal.CommandBuffer) error {
	index, err := queue.Submit(cmdBufs)
	if err != nil {
		return fmt.Errorf("submit: %w", err)
	}
	if queue.PollCompleted() >= index {
		return nil
	}
	if err := device.WaitIdle(); err != nil {
		return fmt.Errorf("wait for GPU: %w", err)
	}
	if done := queue.PollCompleted(); done < index {
		return fmt.Errorf("%w: submission %d, completed %d", ErrNotCompleted, index, done)
	}
	return nil
}
