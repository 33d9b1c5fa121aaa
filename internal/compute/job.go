// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package compute

// Job binds a queue, a kernel and its buffer into the four per-frame calls
// of the frame loop.
type Job struct {
	queue  *Queue
	kernel *Kernel
	buffer *SharedBuffer
	items  uint32
}

// NewJob returns a job dispatching kernel over items work items.
func NewJob(queue *Queue, kernel *Kernel, buffer *SharedBuffer, items uint32) *Job {
	return &Job{queue: queue, kernel: kernel, buffer: buffer, items: items}
}

func (j *Job) Acquire() error  { return j.queue.Acquire(j.buffer) }
func (j *Job) Dispatch() error { return j.queue.Dispatch(j.kernel, j.items) }
func (j *Job) Release() error  { return j.queue.Release(j.buffer) }
func (j *Job) Finish() error   { return j.queue.Finish() }
