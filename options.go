// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cmdq

import "unsafe"

// DefaultCapacity is the initial per-arena capacity in bytes used when no
// better figure is known. Arenas double on demand and never shrink, so a
// small initial capacity only costs a few reallocations on the first
// burst.
const DefaultCapacity = 256

// minCapacity is one record header: anything smaller could not hold even
// an empty command before the first grow.
const minCapacity = headerBytes

// Options configures queue construction.
type Options struct {
	// Initial per-arena capacity in bytes.
	capacity int

	// Worker placement.
	lockThread bool
	cpu        int
}

// Builder creates queues with fluent configuration.
//
// Example:
//
//	q := cmdq.New(4096).Build()
//	q := cmdq.New(cmdq.DefaultCapacity).LockThread().Build()
//	q := cmdq.New(1 << 16).CPU(3).Build() // render thread on core 3
type Builder struct {
	opts Options
}

// New creates a queue builder with the given initial per-arena capacity
// in bytes. Panics if capacity is smaller than one record header.
func New(capacity int) *Builder {
	if capacity < minCapacity {
		panic("cmdq: capacity must be >= 16")
	}
	return &Builder{opts: Options{capacity: capacity, cpu: -1}}
}

// LockThread dedicates an OS thread to the worker goroutine. Use when
// handlers rely on thread-local state, or to keep the scheduler from
// migrating a latency-sensitive consumer.
func (b *Builder) LockThread() *Builder {
	b.opts.lockThread = true
	return b
}

// CPU pins the worker's OS thread to the given core. Affinity takes
// effect on Linux; elsewhere the call is a no-op. Implies LockThread.
func (b *Builder) CPU(n int) *Builder {
	b.opts.lockThread = true
	b.opts.cpu = n
	return b
}

// Build allocates both arenas, installs them into the exchange slots,
// and starts the worker. The returned queue is ready for enqueueing from
// any goroutine; release it with Close.
func (b *Builder) Build() *Queue {
	q := &Queue{
		lockThread: b.opts.lockThread,
		cpu:        b.opts.cpu,
		done:       make(chan struct{}),
	}
	q.buffers[0] = newArena(1, b.opts.capacity)
	q.buffers[1] = newArena(2, b.opts.capacity)
	q.primary.StoreRelaxed(1)
	q.secondary.StoreRelaxed(2)
	q.dispatchCond.L = &q.dispatchMu
	q.joinCond.L = &q.joinMu
	go q.dispatch()
	return q
}

// ptrSize is the size of a pointer in bytes.
const ptrSize = int(unsafe.Sizeof(uintptr(0)))

// pad is cache line padding to prevent false sharing.
type pad [64]byte

// padShort is padding to fill cache line after 8-byte field.
type padShort [64 - 8]byte

// padPtr is padding to fill cache line after pointer-sized field.
type padPtr [64 - ptrSize]byte
