// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cmdq

import (
	"sync"
	"unsafe"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// Queue is a single-consumer command queue.
//
// Any number of goroutines may enqueue; one dedicated worker executes
// commands sequentially in arrival order. Construct with [New] and
// [Builder.Build], release with [Queue.Close].
//
// A Queue must not be copied after first use.
type Queue struct {
	_ pad

	// primary and secondary are the exchange slots. Each holds an
	// arena id (1 or 2) or 0, the empty sentinel meaning some party
	// has taken ownership of that slot's arena and not yet returned
	// it. Ids instead of pointers keep the slots GC-transparent; the
	// arenas themselves are rooted in buffers.
	primary atomix.Uintptr
	_       padPtr

	secondary atomix.Uintptr
	_         padPtr

	// wakes counts releases. Together with idle it forms the Dekker
	// pair that keeps a release between the worker's probe and its
	// park from being lost; see wake and park.
	wakes atomix.Uint64
	_     padShort

	idle     atomix.Bool
	shutdown atomix.Bool

	buffers [2]*arena

	dispatchMu   sync.Mutex
	dispatchCond sync.Cond

	joinMu   sync.Mutex
	joinCond sync.Cond

	closing sync.Once
	done    chan struct{}

	lockThread bool
	cpu        int
}

// acquire claims the primary arena for exclusive append access, spinning
// until one is available. The contention window is a few instructions
// wide (another producer's append, or the worker's swap), so producers
// spin rather than block.
func (q *Queue) acquire() *arena {
	sw := spin.Wait{}
	for {
		if id := q.primary.LoadRelaxed(); id != 0 && q.primary.CompareAndSwapAcqRel(id, 0) {
			return q.buffers[id-1]
		}
		sw.Once()
	}
}

// release returns an arena after exactly one record has been appended.
// Primary is preferred; when the worker has occupied primary with its
// empty arena in the meantime, the filled arena parks in secondary
// instead, which is exactly what the worker's inner loop is waiting on.
// The release-ordered CAS/store publishes the record bytes to the
// worker's acquire-ordered take.
func (q *Queue) release(a *arena) {
	if !q.primary.CompareAndSwapAcqRel(0, a.id) {
		q.secondary.StoreRelease(a.id)
	}
	q.wake()
}

// wake publishes "new work was released" to a possibly parking worker.
//
// The counter bump and the idle load are both sequentially consistent
// and mirror the worker's park (idle store, then counter load), so at
// least one side observes the other: either the worker sees the new
// count and stays awake, or we see idle and signal under the dispatch
// mutex. The mutex is only touched when the worker advertised idle.
func (q *Queue) wake() {
	q.wakes.Add(1)
	if q.idle.Load() {
		q.dispatchMu.Lock()
		q.dispatchCond.Signal()
		q.dispatchMu.Unlock()
	}
}

// Enqueue appends a raw command with an empty payload. h runs on the
// worker once every previously enqueued command has run.
//
// This is the general-purpose form: a closure carries its own state and
// is pinned until executed, so any captured values are safe.
func (q *Queue) Enqueue(h Handler) {
	a := q.acquire()
	a.reserve(h, 0)
	q.release(a)
}

// EnqueueBytes appends a command whose payload is a copy of data. The
// handler receives a pointer to the copy; interpretation is entirely the
// caller's concern. Useful for forwarding wire data (packets, log lines)
// into the worker without an intermediate allocation.
func (q *Queue) EnqueueBytes(h Handler, data []byte) {
	a := q.acquire()
	p := a.reserve(h, uint32(len(data)))
	copy(unsafe.Slice((*byte)(p), len(data)), data)
	q.release(a)
}

// TryEnqueue is Enqueue with a single claim attempt instead of a spin.
// Returns ErrWouldBlock when the primary slot could not be claimed:
// another producer holds the arena, or the slot changed hands (another
// producer's claim or the worker's swap) between the load and the claim.
// For producers that cannot tolerate even a short spin.
func (q *Queue) TryEnqueue(h Handler) error {
	id := q.primary.LoadRelaxed()
	if id == 0 || !q.primary.CompareAndSwapAcqRel(id, 0) {
		return ErrWouldBlock
	}
	a := q.buffers[id-1]
	a.reserve(h, 0)
	q.release(a)
	return nil
}

// Join blocks until every command enqueued on the calling goroutine
// before the Join call has been executed.
//
// Join appends a sentinel command; because the worker runs records
// strictly in enqueue order, the sentinel firing proves all prior
// commands have run. Commands from other producers that slipped in
// before the sentinel also run first; that is inherent to a FIFO queue
// with concurrent producers. Concurrent Joins are allowed, each waiting
// on its own sentinel.
func (q *Queue) Join() {
	done := false
	q.Enqueue(func(unsafe.Pointer) {
		q.joinMu.Lock()
		done = true
		q.joinMu.Unlock()
		q.joinCond.Broadcast()
	})
	q.joinMu.Lock()
	for !done {
		q.joinCond.Wait()
	}
	q.joinMu.Unlock()
}

// Notify appends a command that performs a non-blocking send on ch when
// reached. The Go shape of signalling an external event object: another
// goroutine can wait for the queue to pass this point without blocking
// the way Join does. Size ch with capacity at least 1; if the send would
// block, the notification is dropped rather than stalling the worker.
func (q *Queue) Notify(ch chan<- struct{}) {
	q.Enqueue(func(unsafe.Pointer) {
		select {
		case ch <- struct{}{}:
		default:
		}
	})
}

// Stats returns a diagnostic snapshot of both arenas. Exact when the
// queue is at rest (after Close, or after Join with no concurrent
// producers); approximate while producers are active.
func (q *Queue) Stats() BufferStats {
	var s BufferStats
	for i, a := range q.buffers {
		s.Cap[i] = len(a.buf)
		s.Used[i] = int(a.used)
	}
	return s
}

// Close sets the shutdown flag, wakes the worker, and blocks until it
// has drained every pending command and exited. Close is idempotent and
// safe to call from multiple goroutines; all callers block until the
// worker is gone. Enqueueing after Close is a programmer error with
// undefined behaviour.
func (q *Queue) Close() {
	q.closing.Do(func() {
		q.shutdown.Store(true)
		q.wake()
	})
	<-q.done
}
