// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package cmdq provides a single-consumer command queue: producers enqueue
// callable work items, and one dedicated worker executes them sequentially
// in arrival order.
//
// The queue is built for batched dispatch of bursts of lightweight work
// (draw calls, log records, packet fanout, event posting) where the
// per-dispatch cost of a channel send or a locked queue is too high.
// Commands are packed as variable-length records into raw byte arenas, and
// the worker's inner loop is a branch-free walk over an arena: read a
// handler word, call it with a pointer to the packed payload, advance by
// the record length.
//
// # Quick Start
//
//	q := cmdq.New(cmdq.DefaultCapacity).Build()
//	defer q.Close()
//
//	q.Enqueue(func(unsafe.Pointer) { fmt.Println("hi") })
//	cmdq.Exec2(q, func(x, y int) { fmt.Println(x + y) }, 3, 4)
//	q.Join() // all of the above have run
//
// # Enqueue Forms
//
// Four families share one record format (handler word, uint32 total
// length, opaque payload):
//
//   - Enqueue / Raw1..Raw6: the caller's own Handler is the record's
//     handler. Raw forms pack typed arguments into the payload; the
//     handler interprets them itself.
//   - Exec0..Exec6: a generated unpacking dispatcher is the handler. The
//     payload carries the callable and its arguments; the dispatcher reads
//     them back and makes a normal typed call.
//   - Ret0..Ret6: like Exec, plus a destination pointer stored ahead of
//     the arguments; the dispatcher writes the callable's result through
//     it. The destination must stay valid until the command has run
//     (Join provides that guarantee).
//   - EnqueueBytes: copies a caller-provided byte blob into the payload.
//
// # Double-Buffer Exchange
//
// Two arenas trade places through two atomic slots, primary and
// secondary. A producer takes exclusive ownership of the primary arena by
// exchanging the slot with the empty sentinel, appends exactly one record,
// and gives the arena back: into primary if the slot is still empty,
// otherwise into secondary. The worker always holds one (empty) arena and
// swaps it into primary; whatever comes back is either a filled arena to
// execute or the empty sentinel, in which case a producer is mid-write and
// the worker collects the filled arena from secondary instead. The worker
// parks on a condition variable only when both arenas are empty.
//
// Whichever arena is empty at any moment is the landing pad for whichever
// side currently lacks one, so producers keep appending at full speed
// while the worker drains the other buffer.
//
// # Ordering
//
// Commands from a single producer goroutine run in the order that
// goroutine enqueued them. Commands from different producers interleave
// in an order no producer controls, and it is not always the order in
// which the producers claimed the primary slot: a producer that claimed
// an arena later can hand it to the worker first, and that arena runs
// first. Join returns only after everything enqueued on the
// calling goroutine before the Join call has run.
//
// # Argument Lifetimes
//
// Packed payload bytes are invisible to the garbage collector. Function
// values (handlers, callables) and Ret destinations are pinned internally
// until their command has run, so closures are always safe:
//
//	q.Enqueue(func(unsafe.Pointer) { log.Print(msg) }) // msg kept alive
//
// Typed and raw argument values are not pinned: they must be pointer-free
// types (integers, floats, bools, pointer-free structs and arrays). Pass
// strings, slices, maps, or pointers by capturing them in a closure
// instead. Race-detector builds verify this with a reflect walk and panic
// on violation; regular builds skip the check entirely.
//
// # Capacity
//
// Each arena starts at the configured capacity in bytes (DefaultCapacity
// if unspecified) and doubles whenever a record does not fit. Arenas never
// shrink: steady-state bursts settle at their high-water mark and stop
// allocating. Stats reports both arenas' current capacity and cursor.
//
// # Shutdown
//
// Close sets the shutdown flag, wakes the worker, and blocks until it has
// drained every pending arena and exited. Close is idempotent. Enqueueing
// after Close is a programmer error with undefined behaviour. Handlers
// must not panic; a panic propagates to the worker goroutine and takes
// the process down.
//
// # Race Detection
//
// The exchange protocol synchronises through atomix operations, which the
// race detector cannot observe: it tracks mutexes, channels and WaitGroup
// edges, not happens-before established by acquire-release atomics on
// separate variables. Concurrent tests that hand records across the
// arenas are therefore excluded under race builds via RaceEnabled; the
// protocol itself is unaffected.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/atomix] for atomic primitives
// with explicit memory ordering, [code.hybscloud.com/spin] for CPU pause
// hints in the busy loops, and [code.hybscloud.com/iox] for semantic
// errors (TryEnqueue's ErrWouldBlock).
package cmdq
