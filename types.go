// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cmdq

import "unsafe"

// Handler is the dispatcher signature shared by every command record.
//
// The worker invokes the handler with a pointer to the record's payload:
// the bytes the producer packed after the record header. For the raw and
// blob forms the handler is caller-supplied and interprets the payload
// itself; for the typed forms (Exec, Ret) the handler is a generated
// dispatcher that unpacks the arguments and calls the caller's function.
//
// Handlers run on the worker goroutine and must not panic.
type Handler func(data unsafe.Pointer)

// BufferStats is a diagnostic snapshot of the two arenas.
//
// Cap is each arena's current capacity in bytes; Used is its append
// cursor. Values are exact when the queue is at rest (after Join with no
// concurrent producers, or after Close) and approximate otherwise.
type BufferStats struct {
	// Cap holds the capacity in bytes of each arena. Capacity only
	// ever grows: bursts settle at their high-water mark.
	Cap [2]int

	// Used holds each arena's append cursor. Both are zero once the
	// worker has drained all pending work.
	Used [2]int
}
