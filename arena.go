// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cmdq

import "unsafe"

// Record layout. Every record starts 8-aligned:
//
//	offset 0          handler word (the Handler's funcval pointer)
//	offset wordBytes  uint32 total record length, header included
//	offset headerBytes payload, 8-aligned
//
// The total length is rounded up to recordAlign so the walk lands each
// following record back on an 8-byte boundary.
const (
	// wordBytes is one pointer-sized slot: a handler, a packed
	// callable, or a return destination.
	wordBytes = unsafe.Sizeof(uintptr(0))

	// lengthBytes is the size of the record length slot.
	lengthBytes = 4

	// headerBytes is handler word + length slot + padding up to the
	// payload. Fixed at 16 so the payload starts 8-aligned on every
	// supported platform.
	headerBytes = 16

	recordAlign = 8
)

// arena is one of the queue's two backing stores: a growable byte region
// with an append cursor. buf[0:used] is a concatenation of well-formed
// records. At most one party references an arena at any moment, so none
// of its fields need synchronisation beyond the slot handoff.
//
// The raw bytes are invisible to the garbage collector. pins retains the
// word of every function value (and Ret destination) packed into buf, so
// a closure whose only reference lives in the arena survives until it
// has run.
type arena struct {
	id   uintptr // slot value, 1 or 2; 0 is the empty sentinel
	buf  []byte
	used uint32
	pins []unsafe.Pointer
}

func newArena(id uintptr, capacity int) *arena {
	return &arena{
		id:  id,
		buf: make([]byte, capacity),
	}
}

// reserve appends a record header for h with room for payload bytes and
// returns a pointer to the payload region. The pointer is valid only
// until the next reserve on this arena: a grow moves the backing region.
// The caller writes the payload and releases the arena before anything
// else can reserve.
func (a *arena) reserve(h Handler, payload uint32) unsafe.Pointer {
	base := a.used
	total := (headerBytes + payload + (recordAlign - 1)) &^ (recordAlign - 1)
	if next := base + total; next > uint32(len(a.buf)) {
		a.grow(next)
	}
	a.used = base + total
	p := unsafe.Pointer(&a.buf[base])
	*(*Handler)(p) = h
	*(*uint32)(unsafe.Add(p, wordBytes)) = total
	a.pins = append(a.pins, funcptr(&h))
	return unsafe.Add(p, headerBytes)
}

// grow doubles capacity until need fits and copies the filled prefix.
// Capacity never shrinks: an arena converges to the high-water mark of
// typical bursts and stops allocating.
func (a *arena) grow(need uint32) {
	size := uint32(len(a.buf))
	for size < need {
		size *= 2
	}
	next := make([]byte, size)
	copy(next, a.buf[:a.used])
	a.buf = next
}

// pin keeps p alive until the arena has been executed.
func (a *arena) pin(p unsafe.Pointer) {
	a.pins = append(a.pins, p)
}

// run executes every record in order and recycles the arena. This is the
// inner loop: read the handler word, call it with the payload pointer,
// advance by the length slot.
func (a *arena) run() {
	base := unsafe.Pointer(unsafe.SliceData(a.buf))
	end := uintptr(a.used)
	for cur := uintptr(0); cur < end; {
		rec := unsafe.Add(base, cur)
		(*(*Handler)(rec))(unsafe.Add(rec, headerBytes))
		cur += uintptr(*(*uint32)(unsafe.Add(rec, wordBytes)))
	}
	a.used = 0
	clear(a.pins)
	a.pins = a.pins[:0]
}

// funcptr returns the word backing a function value so it can be pinned
// or packed. F is always a func type at the call sites.
func funcptr[F any](fn *F) unsafe.Pointer {
	return *(*unsafe.Pointer)(unsafe.Pointer(fn))
}

// alignTo rounds off up to a multiple of align, a power of two.
func alignTo(off, align uintptr) uintptr {
	return (off + align - 1) &^ (align - 1)
}

// argOff returns the naturally aligned offset for a value of type T
// placed at or after off. Pack and unpack run the same arithmetic, which
// is the whole of the layout contract.
func argOff[T any](off uintptr) uintptr {
	var v T
	return alignTo(off, unsafe.Alignof(v))
}
