// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cmdq

import "unsafe"

// Return-capturing enqueue: the payload is the callable's word, the
// destination pointer, then the argument values at naturally aligned
// offsets. The dispatcher invokes the callable and writes its result
// through the destination.
//
// The destination is pinned until the command has run, but the write is
// not itself a synchronisation point: observe the result only after a
// Join (or any other happens-before edge with the worker). The result
// type R may be anything, including pointer-bearing types; it travels
// through a normal typed write, never through the arena.

// retArgs is the payload offset of the first argument: callable word
// plus destination word.
const retArgs = 2 * wordBytes

// Ret0 enqueues fn() and stores the result through dst.
func Ret0[R any](q *Queue, fn func() R, dst *R) {
	a := q.acquire()
	p := a.reserve(retStub0[R], uint32(retArgs))
	*(*func() R)(p) = fn
	*(**R)(unsafe.Add(p, wordBytes)) = dst
	a.pin(funcptr(&fn))
	a.pin(unsafe.Pointer(dst))
	q.release(a)
}

func retStub0[R any](p unsafe.Pointer) {
	fn := *(*func() R)(p)
	dst := *(**R)(unsafe.Add(p, wordBytes))
	*dst = fn()
}

// Ret1 enqueues fn(a1) and stores the result through dst.
func Ret1[R, A1 any](q *Queue, fn func(A1) R, dst *R, a1 A1) {
	checkArg[A1]()
	o1 := argOff[A1](retArgs)
	a := q.acquire()
	p := a.reserve(retStub1[R, A1], uint32(o1+unsafe.Sizeof(a1)))
	*(*func(A1) R)(p) = fn
	*(**R)(unsafe.Add(p, wordBytes)) = dst
	*(*A1)(unsafe.Add(p, o1)) = a1
	a.pin(funcptr(&fn))
	a.pin(unsafe.Pointer(dst))
	q.release(a)
}

func retStub1[R, A1 any](p unsafe.Pointer) {
	fn := *(*func(A1) R)(p)
	dst := *(**R)(unsafe.Add(p, wordBytes))
	o1 := argOff[A1](retArgs)
	*dst = fn(*(*A1)(unsafe.Add(p, o1)))
}

// Ret2 enqueues fn(a1, a2) and stores the result through dst.
func Ret2[R, A1, A2 any](q *Queue, fn func(A1, A2) R, dst *R, a1 A1, a2 A2) {
	checkArg[A1]()
	checkArg[A2]()
	o1 := argOff[A1](retArgs)
	o2 := argOff[A2](o1 + unsafe.Sizeof(a1))
	a := q.acquire()
	p := a.reserve(retStub2[R, A1, A2], uint32(o2+unsafe.Sizeof(a2)))
	*(*func(A1, A2) R)(p) = fn
	*(**R)(unsafe.Add(p, wordBytes)) = dst
	*(*A1)(unsafe.Add(p, o1)) = a1
	*(*A2)(unsafe.Add(p, o2)) = a2
	a.pin(funcptr(&fn))
	a.pin(unsafe.Pointer(dst))
	q.release(a)
}

func retStub2[R, A1, A2 any](p unsafe.Pointer) {
	fn := *(*func(A1, A2) R)(p)
	dst := *(**R)(unsafe.Add(p, wordBytes))
	o1 := argOff[A1](retArgs)
	a1 := *(*A1)(unsafe.Add(p, o1))
	o2 := argOff[A2](o1 + unsafe.Sizeof(a1))
	*dst = fn(a1, *(*A2)(unsafe.Add(p, o2)))
}

// Ret3 enqueues fn(a1, a2, a3) and stores the result through dst.
func Ret3[R, A1, A2, A3 any](q *Queue, fn func(A1, A2, A3) R, dst *R, a1 A1, a2 A2, a3 A3) {
	checkArg[A1]()
	checkArg[A2]()
	checkArg[A3]()
	o1 := argOff[A1](retArgs)
	o2 := argOff[A2](o1 + unsafe.Sizeof(a1))
	o3 := argOff[A3](o2 + unsafe.Sizeof(a2))
	a := q.acquire()
	p := a.reserve(retStub3[R, A1, A2, A3], uint32(o3+unsafe.Sizeof(a3)))
	*(*func(A1, A2, A3) R)(p) = fn
	*(**R)(unsafe.Add(p, wordBytes)) = dst
	*(*A1)(unsafe.Add(p, o1)) = a1
	*(*A2)(unsafe.Add(p, o2)) = a2
	*(*A3)(unsafe.Add(p, o3)) = a3
	a.pin(funcptr(&fn))
	a.pin(unsafe.Pointer(dst))
	q.release(a)
}

func retStub3[R, A1, A2, A3 any](p unsafe.Pointer) {
	fn := *(*func(A1, A2, A3) R)(p)
	dst := *(**R)(unsafe.Add(p, wordBytes))
	o1 := argOff[A1](retArgs)
	a1 := *(*A1)(unsafe.Add(p, o1))
	o2 := argOff[A2](o1 + unsafe.Sizeof(a1))
	a2 := *(*A2)(unsafe.Add(p, o2))
	o3 := argOff[A3](o2 + unsafe.Sizeof(a2))
	*dst = fn(a1, a2, *(*A3)(unsafe.Add(p, o3)))
}

// Ret4 enqueues fn(a1, a2, a3, a4) and stores the result through dst.
func Ret4[R, A1, A2, A3, A4 any](q *Queue, fn func(A1, A2, A3, A4) R, dst *R, a1 A1, a2 A2, a3 A3, a4 A4) {
	checkArg[A1]()
	checkArg[A2]()
	checkArg[A3]()
	checkArg[A4]()
	o1 := argOff[A1](retArgs)
	o2 := argOff[A2](o1 + unsafe.Sizeof(a1))
	o3 := argOff[A3](o2 + unsafe.Sizeof(a2))
	o4 := argOff[A4](o3 + unsafe.Sizeof(a3))
	a := q.acquire()
	p := a.reserve(retStub4[R, A1, A2, A3, A4], uint32(o4+unsafe.Sizeof(a4)))
	*(*func(A1, A2, A3, A4) R)(p) = fn
	*(**R)(unsafe.Add(p, wordBytes)) = dst
	*(*A1)(unsafe.Add(p, o1)) = a1
	*(*A2)(unsafe.Add(p, o2)) = a2
	*(*A3)(unsafe.Add(p, o3)) = a3
	*(*A4)(unsafe.Add(p, o4)) = a4
	a.pin(funcptr(&fn))
	a.pin(unsafe.Pointer(dst))
	q.release(a)
}

func retStub4[R, A1, A2, A3, A4 any](p unsafe.Pointer) {
	fn := *(*func(A1, A2, A3, A4) R)(p)
	dst := *(**R)(unsafe.Add(p, wordBytes))
	o1 := argOff[A1](retArgs)
	a1 := *(*A1)(unsafe.Add(p, o1))
	o2 := argOff[A2](o1 + unsafe.Sizeof(a1))
	a2 := *(*A2)(unsafe.Add(p, o2))
	o3 := argOff[A3](o2 + unsafe.Sizeof(a2))
	a3 := *(*A3)(unsafe.Add(p, o3))
	o4 := argOff[A4](o3 + unsafe.Sizeof(a3))
	*dst = fn(a1, a2, a3, *(*A4)(unsafe.Add(p, o4)))
}

// Ret5 enqueues fn(a1, a2, a3, a4, a5) and stores the result through dst.
func Ret5[R, A1, A2, A3, A4, A5 any](q *Queue, fn func(A1, A2, A3, A4, A5) R, dst *R, a1 A1, a2 A2, a3 A3, a4 A4, a5 A5) {
	checkArg[A1]()
	checkArg[A2]()
	checkArg[A3]()
	checkArg[A4]()
	checkArg[A5]()
	o1 := argOff[A1](retArgs)
	o2 := argOff[A2](o1 + unsafe.Sizeof(a1))
	o3 := argOff[A3](o2 + unsafe.Sizeof(a2))
	o4 := argOff[A4](o3 + unsafe.Sizeof(a3))
	o5 := argOff[A5](o4 + unsafe.Sizeof(a4))
	a := q.acquire()
	p := a.reserve(retStub5[R, A1, A2, A3, A4, A5], uint32(o5+unsafe.Sizeof(a5)))
	*(*func(A1, A2, A3, A4, A5) R)(p) = fn
	*(**R)(unsafe.Add(p, wordBytes)) = dst
	*(*A1)(unsafe.Add(p, o1)) = a1
	*(*A2)(unsafe.Add(p, o2)) = a2
	*(*A3)(unsafe.Add(p, o3)) = a3
	*(*A4)(unsafe.Add(p, o4)) = a4
	*(*A5)(unsafe.Add(p, o5)) = a5
	a.pin(funcptr(&fn))
	a.pin(unsafe.Pointer(dst))
	q.release(a)
}

func retStub5[R, A1, A2, A3, A4, A5 any](p unsafe.Pointer) {
	fn := *(*func(A1, A2, A3, A4, A5) R)(p)
	dst := *(**R)(unsafe.Add(p, wordBytes))
	o1 := argOff[A1](retArgs)
	a1 := *(*A1)(unsafe.Add(p, o1))
	o2 := argOff[A2](o1 + unsafe.Sizeof(a1))
	a2 := *(*A2)(unsafe.Add(p, o2))
	o3 := argOff[A3](o2 + unsafe.Sizeof(a2))
	a3 := *(*A3)(unsafe.Add(p, o3))
	o4 := argOff[A4](o3 + unsafe.Sizeof(a3))
	a4 := *(*A4)(unsafe.Add(p, o4))
	o5 := argOff[A5](o4 + unsafe.Sizeof(a4))
	*dst = fn(a1, a2, a3, a4, *(*A5)(unsafe.Add(p, o5)))
}

// Ret6 enqueues fn(a1, a2, a3, a4, a5, a6) and stores the result through dst.
func Ret6[R, A1, A2, A3, A4, A5, A6 any](q *Queue, fn func(A1, A2, A3, A4, A5, A6) R, dst *R, a1 A1, a2 A2, a3 A3, a4 A4, a5 A5, a6 A6) {
	checkArg[A1]()
	checkArg[A2]()
	checkArg[A3]()
	checkArg[A4]()
	checkArg[A5]()
	checkArg[A6]()
	o1 := argOff[A1](retArgs)
	o2 := argOff[A2](o1 + unsafe.Sizeof(a1))
	o3 := argOff[A3](o2 + unsafe.Sizeof(a2))
	o4 := argOff[A4](o3 + unsafe.Sizeof(a3))
	o5 := argOff[A5](o4 + unsafe.Sizeof(a4))
	o6 := argOff[A6](o5 + unsafe.Sizeof(a5))
	a := q.acquire()
	p := a.reserve(retStub6[R, A1, A2, A3, A4, A5, A6], uint32(o6+unsafe.Sizeof(a6)))
	*(*func(A1, A2, A3, A4, A5, A6) R)(p) = fn
	*(**R)(unsafe.Add(p, wordBytes)) = dst
	*(*A1)(unsafe.Add(p, o1)) = a1
	*(*A2)(unsafe.Add(p, o2)) = a2
	*(*A3)(unsafe.Add(p, o3)) = a3
	*(*A4)(unsafe.Add(p, o4)) = a4
	*(*A5)(unsafe.Add(p, o5)) = a5
	*(*A6)(unsafe.Add(p, o6)) = a6
	a.pin(funcptr(&fn))
	a.pin(unsafe.Pointer(dst))
	q.release(a)
}

func retStub6[R, A1, A2, A3, A4, A5, A6 any](p unsafe.Pointer) {
	fn := *(*func(A1, A2, A3, A4, A5, A6) R)(p)
	dst := *(**R)(unsafe.Add(p, wordBytes))
	o1 := argOff[A1](retArgs)
	a1 := *(*A1)(unsafe.Add(p, o1))
	o2 := argOff[A2](o1 + unsafe.Sizeof(a1))
	a2 := *(*A2)(unsafe.Add(p, o2))
	o3 := argOff[A3](o2 + unsafe.Sizeof(a2))
	a3 := *(*A3)(unsafe.Add(p, o3))
	o4 := argOff[A4](o3 + unsafe.Sizeof(a3))
	a4 := *(*A4)(unsafe.Add(p, o4))
	o5 := argOff[A5](o4 + unsafe.Sizeof(a4))
	a5 := *(*A5)(unsafe.Add(p, o5))
	o6 := argOff[A6](o5 + unsafe.Sizeof(a5))
	*dst = fn(a1, a2, a3, a4, a5, *(*A6)(unsafe.Add(p, o6)))
}
