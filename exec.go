// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cmdq

import "unsafe"

// Typed enqueue: the payload is the callable's word followed by the
// argument values at naturally aligned offsets, in declaration order.
// The record's handler is an unpacking dispatcher instantiated for the
// argument types, which reruns the same offset arithmetic on the worker.
// The layout is private to this process; the only contract is that pack
// and unpack agree.
//
// Argument types must be pointer-free (see the package documentation on
// argument lifetimes); race builds enforce this. The callable itself may
// be a closure: its word is pinned until the command has run.

// Exec0 enqueues fn() for execution on the worker.
func Exec0(q *Queue, fn func()) {
	a := q.acquire()
	p := a.reserve(execStub0, uint32(wordBytes))
	*(*func())(p) = fn
	a.pin(funcptr(&fn))
	q.release(a)
}

func execStub0(p unsafe.Pointer) {
	(*(*func())(p))()
}

// Exec1 enqueues fn(a1).
func Exec1[A1 any](q *Queue, fn func(A1), a1 A1) {
	checkArg[A1]()
	o1 := argOff[A1](wordBytes)
	a := q.acquire()
	p := a.reserve(execStub1[A1], uint32(o1+unsafe.Sizeof(a1)))
	*(*func(A1))(p) = fn
	*(*A1)(unsafe.Add(p, o1)) = a1
	a.pin(funcptr(&fn))
	q.release(a)
}

func execStub1[A1 any](p unsafe.Pointer) {
	fn := *(*func(A1))(p)
	o1 := argOff[A1](wordBytes)
	fn(*(*A1)(unsafe.Add(p, o1)))
}

// Exec2 enqueues fn(a1, a2).
func Exec2[A1, A2 any](q *Queue, fn func(A1, A2), a1 A1, a2 A2) {
	checkArg[A1]()
	checkArg[A2]()
	o1 := argOff[A1](wordBytes)
	o2 := argOff[A2](o1 + unsafe.Sizeof(a1))
	a := q.acquire()
	p := a.reserve(execStub2[A1, A2], uint32(o2+unsafe.Sizeof(a2)))
	*(*func(A1, A2))(p) = fn
	*(*A1)(unsafe.Add(p, o1)) = a1
	*(*A2)(unsafe.Add(p, o2)) = a2
	a.pin(funcptr(&fn))
	q.release(a)
}

func execStub2[A1, A2 any](p unsafe.Pointer) {
	fn := *(*func(A1, A2))(p)
	o1 := argOff[A1](wordBytes)
	a1 := *(*A1)(unsafe.Add(p, o1))
	o2 := argOff[A2](o1 + unsafe.Sizeof(a1))
	fn(a1, *(*A2)(unsafe.Add(p, o2)))
}

// Exec3 enqueues fn(a1, a2, a3).
func Exec3[A1, A2, A3 any](q *Queue, fn func(A1, A2, A3), a1 A1, a2 A2, a3 A3) {
	checkArg[A1]()
	checkArg[A2]()
	checkArg[A3]()
	o1 := argOff[A1](wordBytes)
	o2 := argOff[A2](o1 + unsafe.Sizeof(a1))
	o3 := argOff[A3](o2 + unsafe.Sizeof(a2))
	a := q.acquire()
	p := a.reserve(execStub3[A1, A2, A3], uint32(o3+unsafe.Sizeof(a3)))
	*(*func(A1, A2, A3))(p) = fn
	*(*A1)(unsafe.Add(p, o1)) = a1
	*(*A2)(unsafe.Add(p, o2)) = a2
	*(*A3)(unsafe.Add(p, o3)) = a3
	a.pin(funcptr(&fn))
	q.release(a)
}

func execStub3[A1, A2, A3 any](p unsafe.Pointer) {
	fn := *(*func(A1, A2, A3))(p)
	o1 := argOff[A1](wordBytes)
	a1 := *(*A1)(unsafe.Add(p, o1))
	o2 := argOff[A2](o1 + unsafe.Sizeof(a1))
	a2 := *(*A2)(unsafe.Add(p, o2))
	o3 := argOff[A3](o2 + unsafe.Sizeof(a2))
	fn(a1, a2, *(*A3)(unsafe.Add(p, o3)))
}

// Exec4 enqueues fn(a1, a2, a3, a4).
func Exec4[A1, A2, A3, A4 any](q *Queue, fn func(A1, A2, A3, A4), a1 A1, a2 A2, a3 A3, a4 A4) {
	checkArg[A1]()
	checkArg[A2]()
	checkArg[A3]()
	checkArg[A4]()
	o1 := argOff[A1](wordBytes)
	o2 := argOff[A2](o1 + unsafe.Sizeof(a1))
	o3 := argOff[A3](o2 + unsafe.Sizeof(a2))
	o4 := argOff[A4](o3 + unsafe.Sizeof(a3))
	a := q.acquire()
	p := a.reserve(execStub4[A1, A2, A3, A4], uint32(o4+unsafe.Sizeof(a4)))
	*(*func(A1, A2, A3, A4))(p) = fn
	*(*A1)(unsafe.Add(p, o1)) = a1
	*(*A2)(unsafe.Add(p, o2)) = a2
	*(*A3)(unsafe.Add(p, o3)) = a3
	*(*A4)(unsafe.Add(p, o4)) = a4
	a.pin(funcptr(&fn))
	q.release(a)
}

func execStub4[A1, A2, A3, A4 any](p unsafe.Pointer) {
	fn := *(*func(A1, A2, A3, A4))(p)
	o1 := argOff[A1](wordBytes)
	a1 := *(*A1)(unsafe.Add(p, o1))
	o2 := argOff[A2](o1 + unsafe.Sizeof(a1))
	a2 := *(*A2)(unsafe.Add(p, o2))
	o3 := argOff[A3](o2 + unsafe.Sizeof(a2))
	a3 := *(*A3)(unsafe.Add(p, o3))
	o4 := argOff[A4](o3 + unsafe.Sizeof(a3))
	fn(a1, a2, a3, *(*A4)(unsafe.Add(p, o4)))
}

// Exec5 enqueues fn(a1, a2, a3, a4, a5).
func Exec5[A1, A2, A3, A4, A5 any](q *Queue, fn func(A1, A2, A3, A4, A5), a1 A1, a2 A2, a3 A3, a4 A4, a5 A5) {
	checkArg[A1]()
	checkArg[A2]()
	checkArg[A3]()
	checkArg[A4]()
	checkArg[A5]()
	o1 := argOff[A1](wordBytes)
	o2 := argOff[A2](o1 + unsafe.Sizeof(a1))
	o3 := argOff[A3](o2 + unsafe.Sizeof(a2))
	o4 := argOff[A4](o3 + unsafe.Sizeof(a3))
	o5 := argOff[A5](o4 + unsafe.Sizeof(a4))
	a := q.acquire()
	p := a.reserve(execStub5[A1, A2, A3, A4, A5], uint32(o5+unsafe.Sizeof(a5)))
	*(*func(A1, A2, A3, A4, A5))(p) = fn
	*(*A1)(unsafe.Add(p, o1)) = a1
	*(*A2)(unsafe.Add(p, o2)) = a2
	*(*A3)(unsafe.Add(p, o3)) = a3
	*(*A4)(unsafe.Add(p, o4)) = a4
	*(*A5)(unsafe.Add(p, o5)) = a5
	a.pin(funcptr(&fn))
	q.release(a)
}

func execStub5[A1, A2, A3, A4, A5 any](p unsafe.Pointer) {
	fn := *(*func(A1, A2, A3, A4, A5))(p)
	o1 := argOff[A1](wordBytes)
	a1 := *(*A1)(unsafe.Add(p, o1))
	o2 := argOff[A2](o1 + unsafe.Sizeof(a1))
	a2 := *(*A2)(unsafe.Add(p, o2))
	o3 := argOff[A3](o2 + unsafe.Sizeof(a2))
	a3 := *(*A3)(unsafe.Add(p, o3))
	o4 := argOff[A4](o3 + unsafe.Sizeof(a3))
	a4 := *(*A4)(unsafe.Add(p, o4))
	o5 := argOff[A5](o4 + unsafe.Sizeof(a4))
	fn(a1, a2, a3, a4, *(*A5)(unsafe.Add(p, o5)))
}

// Exec6 enqueues fn(a1, a2, a3, a4, a5, a6).
func Exec6[A1, A2, A3, A4, A5, A6 any](q *Queue, fn func(A1, A2, A3, A4, A5, A6), a1 A1, a2 A2, a3 A3, a4 A4, a5 A5, a6 A6) {
	checkArg[A1]()
	checkArg[A2]()
	checkArg[A3]()
	checkArg[A4]()
	checkArg[A5]()
	checkArg[A6]()
	o1 := argOff[A1](wordBytes)
	o2 := argOff[A2](o1 + unsafe.Sizeof(a1))
	o3 := argOff[A3](o2 + unsafe.Sizeof(a2))
	o4 := argOff[A4](o3 + unsafe.Sizeof(a3))
	o5 := argOff[A5](o4 + unsafe.Sizeof(a4))
	o6 := argOff[A6](o5 + unsafe.Sizeof(a5))
	a := q.acquire()
	p := a.reserve(execStub6[A1, A2, A3, A4, A5, A6], uint32(o6+unsafe.Sizeof(a6)))
	*(*func(A1, A2, A3, A4, A5, A6))(p) = fn
	*(*A1)(unsafe.Add(p, o1)) = a1
	*(*A2)(unsafe.Add(p, o2)) = a2
	*(*A3)(unsafe.Add(p, o3)) = a3
	*(*A4)(unsafe.Add(p, o4)) = a4
	*(*A5)(unsafe.Add(p, o5)) = a5
	*(*A6)(unsafe.Add(p, o6)) = a6
	a.pin(funcptr(&fn))
	q.release(a)
}

func execStub6[A1, A2, A3, A4, A5, A6 any](p unsafe.Pointer) {
	fn := *(*func(A1, A2, A3, A4, A5, A6))(p)
	o1 := argOff[A1](wordBytes)
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
	fn(a1, a2, a3, a4, a5, *(*A6)(unsafe.Add(p, o6)))
}
