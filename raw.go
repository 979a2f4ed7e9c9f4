// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cmdq

import "unsafe"

// Raw enqueue: the caller's own handler is the record's handler and the
// payload is the argument values at naturally aligned offsets from zero,
// in declaration order. No dispatcher sits between the walk and the
// call, which shaves a word and an indirection off the typed forms; in
// exchange the handler reads its arguments back itself, with the same
// offset arithmetic (argOff from 0, advance by unsafe.Sizeof).
//
// The zero-argument raw form is [Queue.Enqueue]; the copy-a-blob form is
// [Queue.EnqueueBytes]. Argument types must be pointer-free, as with the
// typed forms.

// Raw1 packs a1 into the payload and installs h as the record's handler.
func Raw1[A1 any](q *Queue, h Handler, a1 A1) {
	checkArg[A1]()
	o1 := argOff[A1](0)
	a := q.acquire()
	p := a.reserve(h, uint32(o1+unsafe.Sizeof(a1)))
	*(*A1)(unsafe.Add(p, o1)) = a1
	q.release(a)
}

// Raw2 packs a1, a2 into the payload and installs h as the record's handler.
func Raw2[A1, A2 any](q *Queue, h Handler, a1 A1, a2 A2) {
	checkArg[A1]()
	checkArg[A2]()
	o1 := argOff[A1](0)
	o2 := argOff[A2](o1 + unsafe.Sizeof(a1))
	a := q.acquire()
	p := a.reserve(h, uint32(o2+unsafe.Sizeof(a2)))
	*(*A1)(unsafe.Add(p, o1)) = a1
	*(*A2)(unsafe.Add(p, o2)) = a2
	q.release(a)
}

// Raw3 packs a1..a3 into the payload and installs h as the record's handler.
func Raw3[A1, A2, A3 any](q *Queue, h Handler, a1 A1, a2 A2, a3 A3) {
	checkArg[A1]()
	checkArg[A2]()
	checkArg[A3]()
	o1 := argOff[A1](0)
	o2 := argOff[A2](o1 + unsafe.Sizeof(a1))
	o3 := argOff[A3](o2 + unsafe.Sizeof(a2))
	a := q.acquire()
	p := a.reserve(h, uint32(o3+unsafe.Sizeof(a3)))
	*(*A1)(unsafe.Add(p, o1)) = a1
	*(*A2)(unsafe.Add(p, o2)) = a2
	*(*A3)(unsafe.Add(p, o3)) = a3
	q.release(a)
}

// Raw4 packs a1..a4 into the payload and installs h as the record's handler.
func Raw4[A1, A2, A3, A4 any](q *Queue, h Handler, a1 A1, a2 A2, a3 A3, a4 A4) {
	checkArg[A1]()
	checkArg[A2]()
	checkArg[A3]()
	checkArg[A4]()
	o1 := argOff[A1](0)
	o2 := argOff[A2](o1 + unsafe.Sizeof(a1))
	o3 := argOff[A3](o2 + unsafe.Sizeof(a2))
	o4 := argOff[A4](o3 + unsafe.Sizeof(a3))
	a := q.acquire()
	p := a.reserve(h, uint32(o4+unsafe.Sizeof(a4)))
	*(*A1)(unsafe.Add(p, o1)) = a1
	*(*A2)(unsafe.Add(p, o2)) = a2
	*(*A3)(unsafe.Add(p, o3)) = a3
	*(*A4)(unsafe.Add(p, o4)) = a4
	q.release(a)
}

// Raw5 packs a1..a5 into the payload and installs h as the record's handler.
func Raw5[A1, A2, A3, A4, A5 any](q *Queue, h Handler, a1 A1, a2 A2, a3 A3, a4 A4, a5 A5) {
	checkArg[A1]()
	checkArg[A2]()
	checkArg[A3]()
	checkArg[A4]()
	checkArg[A5]()
	o1 := argOff[A1](0)
	o2 := argOff[A2](o1 + unsafe.Sizeof(a1))
	o3 := argOff[A3](o2 + unsafe.Sizeof(a2))
	o4 := argOff[A4](o3 + unsafe.Sizeof(a3))
	o5 := argOff[A5](o4 + unsafe.Sizeof(a4))
	a := q.acquire()
	p := a.reserve(h, uint32(o5+unsafe.Sizeof(a5)))
	*(*A1)(unsafe.Add(p, o1)) = a1
	*(*A2)(unsafe.Add(p, o2)) = a2
	*(*A3)(unsafe.Add(p, o3)) = a3
	*(*A4)(unsafe.Add(p, o4)) = a4
	*(*A5)(unsafe.Add(p, o5)) = a5
	q.release(a)
}

// Raw6 packs a1..a6 into the payload and installs h as the record's handler.
func Raw6[A1, A2, A3, A4, A5, A6 any](q *Queue, h Handler, a1 A1, a2 A2, a3 A3, a4 A4, a5 A5, a6 A6) {
	checkArg[A1]()
	checkArg[A2]()
	checkArg[A3]()
	checkArg[A4]()
	checkArg[A5]()
	checkArg[A6]()
	o1 := argOff[A1](0)
	o2 := argOff[A2](o1 + unsafe.Sizeof(a1))
	o3 := argOff[A3](o2 + unsafe.Sizeof(a2))
	o4 := argOff[A4](o3 + unsafe.Sizeof(a3))
	o5 := argOff[A5](o4 + unsafe.Sizeof(a4))
	o6 := argOff[A6](o5 + unsafe.Sizeof(a5))
	a := q.acquire()
	p := a.reserve(h, uint32(o6+unsafe.Sizeof(a6)))
	*(*A1)(unsafe.Add(p, o1)) = a1
	*(*A2)(unsafe.Add(p, o2)) = a2
	*(*A3)(unsafe.Add(p, o3)) = a3
	*(*A4)(unsafe.Add(p, o4)) = a4
	*(*A5)(unsafe.Add(p, o5)) = a5
	*(*A6)(unsafe.Add(p, o6)) = a6
	q.release(a)
}
