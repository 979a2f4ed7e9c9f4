// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !race

// These examples execute commands across the arenas, which the race
// detector misreads (atomix orderings are invisible to it), so the file
// is excluded from race builds.

package cmdq_test

import (
	"fmt"
	"unsafe"

	"code.hybscloud.com/cmdq"
)

// ExampleBuilder_Build demonstrates the raw closure form and the join
// fence.
func ExampleBuilder_Build() {
	q := cmdq.New(cmdq.DefaultCapacity).Build()
	defer q.Close()

	q.Enqueue(func(unsafe.Pointer) { fmt.Print("H") })
	q.Enqueue(func(unsafe.Pointer) { fmt.Println("i") })
	q.Join()

	// Output:
	// Hi
}

// ExampleExec2 demonstrates typed dispatch: the arguments are packed
// into the queue and unpacked on the worker.
func ExampleExec2() {
	q := cmdq.New(cmdq.DefaultCapacity).Build()
	defer q.Close()

	cmdq.Exec2(q, func(x, y int) { fmt.Println(x * y) }, 6, 7)
	q.Join()

	// Output:
	// 42
}

// ExampleRet2 demonstrates capturing a return value: the result is
// written through the destination before Join returns.
func ExampleRet2() {
	q := cmdq.New(cmdq.DefaultCapacity).Build()
	defer q.Close()

	var sum int
	cmdq.Ret2(q, func(a, b int) int { return a + b }, &sum, 3, 4)
	q.Join()
	fmt.Println(sum)

	// Output:
	// 7
}

// ExampleQueue_EnqueueBytes demonstrates forwarding a raw byte blob; the
// handler receives a pointer to the queue's copy.
func ExampleQueue_EnqueueBytes() {
	q := cmdq.New(cmdq.DefaultCapacity).Build()
	defer q.Close()

	packet := []byte("ping")
	q.EnqueueBytes(func(p unsafe.Pointer) {
		fmt.Println(string(unsafe.Slice((*byte)(p), 4)))
	}, packet)
	q.Join()

	// Output:
	// ping
}

// ExampleQueue_Notify demonstrates waiting for the queue to pass a point
// without blocking the enqueueing goroutine the way Join does.
func ExampleQueue_Notify() {
	q := cmdq.New(cmdq.DefaultCapacity).Build()
	defer q.Close()

	q.Enqueue(func(unsafe.Pointer) { fmt.Println("work done") })

	ready := make(chan struct{}, 1)
	q.Notify(ready)
	// ... do other things ...
	<-ready
	fmt.Println("observed")

	// Output:
	// work done
	// observed
}
