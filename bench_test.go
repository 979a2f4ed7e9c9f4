// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cmdq_test

import (
	"testing"
	"unsafe"

	"code.hybscloud.com/cmdq"
)

// The benchmarks measure enqueue-side cost under a live worker; the
// closing Join folds the drain into the reported time, which is the
// figure batched-dispatch callers care about.

func BenchmarkEnqueue(b *testing.B) {
	q := cmdq.New(1 << 16).Build()
	defer q.Close()

	count := 0
	inc := func(unsafe.Pointer) { count++ }
	b.ResetTimer()
	for range b.N {
		q.Enqueue(inc)
	}
	q.Join()
}

func BenchmarkExec1(b *testing.B) {
	q := cmdq.New(1 << 16).Build()
	defer q.Close()

	sum := 0
	fn := func(v int) { sum += v }
	b.ResetTimer()
	for i := range b.N {
		cmdq.Exec1(q, fn, i)
	}
	q.Join()
}

func BenchmarkExec6(b *testing.B) {
	q := cmdq.New(1 << 16).Build()
	defer q.Close()

	sum := 0
	fn := func(a, c, d, e, f, g int) { sum += a + c + d + e + f + g }
	b.ResetTimer()
	for i := range b.N {
		cmdq.Exec6(q, fn, i, i, i, i, i, i)
	}
	q.Join()
}

func BenchmarkRet2(b *testing.B) {
	q := cmdq.New(1 << 16).Build()
	defer q.Close()

	var out int
	add := func(x, y int) int { return x + y }
	b.ResetTimer()
	for i := range b.N {
		cmdq.Ret2(q, add, &out, i, i)
	}
	q.Join()
}

func BenchmarkEnqueueBytes64(b *testing.B) {
	q := cmdq.New(1 << 16).Build()
	defer q.Close()

	blob := make([]byte, 64)
	sink := 0
	h := func(p unsafe.Pointer) { sink += int(*(*byte)(p)) }
	b.SetBytes(64)
	b.ResetTimer()
	for range b.N {
		q.EnqueueBytes(h, blob)
	}
	q.Join()
}

func BenchmarkEnqueueParallel(b *testing.B) {
	q := cmdq.New(1 << 16).Build()
	defer q.Close()

	count := 0
	inc := func(unsafe.Pointer) { count++ }
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			q.Enqueue(inc)
		}
	})
	q.Join()
}
