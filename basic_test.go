// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cmdq_test

import (
	"strings"
	"testing"
	"unsafe"

	"code.hybscloud.com/cmdq"
)

// =============================================================================
// Basic Operations
//
// Tests that hand records across the arenas are skipped under the race
// detector: the exchange protocol synchronises through atomix orderings
// the detector cannot observe.
// =============================================================================

// TestHello checks single-producer FIFO on the raw closure form: two
// commands append to a shared buffer in enqueue order, Join fences.
func TestHello(t *testing.T) {
	if cmdq.RaceEnabled {
		t.Skip("skip: exchange protocol uses cross-variable memory ordering")
	}

	q := cmdq.New(cmdq.DefaultCapacity).Build()
	defer q.Close()

	var sb strings.Builder
	q.Enqueue(func(unsafe.Pointer) { sb.WriteString("H") })
	q.Enqueue(func(unsafe.Pointer) { sb.WriteString("i") })
	q.Join()

	if got := sb.String(); got != "Hi" {
		t.Fatalf("buffer: got %q, want %q", got, "Hi")
	}
}

// TestExecArities runs every typed arity once and checks both the
// argument round-trip and the execution order.
func TestExecArities(t *testing.T) {
	if cmdq.RaceEnabled {
		t.Skip("skip: exchange protocol uses cross-variable memory ordering")
	}

	q := cmdq.New(cmdq.DefaultCapacity).Build()
	defer q.Close()

	var got []int
	cmdq.Exec0(q, func() { got = append(got, 0) })
	cmdq.Exec1(q, func(a int) { got = append(got, a) }, 1)
	cmdq.Exec2(q, func(a, b int) { got = append(got, a+b) }, 1, 1)
	cmdq.Exec3(q, func(a, b, c int) { got = append(got, a+b+c) }, 1, 1, 1)
	cmdq.Exec4(q, func(a, b, c, d int8) { got = append(got, int(a+b+c+d)) }, 1, 1, 1, 1)
	cmdq.Exec5(q, func(a int8, b int16, c int32, d int64, e int) {
		got = append(got, int(a)+int(b)+int(c)+int(d)+e)
	}, 1, 1, 1, 1, 1)
	cmdq.Exec6(q, func(a, b, c uint16, d, e, f float64) {
		got = append(got, int(a+b+c)+int(d+e+f))
	}, 1, 1, 1, 1, 1, 1)
	q.Join()

	for i, v := range got {
		if v != i {
			t.Fatalf("arity %d: got %d, want %d", i, v, i)
		}
	}
	if len(got) != 7 {
		t.Fatalf("executed %d commands, want 7", len(got))
	}
}

// TestRetValues checks the return-capturing forms: the value written
// through the destination equals the callable's result.
func TestRetValues(t *testing.T) {
	if cmdq.RaceEnabled {
		t.Skip("skip: exchange protocol uses cross-variable memory ordering")
	}

	q := cmdq.New(cmdq.DefaultCapacity).Build()
	defer q.Close()

	var r0, r1, r2, r3 int
	var r6 float64
	cmdq.Ret0(q, func() int { return 42 }, &r0)
	cmdq.Ret1(q, func(a int) int { return a * 2 }, &r1, 21)
	cmdq.Ret2(q, func(a, b int) int { return a + b }, &r2, 3, 4)
	cmdq.Ret3(q, func(a int8, b int16, c int64) int { return int(a) + int(b) + int(c) }, &r3, 1, 2, 3)
	cmdq.Ret6(q, func(a, b, c int, d, e, f float64) float64 {
		return float64(a+b+c) + d + e + f
	}, &r6, 1, 2, 3, 0.25, 0.25, 0.5)
	q.Join()

	if r0 != 42 {
		t.Fatalf("Ret0: got %d, want 42", r0)
	}
	if r1 != 42 {
		t.Fatalf("Ret1: got %d, want 42", r1)
	}
	if r2 != 7 {
		t.Fatalf("Ret2: got %d, want 7", r2)
	}
	if r3 != 6 {
		t.Fatalf("Ret3: got %d, want 6", r3)
	}
	if r6 != 7 {
		t.Fatalf("Ret6: got %v, want 7", r6)
	}
}

// TestRawArgs packs mixed-width arguments with Raw3 and reads them back
// in the handler with the documented layout arithmetic: each value at
// its naturally aligned offset, advancing by its size.
func TestRawArgs(t *testing.T) {
	if cmdq.RaceEnabled {
		t.Skip("skip: exchange protocol uses cross-variable memory ordering")
	}

	q := cmdq.New(cmdq.DefaultCapacity).Build()
	defer q.Close()

	var b uint8
	var u uint64
	var s uint16
	h := func(p unsafe.Pointer) {
		b = *(*uint8)(p)                     // offset 0
		u = *(*uint64)(unsafe.Add(p, 8))     // align(1, 8) = 8
		s = *(*uint16)(unsafe.Add(p, 16))    // align(16, 2) = 16
	}
	cmdq.Raw3(q, h, uint8(0xAB), uint64(0xDEADBEEFCAFE), uint16(0x1234))
	q.Join()

	if b != 0xAB || u != 0xDEADBEEFCAFE || s != 0x1234 {
		t.Fatalf("round-trip: got %#x %#x %#x", b, u, s)
	}
}

// TestEnqueueBytes checks payload fidelity on the blob form: the bytes
// delivered to the handler equal the bytes the producer passed.
func TestEnqueueBytes(t *testing.T) {
	if cmdq.RaceEnabled {
		t.Skip("skip: exchange protocol uses cross-variable memory ordering")
	}

	q := cmdq.New(cmdq.DefaultCapacity).Build()
	defer q.Close()

	src := make([]byte, 100)
	for i := range src {
		src[i] = byte(i * 7)
	}
	got := make([]byte, len(src))
	q.EnqueueBytes(func(p unsafe.Pointer) {
		copy(got, unsafe.Slice((*byte)(p), len(got)))
	}, src)
	q.Join()

	if string(got) != string(src) {
		t.Fatalf("payload mismatch:\n got %v\nwant %v", got, src)
	}
}

// TestTryEnqueue exercises the single-attempt path. On an otherwise idle
// queue the primary slot always holds an arena, so the attempt succeeds.
func TestTryEnqueue(t *testing.T) {
	if cmdq.RaceEnabled {
		t.Skip("skip: exchange protocol uses cross-variable memory ordering")
	}

	q := cmdq.New(cmdq.DefaultCapacity).Build()
	defer q.Close()

	ran := false
	if err := q.TryEnqueue(func(unsafe.Pointer) { ran = true }); err != nil {
		t.Fatalf("TryEnqueue on idle queue: %v", err)
	}
	q.Join()
	if !ran {
		t.Fatal("TryEnqueue command did not run")
	}

	if !cmdq.IsWouldBlock(cmdq.ErrWouldBlock) {
		t.Fatal("IsWouldBlock(ErrWouldBlock) = false")
	}
	if cmdq.IsWouldBlock(nil) {
		t.Fatal("IsWouldBlock(nil) = true")
	}
}

// TestNotify checks the pre-built notification command.
func TestNotify(t *testing.T) {
	if cmdq.RaceEnabled {
		t.Skip("skip: exchange protocol uses cross-variable memory ordering")
	}

	q := cmdq.New(cmdq.DefaultCapacity).Build()
	defer q.Close()

	n := 0
	q.Enqueue(func(unsafe.Pointer) { n++ })
	ch := make(chan struct{}, 1)
	q.Notify(ch)
	<-ch
	// The notification runs after the preceding command.
	q.Join()
	if n != 1 {
		t.Fatalf("command before Notify did not run")
	}
}

// TestStats checks the construction-time capacity report.
func TestStats(t *testing.T) {
	q := cmdq.New(1024).Build()
	defer q.Close()

	s := q.Stats()
	if s.Cap[0] != 1024 || s.Cap[1] != 1024 {
		t.Fatalf("Cap: got %v, want [1024 1024]", s.Cap)
	}
	if s.Used[0] != 0 || s.Used[1] != 0 {
		t.Fatalf("Used: got %v, want [0 0]", s.Used)
	}
}

// TestNewPanics checks the capacity guard.
func TestNewPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("New(8) did not panic")
		}
	}()
	cmdq.New(8)
}

// TestArgCheck verifies the race-build rejection of pointer-bearing
// typed arguments. Outside race builds the check compiles away.
func TestArgCheck(t *testing.T) {
	if !cmdq.RaceEnabled {
		t.Skip("skip: argument check is only armed under the race detector")
	}

	q := cmdq.New(cmdq.DefaultCapacity).Build()
	defer q.Close()

	defer func() {
		if recover() == nil {
			t.Fatal("Exec1 with a string argument did not panic")
		}
	}()
	cmdq.Exec1(q, func(string) {}, "not pointer-free")
}
