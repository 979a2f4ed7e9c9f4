// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build linux

package cmdq

import (
	"syscall"
	"unsafe"
)

// setAffinity pins the calling thread to the given CPU core via
// sched_setaffinity(2). The caller holds runtime.LockOSThread. Out of
// range cores and syscall failures are ignored: affinity is a placement
// hint, not a correctness requirement.
func setAffinity(cpu int) {
	const wordBits = int(wordBytes) * 8
	var mask [16]uintptr // up to 1024 cores
	if cpu < 0 || cpu >= len(mask)*wordBits {
		return
	}
	mask[cpu/wordBits] = 1 << (cpu % wordBits)
	_, _, _ = syscall.RawSyscall(
		syscall.SYS_SCHED_SETAFFINITY,
		0, // current thread
		uintptr(unsafe.Sizeof(mask)),
		uintptr(unsafe.Pointer(&mask)),
	)
}
