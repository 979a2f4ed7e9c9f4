// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !linux

package cmdq

// setAffinity is a no-op where sched_setaffinity(2) is unavailable.
// LockThread still applies; only the core placement hint is lost.
func setAffinity(cpu int) {}
