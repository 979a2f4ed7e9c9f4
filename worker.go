// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cmdq

import (
	"runtime"

	"code.hybscloud.com/spin"
)

// dispatch is the worker loop. The worker holds exactly one arena at all
// times; the other is in a slot or with a producer. Per cycle:
//
//	held = exchange(primary, held)   // hand in the empty, take what's there
//
//	held filled -> run it, cycle again
//	held empty  -> both arenas are empty: exit on shutdown, else park
//	held none   -> a producer is mid-write holding the other arena; our
//	               empty arena now occupies primary, so that producer's
//	               release CAS fails and it parks its filled arena in
//	               secondary -- the inner loop below collects it
//
// The worker can therefore only park when both arenas are empty, and any
// release bumps the wakeup counter first, so it cannot stay parked while
// work exists.
func (q *Queue) dispatch() {
	defer close(q.done)
	if q.lockThread {
		runtime.LockOSThread()
		if q.cpu >= 0 {
			setAffinity(q.cpu)
		}
	}

	held := q.exchangeSecondary()
	for {
		// Snapshot before probing: a release that lands between
		// the swap below and park advances the counter past this
		// value and the park falls through.
		seen := q.wakes.Load()

		held = q.exchangePrimary(held)
		sw := spin.Wait{}
		for held == 0 {
			if held = q.exchangeSecondary(); held == 0 {
				sw.Once()
			}
		}

		a := q.buffers[held-1]
		switch {
		case a.used > 0:
			a.run()
		case q.shutdown.Load():
			return
		default:
			q.park(seen)
		}
	}
}

// exchangePrimary swaps id into the primary slot and returns the
// previous occupant. A CAS loop rather than a plain exchange so both
// slots carry acquire/release ordering.
func (q *Queue) exchangePrimary(id uintptr) uintptr {
	for {
		old := q.primary.LoadRelaxed()
		if q.primary.CompareAndSwapAcqRel(old, id) {
			return old
		}
	}
}

// exchangeSecondary takes the secondary slot's arena if one is parked
// there, leaving the empty sentinel behind.
func (q *Queue) exchangeSecondary() uintptr {
	if id := q.secondary.LoadRelaxed(); id != 0 && q.secondary.CompareAndSwapAcqRel(id, 0) {
		return id
	}
	return 0
}

// park sleeps on the dispatch condvar until a release has happened since
// seen was read, or shutdown. idle gates the producers' signal path; the
// store/load order against the wakeup counter mirrors wake.
func (q *Queue) park(seen uint64) {
	q.dispatchMu.Lock()
	q.idle.Store(true)
	for q.wakes.Load() == seen && !q.shutdown.Load() {
		q.dispatchCond.Wait()
	}
	q.idle.Store(false)
	q.dispatchMu.Unlock()
}
