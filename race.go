// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package cmdq

// RaceEnabled is true when the race detector is active.
//
// Used by tests to skip scenarios that hand records across the arenas:
// the detector cannot observe happens-before established through atomix
// orderings and reports false positives. It also arms the pointer-free
// argument check in the typed enqueue forms.
const RaceEnabled = true
