// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cmdq

import "code.hybscloud.com/iox"

// ErrWouldBlock indicates that TryEnqueue could not claim the primary
// arena on its single attempt: either another producer holds it, or the
// slot changed hands (another producer's claim or the worker's swap)
// between the load and the claim.
//
// ErrWouldBlock is a control flow signal, not a failure. The caller
// should retry, or fall back to the spinning Enqueue path.
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency.
var ErrWouldBlock = iox.ErrWouldBlock

// IsWouldBlock reports whether err indicates the operation would block.
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}
