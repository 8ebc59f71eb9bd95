// Copyright 2022-2023 NXP
// All rights reserved.
//
// SPDX-License-Identifier: BSD-3-Clause

//go:build !(tinygo && mcxa153)

package machine

import "github.com/nxp-appcodehub/dm-low-power-implementation-mcxa153/runtime/volatile"

// clearFlags clears write-1-to-clear status flags. Plain memory ignores the
// write-1 convention, so the bits are cleared directly.
func clearFlags(reg *volatile.Register32, mask uint32) {
	reg.ClearBits(mask)
}
