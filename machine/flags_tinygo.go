// Copyright 2022-2023 NXP
// All rights reserved.
//
// SPDX-License-Identifier: BSD-3-Clause

//go:build tinygo && mcxa153

package machine

import "github.com/nxp-appcodehub/dm-low-power-implementation-mcxa153/runtime/volatile"

// clearFlags clears write-1-to-clear status flags. Zero bits in the write
// leave the other flags untouched.
func clearFlags(reg *volatile.Register32, mask uint32) {
	reg.Set(mask)
}
