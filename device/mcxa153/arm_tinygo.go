// Copyright 2022-2023 NXP
// All rights reserved.
//
// SPDX-License-Identifier: BSD-3-Clause

//go:build tinygo && mcxa153

package mcxa153

import "device/arm"

// WaitForInterrupt suspends the core until the next wake-up event, in
// whatever mode SCB.SCR and CMC have been programmed for.
func WaitForInterrupt() {
	arm.Asm("dsb 0xF")
	arm.Asm("wfi")
	arm.Asm("isb 0xF")
}
