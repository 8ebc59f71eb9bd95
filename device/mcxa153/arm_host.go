// Copyright 2022-2023 NXP
// All rights reserved.
//
// SPDX-License-Identifier: BSD-3-Clause

//go:build !(tinygo && mcxa153)

package mcxa153

// WFIHook runs in place of the wfi instruction off target. The host build of
// the demo uses it to report the simulated low power entry.
var WFIHook func()

// WaitForInterrupt calls WFIHook if one is installed.
func WaitForInterrupt() {
	if WFIHook != nil {
		WFIHook()
	}
}
