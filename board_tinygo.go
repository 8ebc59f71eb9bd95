// Copyright 2022-2023 NXP
// All rights reserved.
//
// SPDX-License-Identifier: BSD-3-Clause

//go:build tinygo && mcxa153

package main

import (
	"github.com/nxp-appcodehub/dm-low-power-implementation-mcxa153/device/mcxa153"
	"github.com/nxp-appcodehub/dm-low-power-implementation-mcxa153/lowpower"
	"github.com/nxp-appcodehub/dm-low-power-implementation-mcxa153/machine"
)

func newConsole() lowpower.Console {
	return machine.DebugConsole
}

// halt reports err if the console still works and parks the core.
func halt(err error) {
	if err != nil {
		machine.DebugConsole.Write([]byte("\r\n" + err.Error() + "\r\n"))
		machine.DebugConsole.Flush()
	}
	for {
		mcxa153.WaitForInterrupt()
	}
}
