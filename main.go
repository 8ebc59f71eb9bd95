// Copyright 2022-2023 NXP
// All rights reserved.
//
// SPDX-License-Identifier: BSD-3-Clause

// Command dm-low-power-implementation-mcxa153 is the FRDM-MCXA153 low power
// demo. Built with TinyGo for the board it drives the real chip over the debug
// UART; built with the regular Go toolchain it simulates the board on stdio.
package main

import (
	"github.com/nxp-appcodehub/dm-low-power-implementation-mcxa153/lowpower"
)

func main() {
	app := lowpower.New(newConsole())
	if err := app.Boot(); err != nil {
		halt(err)
	}
	halt(app.Run())
}
