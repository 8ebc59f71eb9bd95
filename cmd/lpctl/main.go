// Copyright 2022-2023 NXP
// All rights reserved.
//
// SPDX-License-Identifier: BSD-3-Clause

// Command lpctl talks to the low power demo over the board's debug console.
//
// Usage:
//
//	lpctl ports
//	lpctl console [--capture session.lpcap]
//	lpctl run --keys "C 2" [--capture session.lpcap]
//	lpctl log view session.lpcap
//	lpctl hex firmware.bin -o firmware.hex [--base 0x0]
//	lpctl bin firmware.hex -o firmware.bin
//
// Settings come from the file named by --config, overridden by flags.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "lpctl:", err)
		os.Exit(1)
	}
}
