// Copyright 2022-2023 NXP
// All rights reserved.
//
// SPDX-License-Identifier: BSD-3-Clause

package machine

// Pins of the FRDM-MCXA153 board.
const (
	ConsoleRX = P0_2
	ConsoleTX = P0_3

	// SW3 is the wake-up button. It is wired to WUU external pin 9.
	SW3 = P1_7

	// MeasurePin is driven low on every loop so wake-up time can be scoped.
	MeasurePin = P3_30
)

const (
	SW3WakeUpIndex  = 9
	SW3Name         = "SW3"
	ConsoleBaudRate = 115200
)

// InitPins ungates the PORT and GPIO blocks the board uses and muxes the
// console pins to LPUART0.
func InitPins(rc *ResetController) {
	for _, l := range [...]ResetLine{ResetPORT0, ResetPORT1, ResetPORT3, ResetGPIO3} {
		rc.EnableClock(l)
		if rc.InReset(l) {
			rc.Release(l)
		}
	}
	ConsoleRX.Configure(PinConfig{Mode: PinLPUART})
	ConsoleTX.Configure(PinConfig{Mode: PinLPUART})
	SW3.Configure(PinConfig{Mode: PinWakeup})
}
