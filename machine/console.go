// Copyright 2022-2023 NXP
// All rights reserved.
//
// SPDX-License-Identifier: BSD-3-Clause

package machine

import (
	"errors"
)

var errConsoleNotConfigured = errors.New("console: not configured")

// Console is the debug console: an LPUART plus its RX and TX pins. Deinit
// leaves both pins disabled, which is what the low power modes need to keep
// leakage down, and Configure muxes them back.
type Console struct {
	UART     *UART
	RX, TX   Pin
	BaudRate uint32

	configured bool
}

var DebugConsole = &Console{UART: UART0, RX: ConsoleRX, TX: ConsoleTX, BaudRate: ConsoleBaudRate}

// Configure muxes the console pins to the UART and starts it.
func (c *Console) Configure() error {
	c.RX.Configure(PinConfig{Mode: PinLPUART})
	c.TX.Configure(PinConfig{Mode: PinLPUART})
	if err := c.UART.Configure(UARTConfig{BaudRate: c.BaudRate}); err != nil {
		return err
	}
	c.configured = true
	return nil
}

// Deinit stops the UART and disables the console pins.
func (c *Console) Deinit() {
	c.UART.Deinit()
	c.RX.Configure(PinConfig{Mode: PinDisabled})
	c.TX.Configure(PinConfig{Mode: PinDisabled})
	c.configured = false
}

// Flush waits until everything written so far has been shifted out.
func (c *Console) Flush() error {
	if !c.configured {
		return nil
	}
	for !c.UART.TransmissionComplete() {
	}
	return nil
}

// Write data to the console.
func (c *Console) Write(data []byte) (n int, err error) {
	if !c.configured {
		return 0, errConsoleNotConfigured
	}
	return c.UART.Write(data)
}

// ReadByte blocks until a character arrives on the console.
func (c *Console) ReadByte() (byte, error) {
	if !c.configured {
		return 0, errConsoleNotConfigured
	}
	return c.UART.ReadByte()
}
