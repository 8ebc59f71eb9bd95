// Copyright 2022-2023 NXP
// All rights reserved.
//
// SPDX-License-Identifier: BSD-3-Clause

package machine

import (
	"errors"

	"github.com/nxp-appcodehub/dm-low-power-implementation-mcxa153/device/mcxa153"
	"github.com/nxp-appcodehub/dm-low-power-implementation-mcxa153/runtime/volatile"
)

var (
	ErrInvalidBaudRate = errors.New("lpuart: baud rate not reachable from clock")
	ErrUARTOverrun     = errors.New("lpuart: receiver overrun")
)

// UARTConfig configures an LPUART. ClockHz is the functional clock fed to the
// block; zero means the 12 MHz FRO.
type UARTConfig struct {
	BaudRate uint32
	ClockHz  uint32
}

// UART is a polled LPUART driver.
type UART struct {
	Bus          *mcxa153.LPUART_Type
	Reset        ResetLine
	ClockSelect  *volatile.Register32
	ClockDivider *volatile.Register32
}

var UART0 = &UART{
	Bus:          mcxa153.LPUART0,
	Reset:        ResetLPUART0,
	ClockSelect:  &mcxa153.MRCC0.LPUART0_CLKSEL,
	ClockDivider: &mcxa153.MRCC0.LPUART0_CLKDIV,
}

// Configure clocks the UART from FRO12M, sets the baud rate and enables the
// transmitter and receiver, 8N1.
func (u *UART) Configure(config UARTConfig) error {
	if config.ClockHz == 0 {
		config.ClockHz = fro12MHz
	}
	osr, sbr, ok := baudDivisors(config.ClockHz, config.BaudRate)
	if !ok {
		return ErrInvalidBaudRate
	}

	u.ClockSelect.Set(mcxa153.MRCC_CLKSEL_MUX_FRO12M)
	u.ClockDivider.Set(0)
	Resets.EnableClock(u.Reset)
	if Resets.InReset(u.Reset) {
		Resets.Release(u.Reset)
	}

	u.Bus.CTRL.ClearBits(mcxa153.LPUART_CTRL_TE | mcxa153.LPUART_CTRL_RE)
	u.Bus.BAUD.ReplaceBits(osr-1, mcxa153.LPUART_BAUD_OSR_Msk>>mcxa153.LPUART_BAUD_OSR_Pos, mcxa153.LPUART_BAUD_OSR_Pos)
	u.Bus.BAUD.ReplaceBits(sbr, mcxa153.LPUART_BAUD_SBR_Msk, mcxa153.LPUART_BAUD_SBR_Pos)
	u.Bus.CTRL.SetBits(mcxa153.LPUART_CTRL_TE | mcxa153.LPUART_CTRL_RE)
	return nil
}

// baudDivisors picks the oversampling ratio (4..32) and the baud rate
// modulo divisor with the smallest error.
func baudDivisors(clockHz, baud uint32) (osr, sbr uint32, ok bool) {
	if baud == 0 {
		return 0, 0, false
	}
	bestDiff := baud
	for o := uint32(4); o <= 32; o++ {
		s := (clockHz*10/(baud*o) + 5) / 10
		if s == 0 || s > mcxa153.LPUART_BAUD_SBR_Msk {
			continue
		}
		actual := clockHz / (o * s)
		diff := actual - baud
		if actual < baud {
			diff = baud - actual
		}
		if diff <= bestDiff {
			bestDiff, osr, sbr = diff, o, s
		}
	}
	// Reject anything worse than 3 %.
	if osr == 0 || bestDiff*100 > baud*3 {
		return 0, 0, false
	}
	return osr, sbr, true
}

// Deinit disables the transmitter and receiver and gates the UART clock.
func (u *UART) Deinit() {
	u.Bus.CTRL.ClearBits(mcxa153.LPUART_CTRL_TE | mcxa153.LPUART_CTRL_RE)
	Resets.DisableClock(u.Reset)
}

// WriteByte writes a byte of data to the UART.
func (u *UART) WriteByte(c byte) error {
	for !u.Bus.STAT.HasBits(mcxa153.LPUART_STAT_TDRE) {
	}
	u.Bus.DATA.Set(uint32(c))
	return nil
}

// Write data to the UART.
func (u *UART) Write(data []byte) (n int, err error) {
	for _, v := range data {
		u.WriteByte(v)
	}
	return len(data), nil
}

// Buffered returns the number of bytes waiting in the receiver.
func (u *UART) Buffered() int {
	if u.Bus.STAT.HasBits(mcxa153.LPUART_STAT_RDRF) {
		return 1
	}
	return 0
}

// ReadByte blocks until a byte is received. A receiver overrun clears the
// flag, drops the pending byte and returns ErrUARTOverrun, so the next call
// reads fresh input.
func (u *UART) ReadByte() (byte, error) {
	for {
		stat := u.Bus.STAT.Get()
		if stat&mcxa153.LPUART_STAT_OR != 0 {
			clearFlags(&u.Bus.STAT, mcxa153.LPUART_STAT_OR)
			if stat&mcxa153.LPUART_STAT_RDRF != 0 {
				u.Bus.DATA.Get()
			}
			return 0, ErrUARTOverrun
		}
		if stat&mcxa153.LPUART_STAT_RDRF != 0 {
			return byte(u.Bus.DATA.Get() & 0xFF), nil
		}
	}
}

// TransmissionComplete reports whether the last byte has left the shifter.
func (u *UART) TransmissionComplete() bool {
	return u.Bus.STAT.HasBits(mcxa153.LPUART_STAT_TC)
}
