// Copyright 2023 NXP
// All rights reserved.
//
// SPDX-License-Identifier: BSD-3-Clause

package machine

import (
	"github.com/nxp-appcodehub/dm-low-power-implementation-mcxa153/device/mcxa153"
	"github.com/nxp-appcodehub/dm-low-power-implementation-mcxa153/runtime/volatile"
)

// ResetLine identifies the reset (and clock gate) bit of one peripheral. The
// upper byte selects MRCC_GLB_RST0 or MRCC_GLB_RST1, the low byte is the bit.
type ResetLine uint32

const (
	ResetINPUTMUX0 ResetLine = 0<<8 | 0
	ResetI3C0      ResetLine = 0<<8 | 1
	ResetCTIMER0   ResetLine = 0<<8 | 2
	ResetCTIMER1   ResetLine = 0<<8 | 3
	ResetCTIMER2   ResetLine = 0<<8 | 4
	ResetFREQME    ResetLine = 0<<8 | 5
	ResetUTICK0    ResetLine = 0<<8 | 6
	ResetDMA       ResetLine = 0<<8 | 8
	ResetAOI0      ResetLine = 0<<8 | 9
	ResetCRC       ResetLine = 0<<8 | 10
	ResetEIM       ResetLine = 0<<8 | 11
	ResetERM       ResetLine = 0<<8 | 12
	ResetLPI2C0    ResetLine = 0<<8 | 16
	ResetLPSPI0    ResetLine = 0<<8 | 17
	ResetLPSPI1    ResetLine = 0<<8 | 18
	ResetLPUART0   ResetLine = 0<<8 | 19
	ResetLPUART1   ResetLine = 0<<8 | 20
	ResetLPUART2   ResetLine = 0<<8 | 21
	ResetUSB0      ResetLine = 0<<8 | 22
	ResetQDC0      ResetLine = 0<<8 | 23
	ResetFLEXPWM0  ResetLine = 0<<8 | 24
	ResetOSTIMER0  ResetLine = 0<<8 | 25
	ResetADC0      ResetLine = 0<<8 | 26
	ResetCMP1      ResetLine = 0<<8 | 28
	ResetPORT0     ResetLine = 0<<8 | 29
	ResetPORT1     ResetLine = 0<<8 | 30
	ResetPORT2     ResetLine = 0<<8 | 31
	ResetPORT3     ResetLine = 1<<8 | 0
	ResetATX0      ResetLine = 1<<8 | 1
	ResetGPIO0     ResetLine = 1<<8 | 5
	ResetGPIO1     ResetLine = 1<<8 | 6
	ResetGPIO2     ResetLine = 1<<8 | 7
	ResetGPIO3     ResetLine = 1<<8 | 8

	// ResetNotAvail marks an instance without reset control.
	ResetNotAvail ResetLine = 0xFFFFFFFF
)

// Reset lines per peripheral instance, indexed by instance number.
var (
	ResetLinesADC      = [...]ResetLine{ResetADC0}
	ResetLinesCRC      = [...]ResetLine{ResetCRC}
	ResetLinesCTIMER   = [...]ResetLine{ResetCTIMER0, ResetCTIMER1, ResetCTIMER2}
	ResetLinesDMA      = [...]ResetLine{ResetDMA}
	ResetLinesFLEXPWM  = [...]ResetLine{ResetFLEXPWM0}
	ResetLinesGPIO     = [...]ResetLine{ResetGPIO0, ResetGPIO1, ResetGPIO2, ResetGPIO3}
	ResetLinesI3C      = [...]ResetLine{ResetI3C0}
	ResetLinesINPUTMUX = [...]ResetLine{ResetINPUTMUX0}
	ResetLinesLPUART   = [...]ResetLine{ResetLPUART0, ResetLPUART1, ResetLPUART2}
	ResetLinesLPSPI    = [...]ResetLine{ResetLPSPI0, ResetLPSPI1}
	ResetLinesLPI2C    = [...]ResetLine{ResetLPI2C0}
	ResetLinesLPCMP    = [...]ResetLine{ResetNotAvail, ResetCMP1}
	ResetLinesOSTIMER  = [...]ResetLine{ResetOSTIMER0}
	ResetLinesPORT     = [...]ResetLine{ResetPORT0, ResetPORT1, ResetPORT2, ResetPORT3}
	ResetLinesUTICK    = [...]ResetLine{ResetUTICK0}
)

var resetLineNames = map[ResetLine]string{
	ResetINPUTMUX0: "INPUTMUX0",
	ResetI3C0:      "I3C0",
	ResetCTIMER0:   "CTIMER0",
	ResetCTIMER1:   "CTIMER1",
	ResetCTIMER2:   "CTIMER2",
	ResetFREQME:    "FREQME",
	ResetUTICK0:    "UTICK0",
	ResetDMA:       "DMA",
	ResetAOI0:      "AOI0",
	ResetCRC:       "CRC",
	ResetEIM:       "EIM",
	ResetERM:       "ERM",
	ResetLPI2C0:    "LPI2C0",
	ResetLPSPI0:    "LPSPI0",
	ResetLPSPI1:    "LPSPI1",
	ResetLPUART0:   "LPUART0",
	ResetLPUART1:   "LPUART1",
	ResetLPUART2:   "LPUART2",
	ResetUSB0:      "USB0",
	ResetQDC0:      "QDC0",
	ResetFLEXPWM0:  "FLEXPWM0",
	ResetOSTIMER0:  "OSTIMER0",
	ResetADC0:      "ADC0",
	ResetCMP1:      "CMP1",
	ResetPORT0:     "PORT0",
	ResetPORT1:     "PORT1",
	ResetPORT2:     "PORT2",
	ResetPORT3:     "PORT3",
	ResetATX0:      "ATX0",
	ResetGPIO0:     "GPIO0",
	ResetGPIO1:     "GPIO1",
	ResetGPIO2:     "GPIO2",
	ResetGPIO3:     "GPIO3",
	ResetNotAvail:  "NotAvail",
}

func (l ResetLine) String() string {
	if name, ok := resetLineNames[l]; ok {
		return name
	}
	return "ResetLine(?)"
}

// Index returns the MRCC register index of the line.
func (l ResetLine) Index() uint32 { return (uint32(l) >> 8) & 0xFF }

// Mask returns the bit of the line within its register.
func (l ResetLine) Mask() uint32 { return 1 << (uint32(l) & 0xFF) }

// Valid reports whether l names a bit in MRCC_GLB_RST0 or MRCC_GLB_RST1. The
// controller ignores invalid lines, ResetNotAvail among them.
func (l ResetLine) Valid() bool {
	return uint32(l)>>16 == 0 && l.Index() < 2 && uint32(l)&0xFF < 32
}

// ResetController drives the peripheral reset and clock gate bits in MRCC.
// The reset bits are active low: a cleared bit holds the peripheral in reset.
type ResetController struct {
	Bus *mcxa153.MRCC_Type
}

var Resets = &ResetController{Bus: mcxa153.MRCC0}

func (rc *ResetController) resetRegister(l ResetLine) *volatile.Register32 {
	if l.Index() == 0 {
		return &rc.Bus.GLB_RST0
	}
	return &rc.Bus.GLB_RST1
}

func (rc *ResetController) clockRegister(l ResetLine) *volatile.Register32 {
	if l.Index() == 0 {
		return &rc.Bus.GLB_CC0
	}
	return &rc.Bus.GLB_CC1
}

// Assert holds the peripheral in reset.
func (rc *ResetController) Assert(l ResetLine) {
	if !l.Valid() {
		return
	}
	reg, mask := rc.resetRegister(l), l.Mask()
	reg.ClearBits(mask)
	for reg.HasBits(mask) {
	}
}

// Release lets the peripheral run.
func (rc *ResetController) Release(l ResetLine) {
	if !l.Valid() {
		return
	}
	reg, mask := rc.resetRegister(l), l.Mask()
	reg.SetBits(mask)
	for !reg.HasBits(mask) {
	}
}

// Reset pulses the reset of the peripheral: assert, then release.
func (rc *ResetController) Reset(l ResetLine) {
	rc.Assert(l)
	rc.Release(l)
}

// InReset reports whether the peripheral is currently held in reset.
func (rc *ResetController) InReset(l ResetLine) bool {
	if !l.Valid() {
		return false
	}
	return !rc.resetRegister(l).HasBits(l.Mask())
}

// EnableClock ungates the bus clock of the peripheral. Gate bits share the
// layout of the reset bits.
func (rc *ResetController) EnableClock(l ResetLine) {
	if !l.Valid() {
		return
	}
	rc.clockRegister(l).SetBits(l.Mask())
}

// DisableClock gates the bus clock of the peripheral.
func (rc *ResetController) DisableClock(l ResetLine) {
	if !l.Valid() {
		return
	}
	rc.clockRegister(l).ClearBits(l.Mask())
}

// ClockEnabled reports whether the bus clock of the peripheral is ungated.
func (rc *ResetController) ClockEnabled(l ResetLine) bool {
	if !l.Valid() {
		return false
	}
	return rc.clockRegister(l).HasBits(l.Mask())
}
