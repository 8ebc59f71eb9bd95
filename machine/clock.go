// Copyright 2022-2023 NXP
// All rights reserved.
//
// SPDX-License-Identifier: BSD-3-Clause

package machine

import (
	"errors"
	"fmt"

	"github.com/nxp-appcodehub/dm-low-power-implementation-mcxa153/device/mcxa153"
)

var ErrClockVoltage = errors.New("clock: core clock above 48 MHz needs normal core LDO voltage")

const (
	fro12MHz      = 12000000
	maxMidDriveHz = 48000000
)

// ClockSource is the main clock source.
type ClockSource uint8

const (
	SourceFRO12M ClockSource = iota // SIRC
	SourceFROHF                     // FIRC
)

// ClockConfig describes one boot clock setup: the main clock and the CORE_LDO
// settings for active and low power modes that go with it.
type ClockConfig struct {
	Name            string
	Source          ClockSource
	FIRCFreqSel     uint32
	CoreHz          uint32
	FlashWaitStates uint32
	Active          CoreLDOConfig
	LowPower        CoreLDOConfig
}

// FRO12M runs the core from the 12 MHz SIRC.
func FRO12M(active, lowPower CoreLDOConfig) ClockConfig {
	return ClockConfig{
		Name:            "FRO12M",
		Source:          SourceFRO12M,
		CoreHz:          fro12MHz,
		FlashWaitStates: 0,
		Active:          active,
		LowPower:        lowPower,
	}
}

// FRO48M runs the core from FIRC trimmed to 48 MHz.
func FRO48M(active, lowPower CoreLDOConfig) ClockConfig {
	return ClockConfig{
		Name:            "FRO48M",
		Source:          SourceFROHF,
		FIRCFreqSel:     mcxa153.SCG_FIRCCFG_FREQ_SEL_48M,
		CoreHz:          48000000,
		FlashWaitStates: 1,
		Active:          active,
		LowPower:        lowPower,
	}
}

// FRO96M runs the core from FIRC trimmed to 96 MHz.
func FRO96M(active, lowPower CoreLDOConfig) ClockConfig {
	return ClockConfig{
		Name:            "FRO96M",
		Source:          SourceFROHF,
		FIRCFreqSel:     mcxa153.SCG_FIRCCFG_FREQ_SEL_96M,
		CoreHz:          96000000,
		FlashWaitStates: 2,
		Active:          active,
		LowPower:        lowPower,
	}
}

func (c ClockConfig) String() string {
	return fmt.Sprintf("%s(active %s/%s, low power %s/%s)", c.Name,
		c.Active.Voltage, c.Active.DriveStrength, c.LowPower.Voltage, c.LowPower.DriveStrength)
}

// Clock sets up the main clock tree: SCG oscillators, the AHB divider, flash
// wait states, and the CORE_LDO level through the SPC.
type Clock struct {
	SCG    *mcxa153.SCG_Type
	SYSCON *mcxa153.SYSCON_Type
	FMU    *mcxa153.FMU_Type
	SPC    *SPC
}

var Clocks = &Clock{SCG: mcxa153.SCG0, SYSCON: mcxa153.SYSCON, FMU: mcxa153.FMU0, SPC: SPC0}

// Boot switches the main clock to cfg. The core voltage and the flash wait
// states are raised before the clock speeds up and lowered after it slows
// down.
func (c *Clock) Boot(cfg ClockConfig) error {
	if cfg.CoreHz > maxMidDriveHz && cfg.Active.Voltage < CoreLDONormalVoltage {
		return ErrClockVoltage
	}

	raiseVoltage := cfg.Active.stronger(c.SPC.ActiveCoreLDO())
	raiseWaitStates := cfg.FlashWaitStates > c.flashWaitStates()

	if raiseVoltage {
		c.SPC.SetActiveCoreLDO(cfg.Active)
		c.SPC.WaitIdle()
	}
	if raiseWaitStates {
		c.setFlashWaitStates(cfg.FlashWaitStates)
	}

	switch cfg.Source {
	case SourceFRO12M:
		c.SCG.SIRCCSR.SetBits(mcxa153.SCG_SIRCCSR_SIRC_CLK_PERIPH_EN)
		for !c.SCG.SIRCCSR.HasBits(mcxa153.SCG_SIRCCSR_SIRCVLD) {
		}
		c.SCG.RCCR.ReplaceBits(mcxa153.SCG_SCS_SIRC, mcxa153.SCG_RCCR_SCS_Msk>>mcxa153.SCG_RCCR_SCS_Pos, mcxa153.SCG_RCCR_SCS_Pos)
	case SourceFROHF:
		c.SCG.FIRCCFG.ReplaceBits(cfg.FIRCFreqSel, mcxa153.SCG_FIRCCFG_FREQ_SEL_Msk>>mcxa153.SCG_FIRCCFG_FREQ_SEL_Pos, mcxa153.SCG_FIRCCFG_FREQ_SEL_Pos)
		c.SCG.FIRCCSR.SetBits(mcxa153.SCG_FIRCCSR_FIRCEN | mcxa153.SCG_FIRCCSR_FIRC_SCLK_PERIPH_EN | mcxa153.SCG_FIRCCSR_FIRC_FCLK_PERIPH_EN)
		for !c.SCG.FIRCCSR.HasBits(mcxa153.SCG_FIRCCSR_FIRCVLD) {
		}
		c.SCG.RCCR.ReplaceBits(mcxa153.SCG_SCS_FIRC, mcxa153.SCG_RCCR_SCS_Msk>>mcxa153.SCG_RCCR_SCS_Pos, mcxa153.SCG_RCCR_SCS_Pos)
	}
	c.SYSCON.AHBCLKDIV.ReplaceBits(0, mcxa153.SYSCON_AHBCLKDIV_DIV_Msk, mcxa153.SYSCON_AHBCLKDIV_DIV_Pos)

	if !raiseWaitStates {
		c.setFlashWaitStates(cfg.FlashWaitStates)
	}
	if !raiseVoltage {
		c.SPC.SetActiveCoreLDO(cfg.Active)
		c.SPC.WaitIdle()
	}
	c.SPC.SetLowPowerCoreLDO(cfg.LowPower)
	return nil
}

// stronger reports whether c needs more from the regulator than old: a higher
// voltage, or the same voltage at a higher drive strength.
func (c CoreLDOConfig) stronger(old CoreLDOConfig) bool {
	if c.Voltage != old.Voltage {
		return c.Voltage > old.Voltage
	}
	return c.DriveStrength > old.DriveStrength
}

// BootClock switches the main clock of the chip to cfg.
func BootClock(cfg ClockConfig) error {
	return Clocks.Boot(cfg)
}

// CoreClockFrequency returns the core clock in Hz as currently selected.
func (c *Clock) CoreClockFrequency() uint32 {
	var hz uint32
	switch c.SCG.RCCR.Field(mcxa153.SCG_RCCR_SCS_Msk>>mcxa153.SCG_RCCR_SCS_Pos, mcxa153.SCG_RCCR_SCS_Pos) {
	case mcxa153.SCG_SCS_SIRC:
		hz = fro12MHz
	case mcxa153.SCG_SCS_FIRC:
		switch c.SCG.FIRCCFG.Field(mcxa153.SCG_FIRCCFG_FREQ_SEL_Msk>>mcxa153.SCG_FIRCCFG_FREQ_SEL_Pos, mcxa153.SCG_FIRCCFG_FREQ_SEL_Pos) {
		case mcxa153.SCG_FIRCCFG_FREQ_SEL_48M:
			hz = 48000000
		case mcxa153.SCG_FIRCCFG_FREQ_SEL_64M:
			hz = 64000000
		case mcxa153.SCG_FIRCCFG_FREQ_SEL_96M:
			hz = 96000000
		}
	}
	return hz / (c.SYSCON.AHBCLKDIV.Field(mcxa153.SYSCON_AHBCLKDIV_DIV_Msk, mcxa153.SYSCON_AHBCLKDIV_DIV_Pos) + 1)
}

func (c *Clock) flashWaitStates() uint32 {
	return c.FMU.FCTRL.Field(mcxa153.FMU_FCTRL_RWSC_Msk, mcxa153.FMU_FCTRL_RWSC_Pos)
}

func (c *Clock) setFlashWaitStates(n uint32) {
	c.FMU.FCTRL.ReplaceBits(n, mcxa153.FMU_FCTRL_RWSC_Msk, mcxa153.FMU_FCTRL_RWSC_Pos)
}
