// Copyright 2022-2023 NXP
// All rights reserved.
//
// SPDX-License-Identifier: BSD-3-Clause

package machine

import (
	"errors"

	"github.com/nxp-appcodehub/dm-low-power-implementation-mcxa153/device/mcxa153"
)

var ErrPowerModeProtected = errors.New("cmc: power mode not allowed by PMPROT")

// ClockMode selects which clocks CMC gates when the core sleeps.
type ClockMode uint8

const (
	GateNoneClock                        ClockMode = 0x0
	GateCoreClock                        ClockMode = 0x1
	GatePlatformClock                    ClockMode = 0x3
	GateAllSystemClocks                  ClockMode = 0x7
	GateAllSystemClocksEnterLowPowerMode ClockMode = 0xF
)

// LowPowerMode is the power mode requested for the CORE_MAIN domain.
type LowPowerMode uint8

const (
	ActiveOrSleepMode LowPowerMode = 0x0
	DeepSleepMode     LowPowerMode = 0x1
	PowerDownMode     LowPowerMode = 0x3
	DeepPowerDownMode LowPowerMode = 0xF
)

// AllowAllLowPowerModes is the PMPROT value that permits every mode.
const AllowAllLowPowerModes = 0xF

// ResetSource is a set of CMC system reset status flags.
type ResetSource uint32

const (
	ResetSourceWakeUp ResetSource = mcxa153.CMC_SRS_WAKEUP
	ResetSourcePOR    ResetSource = mcxa153.CMC_SRS_POR
	ResetSourceVD     ResetSource = mcxa153.CMC_SRS_VD
	ResetSourceWarm   ResetSource = mcxa153.CMC_SRS_WARM
	ResetSourceFatal  ResetSource = mcxa153.CMC_SRS_FATAL
	ResetSourcePin    ResetSource = mcxa153.CMC_SRS_PIN
	ResetSourceDAP    ResetSource = mcxa153.CMC_SRS_DAP
	ResetSourceSW     ResetSource = mcxa153.CMC_SRS_SW
	ResetSourceLockup ResetSource = mcxa153.CMC_SRS_LOCKUP
)

// PowerDomainConfig is the request passed to EnterLowPowerMode.
type PowerDomainConfig struct {
	ClockMode  ClockMode
	MainDomain LowPowerMode
}

// CMC is the Core Mode Controller driver. It needs the system control block
// as well, for the SLEEPDEEP bit.
type CMC struct {
	Bus *mcxa153.CMC_Type
	SCB *mcxa153.SCB_Type
}

var CMC0 = &CMC{Bus: mcxa153.CMC, SCB: mcxa153.SCB}

// ResetStatus returns the sources of the last system reset.
func (c *CMC) ResetStatus() ResetSource {
	return ResetSource(c.Bus.SRS.Get())
}

// WakeUpReset reports whether the last reset was a wake-up from a power down
// mode.
func (c *CMC) WakeUpReset() bool {
	return c.ResetStatus()&ResetSourceWakeUp != 0
}

// EnableDebugOperation keeps the debug interface working in low power modes.
func (c *CMC) EnableDebugOperation(enable bool) {
	if enable {
		c.Bus.DBGCTL.ClearBits(mcxa153.CMC_DBGCTL_SOD)
	} else {
		c.Bus.DBGCTL.SetBits(mcxa153.CMC_DBGCTL_SOD)
	}
}

// SetPowerModeProtection sets which low power modes may be entered.
func (c *CMC) SetPowerModeProtection(allowed uint32) {
	c.Bus.PMPROT.ReplaceBits(allowed, mcxa153.CMC_PMPROT_LPMODE_Msk, mcxa153.CMC_PMPROT_LPMODE_Pos)
}

// ConfigFlashMode controls the flash memory while the core clock is gated.
// With doze set the flash goes to its low power state and leaves it for the
// duration of any access.
func (c *CMC) ConfigFlashMode(wake, doze, disable bool) {
	var v uint32
	if wake {
		v |= mcxa153.CMC_FLASHCR_FLASHWAKE
	}
	if doze {
		v |= mcxa153.CMC_FLASHCR_FLASHDOZE
	}
	if disable {
		v |= mcxa153.CMC_FLASHCR_FLASHDIS
	}
	c.Bus.FLASHCR.Set(v)
}

// EnterLowPowerMode programs the requested mode and executes wfi. For Sleep
// the core clock alone is gated; every other mode sets SLEEPDEEP and hands the
// CORE_MAIN domain to the requested mode.
func (c *CMC) EnterLowPowerMode(cfg PowerDomainConfig) error {
	if cfg.MainDomain == ActiveOrSleepMode {
		c.setClockMode(cfg.ClockMode)
		c.wait()
		return nil
	}

	allowed := c.Bus.PMPROT.Field(mcxa153.CMC_PMPROT_LPMODE_Msk, mcxa153.CMC_PMPROT_LPMODE_Pos)
	if allowed&uint32(cfg.MainDomain) != uint32(cfg.MainDomain) {
		return ErrPowerModeProtected
	}
	c.Bus.PMCTRL[0].ReplaceBits(uint32(cfg.MainDomain), mcxa153.CMC_PMCTRL_LPMODE_Msk, mcxa153.CMC_PMCTRL_LPMODE_Pos)
	c.setClockMode(cfg.ClockMode)
	c.stop()
	return nil
}

func (c *CMC) setClockMode(mode ClockMode) {
	c.Bus.CKCTRL.ReplaceBits(uint32(mode), mcxa153.CMC_CKCTRL_CKMODE_Msk, mcxa153.CMC_CKCTRL_CKMODE_Pos)
}

// stop enters a deep low power mode
func (c *CMC) stop() {
	// set SLEEPDEEP to enable deep sleep
	c.SCB.SCR.SetBits(mcxa153.SCB_SCR_SLEEPDEEP)

	mcxa153.WaitForInterrupt()
}

// wait enters sleep mode
func (c *CMC) wait() {
	// clear SLEEPDEEP bit to disable deep sleep
	c.SCB.SCR.ClearBits(mcxa153.SCB_SCR_SLEEPDEEP)

	mcxa153.WaitForInterrupt()
}
