// Copyright 2022-2023 NXP
// All rights reserved.
//
// SPDX-License-Identifier: BSD-3-Clause

package machine

import (
	"errors"

	"github.com/nxp-appcodehub/dm-low-power-implementation-mcxa153/device/mcxa153"
)

var (
	ErrSPCBusy              = errors.New("spc: busy")
	ErrBandgapMode          = errors.New("spc: bandgap must be enabled while a voltage detector is on")
	ErrCoreLDOVoltage       = errors.New("spc: core LDO voltage not allowed in this mode")
	ErrCoreLDODriveStrength = errors.New("spc: low core LDO drive strength requires voltage detectors off")
)

// CoreLDOVoltage is the CORE_LDO output level.
type CoreLDOVoltage uint8

const (
	CoreLDOUnderDriveVoltage CoreLDOVoltage = iota // 0.9 V, low power modes only
	CoreLDOMidDriveVoltage                         // 1.0 V
	CoreLDONormalVoltage                           // 1.1 V
)

func (v CoreLDOVoltage) String() string {
	switch v {
	case CoreLDOUnderDriveVoltage:
		return "UnderDrive"
	case CoreLDOMidDriveVoltage:
		return "MidDrive"
	case CoreLDONormalVoltage:
		return "Normal"
	}
	return "CoreLDOVoltage(?)"
}

// CoreLDODriveStrength is the CORE_LDO drive strength.
type CoreLDODriveStrength uint8

const (
	CoreLDOLowDriveStrength CoreLDODriveStrength = iota
	CoreLDONormalDriveStrength
)

func (s CoreLDODriveStrength) String() string {
	if s == CoreLDOLowDriveStrength {
		return "Low"
	}
	return "Normal"
}

// BandgapMode selects the bandgap and its buffer.
type BandgapMode uint8

const (
	BandgapDisabled BandgapMode = iota
	BandgapEnabledBufferDisabled
	BandgapEnabledBufferEnabled
)

// CoreLDOConfig is a CORE_LDO voltage and drive strength pair.
type CoreLDOConfig struct {
	Voltage       CoreLDOVoltage
	DriveStrength CoreLDODriveStrength
}

// ActiveModeRegulators is the regulator setup used while the core runs.
type ActiveModeRegulators struct {
	Bandgap BandgapMode
	CoreLDO CoreLDOConfig
}

// LowPowerModeRegulators is the regulator setup used in Deep Sleep and below.
type LowPowerModeRegulators struct {
	LPIREF  bool
	Bandgap BandgapMode
	CoreLDO CoreLDOConfig
}

const (
	// AnalogModulesAll selects every analog module controlled by the SPC.
	AnalogModulesAll = 0xFFFFFFFF

	// PowerDomainMain is CORE_MAIN, the only power domain of the MCXA153.
	PowerDomainMain = 0

	detectorBits = mcxa153.SPC_CFG_CORE_LVDE | mcxa153.SPC_CFG_SYS_LVDE | mcxa153.SPC_CFG_SYS_HVDE
)

// SPC is the System Power Controller driver.
type SPC struct {
	Bus *mcxa153.SPC_Type
}

var SPC0 = &SPC{Bus: mcxa153.SPC0}

// Busy reports whether a regulator or power mode transition is in progress.
func (s *SPC) Busy() bool {
	return s.Bus.SC.HasBits(mcxa153.SPC_SC_BUSY)
}

// WaitIdle spins until the SPC is no longer busy.
func (s *SPC) WaitIdle() {
	for s.Busy() {
	}
}

// EnableSRAMLdo turns the SRAM retention LDO on or off.
func (s *SPC) EnableSRAMLdo(enable bool) {
	if enable {
		s.Bus.SRAMRETLDO_CNTRL.SetBits(mcxa153.SPC_SRAMRETLDO_CNTRL_SRAMLDO_ON)
	} else {
		s.Bus.SRAMRETLDO_CNTRL.ClearBits(mcxa153.SPC_SRAMRETLDO_CNTRL_SRAMLDO_ON)
	}
}

// DisableActiveModeAnalogModules powers down the analog modules in mask while
// the core is active.
func (s *SPC) DisableActiveModeAnalogModules(mask uint32) {
	s.Bus.ACTIVE_CFG1.ClearBits(mask)
}

// DisableLowPowerModeAnalogModules powers down the analog modules in mask in
// low power modes.
func (s *SPC) DisableLowPowerModeAnalogModules(mask uint32) {
	s.Bus.LP_CFG1.ClearBits(mask)
}

func setOrClear(reg interface {
	SetBits(uint32)
	ClearBits(uint32)
}, bits uint32, set bool) {
	if set {
		reg.SetBits(bits)
	} else {
		reg.ClearBits(bits)
	}
}

func (s *SPC) EnableActiveModeCoreLowVoltageDetect(enable bool) {
	setOrClear(&s.Bus.ACTIVE_CFG, mcxa153.SPC_CFG_CORE_LVDE, enable)
}

func (s *SPC) EnableActiveModeSystemHighVoltageDetect(enable bool) {
	setOrClear(&s.Bus.ACTIVE_CFG, mcxa153.SPC_CFG_SYS_HVDE, enable)
}

func (s *SPC) EnableActiveModeSystemLowVoltageDetect(enable bool) {
	setOrClear(&s.Bus.ACTIVE_CFG, mcxa153.SPC_CFG_SYS_LVDE, enable)
}

func (s *SPC) DisableActiveModeVddCoreGlitchDetect(disable bool) {
	setOrClear(&s.Bus.ACTIVE_CFG, mcxa153.SPC_CFG_GLITCH_DETECT_DISABLE, disable)
}

func (s *SPC) DisableLowPowerModeVddCoreGlitchDetect(disable bool) {
	setOrClear(&s.Bus.LP_CFG, mcxa153.SPC_CFG_GLITCH_DETECT_DISABLE, disable)
}

// SetActiveModeRegulators applies the active mode regulator setup. A bandgap
// is required while any active mode voltage detector is enabled, and the
// under-drive level is not allowed while the core runs.
func (s *SPC) SetActiveModeRegulators(cfg ActiveModeRegulators) error {
	if s.Busy() {
		return ErrSPCBusy
	}
	detectors := s.Bus.ACTIVE_CFG.HasBits(detectorBits)
	if cfg.Bandgap == BandgapDisabled && detectors {
		return ErrBandgapMode
	}
	if cfg.CoreLDO.Voltage == CoreLDOUnderDriveVoltage {
		return ErrCoreLDOVoltage
	}
	if cfg.CoreLDO.DriveStrength == CoreLDOLowDriveStrength && detectors {
		return ErrCoreLDODriveStrength
	}

	s.Bus.ACTIVE_CFG.ReplaceBits(uint32(cfg.Bandgap), mcxa153.SPC_CFG_BGMODE_Msk>>mcxa153.SPC_CFG_BGMODE_Pos, mcxa153.SPC_CFG_BGMODE_Pos)
	s.SetActiveCoreLDO(cfg.CoreLDO)
	return nil
}

// SetLowPowerModeRegulators applies the low power mode regulator setup.
func (s *SPC) SetLowPowerModeRegulators(cfg LowPowerModeRegulators) error {
	if s.Busy() {
		return ErrSPCBusy
	}
	detectors := s.Bus.LP_CFG.HasBits(detectorBits)
	if cfg.Bandgap == BandgapDisabled && detectors {
		return ErrBandgapMode
	}
	if cfg.CoreLDO.DriveStrength == CoreLDOLowDriveStrength && detectors {
		return ErrCoreLDODriveStrength
	}

	setOrClear(&s.Bus.LP_CFG, mcxa153.SPC_LP_CFG_LP_IREFEN, cfg.LPIREF)
	s.Bus.LP_CFG.ReplaceBits(uint32(cfg.Bandgap), mcxa153.SPC_CFG_BGMODE_Msk>>mcxa153.SPC_CFG_BGMODE_Pos, mcxa153.SPC_CFG_BGMODE_Pos)
	s.SetLowPowerCoreLDO(cfg.CoreLDO)
	return nil
}

// SetActiveCoreLDO programs the active mode CORE_LDO level and drive strength.
func (s *SPC) SetActiveCoreLDO(cfg CoreLDOConfig) {
	s.Bus.ACTIVE_CFG.ReplaceBits(uint32(cfg.Voltage), mcxa153.SPC_CFG_CORELDO_VDD_LVL_Msk>>mcxa153.SPC_CFG_CORELDO_VDD_LVL_Pos, mcxa153.SPC_CFG_CORELDO_VDD_LVL_Pos)
	setOrClear(&s.Bus.ACTIVE_CFG, mcxa153.SPC_CFG_CORELDO_VDD_DS, cfg.DriveStrength == CoreLDONormalDriveStrength)
}

// SetLowPowerCoreLDO programs the low power mode CORE_LDO level and drive
// strength.
func (s *SPC) SetLowPowerCoreLDO(cfg CoreLDOConfig) {
	s.Bus.LP_CFG.ReplaceBits(uint32(cfg.Voltage), mcxa153.SPC_CFG_CORELDO_VDD_LVL_Msk>>mcxa153.SPC_CFG_CORELDO_VDD_LVL_Pos, mcxa153.SPC_CFG_CORELDO_VDD_LVL_Pos)
	setOrClear(&s.Bus.LP_CFG, mcxa153.SPC_CFG_CORELDO_VDD_DS, cfg.DriveStrength == CoreLDONormalDriveStrength)
}

// ActiveCoreLDO returns the active mode CORE_LDO setting.
func (s *SPC) ActiveCoreLDO() CoreLDOConfig {
	return CoreLDOConfig{
		Voltage:       CoreLDOVoltage(s.Bus.ACTIVE_CFG.Field(mcxa153.SPC_CFG_CORELDO_VDD_LVL_Msk>>mcxa153.SPC_CFG_CORELDO_VDD_LVL_Pos, mcxa153.SPC_CFG_CORELDO_VDD_LVL_Pos)),
		DriveStrength: CoreLDODriveStrength(s.Bus.ACTIVE_CFG.Field(1, 0)),
	}
}

// LowPowerCoreLDO returns the low power mode CORE_LDO setting.
func (s *SPC) LowPowerCoreLDO() CoreLDOConfig {
	return CoreLDOConfig{
		Voltage:       CoreLDOVoltage(s.Bus.LP_CFG.Field(mcxa153.SPC_CFG_CORELDO_VDD_LVL_Msk>>mcxa153.SPC_CFG_CORELDO_VDD_LVL_Pos, mcxa153.SPC_CFG_CORELDO_VDD_LVL_Pos)),
		DriveStrength: CoreLDODriveStrength(s.Bus.LP_CFG.Field(1, 0)),
	}
}

// SetLowPowerWakeUpDelay sets the number of SPC clock cycles the regulators
// are given to recover when leaving a low power mode.
func (s *SPC) SetLowPowerWakeUpDelay(delay uint16) {
	s.Bus.LPWKUP_DELAY.ReplaceBits(uint32(delay), mcxa153.SPC_LPWKUP_DELAY_LPWKUP_DELAY_Msk, mcxa153.SPC_LPWKUP_DELAY_LPWKUP_DELAY_Pos)
}

// LowPowerWakeUpDelay returns the programmed wake-up delay.
func (s *SPC) LowPowerWakeUpDelay() uint16 {
	return uint16(s.Bus.LPWKUP_DELAY.Field(mcxa153.SPC_LPWKUP_DELAY_LPWKUP_DELAY_Msk, mcxa153.SPC_LPWKUP_DELAY_LPWKUP_DELAY_Pos))
}

// ClearPeriphIOIsolation releases the I/O pads and peripherals latched by a
// Power Down exit.
func (s *SPC) ClearPeriphIOIsolation() {
	s.Bus.SC.SetBits(mcxa153.SPC_SC_ISO_CLR_Msk)
}

// ClearPowerDomainLowPowerRequest clears the low power request flag of a
// power domain.
func (s *SPC) ClearPowerDomainLowPowerRequest(domain int) {
	s.Bus.PD_STATUS[domain].SetBits(mcxa153.SPC_PD_STATUS_PD_LP_REQ)
}

// ClearLowPowerRequest clears the SPC low power request flag.
func (s *SPC) ClearLowPowerRequest() {
	s.Bus.SC.SetBits(mcxa153.SPC_SC_SPC_LP_REQ)
}

// SetExternalVoltageDomains isolates external voltage domains: lowPowerIso in
// low power modes, iso in active mode. Each is a mask of domains.
func (s *SPC) SetExternalVoltageDomains(lowPowerIso, iso uint8) {
	s.Bus.EVD_CFG.Set(uint32(iso)<<mcxa153.SPC_EVD_CFG_EVDISO_Pos&mcxa153.SPC_EVD_CFG_EVDISO_Msk |
		uint32(lowPowerIso)<<mcxa153.SPC_EVD_CFG_EVDLPISO_Pos&mcxa153.SPC_EVD_CFG_EVDLPISO_Msk)
}
