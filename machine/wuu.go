// Copyright 2022-2023 NXP
// All rights reserved.
//
// SPDX-License-Identifier: BSD-3-Clause

package machine

import (
	"errors"

	"github.com/nxp-appcodehub/dm-low-power-implementation-mcxa153/device/mcxa153"
)

var ErrInvalidWakeUpPin = errors.New("wuu: wake-up pin index out of range")

// WakeUpEdge selects the pin edge that raises a wake-up.
type WakeUpEdge uint8

const (
	ExternalPinDisable WakeUpEdge = iota
	ExternalPinRisingEdge
	ExternalPinFallingEdge
	ExternalPinAnyEdge
)

// WakeUpEvent selects what a wake-up pin generates.
type WakeUpEvent uint8

const (
	ExternalPinInterrupt WakeUpEvent = iota
	ExternalPinDMARequest
	ExternalPinTriggerEvent
)

// WakeUpPinMode selects the power modes in which the pin is monitored.
type WakeUpPinMode uint8

const (
	// ExternalPinActiveDSPD monitors the pin in Deep Sleep and Power Down only.
	ExternalPinActiveDSPD WakeUpPinMode = iota
	// ExternalPinActiveAlways monitors the pin in every power mode.
	ExternalPinActiveAlways
)

type ExternalPinConfig struct {
	Edge  WakeUpEdge
	Event WakeUpEvent
	Mode  WakeUpPinMode
}

// WUU is the Wake-Up Unit driver.
type WUU struct {
	Bus *mcxa153.WUU_Type
}

var WUU0 = &WUU{Bus: mcxa153.WUU0}

const wuuPinCount = 2 * mcxa153.WUU_PinsPerReg

// SetExternalWakeUpPin configures external wake-up input index.
func (w *WUU) SetExternalWakeUpPin(index uint8, cfg ExternalPinConfig) error {
	if index >= wuuPinCount {
		return ErrInvalidWakeUpPin
	}

	pos := uint8(index%mcxa153.WUU_PinsPerReg) * 2
	pe, pdc := &w.Bus.PE1, &w.Bus.PDC1
	if index >= mcxa153.WUU_PinsPerReg {
		pe, pdc = &w.Bus.PE2, &w.Bus.PDC2
	}

	pe.ReplaceBits(uint32(cfg.Edge), mcxa153.WUU_PE_WUPE_Msk, pos)
	pdc.ReplaceBits(uint32(cfg.Event), mcxa153.WUU_PDC_WUPDC_Msk, pos)
	if cfg.Mode == ExternalPinActiveAlways {
		w.Bus.PMC.SetBits(1 << index)
	} else {
		w.Bus.PMC.ClearBits(1 << index)
	}
	return nil
}

// ExternalPinConfig returns the configuration of external wake-up input index.
func (w *WUU) ExternalPinConfig(index uint8) ExternalPinConfig {
	pos := uint8(index%mcxa153.WUU_PinsPerReg) * 2
	pe, pdc := &w.Bus.PE1, &w.Bus.PDC1
	if index >= mcxa153.WUU_PinsPerReg {
		pe, pdc = &w.Bus.PE2, &w.Bus.PDC2
	}
	cfg := ExternalPinConfig{
		Edge:  WakeUpEdge(pe.Field(mcxa153.WUU_PE_WUPE_Msk, pos)),
		Event: WakeUpEvent(pdc.Field(mcxa153.WUU_PDC_WUPDC_Msk, pos)),
	}
	if w.Bus.PMC.HasBits(1 << index) {
		cfg.Mode = ExternalPinActiveAlways
	}
	return cfg
}

// ExternalWakeUpFlags returns the pending external pin wake-up flags.
func (w *WUU) ExternalWakeUpFlags() uint32 {
	return w.Bus.PF.Get()
}

// ClearExternalWakeUpFlag clears the wake-up flag of pin index.
func (w *WUU) ClearExternalWakeUpFlag(index uint8) {
	w.Bus.PF.SetBits(1 << index)
}
