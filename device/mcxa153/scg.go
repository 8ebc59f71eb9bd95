// Copyright 2022-2023 NXP
// All rights reserved.
//
// SPDX-License-Identifier: BSD-3-Clause

package mcxa153

// SetStopModeIRC keeps FIRC and SIRC running while the core is in Deep Sleep
// (enable) or lets them stop with the rest of the system clocks. FIRCCSR and
// SIRCCSR are write-locked, so the lock is dropped for the update and set
// again afterwards.
func (scg *SCG_Type) SetStopModeIRC(enable bool) {
	scg.FIRCCSR.ClearBits(SCG_FIRCCSR_LK)
	scg.SIRCCSR.ClearBits(SCG_SIRCCSR_LK)

	if enable {
		scg.FIRCCSR.SetBits(SCG_FIRCCSR_FIRCSTEN)
		scg.SIRCCSR.SetBits(SCG_SIRCCSR_SIRCSTEN)
	} else {
		scg.FIRCCSR.ClearBits(SCG_FIRCCSR_FIRCSTEN)
		scg.SIRCCSR.ClearBits(SCG_SIRCCSR_SIRCSTEN)
	}

	scg.FIRCCSR.SetBits(SCG_FIRCCSR_LK)
	scg.SIRCCSR.SetBits(SCG_SIRCCSR_LK)
}

// StopModeIRC reports whether FIRC and SIRC are both kept on in Deep Sleep.
func (scg *SCG_Type) StopModeIRC() bool {
	return scg.FIRCCSR.HasBits(SCG_FIRCCSR_FIRCSTEN) && scg.SIRCCSR.HasBits(SCG_SIRCCSR_SIRCSTEN)
}
