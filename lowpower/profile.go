// Copyright 2022-2023 NXP
// All rights reserved.
//
// SPDX-License-Identifier: BSD-3-Clause

package lowpower

import (
	"fmt"

	"github.com/nxp-appcodehub/dm-low-power-implementation-mcxa153/machine"
)

// WakeProfile is what a power mode and wake-up profile translate to before
// the mode is entered.
type WakeProfile struct {
	// WakeUpDelay is the SPC LPWKUP_DELAY value, the time given to the
	// regulators to recover on exit.
	WakeUpDelay uint16
	Clock       machine.ClockConfig
	// StopModeIRC keeps FIRC and SIRC running in Deep Sleep.
	StopModeIRC bool
}

var (
	midNormal    = machine.CoreLDOConfig{Voltage: machine.CoreLDOMidDriveVoltage, DriveStrength: machine.CoreLDONormalDriveStrength}
	midLow       = machine.CoreLDOConfig{Voltage: machine.CoreLDOMidDriveVoltage, DriveStrength: machine.CoreLDOLowDriveStrength}
	normalNormal = machine.CoreLDOConfig{Voltage: machine.CoreLDONormalVoltage, DriveStrength: machine.CoreLDONormalDriveStrength}
	underLow     = machine.CoreLDOConfig{Voltage: machine.CoreLDOUnderDriveVoltage, DriveStrength: machine.CoreLDOLowDriveStrength}
)

// DefaultClock is the clock the demo runs its menus on.
var DefaultClock = machine.FRO48M(midNormal, midLow)

type profileKey struct {
	power PowerMode
	wake  WakeMode
}

var profiles = map[profileKey]WakeProfile{
	{PowerModeSleep, WakeModeTypical}: {0x00, DefaultClock, false},
	{PowerModeSleep, WakeModeFast}:    {0x00, machine.FRO96M(normalNormal, midLow), false},
	{PowerModeSleep, WakeModeSlow}:    {0x00, machine.FRO12M(midLow, midLow), false},

	{PowerModeDeepSleep, WakeModeTypical}: {0x00, DefaultClock, false},
	{PowerModeDeepSleep, WakeModeFast}:    {0x00, machine.FRO96M(normalNormal, normalNormal), true},
	{PowerModeDeepSleep, WakeModeSlow}:    {0x00, machine.FRO12M(midLow, midLow), false},

	{PowerModePowerDown, WakeModeTypical}: {0x5B, machine.FRO48M(midNormal, underLow), false},
	{PowerModePowerDown, WakeModeFast}:    {0x00, machine.FRO96M(normalNormal, normalNormal), false},
	{PowerModePowerDown, WakeModeSlow}:    {0xFF, machine.FRO12M(midNormal, underLow), false},

	{PowerModeDeepPowerDown, WakeModeTypical}: {0x00, DefaultClock, false},
}

// Profile looks up the register setup for a power mode and wake-up profile.
// Active mode has no profile, and Deep Power Down only has the typical one.
func Profile(m PowerMode, w WakeMode) (WakeProfile, error) {
	p, ok := profiles[profileKey{m, w}]
	if !ok {
		return WakeProfile{}, fmt.Errorf("no wake profile for %v/%v", m, w)
	}
	return p, nil
}
