// Copyright 2022-2023 NXP
// All rights reserved.
//
// SPDX-License-Identifier: BSD-3-Clause

// Package lowpower is the low power implementation demo: it lets the user
// pick a power mode and a wake-up profile over the debug console, programs
// the SPC, CMC, WUU and clocks for that combination, and enters the mode until
// SW3 wakes the chip.
package lowpower

// PowerMode is a power mode, identified by the key that selects it.
type PowerMode byte

const (
	PowerModeActive        PowerMode = 'A'
	PowerModeSleep         PowerMode = 'B'
	PowerModeDeepSleep     PowerMode = 'C'
	PowerModePowerDown     PowerMode = 'D'
	PowerModeDeepPowerDown PowerMode = 'E'
)

var powerModeNames = [...]string{"Active", "Sleep", "DeepSleep", "PowerDown", "DeepPowerDown"}

var powerModeDescriptions = [...]string{
	"Active: Core/System/Bus clock all ON.",
	"Sleep: CPU clock is off, and the system clock and bus clock remain ON. ",
	"Deep Sleep: Core/System/Bus clock are gated off. ",
	"Power Down: Core/System/Bus clock are gated off, CORE domain is in static state, Flash memory is powered off",
	"Deep Power Down: The whole CORE domain is power gated.",
}

// PowerModes lists every power mode in menu order.
var PowerModes = [...]PowerMode{
	PowerModeActive,
	PowerModeSleep,
	PowerModeDeepSleep,
	PowerModePowerDown,
	PowerModeDeepPowerDown,
}

// Valid reports whether m is one of the five power modes.
func (m PowerMode) Valid() bool {
	return m >= PowerModeActive && m <= PowerModeDeepPowerDown
}

func (m PowerMode) String() string {
	if !m.Valid() {
		return "PowerMode(?)"
	}
	return powerModeNames[m-PowerModeActive]
}

// Description is the one-line summary printed once the mode is selected.
func (m PowerMode) Description() string {
	if !m.Valid() {
		return ""
	}
	return powerModeDescriptions[m-PowerModeActive]
}

// WakeModes returns the wake-up profiles offered for m. Deep Power Down only
// supports the typical one.
func (m PowerMode) WakeModes() []WakeMode {
	switch m {
	case PowerModeActive:
		return nil
	case PowerModeDeepPowerDown:
		return []WakeMode{WakeModeTypical}
	}
	return []WakeMode{WakeModeTypical, WakeModeFast, WakeModeSlow}
}

// WakeMode is a wake-up timing profile, identified by the key that selects
// it.
type WakeMode byte

const (
	WakeModeTypical WakeMode = '1'
	WakeModeFast    WakeMode = '2'
	WakeModeSlow    WakeMode = '3'
)

var wakeModeNames = [...]string{"Typical wake up", "Fast wake up", "Slow wake up"}

// Valid reports whether w is one of the three wake-up profiles.
func (w WakeMode) Valid() bool {
	return w >= WakeModeTypical && w <= WakeModeSlow
}

func (w WakeMode) String() string {
	if !w.Valid() {
		return "WakeMode(?)"
	}
	return wakeModeNames[w-WakeModeTypical]
}

// Measured wake-up time and consumption per power mode and profile.
var wakeDescriptions = map[PowerMode][]string{
	PowerModeSleep: {
		"Sleep Typical wake up time: ~0.27us, Power consumption: ~1.72mA",
		"Sleep Fast wake up time: ~0.14us, Power consumption: ~3.27mA",
		"Sleep Slow wake up time: ~1.04us, Power consumption: ~0.82mA",
	},
	PowerModeDeepSleep: {
		"DeepSleep Typical wake up time: ~7.52us(Production Sample), ~4.61us(Engineering Sample); Power consumption: ~22.1uA",
		"DeepSleep Fast wake up time: ~5.90us(Production Sample), ~2.65us(Engineering Sample); Power consumption: ~965.2uA",
		"DeepSleep Slow wake up time: ~14.59us(Production Sample), ~11.98us(Engineering Sample); Power consumption: ~22.0uA",
	},
	PowerModePowerDown: {
		"PowerDown Typical wake up time: ~17.26us(Production Sample), ~13.99us(Engineering Sample); Power consumption: ~6.2uA",
		"PowerDown Fast wake up time: ~7.79us(Production Sample), ~4.49us(Engineering Sample); Power consumption: ~202.8uA",
		"PowerDown Slow wake up time: ~39.74us(Production Sample), ~36.89us(Engineering Sample); Power consumption: ~6.2uA",
	},
	PowerModeDeepPowerDown: {
		"DeepPowerDown Typical wake up time: ~2.35ms(Production Sample), ~2.76ms(Engineering Sample); Power consumption: ~1.1uA",
	},
}

// WakeDescription returns the wake-up time and consumption line for the
// combination, or "" if the power mode does not offer that profile.
func WakeDescription(m PowerMode, w WakeMode) string {
	descs := wakeDescriptions[m]
	i := int(w) - int(WakeModeTypical)
	if i < 0 || i >= len(descs) {
		return ""
	}
	return descs[i]
}
