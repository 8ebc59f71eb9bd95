// Copyright 2022-2023 NXP
// All rights reserved.
//
// SPDX-License-Identifier: BSD-3-Clause

package lowpower

import (
	"errors"
	"fmt"

	"github.com/nxp-appcodehub/dm-low-power-implementation-mcxa153/device/mcxa153"
	"github.com/nxp-appcodehub/dm-low-power-implementation-mcxa153/machine"
)

// isolatedDomains is VDD_USB and VDD_P2, unused in the low power modes.
const isolatedDomains = 0x6

// Console is the debug console the demo talks on. It is shut down before a
// low power mode is entered and brought back up after wake-up.
type Console interface {
	Terminal
	Configure() error
	Deinit()
	Flush() error
}

// App holds the peripherals the demo drives.
type App struct {
	Resets  *machine.ResetController
	SPC     *machine.SPC
	CMC     *machine.CMC
	WUU     *machine.WUU
	Clock   *machine.Clock
	SCG     *mcxa153.SCG_Type
	NVIC    *mcxa153.NVIC_Type
	Console Console

	// Measure is driven low at the top of each loop so that wake-up time can
	// be measured on a scope.
	Measure machine.Pin

	// WakeUpPin is the WUU external input the wake-up button is wired to.
	WakeUpPin uint8
}

// New returns the demo wired to the chip's peripherals.
func New(console Console) *App {
	return &App{
		Resets:  machine.Resets,
		SPC:     machine.SPC0,
		CMC:     machine.CMC0,
		WUU:     machine.WUU0,
		Clock:   machine.Clocks,
		SCG:     mcxa153.SCG0,
		NVIC:    mcxa153.NVIC,
		Console: console,
		Measure: machine.MeasurePin,

		WakeUpPin: machine.SW3WakeUpIndex,
	}
}

// Boot brings up pins, clocks and the console, applies the regulator setup
// and clears the wake-up state left by a previous Deep Power Down.
func (a *App) Boot() error {
	a.Resets.Reset(machine.ResetLPUART0)
	a.Resets.Reset(machine.ResetPORT0)
	a.Resets.Reset(machine.ResetGPIO3)

	machine.InitPins(a.Resets)
	if err := a.Clock.Boot(DefaultClock); err != nil {
		return fmt.Errorf("boot clock: %w", err)
	}
	if err := a.Console.Configure(); err != nil {
		return fmt.Errorf("console: %w", err)
	}

	a.Measure.Configure(machine.PinConfig{Mode: machine.PinOutput})
	a.Measure.Low()

	// I/O pads stay latched after a Power Down exit until released.
	if a.CMC.WakeUpReset() {
		a.SPC.ClearPeriphIOIsolation()
	}

	a.configureSPC()

	a.WUU.ClearExternalWakeUpFlag(a.WakeUpPin)
	a.NVIC.ClearPendingIRQ(mcxa153.IRQ_WUU0)
	a.NVIC.ClearPendingIRQ(mcxa153.IRQ_Reserved16)

	fmt.Fprint(a.Console, "\r\n"+NormalBoot+"\r\n")
	return nil
}

// Run repeats Step until it fails, which only happens when the console
// does.
func (a *App) Run() error {
	for {
		if err := a.Step(); err != nil {
			return err
		}
	}
}

// Step runs one pass of the demo: show the menus, then enter the selected
// power mode and come back out of it.
func (a *App) Step() error {
	a.Measure.Low()
	if a.CMC.WakeUpReset() {
		a.SPC.ClearPeriphIOIsolation()
	}

	a.SPC.ClearPowerDomainLowPowerRequest(machine.PowerDomainMain)
	a.SPC.ClearLowPowerRequest()

	a.configureCMC()

	fmt.Fprint(a.Console, "\r\n###########################    Low Power Implementation Demo    ###########################\r\n")
	fmt.Fprintf(a.Console, "    Core Clock = %dHz \r\n", a.Clock.CoreClockFrequency())
	fmt.Fprint(a.Console, "    Power mode: Active\r\n")

	mode, err := SelectPowerMode(a.Console)
	if err != nil {
		return err
	}

	if mode != PowerModeActive {
		wake, err := SelectWakeMode(a.Console, mode)
		if err != nil {
			return err
		}
		if err := a.applyProfile(mode, wake); err != nil {
			return err
		}
		if err := a.selectWakeUpSource(mode); err != nil {
			return err
		}
		if err := a.preSwitch(); err != nil {
			return errors.Join(err, a.postSwitch())
		}
		if err := a.enter(mode); err != nil {
			return errors.Join(err, a.postSwitch())
		}
		if err := a.postSwitch(); err != nil {
			return err
		}
	}

	fmt.Fprint(a.Console, "\r\n"+NextLoop+"\r\n")
	return nil
}

func (a *App) configureSPC() {
	a.SPC.EnableSRAMLdo(true)
	a.SPC.DisableActiveModeAnalogModules(machine.AnalogModulesAll)

	a.SPC.EnableActiveModeCoreLowVoltageDetect(false)
	a.SPC.EnableActiveModeSystemHighVoltageDetect(false)
	a.SPC.EnableActiveModeSystemLowVoltageDetect(false)

	err := a.SPC.SetActiveModeRegulators(machine.ActiveModeRegulators{
		Bandgap: machine.BandgapEnabledBufferDisabled,
		CoreLDO: midNormal,
	})
	a.SPC.DisableActiveModeVddCoreGlitchDetect(true)
	if err != nil {
		fmt.Fprint(a.Console, "Fail to set regulators in Active mode.")
		return
	}
	a.SPC.WaitIdle()

	a.SPC.DisableLowPowerModeAnalogModules(machine.AnalogModulesAll)
	a.SPC.SetLowPowerWakeUpDelay(0xFF)

	err = a.SPC.SetLowPowerModeRegulators(machine.LowPowerModeRegulators{
		LPIREF:  false,
		Bandgap: machine.BandgapDisabled,
		CoreLDO: midLow,
	})
	a.SPC.DisableLowPowerModeVddCoreGlitchDetect(true)
	if err != nil {
		fmt.Fprint(a.Console, "Fail to set regulators in Low Power Mode.")
		return
	}
	a.SPC.WaitIdle()
}

func (a *App) configureCMC() {
	a.CMC.EnableDebugOperation(false)
	a.CMC.SetPowerModeProtection(machine.AllowAllLowPowerModes)
	// Flash goes to its low power state whenever the core clock is gated.
	a.CMC.ConfigFlashMode(false, true, false)
}

func (a *App) applyProfile(mode PowerMode, wake WakeMode) error {
	p, err := Profile(mode, wake)
	if err != nil {
		return err
	}
	a.SPC.SetLowPowerWakeUpDelay(p.WakeUpDelay)
	if p.StopModeIRC {
		a.SCG.SetStopModeIRC(true)
	}
	if err := a.Clock.Boot(p.Clock); err != nil {
		return fmt.Errorf("%v/%v clock: %w", mode, wake, err)
	}
	return nil
}

func (a *App) selectWakeUpSource(mode PowerMode) error {
	fmt.Fprint(a.Console, "Wakeup Button Selected As Wakeup Source.\r\n")
	err := a.WUU.SetExternalWakeUpPin(a.WakeUpPin, machine.ExternalPinConfig{
		Edge:  machine.ExternalPinFallingEdge,
		Event: machine.ExternalPinInterrupt,
		Mode:  machine.ExternalPinActiveAlways,
	})
	if err != nil {
		return fmt.Errorf("wake-up pin %d: %w", a.WakeUpPin, err)
	}
	fmt.Fprint(a.Console, "Entering Low power mode...\r\n")
	fmt.Fprint(a.Console, WakeUpPrompt+"(Please only press the wakeup button when this message appears, otherwise it will result in failure to wake up!)\r\n")

	if mode > PowerModeSleep {
		a.SPC.SetExternalVoltageDomains(isolatedDomains, 0)
	}
	return nil
}

// preSwitch drains the console and turns it off. Its pins are left disabled
// so they do not leak in the low power mode.
func (a *App) preSwitch() error {
	err := a.Console.Flush()
	a.Console.Deinit()
	if err != nil {
		return fmt.Errorf("console flush: %w", err)
	}
	return nil
}

func (a *App) postSwitch() error {
	machine.InitPins(a.Resets)
	if err := a.Clock.Boot(DefaultClock); err != nil {
		return fmt.Errorf("boot clock: %w", err)
	}
	return a.Console.Configure()
}

func (a *App) enter(mode PowerMode) error {
	cfg := machine.PowerDomainConfig{ClockMode: machine.GateAllSystemClocksEnterLowPowerMode}
	switch mode {
	case PowerModeSleep:
		cfg = machine.PowerDomainConfig{ClockMode: machine.GateNoneClock, MainDomain: machine.ActiveOrSleepMode}
	case PowerModeDeepSleep:
		cfg.MainDomain = machine.DeepSleepMode
	case PowerModePowerDown:
		cfg.MainDomain = machine.PowerDownMode
	case PowerModeDeepPowerDown:
		cfg.MainDomain = machine.DeepPowerDownMode
	default:
		return fmt.Errorf("cannot enter %v", mode)
	}
	err := a.CMC.EnterLowPowerMode(cfg)
	if mode == PowerModeDeepSleep {
		// FIRC and SIRC only run in Deep Sleep for the fast profile.
		a.SCG.SetStopModeIRC(false)
	}
	return err
}
