// Copyright 2022-2023 NXP
// All rights reserved.
//
// SPDX-License-Identifier: BSD-3-Clause

package lowpower

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nxp-appcodehub/dm-low-power-implementation-mcxa153/device/mcxa153"
	"github.com/nxp-appcodehub/dm-low-power-implementation-mcxa153/machine"
)

type fakeConsole struct {
	in  *strings.Reader
	out bytes.Buffer

	up          bool
	configures  int
	deinits     int
	flushes     int
	writtenDown int
	flushErr    error
}

func (c *fakeConsole) Write(p []byte) (int, error) {
	if !c.up {
		c.writtenDown += len(p)
	}
	return c.out.Write(p)
}

// overrunKey in a fake key script reads as a receiver overrun.
const overrunKey = '!'

func (c *fakeConsole) ReadByte() (byte, error) {
	ch, err := c.in.ReadByte()
	if err == nil && ch == overrunKey {
		return 0, machine.ErrUARTOverrun
	}
	return ch, err
}

func (c *fakeConsole) Configure() error {
	c.up = true
	c.configures++
	return nil
}

func (c *fakeConsole) Deinit() {
	c.up = false
	c.deinits++
}

func (c *fakeConsole) Flush() error {
	c.flushes++
	return c.flushErr
}

func newTestApp(keys string) (*App, *fakeConsole) {
	con := &fakeConsole{in: strings.NewReader(keys)}
	scg := mcxa153.NewSCG()
	spc := &machine.SPC{Bus: new(mcxa153.SPC_Type)}
	app := &App{
		Resets: &machine.ResetController{Bus: new(mcxa153.MRCC_Type)},
		SPC:    spc,
		CMC:    &machine.CMC{Bus: new(mcxa153.CMC_Type), SCB: new(mcxa153.SCB_Type)},
		WUU:    &machine.WUU{Bus: new(mcxa153.WUU_Type)},
		Clock: &machine.Clock{
			SCG:    scg,
			SYSCON: new(mcxa153.SYSCON_Type),
			FMU:    new(mcxa153.FMU_Type),
			SPC:    spc,
		},
		SCG:     scg,
		NVIC:    new(mcxa153.NVIC_Type),
		Console: con,
		Measure: machine.MeasurePin,

		WakeUpPin: machine.SW3WakeUpIndex,
	}
	return app, con
}

// lowPowerEntry is what the WFI hook saw when the core went to sleep.
type lowPowerEntry struct {
	sleepDeep   bool
	mainDomain  uint32
	clockMode   uint32
	consoleUp   bool
	stopModeIRC bool
}

func recordEntries(t *testing.T, app *App, con *fakeConsole) *[]lowPowerEntry {
	var entries []lowPowerEntry
	old := mcxa153.WFIHook
	mcxa153.WFIHook = func() {
		entries = append(entries, lowPowerEntry{
			sleepDeep:   app.CMC.SCB.SCR.HasBits(mcxa153.SCB_SCR_SLEEPDEEP),
			mainDomain:  app.CMC.Bus.PMCTRL[0].Get(),
			clockMode:   app.CMC.Bus.CKCTRL.Get(),
			consoleUp:   con.up,
			stopModeIRC: app.SCG.StopModeIRC(),
		})
	}
	t.Cleanup(func() { mcxa153.WFIHook = old })
	return &entries
}

func TestBoot(t *testing.T) {
	app, con := newTestApp("")
	require.NoError(t, app.Boot())

	assert.Equal(t, "\r\nNormal Boot.\r\n", con.out.String())
	assert.Equal(t, 1, con.configures)
	assert.False(t, app.Resets.InReset(machine.ResetLPUART0))
	assert.False(t, app.Resets.InReset(machine.ResetGPIO3))

	assert.Equal(t, uint32(48000000), app.Clock.CoreClockFrequency())
	assert.Equal(t, midNormal, app.SPC.ActiveCoreLDO())
	assert.Equal(t, midLow, app.SPC.LowPowerCoreLDO())
	assert.Equal(t, uint16(0xFF), app.SPC.LowPowerWakeUpDelay())
	assert.True(t, app.SPC.Bus.ACTIVE_CFG.HasBits(mcxa153.SPC_CFG_GLITCH_DETECT_DISABLE))
	assert.True(t, app.SPC.Bus.LP_CFG.HasBits(mcxa153.SPC_CFG_GLITCH_DETECT_DISABLE))
	assert.True(t, app.SPC.Bus.SRAMRETLDO_CNTRL.HasBits(mcxa153.SPC_SRAMRETLDO_CNTRL_SRAMLDO_ON))

	assert.Equal(t, uint32(mcxa153.WUU_PF_WUF9), app.WUU.ExternalWakeUpFlags())
	assert.Equal(t, uint32(1), app.NVIC.ICPR[0].Get())
	assert.Equal(t, uint32(1)<<(mcxa153.IRQ_WUU0%32), app.NVIC.ICPR[mcxa153.IRQ_WUU0/32].Get())

	assert.True(t, machine.MeasurePin.Control().HasBits(mcxa153.PORT_PCR_IBE))
	assert.False(t, machine.MeasurePin.Output())
	assert.False(t, app.SPC.Bus.SC.HasBits(mcxa153.SPC_SC_ISO_CLR_Msk), "no wake-up reset")
}

func TestBootAfterWakeUpReset(t *testing.T) {
	app, _ := newTestApp("")
	app.CMC.Bus.SRS.Set(mcxa153.CMC_SRS_WAKEUP)
	require.NoError(t, app.Boot())
	assert.Equal(t, uint32(mcxa153.SPC_SC_ISO_CLR_Msk), app.SPC.Bus.SC.Get()&mcxa153.SPC_SC_ISO_CLR_Msk)
}

func TestConfigureSPCFailures(t *testing.T) {
	t.Run("active", func(t *testing.T) {
		app, con := newTestApp("")
		app.SPC.Bus.SC.Set(mcxa153.SPC_SC_BUSY)
		app.configureSPC()
		assert.Equal(t, "Fail to set regulators in Active mode.", con.out.String())
		assert.True(t, app.SPC.Bus.ACTIVE_CFG.HasBits(mcxa153.SPC_CFG_GLITCH_DETECT_DISABLE))
		assert.Zero(t, app.SPC.LowPowerWakeUpDelay(), "stops before the low power setup")
	})
	t.Run("low power", func(t *testing.T) {
		app, con := newTestApp("")
		app.SPC.Bus.LP_CFG.Set(mcxa153.SPC_CFG_SYS_LVDE)
		app.configureSPC()
		assert.Equal(t, "Fail to set regulators in Low Power Mode.", con.out.String())
		assert.Equal(t, midNormal, app.SPC.ActiveCoreLDO())
		assert.Equal(t, uint16(0xFF), app.SPC.LowPowerWakeUpDelay())
	})
}

func TestStepActive(t *testing.T) {
	app, con := newTestApp("a")
	entries := recordEntries(t, app, con)
	require.NoError(t, app.Boot())
	con.out.Reset()

	require.NoError(t, app.Step())
	out := con.out.String()
	assert.Contains(t, out, "    Core Clock = 48000000Hz \r\n")
	assert.Contains(t, out, "    Power mode: Active\r\n")
	assert.Contains(t, out, "\tActive: Core/System/Bus clock all ON.\r\n")
	assert.True(t, strings.HasSuffix(out, "\r\nNext loop.\r\n"))
	assert.NotContains(t, out, WakeModePrompt)
	assert.Empty(t, *entries)
	assert.Equal(t, 0, con.deinits)
}

func TestStepLowPowerModes(t *testing.T) {
	tests := []struct {
		keys      string
		sleepDeep bool
		domain    uint32
		clockMode uint32
		delay     uint16
		isolated  bool
		irc       bool
	}{
		{"B1", false, 0x0, 0x0, 0x00, false, false},
		{"B2", false, 0x0, 0x0, 0x00, false, false},
		{"C2", true, 0x1, 0xF, 0x00, true, true},
		{"C3", true, 0x1, 0xF, 0x00, true, false},
		{"D1", true, 0x3, 0xF, 0x5B, true, false},
		{"D3", true, 0x3, 0xF, 0xFF, true, false},
		{"E1", true, 0xF, 0xF, 0x00, true, false},
	}
	for _, tc := range tests {
		t.Run(tc.keys, func(t *testing.T) {
			app, con := newTestApp(tc.keys)
			entries := recordEntries(t, app, con)
			require.NoError(t, app.Boot())

			require.NoError(t, app.Step())
			require.Len(t, *entries, 1)
			e := (*entries)[0]
			assert.Equal(t, tc.sleepDeep, e.sleepDeep)
			assert.Equal(t, tc.domain, e.mainDomain)
			assert.Equal(t, tc.clockMode, e.clockMode)
			assert.False(t, e.consoleUp, "console is shut down in low power modes")
			assert.Equal(t, tc.irc, e.stopModeIRC)

			assert.Equal(t, tc.delay, app.SPC.LowPowerWakeUpDelay())
			assert.Equal(t, tc.isolated, app.SPC.Bus.EVD_CFG.Get() == isolatedDomains<<mcxa153.SPC_EVD_CFG_EVDLPISO_Pos)
			assert.False(t, app.SCG.StopModeIRC(), "IRCs stopped again after wake-up")

			cfg := app.WUU.ExternalPinConfig(machine.SW3WakeUpIndex)
			assert.Equal(t, machine.ExternalPinFallingEdge, cfg.Edge)
			assert.Equal(t, machine.ExternalPinActiveAlways, cfg.Mode)

			assert.Equal(t, 1, con.flushes)
			assert.Equal(t, 1, con.deinits)
			assert.Equal(t, 2, con.configures)
			assert.True(t, con.up)
			assert.Zero(t, con.writtenDown)

			assert.Equal(t, uint32(48000000), app.Clock.CoreClockFrequency(), "back on the default clock")
			out := con.out.String()
			assert.Contains(t, out, "Wakeup Button Selected As Wakeup Source.\r\n")
			assert.Contains(t, out, "Entering Low power mode...\r\n")
			assert.Contains(t, out, WakeUpPrompt)
			assert.True(t, strings.HasSuffix(out, "\r\nNext loop.\r\n"))
		})
	}
}

func TestStepCMCConfiguration(t *testing.T) {
	app, con := newTestApp("A")
	recordEntries(t, app, con)
	require.NoError(t, app.Boot())
	app.SPC.Bus.PD_STATUS[0].Set(0)
	require.NoError(t, app.Step())

	assert.True(t, app.CMC.Bus.DBGCTL.HasBits(mcxa153.CMC_DBGCTL_SOD))
	assert.Equal(t, uint32(machine.AllowAllLowPowerModes), app.CMC.Bus.PMPROT.Get())
	assert.Equal(t, uint32(mcxa153.CMC_FLASHCR_FLASHDOZE), app.CMC.Bus.FLASHCR.Get())
	assert.True(t, app.SPC.Bus.PD_STATUS[0].HasBits(mcxa153.SPC_PD_STATUS_PD_LP_REQ))
	assert.True(t, app.SPC.Bus.SC.HasBits(mcxa153.SPC_SC_SPC_LP_REQ))
}

func TestRunStopsOnConsoleError(t *testing.T) {
	app, con := newTestApp("AB1A")
	recordEntries(t, app, con)
	require.NoError(t, app.Boot())

	err := app.Run()
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, 3, strings.Count(con.out.String(), NextLoop))
}

func TestStepRecoversFromOverrun(t *testing.T) {
	app, con := newTestApp("!B!2")
	entries := recordEntries(t, app, con)
	require.NoError(t, app.Boot())
	con.out.Reset()

	require.NoError(t, app.Step())
	out := con.out.String()
	assert.Equal(t, 2, strings.Count(out, PowerModePrompt))
	assert.Equal(t, 2, strings.Count(out, WakeModePrompt))
	assert.Equal(t, 2, strings.Count(out, WrongInput))
	assert.Contains(t, out, "\tPress 2 and select Fast wake up mode\r\n")
	assert.True(t, strings.HasSuffix(out, "\r\nNext loop.\r\n"))
	assert.Len(t, *entries, 1)
}

func TestStepReportsSwitchErrors(t *testing.T) {
	t.Run("wake-up pin", func(t *testing.T) {
		app, con := newTestApp("C2")
		entries := recordEntries(t, app, con)
		require.NoError(t, app.Boot())
		app.WakeUpPin = 64

		err := app.Step()
		assert.ErrorIs(t, err, machine.ErrInvalidWakeUpPin)
		assert.Empty(t, *entries)
		assert.True(t, con.up)
	})

	t.Run("console flush", func(t *testing.T) {
		app, con := newTestApp("B1")
		entries := recordEntries(t, app, con)
		require.NoError(t, app.Boot())
		flushErr := errors.New("tx stuck")
		con.flushErr = flushErr

		err := app.Step()
		assert.ErrorIs(t, err, flushErr)
		assert.Empty(t, *entries)
		assert.True(t, con.up, "console brought back up")
	})
}
