// Copyright 2022-2023 NXP
// All rights reserved.
//
// SPDX-License-Identifier: BSD-3-Clause

package machine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nxp-appcodehub/dm-low-power-implementation-mcxa153/device/mcxa153"
)

func newTestClock() *Clock {
	return &Clock{
		SCG:    mcxa153.NewSCG(),
		SYSCON: new(mcxa153.SYSCON_Type),
		FMU:    new(mcxa153.FMU_Type),
		SPC:    newTestSPC(),
	}
}

var (
	midNormal    = CoreLDOConfig{CoreLDOMidDriveVoltage, CoreLDONormalDriveStrength}
	midLow       = CoreLDOConfig{CoreLDOMidDriveVoltage, CoreLDOLowDriveStrength}
	normalNormal = CoreLDOConfig{CoreLDONormalVoltage, CoreLDONormalDriveStrength}
	underLow     = CoreLDOConfig{CoreLDOUnderDriveVoltage, CoreLDOLowDriveStrength}
)

func TestClockBoot(t *testing.T) {
	tests := []struct {
		name       string
		cfg        ClockConfig
		hz         uint32
		waitStates uint32
		scs        uint32
	}{
		{"FRO48M", FRO48M(midNormal, midLow), 48000000, 1, mcxa153.SCG_SCS_FIRC},
		{"FRO96M", FRO96M(normalNormal, normalNormal), 96000000, 2, mcxa153.SCG_SCS_FIRC},
		{"FRO12M", FRO12M(midNormal, underLow), 12000000, 0, mcxa153.SCG_SCS_SIRC},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			clk := newTestClock()
			require.NoError(t, clk.Boot(tc.cfg))

			assert.Equal(t, tc.hz, clk.CoreClockFrequency())
			assert.Equal(t, tc.waitStates, clk.FMU.FCTRL.Get())
			assert.Equal(t, tc.scs, clk.SCG.RCCR.Field(mcxa153.SCG_RCCR_SCS_Msk>>mcxa153.SCG_RCCR_SCS_Pos, mcxa153.SCG_RCCR_SCS_Pos))
			assert.Equal(t, tc.cfg.Active, clk.SPC.ActiveCoreLDO())
			assert.Equal(t, tc.cfg.LowPower, clk.SPC.LowPowerCoreLDO())
		})
	}
}

func TestClockBootSequence(t *testing.T) {
	clk := newTestClock()
	require.NoError(t, clk.Boot(FRO96M(normalNormal, midLow)))
	require.NoError(t, clk.Boot(FRO12M(midLow, midLow)))

	assert.Equal(t, uint32(12000000), clk.CoreClockFrequency())
	assert.Zero(t, clk.FMU.FCTRL.Get())
	assert.Equal(t, midLow, clk.SPC.ActiveCoreLDO())

	require.NoError(t, clk.Boot(FRO48M(midNormal, midLow)))
	assert.Equal(t, uint32(48000000), clk.CoreClockFrequency())
	assert.Equal(t, uint32(1), clk.FMU.FCTRL.Get())
}

func TestClockBootRaisesRegulatorFirst(t *testing.T) {
	tests := []struct {
		name string
		from ClockConfig
		to   ClockConfig
	}{
		{"drive strength", FRO12M(midLow, midLow), FRO48M(midNormal, midLow)},
		{"voltage", FRO48M(midNormal, midLow), FRO96M(normalNormal, normalNormal)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			clk := newTestClock()
			require.NoError(t, clk.Boot(tc.from))

			// Hold FIRC invalid so Boot stops where it waits for the fast clock.
			clk.SCG.FIRCCSR.ClearBits(mcxa153.SCG_FIRCCSR_FIRCEN | mcxa153.SCG_FIRCCSR_FIRCVLD)
			done := make(chan error, 1)
			go func() { done <- clk.Boot(tc.to) }()

			require.Eventually(t, func() bool {
				return clk.SCG.FIRCCSR.HasBits(mcxa153.SCG_FIRCCSR_FIRCEN)
			}, time.Second, time.Millisecond)
			assert.Equal(t, tc.to.Active, clk.SPC.ActiveCoreLDO(), "regulator raised before the switch")

			clk.SCG.FIRCCSR.SetBits(mcxa153.SCG_FIRCCSR_FIRCVLD)
			require.NoError(t, <-done)
		})
	}
}

func TestCoreLDOConfigStronger(t *testing.T) {
	assert.True(t, midNormal.stronger(midLow))
	assert.True(t, normalNormal.stronger(midNormal))
	assert.True(t, CoreLDOConfig{CoreLDONormalVoltage, CoreLDOLowDriveStrength}.stronger(midNormal))
	assert.False(t, midLow.stronger(midNormal))
	assert.False(t, midNormal.stronger(midNormal))
	assert.False(t, underLow.stronger(midLow))
}

func TestClockVoltageTooLow(t *testing.T) {
	clk := newTestClock()
	err := clk.Boot(FRO96M(midNormal, midLow))
	assert.ErrorIs(t, err, ErrClockVoltage)
	assert.Zero(t, clk.FMU.FCTRL.Get(), "nothing programmed")
}

func TestClockAHBDivider(t *testing.T) {
	clk := newTestClock()
	require.NoError(t, clk.Boot(FRO48M(midNormal, midLow)))
	clk.SYSCON.AHBCLKDIV.Set(1)
	assert.Equal(t, uint32(24000000), clk.CoreClockFrequency())
}

func TestClockConfigString(t *testing.T) {
	assert.Equal(t, "FRO48M(active MidDrive/Normal, low power MidDrive/Low)", FRO48M(midNormal, midLow).String())
}
