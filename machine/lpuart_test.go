// Copyright 2022-2023 NXP
// All rights reserved.
//
// SPDX-License-Identifier: BSD-3-Clause

package machine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nxp-appcodehub/dm-low-power-implementation-mcxa153/device/mcxa153"
)

func newTestUART() *UART {
	mrcc := new(mcxa153.MRCC_Type)
	return &UART{
		Bus:          mcxa153.NewLPUART(),
		Reset:        ResetLPUART0,
		ClockSelect:  &mrcc.LPUART0_CLKSEL,
		ClockDivider: &mrcc.LPUART0_CLKDIV,
	}
}

func TestBaudDivisors(t *testing.T) {
	tests := []struct {
		clock, baud uint32
		osr, sbr    uint32
		ok          bool
	}{
		{12000000, 115200, 26, 4, true},
		{12000000, 9600, 25, 50, true},
		{12000000, 0, 0, 0, false},
		{12000000, 12000000, 0, 0, false},
	}
	for _, tc := range tests {
		osr, sbr, ok := baudDivisors(tc.clock, tc.baud)
		assert.Equal(t, tc.ok, ok, "baud %d", tc.baud)
		if tc.ok {
			assert.Equal(t, tc.osr, osr, "baud %d", tc.baud)
			assert.Equal(t, tc.sbr, sbr, "baud %d", tc.baud)
		}
	}
}

func TestUARTConfigure(t *testing.T) {
	u := newTestUART()
	require.NoError(t, u.Configure(UARTConfig{BaudRate: 115200}))

	assert.True(t, u.Bus.CTRL.HasBits(mcxa153.LPUART_CTRL_TE))
	assert.True(t, u.Bus.CTRL.HasBits(mcxa153.LPUART_CTRL_RE))
	assert.Equal(t, uint32(25), u.Bus.BAUD.Field(mcxa153.LPUART_BAUD_OSR_Msk>>mcxa153.LPUART_BAUD_OSR_Pos, mcxa153.LPUART_BAUD_OSR_Pos))
	assert.Equal(t, uint32(4), u.Bus.BAUD.Field(mcxa153.LPUART_BAUD_SBR_Msk, mcxa153.LPUART_BAUD_SBR_Pos))

	u.Deinit()
	assert.False(t, u.Bus.CTRL.HasBits(mcxa153.LPUART_CTRL_TE|mcxa153.LPUART_CTRL_RE))
}

func TestUARTInvalidBaud(t *testing.T) {
	u := newTestUART()
	assert.ErrorIs(t, u.Configure(UARTConfig{BaudRate: 0}), ErrInvalidBaudRate)
}

func TestUARTReadWrite(t *testing.T) {
	u := newTestUART()
	n, err := u.Write([]byte("ok"))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, uint32('k'), u.Bus.DATA.Get())
	assert.True(t, u.TransmissionComplete())

	assert.Zero(t, u.Buffered())
	u.Bus.DATA.Set('B')
	u.Bus.STAT.SetBits(mcxa153.LPUART_STAT_RDRF)
	assert.Equal(t, 1, u.Buffered())
	c, err := u.ReadByte()
	require.NoError(t, err)
	assert.Equal(t, byte('B'), c)
}

func TestUARTOverrun(t *testing.T) {
	tests := []struct {
		name string
		stat uint32
	}{
		{"overrun alone", mcxa153.LPUART_STAT_OR},
		{"overrun with data", mcxa153.LPUART_STAT_OR | mcxa153.LPUART_STAT_RDRF},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			u := newTestUART()
			u.Bus.DATA.Set('B')
			u.Bus.STAT.SetBits(tc.stat)

			_, err := u.ReadByte()
			assert.ErrorIs(t, err, ErrUARTOverrun)
			assert.False(t, u.Bus.STAT.HasBits(mcxa153.LPUART_STAT_OR), "overrun flag cleared")

			u.Bus.DATA.Set('2')
			u.Bus.STAT.SetBits(mcxa153.LPUART_STAT_RDRF)
			c, err := u.ReadByte()
			require.NoError(t, err)
			assert.Equal(t, byte('2'), c)
		})
	}
}
