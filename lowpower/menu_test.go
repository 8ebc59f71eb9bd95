// Copyright 2022-2023 NXP
// All rights reserved.
//
// SPDX-License-Identifier: BSD-3-Clause

package lowpower

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nxp-appcodehub/dm-low-power-implementation-mcxa153/machine"
)

type terminal struct {
	*strings.Reader
	bytes.Buffer
}

func newTerminal(keys string) *terminal {
	return &terminal{Reader: strings.NewReader(keys)}
}

func (t *terminal) Write(p []byte) (int, error) { return t.Buffer.Write(p) }
func (t *terminal) ReadByte() (byte, error)     { return t.Reader.ReadByte() }

func TestSelectPowerMode(t *testing.T) {
	term := newTerminal("d")
	mode, err := SelectPowerMode(term)
	require.NoError(t, err)
	assert.Equal(t, PowerModePowerDown, mode)

	out := term.Buffer.String()
	assert.Contains(t, out, "\tPress A to enter: Active mode\r\n")
	assert.Contains(t, out, "\tPress E to enter: DeepPowerDown mode\r\n")
	assert.Contains(t, out, "\r\nWaiting for power mode select...\r\n\r\n")
	assert.Contains(t, out, "\tPress D and select PowerDown mode\r\n")
	assert.True(t, strings.HasSuffix(out, "\t"+PowerModePowerDown.Description()+"\r\n"))
	assert.NotContains(t, out, WrongInput)
}

func TestSelectPowerModeRepromptsOutOfRange(t *testing.T) {
	for c := 0; c < 256; c++ {
		upper := byte(c)
		if upper >= 'a' && upper <= 'z' {
			upper -= 'a' - 'A'
		}
		if PowerMode(upper).Valid() {
			continue
		}
		term := newTerminal(string([]byte{byte(c), 'B'}))
		mode, err := SelectPowerMode(term)
		require.NoError(t, err, "key %#x", c)
		assert.Equal(t, PowerModeSleep, mode, "key %#x", c)

		out := term.Buffer.String()
		assert.Equal(t, 1, strings.Count(out, WrongInput), "key %#x", c)
		assert.Equal(t, 2, strings.Count(out, PowerModePrompt), "key %#x", c)
	}
}

func TestSelectPowerModeEOF(t *testing.T) {
	_, err := SelectPowerMode(newTerminal("xyz"))
	assert.ErrorIs(t, err, io.EOF)
}

func TestSelectWakeMode(t *testing.T) {
	tests := []struct {
		name   string
		mode   PowerMode
		keys   string
		want   WakeMode
		wrong  int
		offers []string
	}{
		{"sleep fast", PowerModeSleep, "2", WakeModeFast, 0, []string{"Press 1 to select: Typical wake up", "Press 3 to select: Slow wake up"}},
		{"out of range", PowerModeDeepSleep, "04a3", WakeModeSlow, 3, nil},
		{"deep power down typical only", PowerModeDeepPowerDown, "231", WakeModeTypical, 2, []string{"Press 1 to select: Typical wake up"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			term := newTerminal(tc.keys)
			wake, err := SelectWakeMode(term, tc.mode)
			require.NoError(t, err)
			assert.Equal(t, tc.want, wake)

			out := term.Buffer.String()
			assert.Equal(t, tc.wrong, strings.Count(out, WrongInput))
			for _, s := range tc.offers {
				assert.Contains(t, out, s)
			}
			assert.True(t, strings.HasSuffix(out, "\t"+WakeDescription(tc.mode, tc.want)+"\n\r\n"))
		})
	}
}

func TestSelectWakeModeDeepPowerDownHidesOthers(t *testing.T) {
	term := newTerminal("1")
	_, err := SelectWakeMode(term, PowerModeDeepPowerDown)
	require.NoError(t, err)
	assert.NotContains(t, term.Buffer.String(), "Fast wake up")
}

func TestSelectWakeModeActive(t *testing.T) {
	_, err := SelectWakeMode(newTerminal("1"), PowerModeActive)
	assert.Error(t, err)
}

type overrunTerminal struct {
	*terminal
	overruns int
}

func (t *overrunTerminal) ReadByte() (byte, error) {
	if t.overruns > 0 {
		t.overruns--
		return 0, machine.ErrUARTOverrun
	}
	return t.terminal.ReadByte()
}

func TestSelectRepromptsAfterOverrun(t *testing.T) {
	term := &overrunTerminal{terminal: newTerminal("c"), overruns: 2}
	mode, err := SelectPowerMode(term)
	require.NoError(t, err)
	assert.Equal(t, PowerModeDeepSleep, mode)
	assert.Equal(t, 2, strings.Count(term.Buffer.String(), WrongInput))

	term = &overrunTerminal{terminal: newTerminal("3"), overruns: 1}
	wake, err := SelectWakeMode(term, PowerModeDeepSleep)
	require.NoError(t, err)
	assert.Equal(t, WakeModeSlow, wake)
	assert.Equal(t, 1, strings.Count(term.Buffer.String(), WrongInput))
}
