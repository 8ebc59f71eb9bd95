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

func TestWUUExternalPin(t *testing.T) {
	tests := []struct {
		name  string
		index uint8
		cfg   ExternalPinConfig
		pe1   uint32
		pe2   uint32
	}{
		{"SW3", 9, ExternalPinConfig{ExternalPinFallingEdge, ExternalPinInterrupt, ExternalPinActiveAlways}, 2 << 18, 0},
		{"low pin", 0, ExternalPinConfig{ExternalPinRisingEdge, ExternalPinDMARequest, ExternalPinActiveDSPD}, 1, 0},
		{"second register", 17, ExternalPinConfig{ExternalPinAnyEdge, ExternalPinTriggerEvent, ExternalPinActiveAlways}, 0, 3 << 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			wuu := &WUU{Bus: new(mcxa153.WUU_Type)}
			require.NoError(t, wuu.SetExternalWakeUpPin(tc.index, tc.cfg))
			assert.Equal(t, tc.pe1, wuu.Bus.PE1.Get())
			assert.Equal(t, tc.pe2, wuu.Bus.PE2.Get())
			assert.Equal(t, tc.cfg, wuu.ExternalPinConfig(tc.index))
			assert.Equal(t, tc.cfg.Mode == ExternalPinActiveAlways, wuu.Bus.PMC.HasBits(1<<tc.index))
		})
	}
}

func TestWUUInvalidPin(t *testing.T) {
	wuu := &WUU{Bus: new(mcxa153.WUU_Type)}
	assert.ErrorIs(t, wuu.SetExternalWakeUpPin(32, ExternalPinConfig{}), ErrInvalidWakeUpPin)
}

func TestWUUClearFlag(t *testing.T) {
	wuu := &WUU{Bus: new(mcxa153.WUU_Type)}
	wuu.ClearExternalWakeUpFlag(SW3WakeUpIndex)
	assert.Equal(t, uint32(mcxa153.WUU_PF_WUF9), wuu.ExternalWakeUpFlags())
}
