// Copyright 2022-2023 NXP
// All rights reserved.
//
// SPDX-License-Identifier: BSD-3-Clause

package image

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBinToHex(t *testing.T) {
	var hex bytes.Buffer
	require.NoError(t, BinToHex(bytes.NewReader([]byte{0x01, 0x02, 0x03, 0x04}), &hex, 0))

	lines := strings.Fields(hex.String())
	require.NotEmpty(t, lines)
	assert.Contains(t, lines, ":0400000001020304F2")
	assert.Equal(t, ":00000001FF", lines[len(lines)-1])
}

func TestRoundTrip(t *testing.T) {
	data := make([]byte, 100)
	for i := range data {
		data[i] = byte(i * 7)
	}
	var hex, bin bytes.Buffer
	require.NoError(t, BinToHex(bytes.NewReader(data), &hex, 0x10000))

	base, err := HexToBin(&hex, &bin, 0xff)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x10000), base)
	assert.Equal(t, data, bin.Bytes())
}

func TestHexToBinFillsGaps(t *testing.T) {
	const src = ":020000000102FB\n" +
		":020004000304F3\n" +
		":00000001FF\n"
	var bin bytes.Buffer
	base, err := HexToBin(strings.NewReader(src), &bin, 0xff)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), base)
	assert.Equal(t, []byte{0x01, 0x02, 0xff, 0xff, 0x03, 0x04}, bin.Bytes())
}

func TestEmpty(t *testing.T) {
	assert.ErrorIs(t, BinToHex(bytes.NewReader(nil), &bytes.Buffer{}, 0), ErrEmpty)

	_, err := HexToBin(strings.NewReader(":00000001FF\n"), &bytes.Buffer{}, 0)
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestHexToBinBadInput(t *testing.T) {
	_, err := HexToBin(strings.NewReader(":0400000001020304F3\n:00000001FF\n"), &bytes.Buffer{}, 0)
	assert.Error(t, err, "checksum mismatch")
}

func TestHexToBinRejectsWideSpan(t *testing.T) {
	const src = ":020000000102FB\n" +
		":02000004FFFFFC\n" +
		":02FF00000304F8\n" +
		":00000001FF\n"
	var bin bytes.Buffer
	_, err := HexToBin(strings.NewReader(src), &bin, 0xff)
	assert.ErrorIs(t, err, ErrTooLarge)
	assert.Zero(t, bin.Len())
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, io.ErrClosedPipe }

func TestBinToHexWriteError(t *testing.T) {
	err := BinToHex(bytes.NewReader([]byte{1, 2, 3}), failWriter{}, 0)
	assert.ErrorIs(t, err, io.ErrClosedPipe)
}
