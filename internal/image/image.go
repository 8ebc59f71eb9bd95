// Copyright 2022-2023 NXP
// All rights reserved.
//
// SPDX-License-Identifier: BSD-3-Clause

// Package image converts firmware images between raw binary and Intel HEX.
package image

import (
	"errors"
	"fmt"
	"io"

	"github.com/marcinbor85/gohex"
)

// HexLineLength is the number of data bytes per HEX record.
const HexLineLength = 16

// MaxImageSize bounds the flat image HexToBin builds, from the lowest to the
// highest address in the HEX file.
const MaxImageSize = 16 << 20

var (
	// ErrEmpty is returned for a HEX file with no data records.
	ErrEmpty = errors.New("image: no data")
	// ErrTooLarge is returned when HEX segments span more than MaxImageSize.
	ErrTooLarge = errors.New("image: segments span too much memory")
)

// errWriter keeps the first write error, since gohex does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}

// BinToHex writes the binary read from r as Intel HEX, loaded at base.
func BinToHex(r io.Reader, w io.Writer, base uint32) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read binary: %w", err)
	}
	if len(data) == 0 {
		return ErrEmpty
	}
	mem := gohex.NewMemory()
	if err := mem.AddBinary(base, data); err != nil {
		return fmt.Errorf("load binary at %#x: %w", base, err)
	}
	ew := &errWriter{w: w}
	mem.DumpIntelHex(ew, HexLineLength)
	if ew.err != nil {
		return fmt.Errorf("write hex: %w", ew.err)
	}
	return nil
}

// HexToBin parses Intel HEX from r and writes the flat image spanning its
// lowest to highest address. Gaps between segments are filled with pad.
// It returns the image's base address.
func HexToBin(r io.Reader, w io.Writer, pad byte) (uint32, error) {
	mem := gohex.NewMemory()
	if err := mem.ParseIntelHex(r); err != nil {
		return 0, fmt.Errorf("parse hex: %w", err)
	}
	segs := mem.GetDataSegments()
	if len(segs) == 0 {
		return 0, ErrEmpty
	}

	// Segments come back sorted by address.
	base := segs[0].Address
	last := segs[len(segs)-1]
	span := uint64(last.Address-base) + uint64(len(last.Data))
	if span > MaxImageSize {
		return 0, fmt.Errorf("%w: %#x..%#x is %d bytes, limit %d", ErrTooLarge,
			base, uint64(last.Address)+uint64(len(last.Data)), span, MaxImageSize)
	}

	if _, err := w.Write(mem.ToBinary(base, uint32(span), pad)); err != nil {
		return 0, fmt.Errorf("write binary: %w", err)
	}
	return base, nil
}
