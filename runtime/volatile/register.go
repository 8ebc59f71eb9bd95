// Copyright 2022-2023 NXP
// All rights reserved.
//
// SPDX-License-Identifier: BSD-3-Clause

// Package volatile provides memory-mapped register access for the MCXA153
// peripheral blocks.
//
// On a TinyGo target every access is a volatile load or store. On the host the
// same types are backed by ordinary memory, which lets the drivers run against
// zeroed register blocks in tests.
package volatile

// Register32 is a 32-bit memory-mapped register. All peripheral registers on
// the MCXA153 are 32 bits wide.
type Register32 struct {
	Reg uint32
}

// Get returns the value in the register.
//
//go:inline
func (r *Register32) Get() uint32 {
	return LoadUint32(&r.Reg)
}

// Set writes the value to the register.
//
//go:inline
func (r *Register32) Set(value uint32) {
	StoreUint32(&r.Reg, value)
}

// SetBits reads the register, sets the given bits, and writes it back.
//
//go:inline
func (r *Register32) SetBits(value uint32) {
	StoreUint32(&r.Reg, LoadUint32(&r.Reg)|value)
}

// ClearBits reads the register, clears the given bits, and writes it back.
//
//go:inline
func (r *Register32) ClearBits(value uint32) {
	StoreUint32(&r.Reg, LoadUint32(&r.Reg)&^value)
}

// HasBits reports whether any of the given bits are set.
//
//go:inline
func (r *Register32) HasBits(value uint32) bool {
	return (r.Get() & value) > 0
}

// ReplaceBits replaces the field selected by mask<<pos with value<<pos,
// leaving the remaining bits untouched.
//
//go:inline
func (r *Register32) ReplaceBits(value uint32, mask uint32, pos uint8) {
	StoreUint32(&r.Reg, LoadUint32(&r.Reg)&^(mask<<pos)|(value&mask)<<pos)
}

// Field returns the field selected by mask<<pos, shifted down to bit 0.
//
//go:inline
func (r *Register32) Field(mask uint32, pos uint8) uint32 {
	return (r.Get() >> pos) & mask
}
