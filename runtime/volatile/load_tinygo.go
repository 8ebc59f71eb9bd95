// Copyright 2022-2023 NXP
// All rights reserved.
//
// SPDX-License-Identifier: BSD-3-Clause

//go:build tinygo

package volatile

import rv "runtime/volatile"

// LoadUint32 performs a volatile 32-bit load.
//
//go:inline
func LoadUint32(addr *uint32) uint32 {
	return rv.LoadUint32(addr)
}

// StoreUint32 performs a volatile 32-bit store.
//
//go:inline
func StoreUint32(addr *uint32, val uint32) {
	rv.StoreUint32(addr, val)
}
