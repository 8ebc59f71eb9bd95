// Copyright 2022-2023 NXP
// All rights reserved.
//
// SPDX-License-Identifier: BSD-3-Clause

//go:build !tinygo

package volatile

import "sync/atomic"

// LoadUint32 loads from ordinary memory standing in for a register.
func LoadUint32(addr *uint32) uint32 {
	return atomic.LoadUint32(addr)
}

// StoreUint32 stores to ordinary memory standing in for a register.
func StoreUint32(addr *uint32, val uint32) {
	atomic.StoreUint32(addr, val)
}
