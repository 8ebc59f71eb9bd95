// Copyright 2022-2023 NXP
// All rights reserved.
//
// SPDX-License-Identifier: BSD-3-Clause

//go:build tinygo && mcxa153

package mcxa153

import "unsafe"

// Peripheral instances at their hardware addresses.
var (
	SPC0    = (*SPC_Type)(unsafe.Pointer(uintptr(SPC0_BASE)))
	CMC     = (*CMC_Type)(unsafe.Pointer(uintptr(CMC_BASE)))
	WUU0    = (*WUU_Type)(unsafe.Pointer(uintptr(WUU0_BASE)))
	SCG0    = (*SCG_Type)(unsafe.Pointer(uintptr(SCG0_BASE)))
	MRCC0   = (*MRCC_Type)(unsafe.Pointer(uintptr(MRCC0_BASE)))
	SYSCON  = (*SYSCON_Type)(unsafe.Pointer(uintptr(SYSCON_BASE)))
	FMU0    = (*FMU_Type)(unsafe.Pointer(uintptr(FMU0_BASE)))
	LPUART0 = (*LPUART_Type)(unsafe.Pointer(uintptr(LPUART0_BASE)))
	SCB     = (*SCB_Type)(unsafe.Pointer(uintptr(SCB_BASE)))
	NVIC    = (*NVIC_Type)(unsafe.Pointer(uintptr(NVIC_BASE)))

	PORT0 = (*PORT_Type)(unsafe.Pointer(uintptr(PORT0_BASE + 0*portStride)))
	PORT1 = (*PORT_Type)(unsafe.Pointer(uintptr(PORT0_BASE + 1*portStride)))
	PORT2 = (*PORT_Type)(unsafe.Pointer(uintptr(PORT0_BASE + 2*portStride)))
	PORT3 = (*PORT_Type)(unsafe.Pointer(uintptr(PORT0_BASE + 3*portStride)))

	GPIO0 = (*GPIO_Type)(unsafe.Pointer(uintptr(GPIO0_BASE + 0*gpioStride)))
	GPIO1 = (*GPIO_Type)(unsafe.Pointer(uintptr(GPIO0_BASE + 1*gpioStride)))
	GPIO2 = (*GPIO_Type)(unsafe.Pointer(uintptr(GPIO0_BASE + 2*gpioStride)))
	GPIO3 = (*GPIO_Type)(unsafe.Pointer(uintptr(GPIO0_BASE + 3*gpioStride)))
)
