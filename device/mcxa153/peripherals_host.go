// Copyright 2022-2023 NXP
// All rights reserved.
//
// SPDX-License-Identifier: BSD-3-Clause

//go:build !(tinygo && mcxa153)

package mcxa153

// Off target every peripheral is an ordinary zeroed block of memory. Status
// bits that real hardware raises on its own (clock valid, transmitter idle)
// are preset so that polling loops in the drivers terminate.
var (
	SPC0    = new(SPC_Type)
	CMC     = new(CMC_Type)
	WUU0    = new(WUU_Type)
	SCG0    = NewSCG()
	MRCC0   = new(MRCC_Type)
	SYSCON  = new(SYSCON_Type)
	FMU0    = new(FMU_Type)
	LPUART0 = NewLPUART()
	SCB     = new(SCB_Type)
	NVIC    = new(NVIC_Type)

	PORT0 = new(PORT_Type)
	PORT1 = new(PORT_Type)
	PORT2 = new(PORT_Type)
	PORT3 = new(PORT_Type)

	GPIO0 = new(GPIO_Type)
	GPIO1 = new(GPIO_Type)
	GPIO2 = new(GPIO_Type)
	GPIO3 = new(GPIO_Type)
)

// NewSCG returns a clock generator block whose oscillators report valid.
func NewSCG() *SCG_Type {
	scg := new(SCG_Type)
	scg.SIRCCSR.SetBits(SCG_SIRCCSR_SIRCVLD)
	scg.FIRCCSR.SetBits(SCG_FIRCCSR_FIRCEN | SCG_FIRCCSR_FIRCVLD)
	scg.FIRCCFG.ReplaceBits(SCG_FIRCCFG_FREQ_SEL_48M, SCG_FIRCCFG_FREQ_SEL_Msk>>SCG_FIRCCFG_FREQ_SEL_Pos, SCG_FIRCCFG_FREQ_SEL_Pos)
	scg.CSR.ReplaceBits(SCG_SCS_FIRC, SCG_CSR_SCS_Msk>>SCG_CSR_SCS_Pos, SCG_CSR_SCS_Pos)
	scg.RCCR.ReplaceBits(SCG_SCS_FIRC, SCG_RCCR_SCS_Msk>>SCG_RCCR_SCS_Pos, SCG_RCCR_SCS_Pos)
	return scg
}

// NewLPUART returns a UART block with an idle, empty transmitter.
func NewLPUART() *LPUART_Type {
	uart := new(LPUART_Type)
	uart.STAT.SetBits(LPUART_STAT_TDRE | LPUART_STAT_TC)
	return uart
}
