// Copyright 2022-2023 NXP
// All rights reserved.
//
// SPDX-License-Identifier: BSD-3-Clause

// Package mcxa153 describes the MCXA153 register blocks used by the low
// power demo: their layout, bit fields and base addresses.
package mcxa153

import (
	"github.com/nxp-appcodehub/dm-low-power-implementation-mcxa153/runtime/volatile"
)

// Peripheral base addresses.
const (
	CMC_BASE     = 0x4008B000
	WUU0_BASE    = 0x4008F000
	SPC0_BASE    = 0x40090000
	MRCC0_BASE   = 0x40091000
	SYSCON_BASE  = 0x40091000
	SCG0_BASE    = 0x40092000
	FMU0_BASE    = 0x40095000
	LPUART0_BASE = 0x4009F000
	PORT0_BASE   = 0x400BC000
	GPIO0_BASE   = 0x40102000
	SCB_BASE     = 0xE000ED00
	NVIC_BASE    = 0xE000E100

	portStride = 0x1000
	gpioStride = 0x1000
)

// Interrupt numbers used by the demo.
const (
	IRQ_Reserved16 = 0
	IRQ_WUU0       = 64
)

// SPC_Type is the System Power Controller.
type SPC_Type struct {
	VERID              volatile.Register32 // 0x000
	_                  [3]uint32
	SC                 volatile.Register32 // 0x010
	_                  [2]uint32
	LPREQ_CFG          volatile.Register32 // 0x01C
	_                  [4]uint32
	PD_STATUS          [1]volatile.Register32 // 0x030
	_                  [3]uint32
	SRAMCTL            volatile.Register32 // 0x040
	_                  [47]uint32
	ACTIVE_CFG         volatile.Register32 // 0x100
	ACTIVE_CFG1        volatile.Register32 // 0x104
	LP_CFG             volatile.Register32 // 0x108
	LP_CFG1            volatile.Register32 // 0x10C
	_                  [4]uint32
	LPWKUP_DELAY       volatile.Register32 // 0x120
	ACTIVE_VDELAY      volatile.Register32 // 0x124
	_                  [2]uint32
	VD_STAT            volatile.Register32 // 0x130
	VD_CORE_CFG        volatile.Register32 // 0x134
	VD_SYS_CFG         volatile.Register32 // 0x138
	_                  [1]uint32
	EVD_CFG            volatile.Register32 // 0x140
	_                  [175]uint32
	SRAMRETLDO_REFTRIM volatile.Register32 // 0x400
	SRAMRETLDO_CNTRL   volatile.Register32 // 0x404
}

// SPC bit fields.
const (
	SPC_SC_BUSY            = 0x1
	SPC_SC_SPC_LP_REQ      = 0x2
	SPC_SC_SPC_LP_MODE_Pos = 4
	SPC_SC_SPC_LP_MODE_Msk = 0xF0
	SPC_SC_ISO_CLR_Pos     = 16
	SPC_SC_ISO_CLR_Msk     = 0xFF0000

	SPC_PD_STATUS_PWR_REQ_STATUS = 0x1
	SPC_PD_STATUS_PD_LP_REQ      = 0x10
	SPC_PD_STATUS_LP_MODE_Pos    = 8
	SPC_PD_STATUS_LP_MODE_Msk    = 0xF00

	SPC_CFG_CORELDO_VDD_DS        = 0x1
	SPC_CFG_CORELDO_VDD_LVL_Pos   = 2
	SPC_CFG_CORELDO_VDD_LVL_Msk   = 0xC
	SPC_CFG_GLITCH_DETECT_DISABLE = 0x10000
	SPC_CFG_BGMODE_Pos            = 20
	SPC_CFG_BGMODE_Msk            = 0x300000
	SPC_LP_CFG_LP_IREFEN          = 0x800000
	SPC_CFG_CORE_LVDE             = 0x1000000
	SPC_CFG_SYS_LVDE              = 0x2000000
	SPC_CFG_SYS_HVDE              = 0x8000000

	SPC_LPWKUP_DELAY_LPWKUP_DELAY_Pos = 0
	SPC_LPWKUP_DELAY_LPWKUP_DELAY_Msk = 0xFFFF

	SPC_EVD_CFG_EVDISO_Pos   = 0
	SPC_EVD_CFG_EVDISO_Msk   = 0x7
	SPC_EVD_CFG_EVDLPISO_Pos = 16
	SPC_EVD_CFG_EVDLPISO_Msk = 0x70000

	SPC_SRAMRETLDO_CNTRL_SRAMLDO_ON = 0x1
)

// CMC_Type is the Core Mode Controller.
type CMC_Type struct {
	VERID   volatile.Register32 // 0x000
	PARAM   volatile.Register32 // 0x004
	_       [2]uint32
	CKCTRL  volatile.Register32 // 0x010
	CKSTAT  volatile.Register32 // 0x014
	PMPROT  volatile.Register32 // 0x018
	GPMCTRL volatile.Register32 // 0x01C
	PMCTRL  [4]volatile.Register32 // 0x020
	_       [20]uint32
	SRS     volatile.Register32 // 0x080
	RPC     volatile.Register32 // 0x084
	SSRS    volatile.Register32 // 0x088
	SRIE    volatile.Register32 // 0x08C
	SRIF    volatile.Register32 // 0x090
	_       [3]uint32
	MR      [1]volatile.Register32 // 0x0A0
	_       [3]uint32
	FM      [1]volatile.Register32 // 0x0B0
	_       [19]uint32
	FLASHCR volatile.Register32 // 0x100
	_       [3]uint32
	CORECTL volatile.Register32 // 0x110
	_       [3]uint32
	DBGCTL  volatile.Register32 // 0x120
}

// CMC bit fields.
const (
	CMC_CKCTRL_CKMODE_Pos = 0
	CMC_CKCTRL_CKMODE_Msk = 0xF
	CMC_PMPROT_LPMODE_Pos = 0
	CMC_PMPROT_LPMODE_Msk = 0xF
	CMC_PMCTRL_LPMODE_Pos = 0
	CMC_PMCTRL_LPMODE_Msk = 0xF

	CMC_SRS_WAKEUP = 0x1
	CMC_SRS_POR    = 0x2
	CMC_SRS_VD     = 0x4
	CMC_SRS_WARM   = 0x10
	CMC_SRS_FATAL  = 0x20
	CMC_SRS_PIN    = 0x100
	CMC_SRS_DAP    = 0x200
	CMC_SRS_RSTACK = 0x400
	CMC_SRS_LPACK  = 0x800
	CMC_SRS_SCG    = 0x1000
	CMC_SRS_WWDT0  = 0x2000
	CMC_SRS_SW     = 0x4000
	CMC_SRS_LOCKUP = 0x8000
	CMC_SRS_CDOG0  = 0x4000000
	CMC_SRS_JTAG   = 0x10000000

	CMC_FLASHCR_FLASHDIS  = 0x1
	CMC_FLASHCR_FLASHDOZE = 0x2
	CMC_FLASHCR_FLASHWAKE = 0x4

	CMC_DBGCTL_SOD = 0x1
)

// WUU_Type is the Wake-Up Unit.
type WUU_Type struct {
	VERID volatile.Register32 // 0x000
	PARAM volatile.Register32 // 0x004
	PE1   volatile.Register32 // 0x008
	PE2   volatile.Register32 // 0x00C
	_     [2]uint32
	ME    volatile.Register32 // 0x018
	DE    volatile.Register32 // 0x01C
	PF    volatile.Register32 // 0x020
	_     [3]uint32
	FILT  volatile.Register32 // 0x030
	_     [1]uint32
	PDC1  volatile.Register32 // 0x038
	PDC2  volatile.Register32 // 0x03C
	_     [2]uint32
	FDC   volatile.Register32 // 0x048
	_     [1]uint32
	PMC   volatile.Register32 // 0x050
	_     [1]uint32
	FMC   volatile.Register32 // 0x058
}

// WUU bit fields. PE and PDC hold two bits per pin, sixteen pins per register.
const (
	WUU_PE_WUPE_Msk   = 0x3
	WUU_PDC_WUPDC_Msk = 0x3
	WUU_PinsPerReg    = 16

	WUU_PF_WUF9 = 1 << 9
)

// SCG_Type is the System Clock Generator.
type SCG_Type struct {
	VERID   volatile.Register32 // 0x000
	PARAM   volatile.Register32 // 0x004
	_       [2]uint32
	CSR     volatile.Register32 // 0x010
	RCCR    volatile.Register32 // 0x014
	_       [58]uint32
	SOSCCSR volatile.Register32 // 0x100
	_       [63]uint32
	SIRCCSR volatile.Register32 // 0x200
	_       [63]uint32
	FIRCCSR volatile.Register32 // 0x300
	_       [1]uint32
	FIRCCFG volatile.Register32 // 0x308
}

// SCG bit fields.
const (
	SCG_CSR_SCS_Pos  = 24
	SCG_CSR_SCS_Msk  = 0xF000000
	SCG_RCCR_SCS_Pos = 24
	SCG_RCCR_SCS_Msk = 0x7000000

	SCG_SCS_SIRC = 2
	SCG_SCS_FIRC = 3

	SCG_SIRCCSR_SIRCSTEN           = 0x2
	SCG_SIRCCSR_SIRC_CLK_PERIPH_EN = 0x20
	SCG_SIRCCSR_LK                 = 0x800000
	SCG_SIRCCSR_SIRCVLD            = 0x1000000
	SCG_SIRCCSR_SIRCSEL            = 0x2000000

	SCG_FIRCCSR_FIRCEN              = 0x1
	SCG_FIRCCSR_FIRCSTEN            = 0x2
	SCG_FIRCCSR_FIRC_SCLK_PERIPH_EN = 0x10
	SCG_FIRCCSR_FIRC_FCLK_PERIPH_EN = 0x20
	SCG_FIRCCSR_LK                  = 0x800000
	SCG_FIRCCSR_FIRCVLD             = 0x1000000
	SCG_FIRCCSR_FIRCSEL             = 0x2000000

	SCG_FIRCCFG_FREQ_SEL_Pos = 1
	SCG_FIRCCFG_FREQ_SEL_Msk = 0xE
	SCG_FIRCCFG_FREQ_SEL_48M = 0x1
	SCG_FIRCCFG_FREQ_SEL_64M = 0x3
	SCG_FIRCCFG_FREQ_SEL_96M = 0x5
)

// MRCC_Type is the module reset and clock control block.
type MRCC_Type struct {
	GLB_RST0       volatile.Register32 // 0x000
	GLB_RST0_SET   volatile.Register32 // 0x004
	GLB_RST0_CLR   volatile.Register32 // 0x008
	_              [1]uint32
	GLB_RST1       volatile.Register32 // 0x010
	GLB_RST1_SET   volatile.Register32 // 0x014
	GLB_RST1_CLR   volatile.Register32 // 0x018
	_              [9]uint32
	GLB_CC0        volatile.Register32 // 0x040
	GLB_CC0_SET    volatile.Register32 // 0x044
	GLB_CC0_CLR    volatile.Register32 // 0x048
	_              [1]uint32
	GLB_CC1        volatile.Register32 // 0x050
	GLB_CC1_SET    volatile.Register32 // 0x054
	GLB_CC1_CLR    volatile.Register32 // 0x058
	_              [9]uint32
	GLB_ACC0       volatile.Register32 // 0x080
	GLB_ACC1       volatile.Register32 // 0x084
	_              [18]uint32
	LPUART0_CLKSEL volatile.Register32 // 0x0D0
	LPUART0_CLKDIV volatile.Register32 // 0x0D4
}

// MRCC bit fields.
const (
	MRCC_CLKSEL_MUX_FRO12M = 0x0
	MRCC_CLKDIV_DIV_Msk    = 0xF
	MRCC_CLKDIV_HALT       = 0x40000000
	MRCC_CLKDIV_UNSTAB     = 0x80000000
)

// SYSCON_Type holds the system configuration registers that share the MRCC
// address range.
type SYSCON_Type struct {
	_         [224]uint32
	AHBCLKDIV volatile.Register32 // 0x380
}

// SYSCON bit fields.
const (
	SYSCON_AHBCLKDIV_DIV_Pos = 0
	SYSCON_AHBCLKDIV_DIV_Msk = 0xFF
)

// FMU_Type is the flash memory unit.
type FMU_Type struct {
	FSTAT volatile.Register32 // 0x000
	FCNFG volatile.Register32 // 0x004
	FCTRL volatile.Register32 // 0x008
}

// FMU bit fields.
const (
	FMU_FCTRL_RWSC_Pos = 0
	FMU_FCTRL_RWSC_Msk = 0xF
)

// PORT_Type is a pin control and interrupt block.
type PORT_Type struct {
	VERID volatile.Register32 // 0x000
	PARAM volatile.Register32 // 0x004
	_     [2]uint32
	GPCLR volatile.Register32 // 0x010
	GPCHR volatile.Register32 // 0x014
	_     [26]uint32
	PCR   [32]volatile.Register32 // 0x080
}

// PORT pin control register fields.
const (
	PORT_PCR_PS      = 0x1
	PORT_PCR_PE      = 0x2
	PORT_PCR_SRE     = 0x8
	PORT_PCR_PFE     = 0x10
	PORT_PCR_ODE     = 0x20
	PORT_PCR_DSE     = 0x40
	PORT_PCR_MUX_Pos = 8
	PORT_PCR_MUX_Msk = 0xF00
	PORT_PCR_IBE     = 0x1000
	PORT_PCR_INV     = 0x2000
	PORT_PCR_LK      = 0x8000
)

// GPIO_Type is a general purpose I/O port.
type GPIO_Type struct {
	VERID volatile.Register32 // 0x000
	PARAM volatile.Register32 // 0x004
	_     [14]uint32
	PDOR  volatile.Register32 // 0x040
	PSOR  volatile.Register32 // 0x044
	PCOR  volatile.Register32 // 0x048
	PTOR  volatile.Register32 // 0x04C
	PDIR  volatile.Register32 // 0x050
	PDDR  volatile.Register32 // 0x054
	PIDR  volatile.Register32 // 0x058
}

// LPUART_Type is a low power UART.
type LPUART_Type struct {
	VERID  volatile.Register32 // 0x000
	PARAM  volatile.Register32 // 0x004
	GLOBAL volatile.Register32 // 0x008
	PINCFG volatile.Register32 // 0x00C
	BAUD   volatile.Register32 // 0x010
	STAT   volatile.Register32 // 0x014
	CTRL   volatile.Register32 // 0x018
	DATA   volatile.Register32 // 0x01C
	MATCH  volatile.Register32 // 0x020
	MODIR  volatile.Register32 // 0x024
	FIFO   volatile.Register32 // 0x028
	WATER  volatile.Register32 // 0x02C
}

// LPUART bit fields.
const (
	LPUART_GLOBAL_RST    = 0x2
	LPUART_BAUD_SBR_Pos  = 0
	LPUART_BAUD_SBR_Msk  = 0x1FFF
	LPUART_BAUD_OSR_Pos  = 24
	LPUART_BAUD_OSR_Msk  = 0x1F000000
	LPUART_STAT_OR       = 0x80000
	LPUART_STAT_RDRF     = 0x200000
	LPUART_STAT_TC       = 0x400000
	LPUART_STAT_TDRE     = 0x800000
	LPUART_CTRL_RE       = 0x40000
	LPUART_CTRL_TE       = 0x80000
	LPUART_DATA_Msk      = 0x3FF
	LPUART_DATA_RXEMPT   = 0x1000
)

// SCB_Type is the Cortex-M33 system control block.
type SCB_Type struct {
	CPUID volatile.Register32 // 0x000
	ICSR  volatile.Register32 // 0x004
	VTOR  volatile.Register32 // 0x008
	AIRCR volatile.Register32 // 0x00C
	SCR   volatile.Register32 // 0x010
	CCR   volatile.Register32 // 0x014
}

// SCB bit fields.
const (
	SCB_SCR_SLEEPONEXIT = 0x2
	SCB_SCR_SLEEPDEEP   = 0x4
	SCB_SCR_SEVONPEND   = 0x10
)

// NVIC_Type is the nested vectored interrupt controller.
type NVIC_Type struct {
	ISER [16]volatile.Register32 // 0x000
	_    [16]uint32
	ICER [16]volatile.Register32 // 0x080
	_    [16]uint32
	ISPR [16]volatile.Register32 // 0x100
	_    [16]uint32
	ICPR [16]volatile.Register32 // 0x180
}

// ClearPendingIRQ clears the pending state of interrupt irq.
func (n *NVIC_Type) ClearPendingIRQ(irq uint32) {
	n.ICPR[irq>>5].Set(1 << (irq & 0x1F))
}

// EnableIRQ enables interrupt irq.
func (n *NVIC_Type) EnableIRQ(irq uint32) {
	n.ISER[irq>>5].Set(1 << (irq & 0x1F))
}

// DisableIRQ disables interrupt irq.
func (n *NVIC_Type) DisableIRQ(irq uint32) {
	n.ICER[irq>>5].Set(1 << (irq & 0x1F))
}
