// Copyright 2022-2023 NXP
// All rights reserved.
//
// SPDX-License-Identifier: BSD-3-Clause

package machine

import (
	"github.com/nxp-appcodehub/dm-low-power-implementation-mcxa153/device/mcxa153"
	"github.com/nxp-appcodehub/dm-low-power-implementation-mcxa153/runtime/volatile"
)

// Pin is a port pin numbered port*32 + bit.
type Pin uint8

// NoPin is used where a pin is optional.
const NoPin = Pin(0xff)

// PinMode selects how a pin is muxed and driven.
type PinMode uint8

const (
	// PinDisabled turns the input buffer off and muxes the pin to Alt0,
	// which is the lowest leakage state.
	PinDisabled PinMode = iota
	PinInput
	PinInputPullUp
	PinInputPullDown
	PinOutput
	PinLPUART
	// PinWakeup is a pulled-up GPIO input sampled by the WUU.
	PinWakeup
)

// PinConfig holds the configuration for a pin.
type PinConfig struct {
	Mode PinMode
}

const (
	pinMuxGPIO   = 0
	pinMuxLPUART = 2
)

var (
	ports = [...]*mcxa153.PORT_Type{mcxa153.PORT0, mcxa153.PORT1, mcxa153.PORT2, mcxa153.PORT3}
	gpios = [...]*mcxa153.GPIO_Type{mcxa153.GPIO0, mcxa153.GPIO1, mcxa153.GPIO2, mcxa153.GPIO3}
)

type pinMapping struct {
	Bit  uint8
	PCR  *volatile.Register32
	GPIO *mcxa153.GPIO_Type
}

// Port returns the port number of the pin.
func (p Pin) Port() uint8 { return uint8(p) >> 5 }

// Bit returns the bit of the pin within its port.
func (p Pin) Bit() uint8 { return uint8(p) & 0x1F }

func (p Pin) registers() pinMapping {
	port := p.Port()
	if int(port) >= len(ports) {
		panic("machine: invalid pin")
	}
	bit := p.Bit()
	return pinMapping{
		Bit:  bit,
		PCR:  &ports[port].PCR[bit],
		GPIO: gpios[port],
	}
}

// Configure this pin with the given configuration. The PORT and GPIO blocks of
// the pin must already be clocked and out of reset.
func (p Pin) Configure(config PinConfig) {
	r := p.registers()
	var pcr uint32
	switch config.Mode {
	case PinDisabled:
		r.GPIO.PDDR.ClearBits(1 << r.Bit)
		r.PCR.Set(0)
		return
	case PinInput:
		pcr = mcxa153.PORT_PCR_IBE
	case PinInputPullUp, PinWakeup:
		pcr = mcxa153.PORT_PCR_IBE | mcxa153.PORT_PCR_PE | mcxa153.PORT_PCR_PS
	case PinInputPullDown:
		pcr = mcxa153.PORT_PCR_IBE | mcxa153.PORT_PCR_PE
	case PinOutput:
		pcr = mcxa153.PORT_PCR_IBE
	case PinLPUART:
		pcr = mcxa153.PORT_PCR_IBE | mcxa153.PORT_PCR_PE | mcxa153.PORT_PCR_PS | pinMuxLPUART<<mcxa153.PORT_PCR_MUX_Pos
	}
	r.PCR.Set(pcr)

	switch config.Mode {
	case PinOutput:
		r.GPIO.PDDR.SetBits(1 << r.Bit)
	case PinInput, PinInputPullUp, PinInputPullDown, PinWakeup:
		r.GPIO.PDDR.ClearBits(1 << r.Bit)
	}
}

// Set changes the value of the GPIO pin. The pin must be configured as output.
func (p Pin) Set(value bool) {
	r := p.registers()
	if value {
		r.GPIO.PSOR.Set(1 << r.Bit)
		if hostGPIO {
			r.GPIO.PDOR.SetBits(1 << r.Bit)
		}
	} else {
		r.GPIO.PCOR.Set(1 << r.Bit)
		if hostGPIO {
			r.GPIO.PDOR.ClearBits(1 << r.Bit)
		}
	}
}

// High sets the pin high.
func (p Pin) High() { p.Set(true) }

// Low sets the pin low.
func (p Pin) Low() { p.Set(false) }

// Toggle inverts the output of the pin.
func (p Pin) Toggle() {
	r := p.registers()
	if hostGPIO {
		p.Set(!r.GPIO.PDOR.HasBits(1 << r.Bit))
		return
	}
	r.GPIO.PTOR.Set(1 << r.Bit)
}

// Get returns the current value of a GPIO pin.
func (p Pin) Get() bool {
	r := p.registers()
	return r.GPIO.PDIR.HasBits(1 << r.Bit)
}

// Output reports the level the pin is driving.
func (p Pin) Output() bool {
	r := p.registers()
	return r.GPIO.PDOR.HasBits(1 << r.Bit)
}

// Control returns the pin control register of the pin.
func (p Pin) Control() *volatile.Register32 {
	return p.registers().PCR
}
