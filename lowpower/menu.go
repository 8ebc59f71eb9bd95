// Copyright 2022-2023 NXP
// All rights reserved.
//
// SPDX-License-Identifier: BSD-3-Clause

package lowpower

import (
	"errors"
	"fmt"
	"io"

	"github.com/nxp-appcodehub/dm-low-power-implementation-mcxa153/machine"
)

// Console lines a host tool can wait for.
const (
	PowerModePrompt = "Waiting for power mode select..."
	WakeModePrompt  = "Waiting for wake up mode select..."
	WakeUpPrompt    = "Please press " + machine.SW3Name + " to wakeup."
	NextLoop        = "Next loop."
	NormalBoot      = "Normal Boot."
	WrongInput      = "Wrong Input!"
)

// Terminal is the character device the menus run on.
type Terminal interface {
	io.Writer
	io.ByteReader
}

// SelectPowerMode prints the power mode menu and reads keys until one names a
// power mode. Letters are accepted in either case. Every other key prints
// "Wrong Input!" and the menu again.
func SelectPowerMode(term Terminal) (PowerMode, error) {
	var mode PowerMode
	for {
		fmt.Fprint(term, "\r\nSelect the desired operation \n\r\n")
		for _, m := range PowerModes {
			fmt.Fprintf(term, "\tPress %c to enter: %s mode\r\n", m, m)
		}
		fmt.Fprint(term, "\r\n"+PowerModePrompt+"\r\n\r\n")

		ch, err := readKey(term)
		if err != nil {
			return 0, err
		}
		if ch >= 'a' && ch <= 'z' {
			ch -= 'a' - 'A'
		}
		mode = PowerMode(ch)
		if mode.Valid() {
			break
		}
		fmt.Fprint(term, WrongInput)
	}

	fmt.Fprintf(term, "\tPress %c and select %s mode\r\n", mode, mode)
	fmt.Fprintf(term, "\t%s\r\n", mode.Description())
	return mode, nil
}

// SelectWakeMode prints the wake-up profiles offered for mode and reads keys
// until one of them is chosen, then prints the expected wake-up time and
// consumption.
func SelectWakeMode(term Terminal, mode PowerMode) (WakeMode, error) {
	offered := mode.WakeModes()
	if len(offered) == 0 {
		return 0, fmt.Errorf("%v mode has no wake up profiles", mode)
	}

	var wake WakeMode
	for {
		fmt.Fprint(term, "\r\nSelect the wake up mode \n\r\n")
		for _, w := range offered {
			fmt.Fprintf(term, "\tPress %c to select: %s mode\r\n", w, w)
		}
		fmt.Fprint(term, "\r\n"+WakeModePrompt+"\r\n\r\n")

		ch, err := readKey(term)
		if err != nil {
			return 0, err
		}
		wake = WakeMode(ch)
		if offers(offered, wake) {
			break
		}
		fmt.Fprint(term, WrongInput)
	}

	fmt.Fprintf(term, "\tPress %c and select %s mode\r\n", wake, wake)
	fmt.Fprintf(term, "\t%s\n\r\n", WakeDescription(mode, wake))
	return wake, nil
}

// readKey reads one key. A key lost to a receiver overrun reads as 0, which
// no menu accepts, so the menu is shown again.
func readKey(term Terminal) (byte, error) {
	ch, err := term.ReadByte()
	if errors.Is(err, machine.ErrUARTOverrun) {
		return 0, nil
	}
	return ch, err
}

func offers(offered []WakeMode, w WakeMode) bool {
	for _, o := range offered {
		if o == w {
			return true
		}
	}
	return false
}
