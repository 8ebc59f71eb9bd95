// Copyright 2022-2023 NXP
// All rights reserved.
//
// SPDX-License-Identifier: BSD-3-Clause

//go:build !(tinygo && mcxa153)

package main

import (
	"bufio"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/nxp-appcodehub/dm-low-power-implementation-mcxa153/device/mcxa153"
	"github.com/nxp-appcodehub/dm-low-power-implementation-mcxa153/lowpower"
	"github.com/nxp-appcodehub/dm-low-power-implementation-mcxa153/machine"
)

// stdioConsole stands in for the debug UART. Line endings typed on the
// terminal are dropped so that every other key reaches the menus as it would
// on the board.
type stdioConsole struct {
	in  *bufio.Reader
	out io.Writer
}

func (c *stdioConsole) Write(p []byte) (int, error) { return c.out.Write(p) }

func (c *stdioConsole) ReadByte() (byte, error) {
	for {
		b, err := c.in.ReadByte()
		if err != nil || (b != '\r' && b != '\n') {
			return b, err
		}
	}
}

func (c *stdioConsole) Configure() error { return nil }
func (c *stdioConsole) Deinit()          {}
func (c *stdioConsole) Flush() error     { return nil }

var logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

func newConsole() lowpower.Console {
	mcxa153.WFIHook = simulateWakeUp
	return &stdioConsole{in: bufio.NewReader(os.Stdin), out: os.Stdout}
}

// simulateWakeUp stands in for wfi: it reports the mode the core would be in
// and returns at once, as if SW3 had been pressed.
func simulateWakeUp() {
	logger.Info("low power entry",
		"sleepdeep", mcxa153.SCB.SCR.HasBits(mcxa153.SCB_SCR_SLEEPDEEP),
		"lpmode", mcxa153.CMC.PMCTRL[0].Get(),
		"ckmode", mcxa153.CMC.CKCTRL.Get(),
		"lpwkup_delay", machine.SPC0.LowPowerWakeUpDelay(),
		"core_hz", machine.Clocks.CoreClockFrequency(),
	)
	logger.Info("wake-up", "source", machine.SW3Name)
}

func halt(err error) {
	if err != nil && !errors.Is(err, io.EOF) {
		logger.Error("demo stopped", "err", err)
		os.Exit(1)
	}
	os.Exit(0)
}
