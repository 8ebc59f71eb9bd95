// Copyright 2022-2023 NXP
// All rights reserved.
//
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
)

const quitCommand = ":quit"

func (c *cli) consoleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "console",
		Short: "Open an interactive session with the board",
		Long: "Each line typed is sent to the board one key at a time; board output is\n" +
			"printed as it arrives. Type " + quitCommand + " or press Ctrl-D to leave.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rl, err := readline.NewEx(&readline.Config{
				Prompt:          "lpctl> ",
				InterruptPrompt: "^C",
				EOFPrompt:       quitCommand,
			})
			if err != nil {
				return fmt.Errorf("failed to create readline: %w", err)
			}
			defer rl.Close()

			// Logs share the terminal with the prompt.
			c.setLogger(rl.Stderr())

			s, closeSession, err := c.open(rl.Stdout())
			if err != nil {
				return err
			}
			defer closeSession()

			fmt.Fprintf(rl.Stdout(), "Connected to %s at %d baud. Type %s to leave.\n", c.cfg.Port, c.cfg.Baud, quitCommand)
			for {
				line, err := rl.Readline()
				if err == readline.ErrInterrupt {
					continue
				}
				if errors.Is(err, io.EOF) {
					return nil
				}
				if err != nil {
					return err
				}

				keys := strings.TrimSpace(line)
				if keys == quitCommand {
					return nil
				}
				if keys == "" {
					continue
				}
				if err := s.Send(keys); err != nil {
					return err
				}
			}
		},
	}
	c.addCaptureFlag(cmd)
	return cmd
}
