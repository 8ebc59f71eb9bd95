// Copyright 2022-2023 NXP
// All rights reserved.
//
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/nxp-appcodehub/dm-low-power-implementation-mcxa153/internal/session"
)

func (c *cli) runCmd() *cobra.Command {
	var script string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Play a key script into the demo menus",
		Example: `  lpctl run --keys "B 2"        # Sleep, fast wake up
  lpctl run --keys "C 1 A"      # DeepSleep, then one Active loop once woken`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			keys, err := session.ParseKeys(script)
			if err != nil {
				return err
			}
			if len(keys) == 0 {
				return errors.New("--keys is empty")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			s, closeSession, err := c.open(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			runErr := s.Run(ctx, keys, c.timeouts())
			if err := closeSession(); err != nil && runErr == nil {
				runErr = err
			}
			if errors.Is(runErr, context.Canceled) {
				return nil
			}
			if runErr != nil {
				return fmt.Errorf("run %q: %w", script, runErr)
			}
			c.log.Info("script finished", "keys", string(keys))
			return nil
		},
	}
	cmd.Flags().StringVarP(&script, "keys", "k", "", `keys to send, separated by spaces (e.g. "C 3")`)
	cmd.MarkFlagRequired("keys")
	c.addCaptureFlag(cmd)
	return cmd
}
