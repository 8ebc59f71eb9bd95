// Copyright 2022-2023 NXP
// All rights reserved.
//
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nxp-appcodehub/dm-low-power-implementation-mcxa153/internal/image"
)

func (c *cli) hexCmd() *cobra.Command {
	var output string
	var base uint32
	cmd := &cobra.Command{
		Use:   "hex <firmware.bin>",
		Short: "Convert a raw binary image to Intel HEX",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer in.Close()

			var out bytes.Buffer
			if err := image.BinToHex(in, &out, base); err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			if err := os.WriteFile(output, out.Bytes(), 0o644); err != nil {
				return err
			}
			c.log.Info("wrote hex image", "file", output, "base", fmt.Sprintf("%#x", base))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file")
	cmd.Flags().Uint32Var(&base, "base", 0, "load address of the image")
	cmd.MarkFlagRequired("output")
	return cmd
}

func (c *cli) binCmd() *cobra.Command {
	var output string
	var pad uint8
	cmd := &cobra.Command{
		Use:   "bin <firmware.hex>",
		Short: "Convert an Intel HEX image to a raw binary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer in.Close()

			var out bytes.Buffer
			base, err := image.HexToBin(in, &out, pad)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			if err := os.WriteFile(output, out.Bytes(), 0o644); err != nil {
				return err
			}
			c.log.Info("wrote binary image", "file", output, "base", fmt.Sprintf("%#x", base), "size", out.Len())
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file")
	cmd.Flags().Uint8Var(&pad, "pad", 0xff, "fill byte for gaps between segments")
	cmd.MarkFlagRequired("output")
	return cmd
}
