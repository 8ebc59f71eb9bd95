// Copyright 2022-2023 NXP
// All rights reserved.
//
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/nxp-appcodehub/dm-low-power-implementation-mcxa153/internal/transcript"
)

func (c *cli) logCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Work with captured session transcripts",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "view <file>",
		Short: "Print a captured transcript",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := transcript.Open(args[0])
			if err != nil {
				return err
			}
			defer r.Close()
			return printTranscript(cmd.OutOrStdout(), r)
		},
	})
	return cmd
}

// printTranscript writes one line per entry, timed from the session start.
func printTranscript(w io.Writer, r *transcript.Reader) error {
	h := r.Header()
	fmt.Fprintf(w, "session %s\n", h.SessionID)
	fmt.Fprintf(w, "port    %s @ %d baud\n", h.Port, h.Baud)
	fmt.Fprintf(w, "started %s\n\n", h.Started.Format(time.RFC3339))

	n := 0
	for {
		e, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		n++
		fmt.Fprintf(w, "%12s %s %q\n", e.Time.Sub(h.Started).Round(time.Microsecond), e.Dir, e.Data)
	}
	fmt.Fprintf(w, "\n%d entries\n", n)
	return nil
}
