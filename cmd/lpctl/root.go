// Copyright 2022-2023 NXP
// All rights reserved.
//
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/nxp-appcodehub/dm-low-power-implementation-mcxa153/internal/config"
	"github.com/nxp-appcodehub/dm-low-power-implementation-mcxa153/internal/session"
	"github.com/nxp-appcodehub/dm-low-power-implementation-mcxa153/internal/transcript"
)

// cli holds the state shared by all subcommands.
type cli struct {
	configPath string
	port       string
	baud       int
	logLevel   string
	capture    string

	cfg config.Config
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:           "lpctl",
		Short:         "Drive the MCXA153 low power demo from the host",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.load(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&c.configPath, "config", "", "YAML configuration file")
	flags.StringVarP(&c.port, "port", "p", "", "serial port of the debug console")
	flags.IntVarP(&c.baud, "baud", "b", 0, "console baud rate (default 115200)")
	flags.StringVar(&c.logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(
		c.portsCmd(),
		c.consoleCmd(),
		c.runCmd(),
		c.logCmd(),
		c.hexCmd(),
		c.binCmd(),
	)
	return root
}

// load reads the configuration file and applies flag overrides.
func (c *cli) load(cmd *cobra.Command) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("port") {
		cfg.Port = c.port
	}
	if flags.Changed("baud") {
		cfg.Baud = c.baud
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = c.logLevel
	}
	if flags.Changed("capture") {
		cfg.Capture = c.capture
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	c.cfg = cfg
	c.setLogger(cmd.ErrOrStderr())
	return nil
}

func (c *cli) setLogger(w io.Writer) {
	level, _ := config.ParseLevel(c.cfg.LogLevel)
	c.log = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func (c *cli) timeouts() session.Timeouts {
	return session.Timeouts{Prompt: c.cfg.PromptTimeout, Wake: c.cfg.WakeTimeout}
}

// open connects to the configured port. The returned close func also
// finishes the capture file, if one was requested.
func (c *cli) open(echo io.Writer) (*session.Session, func() error, error) {
	if c.cfg.Port == "" {
		return nil, nil, fmt.Errorf("no serial port given (use --port or set port in the config file; see lpctl ports)")
	}
	port, err := session.OpenPort(c.cfg.Port, c.cfg.Baud)
	if err != nil {
		return nil, nil, err
	}

	opts := session.Options{Echo: echo, Logger: c.log}
	var rec *transcript.Writer
	if c.cfg.Capture != "" {
		h := transcript.NewHeader(c.cfg.Port, c.cfg.Baud)
		rec, err = transcript.Create(c.cfg.Capture, h)
		if err != nil {
			port.Close()
			return nil, nil, err
		}
		opts.Recorder = rec
		c.log.Info("capturing session", "file", c.cfg.Capture, "session", h.SessionID)
	}

	s := session.New(port, opts)
	c.log.Debug("connected", "port", c.cfg.Port, "baud", c.cfg.Baud)
	return s, func() error {
		err := s.Close()
		if rec != nil {
			if cerr := rec.Close(); err == nil {
				err = cerr
			}
		}
		return err
	}, nil
}

func (c *cli) addCaptureFlag(cmd *cobra.Command) {
	cmd.Flags().StringVar(&c.capture, "capture", "", "record the session to this transcript file")
}
