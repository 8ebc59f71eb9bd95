// Copyright 2022-2023 NXP
// All rights reserved.
//
// SPDX-License-Identifier: BSD-3-Clause

// Package config holds the lpctl settings: which serial port the board's
// debug console is on and how long to wait for it.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the lpctl configuration file.
type Config struct {
	// Port is the serial device of the board's debug console.
	Port string `yaml:"port"`
	Baud int    `yaml:"baud"`

	// PromptTimeout bounds the wait for each menu prompt.
	PromptTimeout time.Duration `yaml:"prompt_timeout"`
	// WakeTimeout bounds the wait for the wake-up request line.
	WakeTimeout time.Duration `yaml:"wake_timeout"`

	// Capture, if set, records console sessions to this file.
	Capture  string `yaml:"capture"`
	LogLevel string `yaml:"log_level"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Baud:          115200,
		PromptTimeout: 5 * time.Second,
		WakeTimeout:   10 * time.Second,
		LogLevel:      "info",
	}
}

// Load reads the YAML file at path over the defaults. An empty path returns
// the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks the values a session needs.
func (c Config) Validate() error {
	var errs []error
	if c.Baud <= 0 {
		errs = append(errs, fmt.Errorf("baud must be positive, got %d", c.Baud))
	}
	if c.PromptTimeout <= 0 {
		errs = append(errs, errors.New("prompt_timeout must be positive"))
	}
	if c.WakeTimeout <= 0 {
		errs = append(errs, errors.New("wake_timeout must be positive"))
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// ParseLevel maps debug, info, warn and error to slog levels.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q (use: debug, info, warn, error)", s)
}
