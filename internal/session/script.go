// Copyright 2022-2023 NXP
// All rights reserved.
//
// SPDX-License-Identifier: BSD-3-Clause

package session

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/shlex"

	"github.com/nxp-appcodehub/dm-low-power-implementation-mcxa153/lowpower"
)

// Timeouts bounds the waits of a scripted run.
type Timeouts struct {
	Prompt time.Duration
	Wake   time.Duration
}

// ParseKeys splits a key script such as "B 2" or "'C' '3'" into single
// keypresses.
func ParseKeys(script string) ([]byte, error) {
	words, err := shlex.Split(script)
	if err != nil {
		return nil, fmt.Errorf("parse keys: %w", err)
	}
	keys := make([]byte, 0, len(words))
	for _, w := range words {
		if len(w) != 1 {
			return nil, fmt.Errorf("parse keys: %q is not a single key", w)
		}
		keys = append(keys, w[0])
	}
	return keys, nil
}

// promptFor returns the prompt the firmware prints before it reads key.
func promptFor(key byte) string {
	if key >= '0' && key <= '9' {
		return lowpower.WakeModePrompt
	}
	return lowpower.PowerModePrompt
}

// Run plays keys into the demo menus. Each key is sent only once the prompt
// that reads it has been printed. After a complete selection Run waits for
// the wake-up request line, or for the next loop if Active was chosen. The
// prompt following a low power entry is given the wake timeout, since it only
// appears once SW3 is pressed.
func (s *Session) Run(ctx context.Context, keys []byte, t Timeouts) error {
	asleep := false
	for i, key := range keys {
		wait := t.Prompt
		if asleep {
			wait = t.Wake
		}
		if err := s.Expect(ctx, promptFor(key), wait); err != nil {
			return fmt.Errorf("key %d (%c): %w", i+1, key, err)
		}
		if err := s.Send(string(key)); err != nil {
			return err
		}
		asleep = false

		mode := lowpower.PowerMode(strings.ToUpper(string(key))[0])
		switch {
		case mode == lowpower.PowerModeActive:
			if err := s.Expect(ctx, lowpower.NextLoop, t.Prompt); err != nil {
				return err
			}
		case promptFor(key) == lowpower.WakeModePrompt:
			if err := s.Expect(ctx, lowpower.WakeUpPrompt, t.Prompt); err != nil {
				return err
			}
			s.log.Info("board is in low power mode, press SW3 to wake it")
			asleep = true
		}
	}
	return nil
}
