// Copyright 2022-2023 NXP
// All rights reserved.
//
// SPDX-License-Identifier: BSD-3-Clause

// Package session drives the demo's debug console over a serial port: it
// sends keypresses and waits for the lines the firmware prints.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"go.bug.st/serial"

	"github.com/nxp-appcodehub/dm-low-power-implementation-mcxa153/internal/transcript"
)

// ErrTimeout is returned when the console does not print what was expected
// in time.
var ErrTimeout = errors.New("session: timed out waiting for console")

// Ports lists the serial ports present on the host.
func Ports() ([]string, error) {
	return serial.GetPortsList()
}

// OpenPort opens a serial port in the 8N1 framing the debug console uses.
func OpenPort(name string, baud int) (serial.Port, error) {
	port, err := serial.Open(name, &serial.Mode{
		BaudRate: baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	return port, nil
}

// Recorder receives everything sent to and read from the console.
type Recorder interface {
	Record(dir transcript.Direction, data []byte) error
}

// Options configures a Session.
type Options struct {
	// Echo, if set, gets a copy of all console output.
	Echo     io.Writer
	Recorder Recorder
	Logger   *slog.Logger
}

// Session is a live connection to the debug console.
type Session struct {
	rw   io.ReadWriteCloser
	opts Options
	log  *slog.Logger

	mu      sync.Mutex
	pending strings.Builder
	readErr error
	notify  chan struct{}
	done    chan struct{}
}

// New starts reading console output from rw.
func New(rw io.ReadWriteCloser, opts Options) *Session {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s := &Session{
		rw:     rw,
		opts:   opts,
		log:    log,
		notify: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
	go s.readLoop()
	return s
}

func (s *Session) readLoop() {
	defer close(s.done)
	buf := make([]byte, 256)
	for {
		n, err := s.rw.Read(buf)
		if n > 0 {
			data := buf[:n]
			if s.opts.Echo != nil {
				s.opts.Echo.Write(data)
			}
			s.record(transcript.FromBoard, data)

			s.mu.Lock()
			s.pending.Write(data)
			s.mu.Unlock()
			s.wake()
		}
		if err != nil {
			s.mu.Lock()
			s.readErr = err
			s.mu.Unlock()
			s.wake()
			return
		}
	}
}

func (s *Session) wake() {
	select {
	case s.notify <- struct{}{}:
	default:
	}
}

func (s *Session) record(dir transcript.Direction, data []byte) {
	if s.opts.Recorder == nil {
		return
	}
	if err := s.opts.Recorder.Record(dir, data); err != nil {
		s.log.Warn("transcript record failed", "err", err)
	}
}

// Send writes keys to the console.
func (s *Session) Send(keys string) error {
	s.log.Debug("send", "keys", keys)
	s.record(transcript.ToBoard, []byte(keys))
	if _, err := io.WriteString(s.rw, keys); err != nil {
		return fmt.Errorf("send %q: %w", keys, err)
	}
	return nil
}

// Expect waits until the console prints want. Output up to and including the
// match is consumed, so a later Expect only sees what follows it.
func (s *Session) Expect(ctx context.Context, want string, timeout time.Duration) error {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		s.mu.Lock()
		out := s.pending.String()
		if i := strings.Index(out, want); i >= 0 {
			rest := out[i+len(want):]
			s.pending.Reset()
			s.pending.WriteString(rest)
			s.mu.Unlock()
			s.log.Debug("matched", "want", want)
			return nil
		}
		readErr := s.readErr
		s.mu.Unlock()

		if readErr != nil {
			return fmt.Errorf("waiting for %q: %w", want, readErr)
		}

		select {
		case <-s.notify:
		case <-timer.C:
			return fmt.Errorf("%w: %q", ErrTimeout, want)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Close closes the port and waits for the reader to stop.
func (s *Session) Close() error {
	err := s.rw.Close()
	<-s.done
	return err
}
