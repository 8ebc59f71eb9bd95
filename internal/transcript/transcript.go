// Copyright 2022-2023 NXP
// All rights reserved.
//
// SPDX-License-Identifier: BSD-3-Clause

// Package transcript records a debug console session to a file: a header
// naming the session, followed by every chunk of bytes sent to or read from
// the board, in order.
package transcript

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"
)

// Direction says which way a chunk of console data travelled.
type Direction uint8

const (
	FromBoard Direction = iota
	ToBoard
)

func (d Direction) String() string {
	switch d {
	case FromBoard:
		return "rx"
	case ToBoard:
		return "tx"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// Header is the first item of a transcript file.
type Header struct {
	SessionID string    `cbor:"1,keyasint"`
	Port      string    `cbor:"2,keyasint"`
	Baud      int       `cbor:"3,keyasint"`
	Started   time.Time `cbor:"4,keyasint"`
}

// NewHeader returns a header for a session starting now, with a fresh id.
func NewHeader(port string, baud int) Header {
	return Header{
		SessionID: uuid.New().String(),
		Port:      port,
		Baud:      baud,
		Started:   time.Now(),
	}
}

// Entry is one chunk of console traffic.
type Entry struct {
	Time time.Time `cbor:"1,keyasint"`
	Dir  Direction `cbor:"2,keyasint"`
	Data []byte    `cbor:"3,keyasint"`
}

// Writer appends entries to a transcript file. It is safe for concurrent
// use.
type Writer struct {
	mu   sync.Mutex
	file *os.File
	buf  *bufio.Writer
	enc  *cbor.Encoder
	now  func() time.Time
}

// Create creates the transcript file at path and writes its header.
func Create(path string, h Header) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create transcript: %w", err)
	}
	buf := bufio.NewWriter(f)
	w := &Writer{file: f, buf: buf, enc: newEncoder(buf), now: time.Now}
	if err := w.enc.Encode(h); err != nil {
		f.Close()
		return nil, fmt.Errorf("write transcript header: %w", err)
	}
	return w, nil
}

// Record appends data with the current time.
func (w *Writer) Record(dir Direction, data []byte) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.file == nil {
		return os.ErrClosed
	}
	return w.enc.Encode(Entry{Time: w.now(), Dir: dir, Data: data})
}

// Close flushes and closes the file.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.file == nil {
		return nil
	}
	err := errors.Join(w.buf.Flush(), w.file.Close())
	w.file = nil
	return err
}

// Reader reads a transcript file back.
type Reader struct {
	file   io.Closer
	dec    *cbor.Decoder
	header Header
}

// Open opens the transcript at path and reads its header.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open transcript: %w", err)
	}
	r, err := NewReader(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	r.file = f
	return r, nil
}

// NewReader reads a transcript from src.
func NewReader(src io.Reader) (*Reader, error) {
	r := &Reader{dec: newDecoder(bufio.NewReader(src))}
	if err := r.dec.Decode(&r.header); err != nil {
		return nil, fmt.Errorf("read transcript header: %w", err)
	}
	return r, nil
}

func (r *Reader) Header() Header { return r.header }

// Next returns the next entry, or io.EOF after the last one.
func (r *Reader) Next() (Entry, error) {
	var e Entry
	if err := r.dec.Decode(&e); err != nil {
		if errors.Is(err, io.EOF) {
			return Entry{}, io.EOF
		}
		return Entry{}, fmt.Errorf("read transcript entry: %w", err)
	}
	return e, nil
}

// Close closes the underlying file, if Open created it.
func (r *Reader) Close() error {
	if r.file == nil {
		return nil
	}
	return r.file.Close()
}
