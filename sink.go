// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mjson

import (
	"bufio"
	"os"

	"mjson/internal/bufpools"
)

// Sink is the output abstraction shared by Printf, SetPath, and
// Prettify. Unlike io.Writer, Write reports the logical length of p
// even when the sink truncates or discards it, so a caller can measure
// how large the fully rendered output would have been without
// allocating a buffer for it first — the same dry-run sizing contract
// original_source/elsa/printf.c gets for free from its "NULL buffer,
// non-NULL size" calling convention.
type Sink interface {
	Write(p []byte) int
}

// BufferSink accumulates output into an in-memory byte slice. A zero
// BufferSink is ready to use.
type BufferSink struct {
	Buf []byte
}

func (s *BufferSink) Write(p []byte) int {
	s.Buf = append(s.Buf, p...)
	return len(p)
}

// BoundedSink writes into a fixed-capacity byte slice, truncating
// silently once full but still reporting the full logical length of
// every Write call — the Go analogue of json_printf's buffer sink.
type BoundedSink struct {
	Buf []byte
	n   int
}

func (s *BoundedSink) Write(p []byte) int {
	if s.n < len(s.Buf) {
		n := copy(s.Buf[s.n:], p)
		s.n += n
	}
	return len(p)
}

// Written returns the slice of Buf actually filled so far.
func (s *BoundedSink) Written() []byte { return s.Buf[:s.n] }

// FileSink writes output directly to an *os.File through a buffered
// writer, matching original_source/elsa/printf.c's json_vfprintf.
type FileSink struct {
	w   *bufio.Writer
	n   int
	err error
}

// NewFileSink wraps f for use as a Sink. The caller remains
// responsible for closing f; call Flush before doing so.
func NewFileSink(f *os.File) *FileSink {
	return &FileSink{w: bufio.NewWriter(f)}
}

func (s *FileSink) Write(p []byte) int {
	n, err := s.w.Write(p)
	s.n += n
	if err != nil && s.err == nil {
		s.err = err
	}
	return len(p)
}

// Flush flushes the underlying buffered writer and returns the first
// write error encountered, if any.
func (s *FileSink) Flush() error {
	if err := s.w.Flush(); err != nil && s.err == nil {
		s.err = err
	}
	return s.err
}

// PooledBufferSink is a Sink backed by a bufpools.Buffer: output is
// accumulated into pooled segments instead of one array grown from
// nil, for callers that stage a whole rewritten document in memory
// before copying or writing it elsewhere and can hand the segments
// back once done (see PrettifyFile). Release must be called exactly
// once, after the caller has finished with Bytes.
type PooledBufferSink struct {
	buf bufpools.Buffer
}

// NewPooledBufferSink returns a sink pre-grown to hold at least
// sizeHint bytes without a further segment fetch.
func NewPooledBufferSink(sizeHint int) *PooledBufferSink {
	s := &PooledBufferSink{}
	s.buf.Grow(sizeHint)
	return s
}

func (s *PooledBufferSink) Write(p []byte) int {
	n, _ := s.buf.Write(p)
	return n
}

// Bytes returns the accumulated output as a single contiguous slice,
// merging segments if necessary. Valid only until the next Write or
// Release.
func (s *PooledBufferSink) Bytes() []byte { return s.buf.Bytes() }

// Release returns the backing segments to the pool. The sink must not
// be used afterward.
func (s *PooledBufferSink) Release() { s.buf.Reset() }
