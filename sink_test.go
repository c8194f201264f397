// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mjson

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPooledBufferSinkWrite(t *testing.T) {
	sink := NewPooledBufferSink(8)
	n := sink.Write([]byte("hello"))
	assert.Equal(t, 5, n)
	assert.Equal(t, "hello", string(sink.Bytes()))
	sink.Release()
}

func TestPooledBufferSinkSpansMultipleSegments(t *testing.T) {
	sink := NewPooledBufferSink(0)
	big := make([]byte, 200<<10)
	for i := range big {
		big[i] = byte(i)
	}
	sink.Write(big[:100<<10])
	sink.Write(big[100<<10:])
	assert.Equal(t, big, sink.Bytes())
	sink.Release()
}

func TestBoundedSinkReportsLogicalLengthPastCapacity(t *testing.T) {
	sink := &BoundedSink{Buf: make([]byte, 3)}
	n := sink.Write([]byte("abcdef"))
	assert.Equal(t, 6, n)
	assert.Equal(t, []byte("abc"), sink.Written())
}
