// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mjson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetPathScenario4Insert(t *testing.T) {
	var sink BufferSink
	ok, err := SetPath([]byte(`{"a":1}`), &sink, ".b", "2")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"a":1,"b":2}`, string(sink.Buf))
}

func TestDeletePathScenario4(t *testing.T) {
	var sink BufferSink
	ok, err := DeletePath([]byte(`{"a":1,"b":2}`), &sink, ".a")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"b":2}`, string(sink.Buf))
}

func TestSetPathInsertIntoEmptyObject(t *testing.T) {
	var sink BufferSink
	ok, err := SetPath([]byte(`{}`), &sink, ".foo", "%Q", Str("bar"))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"foo":"bar"}`, string(sink.Buf))
}

func TestSetPathInsertIntoEmptyArray(t *testing.T) {
	var sink BufferSink
	ok, err := SetPath([]byte(`[]`), &sink, "[0]", "1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[1]`, string(sink.Buf))
}

func TestSetPathInsertPastEndOfArray(t *testing.T) {
	var sink BufferSink
	ok, err := SetPath([]byte(`[1,2]`), &sink, "[5]", "3")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[1,2,3]`, string(sink.Buf))
}

func TestDeletePathSoleElement(t *testing.T) {
	var sink BufferSink
	ok, err := DeletePath([]byte(`[1]`), &sink, "[0]")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[]`, string(sink.Buf))
}

func TestDeletePathFirstOfTwo(t *testing.T) {
	var sink BufferSink
	ok, err := DeletePath([]byte(`[1,2]`), &sink, "[0]")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[2]`, string(sink.Buf))
}

func TestDeletePathLastOfTwo(t *testing.T) {
	var sink BufferSink
	ok, err := DeletePath([]byte(`[1,2]`), &sink, "[1]")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[1]`, string(sink.Buf))
}

func TestSetPathInsertNestedMissingIntermediates(t *testing.T) {
	var sink BufferSink
	ok, err := SetPath([]byte(`{}`), &sink, ".a.b", "%d", Any(5))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"a":{"b":5}}`, string(sink.Buf))
}

func TestSetPathIdempotence(t *testing.T) {
	src := []byte(`{"a":1}`)
	var first BufferSink
	_, err := SetPath(src, &first, ".a", "%d", Any(9))
	require.NoError(t, err)

	var second BufferSink
	_, err = SetPath(first.Buf, &second, ".a", "%d", Any(9))
	require.NoError(t, err)

	assert.Equal(t, string(first.Buf), string(second.Buf))
}

func TestDeletePathAllKeysYieldsEmptyObject(t *testing.T) {
	src := []byte(`{"a":1,"b":2,"c":3}`)
	for _, key := range []string{".a", ".b", ".c"} {
		var sink BufferSink
		ok, err := DeletePath(src, &sink, key)
		require.NoError(t, err)
		require.True(t, ok)
		src = sink.Buf
		_, werr := Walk(src, func(string, bool, string, Token) error { return nil })
		require.NoError(t, werr)
	}
	assert.Equal(t, `{}`, string(src))
}

func TestSetPathReplaceExistingString(t *testing.T) {
	var sink BufferSink
	ok, err := SetPath([]byte(`{"a":"old","b":2}`), &sink, ".a", "%Q", Str("new"))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"a":"new","b":2}`, string(sink.Buf))
}

func TestDeletePathStringValue(t *testing.T) {
	var sink BufferSink
	ok, err := DeletePath([]byte(`{"a":"gone","b":2}`), &sink, ".a")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"b":2}`, string(sink.Buf))
}

func TestDeletePathNotFound(t *testing.T) {
	var sink BufferSink
	ok, err := DeletePath([]byte(`{"a":1}`), &sink, ".missing")
	require.NoError(t, err)
	assert.False(t, ok)
}
