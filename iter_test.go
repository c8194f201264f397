// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mjson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChildIteratorNextKey(t *testing.T) {
	src := []byte(`{"a":1,"b":2,"c":3}`)
	it := NewChildIterator(src, "")

	var keys []string
	for {
		k, _, ok := it.NextKey()
		if !ok {
			break
		}
		keys = append(keys, k)
	}
	assert.Equal(t, []string{"a", "b", "c"}, keys)
}

func TestChildIteratorNextElem(t *testing.T) {
	src := []byte(`[10,20,30]`)
	it := NewChildIterator(src, "")

	var idxs []int
	var vals []string
	for {
		i, v, ok := it.NextElem()
		if !ok {
			break
		}
		idxs = append(idxs, i)
		vals = append(vals, string(v.Raw(src)))
	}
	assert.Equal(t, []int{0, 1, 2}, idxs)
	assert.Equal(t, []string{"10", "20", "30"}, vals)
}

func TestChildIteratorNestedPath(t *testing.T) {
	src := []byte(`{"outer":{"x":1,"y":{"deep":2}}}`)
	it := NewChildIterator(src, ".outer")

	k1, _, ok := it.NextKey()
	require.True(t, ok)
	assert.Equal(t, "x", k1)

	k2, v2, ok := it.NextKey()
	require.True(t, ok)
	assert.Equal(t, "y", k2)
	assert.Equal(t, `{"deep":2}`, string(v2.Raw(src)))

	_, _, ok = it.NextKey()
	assert.False(t, ok)
}

func TestChildIteratorWrongKindReturnsFalse(t *testing.T) {
	src := []byte(`{"a":1}`)
	it := NewChildIterator(src, "")
	_, _, ok := it.NextElem()
	assert.False(t, ok)
}
