// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mjson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanfScenario3(t *testing.T) {
	var flag bool
	var n int
	count, err := Scanf([]byte(`{"a":true,"b":17}`), "{a:%B b:%d}", BoolTarget(&flag), AnyTarget(&n))
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.True(t, flag)
	assert.Equal(t, 17, n)
}

func TestScanfStrAndNull(t *testing.T) {
	var s string
	var wasNull bool
	count, err := Scanf([]byte(`{"name":"bob"}`), "{name:%Q}", StrTarget(&s, &wasNull))
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, "bob", s)
	assert.False(t, wasNull)

	s = "unchanged"
	wasNull = false
	count, err = Scanf([]byte(`{"name":null}`), "{name:%Q}", StrTarget(&s, &wasNull))
	require.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.True(t, wasNull)
	assert.Equal(t, "unchanged", s)
}

func TestScanfHexAndB64(t *testing.T) {
	var hexOut, b64Out []byte
	count, err := Scanf([]byte(`{"h":"dead","v":"YWJj"}`), "{h:%H v:%V}", HexTarget(&hexOut), B64Target(&b64Out))
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, []byte{0xde, 0xad}, hexOut)
	assert.Equal(t, []byte("abc"), b64Out)
}

func TestScanfToken(t *testing.T) {
	var tok Token
	src := []byte(`{"obj":{"x":1,"y":2}}`)
	count, err := Scanf(src, "{obj:%T}", TokenTarget(&tok))
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, `{"x":1,"y":2}`, string(tok.Raw(src)))
}

func TestScanfMissingPathSkipped(t *testing.T) {
	var n int
	count, err := Scanf([]byte(`{"a":1}`), "{b:%d}", AnyTarget(&n))
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestScanArrayElem(t *testing.T) {
	src := []byte(`{"arr":[10,20,30]}`)
	tok, err := ScanArrayElem(src, ".arr", 1)
	require.NoError(t, err)
	assert.Equal(t, "20", string(tok.Raw(src)))
}
