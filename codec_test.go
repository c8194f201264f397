// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mjson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexRoundTrip(t *testing.T) {
	for _, b := range [][]byte{
		{},
		{0x00},
		{0xde, 0xad, 0xbe, 0xef},
		[]byte("the quick brown fox"),
	} {
		enc := encodeHex(nil, b)
		dec, err := decodeHex(enc)
		require.NoError(t, err)
		assert.Equal(t, b, dec)
	}
}

func TestB64RoundTripBoundaryLengths(t *testing.T) {
	for n := 0; n <= 5; n++ {
		b := make([]byte, n)
		for i := range b {
			b[i] = byte(i + 1)
		}
		enc := encodeB64(nil, b)
		dec, err := decodeB64(enc)
		require.NoError(t, err)
		assert.Equal(t, b, dec)
	}
}

func TestUnescapeQuoteStringRoundTrip(t *testing.T) {
	for _, s := range []string{"", "plain", `has "quotes" and \backslash`, "tab\ttab"} {
		quoted := quoteString(nil, s)
		unescaped, err := unescapeString(quoted[1 : len(quoted)-1])
		require.NoError(t, err)
		assert.Equal(t, s, unescaped)
	}
}

func TestDecodeHexInvalid(t *testing.T) {
	_, err := decodeHex([]byte("zz"))
	assert.Error(t, err)
}

func TestDecodeB64Invalid(t *testing.T) {
	_, err := decodeB64([]byte("not valid base64!!"))
	assert.Error(t, err)
}
