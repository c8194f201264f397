// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonwire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuoteUnquoteRoundTrip(t *testing.T) {
	cases := []string{
		"",
		"hello",
		`quote"backslash\`,
		"tab\tnewline\nreturn\r",
		"unicode: é中文",
		"\x00\x01\x1f control bytes",
		"emoji \U0001F600",
	}
	for _, s := range cases {
		quoted := AppendQuote(nil, s)
		unquoted, err := AppendUnquote(nil, quoted[1:len(quoted)-1])
		require.NoError(t, err)
		assert.Equal(t, s, string(unquoted))
	}
}

func TestAppendQuoteEscapesControlBytes(t *testing.T) {
	got := AppendQuote(nil, "\x00\x1f\"\\")
	assert.Equal(t, "\"\\u0000\\u001f\\\"\\\\\"", string(got))
}

func TestAppendUnquoteSurrogatePair(t *testing.T) {
	got, err := AppendUnquote(nil, []byte(`\`+`ud83d`+`\`+`ude00`))
	require.NoError(t, err)
	assert.Equal(t, "\U0001F600", string(got))
}

func TestAppendUnquoteInvalidEscape(t *testing.T) {
	_, err := AppendUnquote(nil, []byte(`\q`))
	assert.ErrorIs(t, err, ErrInvalidEscape)
}

func TestAppendUnquoteTruncatedEscape(t *testing.T) {
	_, err := AppendUnquote(nil, []byte(`\u12`))
	assert.ErrorIs(t, err, ErrInvalidEscape)
}
