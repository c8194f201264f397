// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mjson

import "errors"

const errorPrefix = "mjson: "

// ErrInvalid reports a syntactic error in the JSON text: a malformed
// escape, a bad number, an unexpected token, a bad UTF-8 lead byte.
var ErrInvalid = errors.New(errorPrefix + "invalid JSON")

// ErrIncomplete reports that the JSON text ended before a token,
// string, or escape sequence was finished. Truncating a valid JSON
// text by one byte yields ErrIncomplete, never ErrInvalid, except for
// a bare top-level number, which can leave a shorter valid number
// ("12" becomes "1") and so walks without error.
var ErrIncomplete = errors.New(errorPrefix + "incomplete JSON")

// SyntaxError describes where a Walk-family operation failed.
//
// Offset is the byte offset into the source at which the error was
// detected. Err is always ErrInvalid or ErrIncomplete.
type SyntaxError struct {
	Offset int
	Err    error
}

func (e *SyntaxError) Error() string {
	return errorPrefix + e.Err.Error() + " at offset " + itoa(e.Offset)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

func (e *SyntaxError) Is(target error) bool {
	return target == ErrInvalid && e.Err == ErrInvalid ||
		target == ErrIncomplete && e.Err == ErrIncomplete
}

func newSyntaxError(offset int, err error) *SyntaxError {
	return &SyntaxError{Offset: offset, Err: err}
}

// itoa avoids pulling in strconv just for error formatting of small,
// always-non-negative offsets.
func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	neg := n < 0
	if neg {
		n = -n
	}
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
