// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonwire

import (
	"errors"
	"unicode/utf16"
	"unicode/utf8"
)

// ErrInvalidUTF8 reports invalid UTF-8 bytes encountered while escaping
// or unescaping a string. Callers that care about the offset wrap it
// themselves; this package deals in self-contained byte slices.
var ErrInvalidUTF8 = errors.New("invalid UTF-8")

// ErrInvalidEscape reports a malformed backslash escape.
var ErrInvalidEscape = errors.New("invalid escape sequence")

// AppendQuote appends s to dst as a double-quoted JSON string,
// escaping control characters, the quote, and the backslash using the
// shortest representable form. It never escapes '<', '>', '&', or the
// line/paragraph separators — this module has no HTML- or JS-embedding
// mode.
func AppendQuote(dst []byte, s string) []byte {
	dst = append(dst, '"')
	var i, n int
	for uint(len(s)) > uint(n) {
		if c := s[n]; c < utf8.RuneSelf {
			n++
			if needEscapeASCII(c) {
				dst = append(dst, s[i:n-1]...)
				dst = appendEscapedASCII(dst, c)
				i = n
			}
			continue
		}
		r, rn := utf8.DecodeRuneInString(s[n:])
		n += rn
		if r == utf8.RuneError && rn == 1 {
			dst = append(dst, s[i:n-rn]...)
			dst = append(dst, "�"...)
			i = n
		}
	}
	dst = append(dst, s[i:n]...)
	dst = append(dst, '"')
	return dst
}

// AppendUnquote appends the unescaped content of a JSON string token to
// dst. src must be the token body with the surrounding quotes already
// excluded, as Token.Raw returns for a STRING token. It returns
// ErrInvalidEscape for a malformed backslash escape and ErrInvalidUTF8
// for an invalid lead byte.
func AppendUnquote(dst []byte, src []byte) ([]byte, error) {
	for i := 0; i < len(src); {
		switch c := src[i]; {
		case c == '\\':
			if i+1 >= len(src) {
				return dst, ErrInvalidEscape
			}
			switch src[i+1] {
			case '"', '\\', '/':
				dst = append(dst, src[i+1])
				i += 2
			case 'b':
				dst = append(dst, '\b')
				i += 2
			case 'f':
				dst = append(dst, '\f')
				i += 2
			case 'n':
				dst = append(dst, '\n')
				i += 2
			case 'r':
				dst = append(dst, '\r')
				i += 2
			case 't':
				dst = append(dst, '\t')
				i += 2
			case 'u':
				if i+6 > len(src) {
					return dst, ErrInvalidEscape
				}
				r1, ok := parseHex4(src[i+2 : i+6])
				if !ok {
					return dst, ErrInvalidEscape
				}
				i += 6
				r := rune(r1)
				if utf16.IsSurrogate(r) {
					if i+6 <= len(src) && src[i] == '\\' && src[i+1] == 'u' {
						if r2, ok := parseHex4(src[i+2 : i+6]); ok {
							if rr := utf16.DecodeRune(r, rune(r2)); rr != utf8.RuneError {
								dst = utf8.AppendRune(dst, rr)
								i += 6
								continue
							}
						}
					}
					dst = utf8.AppendRune(dst, utf8.RuneError)
					continue
				}
				dst = utf8.AppendRune(dst, r)
			default:
				return dst, ErrInvalidEscape
			}
		case c < utf8.RuneSelf:
			dst = append(dst, c)
			i++
		default:
			r, rn := utf8.DecodeRune(src[i:])
			if r == utf8.RuneError && rn == 1 {
				return dst, ErrInvalidUTF8
			}
			dst = append(dst, src[i:i+rn]...)
			i += rn
		}
	}
	return dst, nil
}

func parseHex4(b []byte) (uint16, bool) {
	var v uint16
	for _, c := range b {
		v <<= 4
		switch {
		case c >= '0' && c <= '9':
			v |= uint16(c - '0')
		case c >= 'a' && c <= 'f':
			v |= uint16(c-'a') + 10
		case c >= 'A' && c <= 'F':
			v |= uint16(c-'A') + 10
		default:
			return 0, false
		}
	}
	return v, true
}
