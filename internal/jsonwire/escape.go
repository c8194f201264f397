// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsonwire implements the low-level encoding and decoding of
// JSON string values shared by the Printer and Extractor. It escapes
// and unescapes exactly the characters JSON requires and nothing
// more: there is no HTML- or JS-safe escaping mode, since nothing in
// this module ever embeds output inside a <script> tag.
package jsonwire

import "unicode/utf8"

// needEscapeASCII reports whether c must be escaped in a JSON string.
// Index i holds 0 for "no escape", -1 for a short \X sequence, and +1
// for a \u00XX sequence.
var asciiEscapeTable = [utf8.RuneSelf]int8{
	0x00: +1, 0x01: +1, 0x02: +1, 0x03: +1, 0x04: +1, 0x05: +1, 0x06: +1, 0x07: +1,
	'\b':  -1,
	'\t':  -1,
	'\n':  -1,
	0x0b:  +1,
	'\f':  -1,
	'\r':  -1,
	0x0e:  +1, 0x0f: +1, 0x10: +1, 0x11: +1, 0x12: +1, 0x13: +1, 0x14: +1, 0x15: +1,
	0x16:  +1, 0x17: +1, 0x18: +1, 0x19: +1, 0x1a: +1, 0x1b: +1, 0x1c: +1, 0x1d: +1,
	0x1e:  +1, 0x1f: +1,
	'"':   -1,
	'\\':  -1,
}

func needEscapeASCII(c byte) bool { return asciiEscapeTable[c] != 0 }

const hexDigits = "0123456789abcdef"

func appendEscapedUTF16(dst []byte, x uint16) []byte {
	return append(dst, '\\', 'u', hexDigits[(x>>12)&0xf], hexDigits[(x>>8)&0xf], hexDigits[(x>>4)&0xf], hexDigits[(x>>0)&0xf])
}

func appendEscapedASCII(dst []byte, c byte) []byte {
	switch c {
	case '"', '\\':
		return append(dst, '\\', c)
	case '\b':
		return append(dst, "\\b"...)
	case '\f':
		return append(dst, "\\f"...)
	case '\n':
		return append(dst, "\\n"...)
	case '\r':
		return append(dst, "\\r"...)
	case '\t':
		return append(dst, "\\t"...)
	default:
		return appendEscapedUTF16(dst, uint16(c))
	}
}
