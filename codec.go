// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mjson

import (
	"encoding/base64"
	"encoding/hex"

	"mjson/internal/jsonwire"
)

// unescapeString unescapes a JSON string token's body (surrounding
// quotes already excluded, as Token.Raw returns it) into a Go string.
func unescapeString(tok []byte) (string, error) {
	b, err := jsonwire.AppendUnquote(make([]byte, 0, len(tok)), tok)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// quoteString appends s to dst as an escaped, double-quoted JSON
// string, used by the Printer's %Q conversion.
func quoteString(dst []byte, s string) []byte {
	return jsonwire.AppendQuote(dst, s)
}

// decodeHex decodes a hex token's raw text (no surrounding
// delimiters) into bytes, grounded on original_source/elsa/scanf.c's
// hexdec. The standard library's encoding/hex is a direct, exact fit
// for this and no pack example offers a better one (see DESIGN.md).
func decodeHex(src []byte) ([]byte, error) {
	dst := make([]byte, hex.DecodedLen(len(src)))
	n, err := hex.Decode(dst, src)
	if err != nil {
		return nil, err
	}
	return dst[:n], nil
}

// encodeHex renders b as lowercase hex, used by the Printer's %H
// conversion.
func encodeHex(dst, b []byte) []byte {
	start := len(dst)
	dst = append(dst, make([]byte, hex.EncodedLen(len(b)))...)
	hex.Encode(dst[start:], b)
	return dst
}

// decodeB64 decodes a base64 token (standard alphabet, '=' padding)
// into bytes, grounded on original_source/elsa/scanf.c's b64dec.
func decodeB64(src []byte) ([]byte, error) {
	dst := make([]byte, base64.StdEncoding.DecodedLen(len(src)))
	n, err := base64.StdEncoding.Decode(dst, src)
	if err != nil {
		return nil, err
	}
	return dst[:n], nil
}

// encodeB64 renders b as standard base64, used by the Printer's %V
// conversion, grounded on original_source/elsa/printf.c's b64enc.
func encodeB64(dst, b []byte) []byte {
	start := len(dst)
	dst = append(dst, make([]byte, base64.StdEncoding.EncodedLen(len(b)))...)
	base64.StdEncoding.Encode(dst[start:], b)
	return dst
}
