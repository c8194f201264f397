// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mjson

import (
	"errors"
	"fmt"
)

// Scanf extracts values out of src addressed by path through the same
// format-string mini-language Printf writes, following
// original_source/elsa/scanf.c's json_vscanf: "{name: %Q, ...}"
// describes both the path to walk to and how to interpret what is
// found there. It returns the number of directives successfully
// satisfied and the first error encountered.
//
// Like the C original, which walks src once per directive, Scanf
// resolves one Walk per directive internally (findValue below) to keep
// path-matching logic in one place; src is immutable during a single
// Scanf call, so the repeated walks all see the same document.
func Scanf(src []byte, format string, targets ...Target) (int, error) {
	var path pathBuilder
	// frames holds, per nesting level, the path length to truncate back
	// to before appending a sibling key: appendKey supplies its own
	// leading '.', so a frame is nothing more than "where this level's
	// keys start from". The root frame is the empty path.
	frames := []int{0}
	count := 0
	ti := 0
	nextTarget := func() (Target, error) {
		if ti >= len(targets) {
			return Target{}, errors.New("mjson: too few targets for format")
		}
		t := targets[ti]
		ti++
		return t, nil
	}

	i := 0
	for i < len(format) {
		c := format[i]
		switch {
		case c == '{':
			frames = append(frames, path.mark())
			i++
		case c == '}':
			if len(frames) == 1 {
				return count, newSyntaxError(i, ErrInvalid)
			}
			frames = frames[:len(frames)-1]
			i++
		case c == ',' || c == ' ' || c == '\t' || c == '\r' || c == '\n':
			i++
		case c == '%':
			i++
			if i >= len(format) {
				return count, errors.New("mjson: trailing %% in format string")
			}
			spec, next, err := parseConvSpec(format, i)
			if err != nil {
				return count, err
			}
			i = next

			tok, ok, ferr := findValue(src, path.String())
			if ferr != nil {
				return count, ferr
			}
			if !ok {
				continue
			}
			target, err := nextTarget()
			if err != nil {
				return count, err
			}
			counted, err := scanInto(src, tok, spec, target)
			if err != nil {
				return count, err
			}
			if counted {
				count++
			}
		case isIdentStart(c):
			start := i
			for i < len(format) && isIdentByte(format[i]) {
				i++
			}
			key := format[start:i]
			for i < len(format) && (format[i] == ' ' || format[i] == '\t') {
				i++
			}
			if i >= len(format) || format[i] != ':' {
				return count, newSyntaxError(i, ErrInvalid)
			}
			i++
			for i < len(format) && (format[i] == ' ' || format[i] == '\t') {
				i++
			}
			path.truncate(frames[len(frames)-1])
			if _, _, ok := path.appendKey(key); !ok {
				return count, newSyntaxError(i, ErrInvalid)
			}
		default:
			i++
		}
	}
	return count, nil
}

// errFound aborts Walk as soon as findValue's target path has been
// fully matched; it never escapes findValue itself.
var errFound = errors.New("mjson: internal match found")

// findValue locates the first token addressed by path, returning its
// full span (including nested content for an object or array).
func findValue(src []byte, path string) (Token, bool, error) {
	var (
		found   Token
		ok      bool
		start   Token
		pending bool
	)
	_, err := Walk(src, func(_ string, _ bool, p string, tok Token) error {
		if pending {
			if p == path && tok.IsContainerEnd() {
				found = Token{Kind: start.Kind, Pos: start.Pos, End: tok.End}
				ok = true
				return errFound
			}
			return nil
		}
		if p != path {
			return nil
		}
		if tok.IsLeaf() {
			found = tok
			ok = true
			return errFound
		}
		if tok.IsContainerStart() {
			start = tok
			pending = true
		}
		return nil
	})
	if err != nil && !errors.Is(err, errFound) {
		return Token{}, false, err
	}
	return found, ok, nil
}

// ScanArrayElem extracts a single array element addressed by path and
// a zero-based index, a direct port of
// original_source/elsa/scanf.c's json_scanf_array_elem.
func ScanArrayElem(src []byte, path string, idx int) (Token, error) {
	full := path + "[" + itoa(idx) + "]"
	tok, ok, err := findValue(src, full)
	if err != nil {
		return Token{}, err
	}
	if !ok {
		return Token{}, newSyntaxError(0, ErrInvalid)
	}
	return tok, nil
}

// scanInto converts tok into target per spec. counted reports whether
// the conversion should count toward Scanf's return value: spec.md's
// Returns section counts %Q only when it both succeeds and the
// matched value is non-null, so a null match reports counted=false
// even though it is not an error.
func scanInto(src []byte, tok Token, spec convSpec, target Target) (counted bool, err error) {
	raw := tok.Raw(src)
	switch spec.specifier {
	case 'M':
		if target.kind != targetCallback {
			return false, errors.New("mjson: %M requires a ScanCallback target")
		}
		return true, target.fn(src, tok)
	case 'B':
		if target.kind != targetBool {
			return false, errors.New("mjson: %B requires a BoolTarget")
		}
		*target.bp = tok.Kind == KindTrue
		return true, nil
	case 'Q':
		if target.kind != targetStr {
			return false, errors.New("mjson: %Q requires a StrTarget")
		}
		if tok.Kind == KindNull {
			if target.wasNull != nil {
				*target.wasNull = true
			}
			return false, nil
		}
		s, err := unescapeString(raw)
		if err != nil {
			return false, err
		}
		*target.sp = s
		if target.wasNull != nil {
			*target.wasNull = false
		}
		return true, nil
	case 'H':
		if target.kind != targetHex {
			return false, errors.New("mjson: %H requires a HexTarget")
		}
		b, err := decodeHex(raw)
		if err != nil {
			return false, err
		}
		*target.bytesp = b
		return true, nil
	case 'V':
		if target.kind != targetB64 {
			return false, errors.New("mjson: %V requires a B64Target")
		}
		b, err := decodeB64(raw)
		if err != nil {
			return false, err
		}
		*target.bytesp = b
		return true, nil
	case 'T':
		if target.kind != targetToken {
			return false, errors.New("mjson: %T requires a TokenTarget")
		}
		*target.tokp = tok
		return true, nil
	default:
		if target.kind != targetAny {
			return false, fmt.Errorf("mjson: %%%c requires an AnyTarget", spec.specifier)
		}
		verb := buildFmtVerb(spec)
		_, err := fmt.Sscanf(string(raw), verb, target.any)
		return err == nil, err
	}
}
