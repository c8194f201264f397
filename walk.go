// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mjson

import "unicode/utf8"

// VisitFunc is called once per token encountered while walking a JSON
// text, in document order, depth-first.
//
// name/isIndex identify how the token is addressed from its immediate
// parent: isIndex is true and name holds the decimal array index when
// the parent is an array, false with name holding the (already
// unescaped) object key when the parent is an object, and name=="" at
// the document root. path is the full dotted/bracketed address of the
// token itself, "" at the root.
//
// Returning a non-nil error aborts the walk; Walk returns that error
// unchanged (not reclassified as ErrInvalid/ErrIncomplete), letting a
// visitor use a sentinel of its own to stop early once it has found
// what it needs.
type VisitFunc func(name string, isIndex bool, path string, tok Token) error

// Walk parses src as a single JSON value, invoking visit for every
// token. It returns the number of bytes consumed by that one value
// (trailing bytes after it are not an error, letting callers such as
// SetPath locate a value inside a larger buffer) and the first error
// encountered, if any.
func Walk(src []byte, visit VisitFunc) (int, error) {
	w := &walker{src: src, visit: visit}
	pos, err := w.parseValue(0, 0, "", false)
	if err != nil {
		return pos, err
	}
	return pos, nil
}

type walker struct {
	src   []byte
	path  pathBuilder
	visit VisitFunc
}

func (w *walker) fail(pos int, sentinel error) (int, error) {
	return pos, newSyntaxError(pos, sentinel)
}

func skipWS(src []byte, pos int) int {
	for pos < len(src) {
		switch src[pos] {
		case ' ', '\t', '\r', '\n':
			pos++
		default:
			return pos
		}
	}
	return pos
}

func (w *walker) parseValue(pos, depth int, name string, isIndex bool) (int, error) {
	pos = skipWS(w.src, pos)
	if pos >= len(w.src) {
		return w.fail(pos, ErrIncomplete)
	}
	switch w.src[pos] {
	case '{':
		return w.parseObject(pos, depth, name, isIndex)
	case '[':
		return w.parseArray(pos, depth, name, isIndex)
	case '"':
		return w.parseString(pos, name, isIndex)
	case 't':
		return w.expectLiteral(pos, "true", KindTrue, name, isIndex)
	case 'f':
		return w.expectLiteral(pos, "false", KindFalse, name, isIndex)
	case 'n':
		return w.expectLiteral(pos, "null", KindNull, name, isIndex)
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return w.parseNumber(pos, name, isIndex)
	default:
		return w.fail(pos, ErrInvalid)
	}
}

func (w *walker) parseObject(pos, depth int, name string, isIndex bool) (int, error) {
	if depth+1 > maxDepth {
		return w.fail(pos, ErrInvalid)
	}
	start := pos
	pos++ // consume '{'
	if err := w.visit(name, isIndex, w.path.String(), Token{KindObjectStart, start, start + 1}); err != nil {
		return pos, err
	}
	mark := w.path.mark()
	if !w.path.appendDot() {
		return w.fail(pos, ErrInvalid)
	}

	pos = skipWS(w.src, pos)
	first := true
	for {
		if pos >= len(w.src) {
			return w.fail(pos, ErrIncomplete)
		}
		if w.src[pos] == '}' {
			break
		}
		if !first {
			if w.src[pos] != ',' {
				return w.fail(pos, ErrInvalid)
			}
			pos++
			pos = skipWS(w.src, pos)
			if pos >= len(w.src) {
				return w.fail(pos, ErrIncomplete)
			}
		}
		key, next, err := w.parseKey(pos)
		if err != nil {
			return next, err
		}
		pos = skipWS(w.src, next)
		if pos >= len(w.src) {
			return w.fail(pos, ErrIncomplete)
		}
		if w.src[pos] != ':' {
			return w.fail(pos, ErrInvalid)
		}
		pos++
		pos = skipWS(w.src, pos)

		beforeKey := w.path.mark()
		if _, _, ok := w.path.appendKey(key); !ok {
			return w.fail(pos, ErrInvalid)
		}
		pos, err = w.parseValue(pos, depth+1, key, false)
		if err != nil {
			return pos, err
		}
		w.path.truncate(beforeKey)

		pos = skipWS(w.src, pos)
		first = false
	}
	pos++ // consume '}'
	w.path.truncate(mark)
	if err := w.visit(name, isIndex, w.path.String(), Token{KindObjectEnd, pos - 1, pos}); err != nil {
		return pos, err
	}
	return pos, nil
}

func (w *walker) parseArray(pos, depth int, name string, isIndex bool) (int, error) {
	if depth+1 > maxDepth {
		return w.fail(pos, ErrInvalid)
	}
	start := pos
	pos++ // consume '['
	if err := w.visit(name, isIndex, w.path.String(), Token{KindArrayStart, start, start + 1}); err != nil {
		return pos, err
	}
	mark := w.path.mark()

	pos = skipWS(w.src, pos)
	idx := 0
	first := true
	for {
		if pos >= len(w.src) {
			return w.fail(pos, ErrIncomplete)
		}
		if w.src[pos] == ']' {
			break
		}
		if !first {
			if w.src[pos] != ',' {
				return w.fail(pos, ErrInvalid)
			}
			pos++
			pos = skipWS(w.src, pos)
			if pos >= len(w.src) {
				return w.fail(pos, ErrIncomplete)
			}
		}

		if _, _, ok := w.path.appendIndex(idx); !ok {
			return w.fail(pos, ErrInvalid)
		}
		var err error
		pos, err = w.parseValue(pos, depth+1, itoa(idx), true)
		if err != nil {
			return pos, err
		}
		w.path.truncate(mark)

		pos = skipWS(w.src, pos)
		idx++
		first = false
	}
	pos++ // consume ']'
	if err := w.visit(name, isIndex, w.path.String(), Token{KindArrayEnd, pos - 1, pos}); err != nil {
		return pos, err
	}
	return pos, nil
}

// parseKey reads an object key: a quoted string, unescaped, or a bare
// identifier (a Go-edition input extension carried over from
// original_source's parse_identifier, never emitted on output).
func (w *walker) parseKey(pos int) (key string, next int, err error) {
	if w.src[pos] == '"' {
		end, scanErr := w.scanString(pos)
		if scanErr != nil {
			return "", end, newSyntaxError(end, scanErr)
		}
		unescaped, uerr := unescapeString(w.src[pos+1 : end-1])
		if uerr != nil {
			return "", pos, newSyntaxError(pos, ErrInvalid)
		}
		return unescaped, end, nil
	}
	if isIdentStart(w.src[pos]) {
		start := pos
		for pos < len(w.src) && isIdentByte(w.src[pos]) {
			pos++
		}
		return string(w.src[start:pos]), pos, nil
	}
	return "", pos, newSyntaxError(pos, ErrInvalid)
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentByte(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

func (w *walker) parseString(pos int, name string, isIndex bool) (int, error) {
	end, err := w.scanString(pos)
	if err != nil {
		return end, newSyntaxError(end, err)
	}
	// end is the position past the closing quote; the token itself
	// excludes both quotes.
	if verr := w.visit(name, isIndex, w.path.String(), Token{KindString, pos + 1, end - 1}); verr != nil {
		return end, verr
	}
	return end, nil
}

// scanString locates the end of a JSON string literal starting at
// pos (which must hold the opening quote), validating escapes and
// control characters without allocating, following
// original_source/elsa/walk.c's parse_string.
func (w *walker) scanString(pos int) (end int, err error) {
	i := pos + 1
	for {
		if i >= len(w.src) {
			return i, ErrIncomplete
		}
		c := w.src[i]
		switch {
		case c == '"':
			return i + 1, nil
		case c == '\\':
			if i+1 >= len(w.src) {
				return i + 1, ErrIncomplete
			}
			switch w.src[i+1] {
			case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
				i += 2
			case 'u':
				if i+6 > len(w.src) {
					return len(w.src), ErrIncomplete
				}
				for k := i + 2; k < i+6; k++ {
					if !isHexDigit(w.src[k]) {
						return k, ErrInvalid
					}
				}
				i += 6
			default:
				return i + 1, ErrInvalid
			}
		case c < 0x20:
			return i, ErrInvalid
		case c < utf8.RuneSelf:
			i++
		default:
			r, size := utf8.DecodeRune(w.src[i:])
			if r == utf8.RuneError && size <= 1 {
				return i, ErrInvalid
			}
			i += size
		}
	}
}

func isHexDigit(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}

func (w *walker) parseNumber(pos int, name string, isIndex bool) (int, error) {
	start := pos
	i := pos
	if i < len(w.src) && w.src[i] == '-' {
		i++
	}
	if i >= len(w.src) {
		return i, newSyntaxError(i, ErrIncomplete)
	}
	if w.src[i] < '0' || w.src[i] > '9' {
		return i, newSyntaxError(i, ErrInvalid)
	}
	for i < len(w.src) && w.src[i] >= '0' && w.src[i] <= '9' {
		i++
	}
	if i < len(w.src) && w.src[i] == '.' {
		i++
		if i >= len(w.src) || w.src[i] < '0' || w.src[i] > '9' {
			if i >= len(w.src) {
				return i, newSyntaxError(i, ErrIncomplete)
			}
			return i, newSyntaxError(i, ErrInvalid)
		}
		for i < len(w.src) && w.src[i] >= '0' && w.src[i] <= '9' {
			i++
		}
	}
	if i < len(w.src) && (w.src[i] == 'e' || w.src[i] == 'E') {
		i++
		if i < len(w.src) && (w.src[i] == '+' || w.src[i] == '-') {
			i++
		}
		if i >= len(w.src) || w.src[i] < '0' || w.src[i] > '9' {
			if i >= len(w.src) {
				return i, newSyntaxError(i, ErrIncomplete)
			}
			return i, newSyntaxError(i, ErrInvalid)
		}
		for i < len(w.src) && w.src[i] >= '0' && w.src[i] <= '9' {
			i++
		}
	}
	if err := w.visit(name, isIndex, w.path.String(), Token{KindNumber, start, i}); err != nil {
		return i, err
	}
	return i, nil
}

func (w *walker) expectLiteral(pos int, lit string, kind Kind, name string, isIndex bool) (int, error) {
	end := pos + len(lit)
	if end > len(w.src) {
		return len(w.src), newSyntaxError(len(w.src), ErrIncomplete)
	}
	if string(w.src[pos:end]) != lit {
		return pos, newSyntaxError(pos, ErrInvalid)
	}
	if err := w.visit(name, isIndex, w.path.String(), Token{kind, pos, end}); err != nil {
		return end, err
	}
	return end, nil
}
