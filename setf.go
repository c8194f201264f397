// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mjson

import (
	"bytes"
	"strconv"
)

// pathSeg is one component of a dotted/bracketed path: either an
// object key or an array index.
type pathSeg struct {
	isIndex bool
	name    string
	idx     int
}

// normalizePath is the identity function: paths are already expressed
// in the leading-dot/bracket convention Walk itself produces (".a",
// ".a[0]", "[0]", "" for the root), matching
// original_source/frozen/setf.c's json_path argument. It exists as a
// named seam so SetPath/DeletePath/ChildIterator share one place to
// validate or extend path syntax later.
func normalizePath(path string) string {
	return path
}

func splitPath(path string) ([]pathSeg, error) {
	var segs []pathSeg
	i := 0
	for i < len(path) {
		switch path[i] {
		case '.':
			i++
			start := i
			for i < len(path) && path[i] != '.' && path[i] != '[' {
				i++
			}
			segs = append(segs, pathSeg{name: path[start:i]})
		case '[':
			i++
			start := i
			for i < len(path) && path[i] != ']' {
				i++
			}
			if i >= len(path) {
				return nil, newSyntaxError(i, ErrInvalid)
			}
			idx, err := strconv.Atoi(path[start:i])
			if err != nil {
				return nil, newSyntaxError(start, ErrInvalid)
			}
			segs = append(segs, pathSeg{isIndex: true, idx: idx})
			i++ // consume ']'
		default:
			return nil, newSyntaxError(i, ErrInvalid)
		}
	}
	return segs, nil
}

func joinPath(segs []pathSeg) string {
	var b bytes.Buffer
	for _, s := range segs {
		if s.isIndex {
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(s.idx))
			b.WriteByte(']')
		} else {
			b.WriteByte('.')
			b.WriteString(s.name)
		}
	}
	return b.String()
}

// SetPath replaces the value at path with the rendering of format and
// args, or inserts it (synthesizing any missing intermediate object
// keys or array brackets) if path does not yet exist. It returns
// whether a replacement or insertion actually happened, ported from
// original_source/frozen/setf.c's json_vsetf modification branch.
//
// The C original picks between replace/insert/delete by checking
// json_fmt == NULL; the Go edition surfaces the delete case as the
// separate DeletePath function instead, which is safer (no risk of an
// empty format string being mistaken for the sentinel) and equally
// grounded, since the original already branches its entire body on
// that condition.
func SetPath(src []byte, sink Sink, path, format string, args ...Arg) (bool, error) {
	target := normalizePath(path)
	if tok, ok, err := findValue(src, target); err != nil {
		return false, err
	} else if ok {
		pos, end := valueSpan(tok)
		sink.Write(src[:pos])
		if _, err := Vprintf(sink, format, args...); err != nil {
			return false, err
		}
		sink.Write(src[end:])
		return true, nil
	}

	segs, err := splitPath(target)
	if err != nil {
		return false, err
	}
	if len(segs) == 0 {
		return false, newSyntaxError(0, ErrInvalid)
	}
	for k := len(segs) - 1; k >= 0; k-- {
		prefix := joinPath(segs[:k])
		parent, found, err := findValue(src, prefix)
		if err != nil {
			return false, err
		}
		if !found {
			continue
		}
		if parent.Kind != KindObjectStart && parent.Kind != KindArrayStart {
			return false, newSyntaxError(parent.Pos, ErrInvalid)
		}
		return insertInto(src, sink, parent, segs[k:], format, args)
	}
	return false, newSyntaxError(0, ErrInvalid)
}

// insertInto appends a new member to parent (an object or array whose
// full span is already known), synthesizing any nested containers
// named by segs and rendering the final value with format/args.
func insertInto(src []byte, sink Sink, parent Token, segs []pathSeg, format string, args []Arg) (bool, error) {
	insertPos := parent.End - 1
	isEmpty := len(bytes.TrimSpace(src[parent.Pos+1:insertPos])) == 0

	sink.Write(src[:insertPos])
	if !isEmpty {
		sink.Write([]byte{','})
	}

	var opened []byte
	for i, seg := range segs {
		if !seg.isIndex {
			sink.Write(quoteString(nil, seg.name))
			sink.Write([]byte{':'})
		}
		if i == len(segs)-1 {
			if _, err := Vprintf(sink, format, args...); err != nil {
				return false, err
			}
			break
		}
		if segs[i+1].isIndex {
			sink.Write([]byte{'['})
			opened = append(opened, ']')
		} else {
			sink.Write([]byte{'{'})
			opened = append(opened, '}')
		}
	}
	for i := len(opened) - 1; i >= 0; i-- {
		sink.Write(opened[i : i+1])
	}
	sink.Write(src[insertPos:])
	return true, nil
}

// DeletePath removes the member at path, including its preceding
// comma (or, for the first member of a container, its following
// comma) so the container remains syntactically valid, and its key
// when the member belongs to an object. It returns whether a value
// was found and removed, ported from
// original_source/frozen/setf.c's json_vsetf deletion branch.
func DeletePath(src []byte, sink Sink, path string) (bool, error) {
	target := normalizePath(path)
	tok, ok, err := findValue(src, target)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	segs, err := splitPath(target)
	if err != nil {
		return false, err
	}
	isArrayElem := len(segs) > 0 && segs[len(segs)-1].isIndex

	tokStart, tokEnd := valueSpan(tok)
	valueStart := tokStart
	if !isArrayElem {
		valueStart = keyStart(src, tokStart)
	}

	p := skipWSBack(src, valueStart)
	var prev int
	first := false
	if p > 0 && src[p-1] == ',' {
		prev = p - 1
	} else {
		prev = valueStart
		first = true
	}

	end := tokEnd
	if first {
		q := end
		for q < len(src) && isJSONSpace(src[q]) {
			q++
		}
		if q < len(src) && src[q] == ',' {
			end = q + 1
		}
	}

	sink.Write(src[:prev])
	sink.Write(src[end:])
	return true, nil
}

// valueSpan returns the byte range of tok's full JSON representation
// in src, restoring the surrounding quotes that Token.Pos/End exclude
// for a STRING so callers splicing raw source bytes don't drop or
// duplicate them.
func valueSpan(tok Token) (pos, end int) {
	if tok.Kind == KindString {
		return tok.Pos - 1, tok.End + 1
	}
	return tok.Pos, tok.End
}

// keyStart scans backward from the start of an object member's value
// to the start of its quoted or bare-identifier key, skipping the
// colon and surrounding whitespace.
func keyStart(src []byte, valuePos int) int {
	p := skipWSBack(src, valuePos)
	if p == 0 || src[p-1] != ':' {
		return valuePos
	}
	p--
	p = skipWSBack(src, p)
	if p > 0 && src[p-1] == '"' {
		p--
		for p > 0 {
			p--
			if src[p] == '"' && (p == 0 || src[p-1] != '\\') {
				break
			}
		}
		return p
	}
	for p > 0 && isIdentByte(src[p-1]) {
		p--
	}
	return p
}

func isJSONSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func skipWSBack(src []byte, pos int) int {
	for pos > 0 && isJSONSpace(src[pos-1]) {
		pos--
	}
	return pos
}
