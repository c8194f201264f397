// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mjson

// ChildIterator walks the direct children of a container addressed by
// path, one at a time, a stateful expression of
// original_source/frozen/next.c's repeated-handle json_next: the C
// original re-walks the whole document on every call, threading a
// "handle" byte offset through the caller's own loop; here that offset
// is internal iterator state instead.
type ChildIterator struct {
	src    []byte
	path   string
	handle int
}

// NewChildIterator returns an iterator over the direct children of
// the container at path ("" for the document root).
func NewChildIterator(src []byte, path string) *ChildIterator {
	return &ChildIterator{src: src, path: normalizePath(path), handle: -1}
}

// NextKey advances to the next direct object-member child and reports
// its key. ok is false once there are no more, or if the addressed
// container is an array.
func (it *ChildIterator) NextKey() (key string, val Token, ok bool) {
	name, isIndex, tok, ok := it.advance()
	if !ok || isIndex {
		return "", Token{}, false
	}
	return name, tok, true
}

// NextElem advances to the next direct array-element child and
// reports its index. ok is false once there are no more, or if the
// addressed container is an object.
func (it *ChildIterator) NextElem() (idx int, val Token, ok bool) {
	name, isIndex, tok, ok := it.advance()
	if !ok || !isIndex {
		return 0, Token{}, false
	}
	i, _ := atoiFast(name)
	return i, tok, true
}

func (it *ChildIterator) advance() (name string, isIndex bool, val Token, ok bool) {
	var (
		foundName    string
		foundIsIndex bool
		foundTok     Token
		foundPath    string
		foundOK      bool
	)
	Walk(it.src, func(n string, isIdx bool, p string, tok Token) error {
		if foundOK {
			return errFound
		}
		if tok.Pos <= it.handle {
			return nil
		}
		if !tok.IsContainerStart() && !tok.IsLeaf() {
			return nil
		}
		if !isDirectChild(p, it.path) {
			return nil
		}
		foundName, foundIsIndex, foundTok, foundPath, foundOK = n, isIdx, tok, p, true
		return errFound
	})
	if !foundOK {
		return "", false, Token{}, false
	}
	it.handle = foundTok.Pos
	if foundTok.IsContainerStart() {
		if full, ok, _ := findValue(it.src, foundPath); ok {
			foundTok = full
		}
	}
	return foundName, foundIsIndex, foundTok, true
}

// isDirectChild reports whether p addresses an immediate child of the
// container at parent: p must extend parent by exactly one ".key" or
// "[idx]" segment and no further.
func isDirectChild(p, parent string) bool {
	if len(p) <= len(parent) || p[:len(parent)] != parent {
		return false
	}
	rest := p[len(parent):]
	switch rest[0] {
	case '.':
		rest = rest[1:]
		for i := 0; i < len(rest); i++ {
			if rest[i] == '.' || rest[i] == '[' {
				return false
			}
		}
		return len(rest) > 0
	case '[':
		end := -1
		for i := 0; i < len(rest); i++ {
			if rest[i] == ']' {
				end = i
				break
			}
		}
		return end == len(rest)-1
	default:
		return false
	}
}

func atoiFast(s string) (int, bool) {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
		n = n*10 + int(s[i]-'0')
	}
	return n, true
}
