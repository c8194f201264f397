// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mjson

import "strconv"

// maxPathLen bounds the dotted/bracketed path text built while
// walking, mirroring original_source/elsa/walk.c's JSON_MAX_PATH_LEN
// stack buffer. A path that would overflow it is reported as
// ErrInvalid rather than silently truncated.
const maxPathLen = 512

// maxDepth bounds container nesting. The C walker recurses on the call
// stack with no check since a stack overflow there simply crashes; the
// Go walker also recurses on the Go call stack, so a pathological,
// deeply nested document needs an explicit, catchable guard instead.
const maxDepth = 10000

// pathBuilder accumulates the dotted/indexed path text used for
// VisitFunc callbacks, exactly as walk.c's append_to_path/truncate_path
// mutate ctx->path in place: children append onto the parent's buffer
// and truncate back to the parent's length when done, rather than each
// allocating their own copy.
type pathBuilder struct {
	buf [maxPathLen]byte
	len int
}

// mark returns a checkpoint to truncate back to after visiting a child.
func (p *pathBuilder) mark() int { return p.len }

// truncate restores the buffer to a previous checkpoint.
func (p *pathBuilder) truncate(n int) { p.len = n }

// String returns the path text built so far.
func (p *pathBuilder) String() string { return string(p.buf[:p.len]) }

// appendDot appends the "." sentinel used before reading an object's
// key/value pairs, matching walk.c's parse_object. It returns false if
// doing so would overflow the buffer.
func (p *pathBuilder) appendDot() bool {
	if p.len+1 > len(p.buf) {
		return false
	}
	p.buf[p.len] = '.'
	p.len++
	return true
}

// appendKey appends ".name" and returns the byte range of "name"
// within the buffer (for cur_name/cur_name_len), or ok=false on
// overflow. If the path already ends in the "." sentinel, the dot is
// reused rather than duplicated.
func (p *pathBuilder) appendKey(name string) (start, end int, ok bool) {
	n := p.len
	if n == 0 || p.buf[n-1] != '.' {
		if n+1 > len(p.buf) {
			return 0, 0, false
		}
		p.buf[n] = '.'
		n++
	}
	if n+len(name) > len(p.buf) {
		return 0, 0, false
	}
	start = n
	copy(p.buf[n:], name)
	n += len(name)
	end = n
	p.len = n
	return start, end, true
}

// appendIndex appends "[idx]" and returns the byte range of the
// decimal digits within the buffer, or ok=false on overflow.
func (p *pathBuilder) appendIndex(idx int) (start, end int, ok bool) {
	n := p.len
	if n+1 > len(p.buf) {
		return 0, 0, false
	}
	p.buf[n] = '['
	n++
	start = n
	digits := strconv.Itoa(idx)
	if n+len(digits)+1 > len(p.buf) {
		return 0, 0, false
	}
	copy(p.buf[n:], digits)
	n += len(digits)
	end = n
	p.buf[n] = ']'
	n++
	p.len = n
	return start, end, true
}

// name returns the buffer slice [start:end) as a string, used to
// report the current key/index to VisitFunc without an extra copy of
// the whole path.
func (p *pathBuilder) name(start, end int) string {
	return string(p.buf[start:end])
}
