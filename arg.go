// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mjson

// CallbackFunc renders a single JSON value to sink on behalf of a %M
// directive, returning the number of bytes written (or that would
// have been written, for a dry-run sink) and any error.
type CallbackFunc func(sink Sink) (int, error)

type argKind int

const (
	argBool argKind = iota
	argStr
	argNullableStr
	argHex
	argB64
	argRawToken
	argCallback
	argAny
)

// Arg is one formatting argument to Printf. Go has no va_list, so
// arguments are built through the named constructors below instead of
// passed as a bare variadic of interface{} — the same tagged-union
// shape spec.md's own design notes call for.
type Arg struct {
	kind  argKind
	b     bool
	s     string
	sp    *string
	bytes []byte
	tok   Token
	cb    CallbackFunc
	any   any
}

// Bool constructs an Arg for the %B conversion.
func Bool(b bool) Arg { return Arg{kind: argBool, b: b} }

// Str constructs an Arg for %Q from a non-null string.
func Str(s string) Arg { return Arg{kind: argStr, s: s} }

// NullableStr constructs an Arg for %Q that emits the JSON null
// literal when p is nil, matching original_source/elsa/printf.c's
// NULL-pointer handling for %Q.
func NullableStr(p *string) Arg { return Arg{kind: argNullableStr, sp: p} }

// Hex constructs an Arg for the %H conversion.
func Hex(b []byte) Arg { return Arg{kind: argHex, bytes: b} }

// B64 constructs an Arg for the %V conversion.
func B64(b []byte) Arg { return Arg{kind: argB64, bytes: b} }

// RawToken constructs an Arg that copies a Token's source bytes
// verbatim, available to callers for a %T-style passthrough. A STRING
// token's Raw excludes its surrounding quotes, so they are restored
// here to keep the re-emitted text valid JSON.
func RawToken(src []byte, t Token) Arg {
	raw := t.Raw(src)
	if t.Kind == KindString {
		b := make([]byte, 0, len(raw)+2)
		b = append(b, '"')
		b = append(b, raw...)
		b = append(b, '"')
		raw = b
	}
	return Arg{kind: argRawToken, bytes: raw}
}

// Callback constructs an Arg for %M: fn is invoked with the output
// sink and must write exactly one JSON value.
func Callback(fn CallbackFunc) Arg { return Arg{kind: argCallback, cb: fn} }

// Any constructs an Arg for a default conversion (%d, %f, %s, %x, and
// so on); v is formatted by delegating to the fmt package, the direct
// Go analogue of "delegate to the host's printf" that
// original_source/elsa/printf.c falls back to for any specifier it
// does not special-case itself.
func Any(v any) Arg { return Arg{kind: argAny, any: v} }

// ArrayCallback renders items as a JSON array, formatting each
// element with elemFmt, the direct replacement for
// original_source/elsa/printf.c's json_printf_array. The C original
// reads each element out of a caller-supplied void* by a byte width
// selected from elem_size (1, 2, 4, or 8) and branches on whether the
// element is a float; Go generics make that union-read moot; T is
// fixed at compile time, so there is no elem_size to get wrong.
func ArrayCallback[T any](items []T, elemFmt string) CallbackFunc {
	return func(sink Sink) (int, error) {
		total := 0
		n := sink.Write([]byte{'['})
		total += n
		for i, item := range items {
			if i > 0 {
				total += sink.Write([]byte{','})
			}
			written, err := Vprintf(sink, elemFmt, Any(item))
			total += written
			if err != nil {
				return total, err
			}
		}
		total += sink.Write([]byte{']'})
		return total, nil
	}
}
