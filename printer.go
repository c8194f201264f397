// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mjson

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Printf renders format against args onto sink, matching the
// directive table of original_source/elsa/printf.c's json_vprintf.
// It returns the logical number of bytes written (per Sink's dry-run
// contract) and the first error encountered.
func Printf(sink Sink, format string, args ...Arg) (int, error) {
	return Vprintf(sink, format, args...)
}

// Vprintf does the rendering for Printf and takes the same arguments;
// Printf, ArrayCallback, SetPath, and VFprintf all call it.
func Vprintf(sink Sink, format string, args ...Arg) (int, error) {
	total := 0
	argi := 0
	nextArg := func() (Arg, error) {
		if argi >= len(args) {
			return Arg{}, errors.New("mjson: too few arguments for format")
		}
		a := args[argi]
		argi++
		return a, nil
	}

	i := 0
	for i < len(format) {
		c := format[i]
		if c != '%' {
			// A bare identifier run is always written as a quoted JSON
			// string, so "{foo:%d}" renders as {"foo":...}.
			if isIdentStart(c) {
				start := i
				for i < len(format) && isIdentByte(format[i]) {
					i++
				}
				total += sink.Write(quoteString(nil, format[start:i]))
				continue
			}
			total += sink.Write([]byte{c})
			i++
			continue
		}

		i++ // consume '%'
		if i >= len(format) {
			return total, errors.New("mjson: trailing %% in format string")
		}
		if format[i] == '%' {
			total += sink.Write([]byte{'%'})
			i++
			continue
		}

		spec, next, err := parseConvSpec(format, i)
		if err != nil {
			return total, err
		}
		i = next

		n, err := renderConv(sink, spec, nextArg)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

type convSpec struct {
	flags     string
	width     int
	hasWidth  bool
	prec      int
	hasPrec   bool
	specifier byte
}

// parseConvSpec parses flags/width/precision/length-modifiers/specifier
// starting just past the '%', mirroring the field-by-field parse in
// original_source/elsa/printf.c's default-conversion branch. Length
// modifiers ('h', 'hh', 'l', 'll', 'j', 'z', 't', 'L', Windows 'I32'/
// 'I64') are accepted and discarded: they exist in C to select the
// va_arg width, but an Arg already carries a concrete Go type, so
// there is nothing left for them to disambiguate.
func parseConvSpec(format string, i int) (convSpec, int, error) {
	var sp convSpec
	for i < len(format) && strings.IndexByte("-+0 #", format[i]) >= 0 {
		sp.flags += string(format[i])
		i++
	}
	if i < len(format) && format[i] == '*' {
		sp.hasWidth, sp.width = true, -1
		i++
	} else {
		start := i
		for i < len(format) && format[i] >= '0' && format[i] <= '9' {
			i++
		}
		if i > start {
			sp.hasWidth = true
			sp.width, _ = strconv.Atoi(format[start:i])
		}
	}
	if i < len(format) && format[i] == '.' {
		i++
		sp.hasPrec = true
		if i < len(format) && format[i] == '*' {
			sp.prec = -1
			i++
		} else {
			start := i
			for i < len(format) && format[i] >= '0' && format[i] <= '9' {
				i++
			}
			if i > start {
				sp.prec, _ = strconv.Atoi(format[start:i])
			}
		}
	}
loop:
	for i < len(format) {
		switch {
		case format[i] == 'h' || format[i] == 'l' || format[i] == 'j' || format[i] == 'z' || format[i] == 't' || format[i] == 'L':
			i++
		case strings.HasPrefix(format[i:], "I64") || strings.HasPrefix(format[i:], "I32"):
			i += 3
		case format[i] == 'I':
			i++
		default:
			break loop
		}
	}
	if i >= len(format) {
		return sp, i, errors.New("mjson: truncated conversion in format string")
	}
	sp.specifier = format[i]
	i++
	return sp, i, nil
}

func asInt(a Arg) (int, bool) {
	switch v := a.any.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case uint64:
		return int(v), true
	case uint:
		return int(v), true
	}
	return 0, false
}

func renderConv(sink Sink, spec convSpec, nextArg func() (Arg, error)) (int, error) {
	// Resolve '*' width/precision by consuming Any(int) arguments first,
	// in the order C's va_arg would: width, then precision, then value.
	if spec.hasWidth && spec.width < 0 {
		a, err := nextArg()
		if err != nil {
			return 0, err
		}
		v, ok := asInt(a)
		if !ok {
			return 0, errors.New("mjson: '*' width requires an Any(int) arg")
		}
		spec.width = v
	}
	if spec.hasPrec && spec.prec < 0 {
		a, err := nextArg()
		if err != nil {
			return 0, err
		}
		v, ok := asInt(a)
		if !ok {
			return 0, errors.New("mjson: '*' precision requires an Any(int) arg")
		}
		spec.prec = v
	}

	switch spec.specifier {
	case 'M':
		a, err := nextArg()
		if err != nil {
			return 0, err
		}
		if a.kind != argCallback {
			return 0, errors.New("mjson: %M requires a Callback arg")
		}
		return a.cb(sink)
	case 'B':
		a, err := nextArg()
		if err != nil {
			return 0, err
		}
		if a.kind != argBool {
			return 0, errors.New("mjson: %B requires a Bool arg")
		}
		if a.b {
			return sink.Write([]byte("true")), nil
		}
		return sink.Write([]byte("false")), nil
	case 'H':
		a, err := nextArg()
		if err != nil {
			return 0, err
		}
		if a.kind != argHex {
			return 0, errors.New("mjson: %H requires a Hex arg")
		}
		out := encodeHex([]byte{'"'}, a.bytes)
		return sink.Write(append(out, '"')), nil
	case 'V':
		a, err := nextArg()
		if err != nil {
			return 0, err
		}
		if a.kind != argB64 {
			return 0, errors.New("mjson: %V requires a B64 arg")
		}
		out := encodeB64([]byte{'"'}, a.bytes)
		return sink.Write(append(out, '"')), nil
	case 'T':
		a, err := nextArg()
		if err != nil {
			return 0, err
		}
		if a.kind != argRawToken {
			return 0, errors.New("mjson: %T requires a RawToken arg")
		}
		return sink.Write(a.bytes), nil
	case 'Q':
		a, err := nextArg()
		if err != nil {
			return 0, err
		}
		var s string
		switch a.kind {
		case argNullableStr:
			if a.sp == nil {
				return sink.Write([]byte("null")), nil
			}
			s = *a.sp
		case argStr:
			s = a.s
		default:
			return 0, errors.New("mjson: %Q requires a Str/NullableStr arg")
		}
		if spec.hasPrec && spec.prec < len(s) {
			s = s[:spec.prec]
		}
		return sink.Write(quoteString(nil, s)), nil
	default:
		a, err := nextArg()
		if err != nil {
			return 0, err
		}
		if a.kind != argAny {
			return 0, fmt.Errorf("mjson: %%%c requires an Any arg", spec.specifier)
		}
		verb := buildFmtVerb(spec)
		return sink.Write([]byte(fmt.Sprintf(verb, a.any))), nil
	}
}

// buildFmtVerb translates a parsed conversion into the fmt verb that
// renders it, the direct analogue of original_source/elsa/printf.c's
// fallback to the host's vsnprintf for any specifier it does not
// special-case. %f/%g rounding follows Go's own strconv/fmt
// conventions (shortest round-trip), not C99 — there is no C99 host
// to match on a Go target, so this is documented rather than emulated.
func buildFmtVerb(spec convSpec) string {
	var b strings.Builder
	b.WriteByte('%')
	b.WriteString(spec.flags)
	if spec.hasWidth {
		b.WriteString(strconv.Itoa(spec.width))
	}
	if spec.hasPrec {
		b.WriteByte('.')
		b.WriteString(strconv.Itoa(spec.prec))
	}
	switch spec.specifier {
	case 'u':
		b.WriteByte('d')
	case 'i':
		b.WriteByte('d')
	default:
		b.WriteByte(spec.specifier)
	}
	return b.String()
}
