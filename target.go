// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mjson

// ScannerFunc is invoked for a %M directive with the full source
// buffer and the matched token, letting a caller recurse into Walk
// itself for nested extraction.
type ScannerFunc func(src []byte, tok Token) error

type targetKind int

const (
	targetBool targetKind = iota
	targetStr
	targetHex
	targetB64
	targetToken
	targetCallback
	targetAny
)

// Target is one extraction target for Scanf. As with Arg, Go's lack
// of va_list rules out a bare variadic of pointers, so targets are
// built through these named constructors.
type Target struct {
	kind    targetKind
	bp      *bool
	sp      *string
	wasNull *bool
	bytesp  *[]byte
	tokp    *Token
	fn      ScannerFunc
	any     any
}

// BoolTarget constructs a Target for %B.
func BoolTarget(p *bool) Target { return Target{kind: targetBool, bp: p} }

// StrTarget constructs a Target for %Q. If the matched value is the
// JSON null literal, *p is left as-is and, if wasNull is non-nil,
// *wasNull is set true; original_source/elsa/scanf.c instead leaves
// the destination pointer itself NULL and skips incrementing the
// conversion count, which Go's allocation-free string type has no
// direct equivalent for, so an explicit wasNull out-parameter is the
// named replacement.
func StrTarget(p *string, wasNull *bool) Target { return Target{kind: targetStr, sp: p, wasNull: wasNull} }

// HexTarget constructs a Target for %H.
func HexTarget(p *[]byte) Target { return Target{kind: targetHex, bytesp: p} }

// B64Target constructs a Target for %V.
func B64Target(p *[]byte) Target { return Target{kind: targetB64, bytesp: p} }

// TokenTarget constructs a Target for %T: the matched token is copied
// out without interpretation.
func TokenTarget(p *Token) Target { return Target{kind: targetToken, tokp: p} }

// ScanCallback constructs a Target for %M.
func ScanCallback(fn ScannerFunc) Target { return Target{kind: targetCallback, fn: fn} }

// AnyTarget constructs a Target for a default conversion (%d, %f, %s,
// and so on); p must be a pointer and is passed to fmt.Sscanf. A
// precision in the directive (%.2f, %.*s) is not supported: it is
// passed on in the fmt verb, fmt.Sscanf rejects it, and Scanf returns
// that error.
// Named AnyTarget rather than Any (Printf's default-conversion
// constructor) only because Go has no function overloading; the two
// play the same role in their respective directions.
func AnyTarget(p any) Target { return Target{kind: targetAny, any: p} }
