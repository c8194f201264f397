// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mjson is an embeddable JSON toolkit built around a single
// recursive-descent walker.
//
// Four capabilities share that one parser:
//
//   - Walk emits a typed path/value event for every token in a JSON text.
//   - Printf composes JSON output from a format string and a list of
//     typed arguments, handling quoting, escaping, and binary encodings.
//   - Scanf reads values out of a JSON text into typed targets, addressed
//     by path through the same format-string mini-language as Printf.
//   - SetPath and DeletePath rewrite a document in place: they replace,
//     insert, or delete the value at a path while copying the
//     surrounding text verbatim.
//
// The full document must already be in memory as a contiguous []byte;
// this package does not stream input, does not normalize Unicode, and
// does not parse numbers into a native numeric type while walking —
// a NUMBER token is always a raw source slice.
package mjson
