// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mjson

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type walkEvent struct {
	path string
	kind Kind
	raw  string
}

func recordWalk(t *testing.T, src string) ([]walkEvent, int, error) {
	t.Helper()
	var events []walkEvent
	n, err := Walk([]byte(src), func(name string, isIndex bool, path string, tok Token) error {
		events = append(events, walkEvent{path, tok.Kind, string(tok.Raw([]byte(src)))})
		return nil
	})
	return events, n, err
}

func TestWalkScenario1(t *testing.T) {
	events, n, err := recordWalk(t, `{"a":[1,2,{"b":true}]}`)
	require.NoError(t, err)
	assert.Equal(t, len(`{"a":[1,2,{"b":true}]}`), n)

	want := []struct {
		path string
		kind Kind
	}{
		{"", KindObjectStart},
		{".a", KindArrayStart},
		{".a[0]", KindNumber},
		{".a[1]", KindNumber},
		{".a[2]", KindObjectStart},
		{".a[2].b", KindTrue},
		{".a[2]", KindObjectEnd},
		{".a", KindArrayEnd},
		{"", KindObjectEnd},
	}
	require.Len(t, events, len(want))
	for i, w := range want {
		assert.Equal(t, w.path, events[i].path, "event %d path", i)
		assert.Equal(t, w.kind, events[i].kind, "event %d kind", i)
	}
}

func TestWalkScenario6Incomplete(t *testing.T) {
	_, _, err := recordWalk(t, `{"a":1`)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIncomplete))
	assert.False(t, errors.Is(err, ErrInvalid))
}

func TestWalkScenario6Invalid(t *testing.T) {
	_, _, err := recordWalk(t, `{"a":@}`)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalid))
}

func TestWalkSliceFidelity(t *testing.T) {
	src := `{"a":"hello","b":3.5,"c":null,"d":false}`
	events, _, err := recordWalk(t, src)
	require.NoError(t, err)
	for _, e := range events {
		switch e.kind {
		case KindString:
			assert.Equal(t, `hello`, e.raw)
		case KindNumber:
			assert.Equal(t, "3.5", e.raw)
		case KindNull:
			assert.Equal(t, "null", e.raw)
		case KindFalse:
			assert.Equal(t, "false", e.raw)
		}
	}
}

func TestWalkDeterminism(t *testing.T) {
	src := `{"x":[1,2,3],"y":{"z":"w"}}`
	e1, n1, err1 := recordWalk(t, src)
	e2, n2, err2 := recordWalk(t, src)
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, n1, n2)
	assert.Equal(t, e1, e2)
}

func TestWalkAbortPropagatesVisitorError(t *testing.T) {
	sentinel := errors.New("stop here")
	_, err := Walk([]byte(`{"a":1,"b":2}`), func(name string, isIndex bool, path string, tok Token) error {
		if path == ".a" {
			return sentinel
		}
		return nil
	})
	assert.Same(t, sentinel, err)
}

func TestWalkBareIdentifierKey(t *testing.T) {
	events, _, err := recordWalk(t, `{foo: 1, bar: 2}`)
	require.NoError(t, err)
	var paths []string
	for _, e := range events {
		paths = append(paths, e.path)
	}
	assert.Contains(t, paths, ".foo")
	assert.Contains(t, paths, ".bar")
}

func TestWalkDepthGuard(t *testing.T) {
	src := make([]byte, 0, maxDepth*2+16)
	for i := 0; i < maxDepth+10; i++ {
		src = append(src, '[')
	}
	for i := 0; i < maxDepth+10; i++ {
		src = append(src, ']')
	}
	_, _, err := recordWalk(t, string(src))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalid))
}
