// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package splay

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestDefaultCursorEqualsEnd exercises the documented quirk that a
// zero-value Cursor compares equal to any container's End, because
// "no container" and "at sentinel" are the same equivalence class.
func TestDefaultCursorEqualsEnd(t *testing.T) {
	var zero Cursor[int, string]
	m := NewMap[int, string]()
	require.True(t, zero.Equal(m.End()))
	require.True(t, m.End().Equal(zero))

	m.Insert(1, "a")
	require.True(t, zero.Equal(m.End()))
}

// TestReadCursorFromCursor exercises the one-directional conversion
// from a mutable cursor to a read-only one.
func TestReadCursorFromCursor(t *testing.T) {
	m := NewMap[int, string]()
	m.Insert(1, "a")
	c := m.Find(1)
	rc := c.ReadOnly()
	require.Equal(t, 1, rc.Key())
	require.Equal(t, "a", rc.Value())
}

// TestForwardReverseOrdering checks that forward and reverse traversal
// visit every key in sorted order.
func TestForwardReverseOrdering(t *testing.T) {
	m := NewMap[int, int]()
	for _, k := range []int{5, 1, 4, 2, 3} {
		m.Insert(k, k)
	}

	var forward []int
	for c := m.Begin(); !c.Equal(m.End()); c = c.Next() {
		forward = append(forward, c.Key())
	}
	require.Equal(t, []int{1, 2, 3, 4, 5}, forward)

	var backward []int
	for c := m.End().Prev(); ; c = c.Prev() {
		backward = append(backward, c.Key())
		if c.Equal(m.Begin()) {
			break
		}
	}
	require.Equal(t, []int{5, 4, 3, 2, 1}, backward)
}

// TestCyclicStepping covers the cyclic successor/predecessor rule:
// stepping past the end and back reaches the extremes again.
func TestCyclicStepping(t *testing.T) {
	m := NewMap[int, int]()
	m.Insert(1, 1)
	m.Insert(2, 2)

	end := m.End()
	require.Equal(t, 1, end.Next().Key())
	require.Equal(t, 2, end.Prev().Key())
}

// TestEraseForeignCursorPanics covers the documented precondition
// violation of erasing with a cursor from another container.
func TestEraseForeignCursorPanics(t *testing.T) {
	a := NewMap[int, int]()
	a.Insert(1, 1)
	b := NewMap[int, int]()
	b.Insert(1, 1)

	require.Panics(t, func() { a.Erase(b.Find(1)) })
}

// TestDereferenceEndCursorPanics covers dereferencing an end cursor.
func TestDereferenceEndCursorPanics(t *testing.T) {
	m := NewMap[int, int]()
	require.Panics(t, func() { m.End().Key() })
	require.Panics(t, func() { m.End().Value() })
}

// TestScanBounds exercises the half-open-looking, actually-inclusive
// Scan range against a few edge windows.
func TestScanBounds(t *testing.T) {
	m := NewMap[int, int]()
	for i := 1; i <= 5; i++ {
		m.Insert(i, i*i)
	}

	var got []int
	for k := range m.Scan(2, 4) {
		got = append(got, k)
	}
	require.Equal(t, []int{2, 3, 4}, got)

	got = nil
	for k := range m.Scan(-10, 0) {
		got = append(got, k)
	}
	require.Nil(t, got)
}
