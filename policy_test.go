// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package splay

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPolicyFrequencies(t *testing.T) {
	cases := []struct {
		mode SplayMode
		want []bool
	}{
		{SplayAlways, []bool{true, true, true, true}},
		{SplayNever, []bool{false, false, false, false}},
		{SplayHalf, []bool{true, false, true, false}},
		{SplayThird, []bool{false, false, true, false, false, true}},
		{SplayFourth, []bool{false, false, false, true, false, false, false, true}},
	}
	for _, c := range cases {
		p := policyState{mode: c.mode}
		var got []bool
		for range c.want {
			got = append(got, p.shouldSplay())
		}
		require.Equal(t, c.want, got)
	}
}

// TestFindPolicyDoesNotSplayOnMiss checks that a failed lookup under
// SplayAlways, whose policy says to splay on every call, does not
// attempt to splay the sentinel.
func TestFindPolicyDoesNotSplayOnMiss(t *testing.T) {
	m := NewMap[int, int](WithFindPolicy[int, int](SplayAlways))
	m.Insert(1, 1)
	require.NotPanics(t, func() {
		for i := 0; i < 5; i++ {
			m.Find(999)
		}
	})
}

// TestInsertPolicySplaysNewNodeToRoot checks that SplayAlways on
// insert leaves the most recently inserted key at the root.
func TestInsertPolicySplaysNewNodeToRoot(t *testing.T) {
	m := NewMap[int, int](WithInsertPolicy[int, int](SplayAlways))
	for i := 0; i < 10; i++ {
		m.Insert(i, i)
	}
	root := m.tree.root()
	require.Equal(t, 9, root.key)
}

// TestFindPolicySplaysLookupToRoot checks that SplayAlways on find
// leaves the looked-up key at the root.
func TestFindPolicySplaysLookupToRoot(t *testing.T) {
	m := NewMap[int, int](WithFindPolicy[int, int](SplayAlways))
	for i := 0; i < 10; i++ {
		m.Insert(i, i)
	}
	m.Find(3)
	root := m.tree.root()
	require.Equal(t, 3, root.key)
}

// TestNeverSplayLeavesInsertionOrderShape verifies that SplayNever
// keeps the tree a simple unbalanced BST: inserting in increasing key
// order produces a right-leaning chain.
func TestNeverSplayLeavesInsertionOrderShape(t *testing.T) {
	m := NewMap[int, int](
		WithInsertPolicy[int, int](SplayNever),
		WithFindPolicy[int, int](SplayNever),
	)
	for i := 0; i < 5; i++ {
		m.Insert(i, i)
	}
	n := m.tree.root()
	require.Equal(t, 0, n.key)
	for i := 1; i < 5; i++ {
		n = n.right
		require.Equal(t, i, n.key)
	}
}
