// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package splay

// A node is a single entry in the tree. Its three links double as the
// sentinel cell of the tree that owns it: every child link that would
// otherwise be nil instead names that tree's sentinel, and the
// sentinel's own parent/left/right links name the real root, the
// minimum node, and the maximum node respectively. See tree.sentinel.
type node[K, V any] struct {
	parent, left, right *node[K, V]
	key                 K
	val                 V
}

// A tree is the shared splay-tree engine: rotation primitives, the
// sentinel-root bookkeeping, and the splay operation. It knows nothing
// about how keys compare; [Map] and [MapFunc] supply that via an
// explicit comparator argument to the handful of engine methods that
// need it (see search.go and mutate.go).
type tree[K, V any] struct {
	sentinel   *node[K, V]
	size       int
	insPolicy  policyState
	findPolicy policyState
}

// ensure lazily brings a zero-value tree to a usable state. It is
// called at the top of every exported Map/MapFunc method that reads
// the sentinel or the policy state, so that the
// zero value of a Map is an empty Map ready to use, matching the
// container's standard-map contract.
func (t *tree[K, V]) ensure() {
	if t.sentinel == nil {
		s := &node[K, V]{}
		s.parent, s.left, s.right = s, s, s
		t.sentinel = s
		t.insPolicy.mode = SplayFourth
		t.findPolicy.mode = SplayThird
	}
}

func (t *tree[K, V]) isEmpty() bool { return t.size == 0 }

// root returns the real root of the tree, or the sentinel if empty.
func (t *tree[K, V]) root() *node[K, V] { return t.sentinel.parent }

func (t *tree[K, V]) min() *node[K, V] { return t.sentinel.left }
func (t *tree[K, V]) max() *node[K, V] { return t.sentinel.right }

// setRoot makes n the real root of the tree.
func (t *tree[K, V]) setRoot(n *node[K, V]) {
	t.sentinel.parent = n
	if n != t.sentinel {
		n.parent = t.sentinel
	}
}

func (t *tree[K, V]) setLeft(n, c *node[K, V]) {
	n.left = c
	if c != t.sentinel {
		c.parent = n
	}
}

func (t *tree[K, V]) setRight(n, c *node[K, V]) {
	n.right = c
	if c != t.sentinel {
		c.parent = n
	}
}

// replaceChild rewrites whichever of p's slots held old so that it
// holds n instead, including the case where p is the sentinel (old
// was the real root).
func (t *tree[K, V]) replaceChild(p, old, n *node[K, V]) {
	switch {
	case p == t.sentinel:
		t.setRoot(n)
	case p.left == old:
		t.setLeft(p, n)
	default:
		t.setRight(p, n)
	}
}

func (t *tree[K, V]) newNode(key K, val V) *node[K, V] {
	n := &node[K, V]{key: key, val: val}
	n.parent, n.left, n.right = t.sentinel, t.sentinel, t.sentinel
	return n
}

// rotateRight rotates n's left child up: n's left child L becomes n's
// parent, L's former right child becomes n's left child, and whoever
// parented n now parents L. n must have a non-sentinel left child.
func (t *tree[K, V]) rotateRight(n *node[K, V]) {
	l := n.left
	p := n.parent
	t.setLeft(n, l.right)
	t.setRight(l, n)
	t.replaceChild(p, n, l)
}

// rotateLeft is the mirror image of rotateRight.
func (t *tree[K, V]) rotateLeft(n *node[K, V]) {
	r := n.right
	p := n.parent
	t.setRight(n, r.left)
	t.setLeft(r, n)
	t.replaceChild(p, n, r)
}

func (t *tree[K, V]) subtreeMin(n *node[K, V]) *node[K, V] {
	for n.left != t.sentinel {
		n = n.left
	}
	return n
}

func (t *tree[K, V]) subtreeMax(n *node[K, V]) *node[K, V] {
	for n.right != t.sentinel {
		n = n.right
	}
	return n
}

// attachNew links a freshly allocated leaf nn under parent (on the
// left if left is true, else the right), or as the sole root if
// parent is the sentinel, and fixes up the min/max shortcut pointers
// if nn is now an extremum.
func (t *tree[K, V]) attachNew(parent *node[K, V], nn *node[K, V], left bool) {
	if parent == t.sentinel {
		t.setRoot(nn)
		t.sentinel.left = nn
		t.sentinel.right = nn
		return
	}
	if left {
		t.setLeft(parent, nn)
		if parent == t.sentinel.left {
			t.sentinel.left = nn
		}
	} else {
		t.setRight(parent, nn)
		if parent == t.sentinel.right {
			t.sentinel.right = nn
		}
	}
}

// Len returns the number of entries in the map.
func (t *tree[K, V]) Len() int { return t.size }
