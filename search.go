// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package splay

// descend walks from the real root toward the matching key, never
// mutating the tree. It returns the sentinel if no node has that key.
func (t *tree[K, V]) descend(cmp func(K, K) int, key K) *node[K, V] {
	n := t.root()
	for n != t.sentinel {
		c := cmp(key, n.key)
		switch {
		case c == 0:
			return n
		case c < 0:
			n = n.left
		default:
			n = n.right
		}
	}
	return t.sentinel
}

// successor returns the node immediately after n in key order. The
// successor of the sentinel wraps around to the minimum node, so that
// stepping a past-the-end cursor backward and then forward returns to
// the end, matching bidirectional-iterator expectations.
func (t *tree[K, V]) successor(n *node[K, V]) *node[K, V] {
	if n == t.sentinel {
		return t.min()
	}
	if n.right != t.sentinel {
		return t.subtreeMin(n.right)
	}
	for n.parent != t.sentinel && n.parent.right == n {
		n = n.parent
	}
	return n.parent
}

// predecessor is the mirror image of successor: predecessor of the
// sentinel wraps around to the maximum node.
func (t *tree[K, V]) predecessor(n *node[K, V]) *node[K, V] {
	if n == t.sentinel {
		return t.max()
	}
	if n.left != t.sentinel {
		return t.subtreeMax(n.left)
	}
	for n.parent != t.sentinel && n.parent.left == n {
		n = n.parent
	}
	return n.parent
}

// lowerBound returns the first node whose key is not less than key,
// or the sentinel if none.
func (t *tree[K, V]) lowerBound(cmp func(K, K) int, key K) *node[K, V] {
	n := t.root()
	candidate := t.sentinel
	for n != t.sentinel {
		if cmp(n.key, key) >= 0 {
			candidate = n
			n = n.left
		} else {
			n = n.right
		}
	}
	return candidate
}

// upperBound returns the first node whose key is strictly greater
// than key, or the sentinel if none.
func (t *tree[K, V]) upperBound(cmp func(K, K) int, key K) *node[K, V] {
	n := t.root()
	candidate := t.sentinel
	for n != t.sentinel {
		if cmp(n.key, key) > 0 {
			candidate = n
			n = n.left
		} else {
			n = n.right
		}
	}
	return candidate
}

// maybeSplayFind consults the find policy exactly once and, if it
// says to splay, lifts n (when n is a real node) to the root before
// returning it. Lookup, lower-bound, and upper-bound all funnel
// through here.
func (t *tree[K, V]) maybeSplayFind(n *node[K, V]) *node[K, V] {
	splay := t.findPolicy.shouldSplay()
	if splay && n != t.sentinel {
		t.splay(n)
	}
	return n
}

func (t *tree[K, V]) find(cmp func(K, K) int, key K) *node[K, V] {
	return t.maybeSplayFind(t.descend(cmp, key))
}

func (t *tree[K, V]) lowerBoundNode(cmp func(K, K) int, key K) *node[K, V] {
	return t.maybeSplayFind(t.lowerBound(cmp, key))
}

func (t *tree[K, V]) upperBoundNode(cmp func(K, K) int, key K) *node[K, V] {
	return t.maybeSplayFind(t.upperBound(cmp, key))
}
