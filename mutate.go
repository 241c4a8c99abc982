// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package splay

// insert finds or creates the entry for key. On a collision it applies
// the find policy (a collision is a lookup that happened to be
// triggered by an insert call) and returns the existing node with
// inserted=false; on success it applies the insert policy and returns
// the new node with inserted=true.
func (t *tree[K, V]) insert(cmp func(K, K) int, key K, val V) (n *node[K, V], inserted bool) {
	cur := t.root()
	parent := t.sentinel
	left := false
	for cur != t.sentinel {
		parent = cur
		c := cmp(key, cur.key)
		switch {
		case c == 0:
			if t.findPolicy.shouldSplay() {
				t.splay(cur)
			}
			return cur, false
		case c < 0:
			cur = cur.left
			left = true
		default:
			cur = cur.right
			left = false
		}
	}
	nn := t.newNode(key, val)
	t.attachNew(parent, nn, left)
	t.size++
	if t.insPolicy.shouldSplay() {
		t.splay(nn)
	}
	return nn, true
}

// insertOrAssign behaves like insert, but overwrites the value of an
// existing entry instead of leaving it untouched.
func (t *tree[K, V]) insertOrAssign(cmp func(K, K) int, key K, val V) (n *node[K, V], inserted bool) {
	n, inserted = t.insert(cmp, key, val)
	if !inserted {
		n.val = val
	}
	return n, inserted
}

// tryInsert behaves like insert, but only calls makeVal when the
// insertion will actually happen, so that callers can avoid
// constructing a value that would just be discarded.
func (t *tree[K, V]) tryInsert(cmp func(K, K) int, key K, makeVal func() V) (n *node[K, V], inserted bool) {
	cur := t.root()
	parent := t.sentinel
	left := false
	for cur != t.sentinel {
		parent = cur
		c := cmp(key, cur.key)
		switch {
		case c == 0:
			if t.findPolicy.shouldSplay() {
				t.splay(cur)
			}
			return cur, false
		case c < 0:
			cur = cur.left
			left = true
		default:
			cur = cur.right
			left = false
		}
	}
	nn := t.newNode(key, makeVal())
	t.attachNew(parent, nn, left)
	t.size++
	if t.insPolicy.shouldSplay() {
		t.splay(nn)
	}
	return nn, true
}

// emplace constructs a value unconditionally and only then checks for
// a collision, discarding the freshly built node if one is found.
// This avoids a second key lookup at the cost of a rare wasted
// construction.
func (t *tree[K, V]) emplace(cmp func(K, K) int, key K, makeVal func() V) (n *node[K, V], inserted bool) {
	val := makeVal()
	cur := t.root()
	parent := t.sentinel
	left := false
	for cur != t.sentinel {
		parent = cur
		c := cmp(key, cur.key)
		switch {
		case c == 0:
			if t.findPolicy.shouldSplay() {
				t.splay(cur)
			}
			return cur, false
		case c < 0:
			cur = cur.left
			left = true
		default:
			cur = cur.right
			left = false
		}
	}
	nn := t.newNode(key, val)
	t.attachNew(parent, nn, left)
	t.size++
	if t.insPolicy.shouldSplay() {
		t.splay(nn)
	}
	return nn, true
}

// validHint reports whether hint is a valid insertion point for key,
// i.e. predecessor(hint).key < key < hint.key, honoring the sentinel's
// cyclic boundary rules for hint == end().
func (t *tree[K, V]) validHint(cmp func(K, K) int, hint *node[K, V], key K) bool {
	if hint != t.sentinel && cmp(key, hint.key) >= 0 {
		return false
	}
	pred := t.predecessor(hint)
	if pred != t.sentinel && cmp(pred.key, key) >= 0 {
		return false
	}
	return true
}

// attachAtHint links freshly allocated leaf nn at the insertion point
// identified by a hint already confirmed valid by validHint, fixes up
// the min/max shortcuts, bumps size, and applies the insert policy.
func (t *tree[K, V]) attachAtHint(hint, nn *node[K, V]) {
	switch {
	case hint != t.sentinel && hint.left == t.sentinel:
		t.setLeft(hint, nn)
		if hint == t.sentinel.left {
			t.sentinel.left = nn
		}
	default:
		pred := t.predecessor(hint)
		if pred == t.sentinel {
			// Empty tree: hint and its predecessor are both the sentinel.
			t.setRoot(nn)
			t.sentinel.left = nn
			t.sentinel.right = nn
		} else {
			t.setRight(pred, nn)
			if pred == t.sentinel.right {
				t.sentinel.right = nn
			}
		}
	}
	t.size++
	if t.insPolicy.shouldSplay() {
		t.splay(nn)
	}
}

// insertWithHint attaches key/val using hint in O(1) if hint is a
// valid insertion point; otherwise it falls back to the full descent
// in insert.
func (t *tree[K, V]) insertWithHint(cmp func(K, K) int, hint *node[K, V], key K, val V) (n *node[K, V], inserted bool) {
	if !t.validHint(cmp, hint, key) {
		return t.insert(cmp, key, val)
	}
	nn := t.newNode(key, val)
	t.attachAtHint(hint, nn)
	return nn, true
}

// emplaceWithHint is to emplace what insertWithHint is to insert: it
// constructs via makeVal and attaches at hint in O(1) when hint is a
// valid insertion point, falling back to the full-descent emplace
// (which constructs unconditionally, even on the fallback's eventual
// collision) otherwise.
func (t *tree[K, V]) emplaceWithHint(cmp func(K, K) int, hint *node[K, V], key K, makeVal func() V) (n *node[K, V], inserted bool) {
	if !t.validHint(cmp, hint, key) {
		return t.emplace(cmp, key, makeVal)
	}
	nn := t.newNode(key, makeVal())
	t.attachAtHint(hint, nn)
	return nn, true
}

// eraseNode removes x from the tree and returns its successor. The
// successor and predecessor are captured before x moves, x is splayed
// to the root, and then removed according to how many children it has.
func (t *tree[K, V]) eraseNode(x *node[K, V]) *node[K, V] {
	succ := t.successor(x)
	pred := t.predecessor(x)
	wasMin := x == t.sentinel.left
	wasMax := x == t.sentinel.right

	t.splay(x)

	switch {
	case x.left == t.sentinel && x.right == t.sentinel:
		t.sentinel.parent = t.sentinel
	case x.left == t.sentinel:
		t.setRoot(x.right)
	case x.right == t.sentinel:
		t.setRoot(x.left)
	default:
		s := succ // successor(x) is the leftmost node of x's right subtree; it has no left child.
		if s.parent.left == s {
			t.setLeft(s.parent, s.right)
		} else {
			t.setRight(s.parent, s.right)
		}
		t.setLeft(s, x.left)
		t.setRight(s, x.right)
		t.setRoot(s)
	}

	if wasMin {
		t.sentinel.left = succ
	}
	if wasMax {
		t.sentinel.right = pred
	}
	t.size--
	x.parent, x.left, x.right = nil, nil, nil
	return succ
}

func (t *tree[K, V]) eraseKey(cmp func(K, K) int, key K) int {
	n := t.descend(cmp, key)
	if n == t.sentinel {
		return 0
	}
	t.eraseNode(n)
	return 1
}

// eraseRange removes [first, last) by repeated erase-by-position,
// reusing the returned successor as the next node to remove.
func (t *tree[K, V]) eraseRange(first, last *node[K, V]) *node[K, V] {
	n := first
	for n != last {
		n = t.eraseNode(n)
	}
	return n
}

// clear empties the tree in O(n) time and O(1) extra stack depth. Each
// round strips the left spine off whatever currently sits at the root
// by right-rotating it there, which leaves the root holding the
// minimum of whatever remains; that node is then detached and
// destroyed before the next round re-reads the root. Re-reading the
// root on every round (rather than only descending into cur.right) is
// what makes this visit every node: a left-spine node promoted above
// the original root by rotation would otherwise never be seen again.
// This avoids the stack overflow a naive recursive free risks on the
// degenerate, deep trees splaying regularly produces.
func (t *tree[K, V]) clear() {
	log.Debugf("splay: clearing %d entries", t.size)
	for root := t.root(); root != t.sentinel; root = t.root() {
		for root.left != t.sentinel {
			t.rotateRight(root)
			root = t.root()
		}
		t.setRoot(root.right)
		root.parent, root.left, root.right = nil, nil, nil
	}
	t.sentinel.left = t.sentinel
	t.sentinel.right = t.sentinel
	t.size = 0
}
