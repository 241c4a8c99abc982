// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package splay

import "iter"

// A Cursor is a bidirectional, mutable reference to one entry of a
// [Map] or [MapFunc]. The zero Cursor and any Cursor positioned past
// the end of its map compare equal to every map's End cursor, since
// both are treated as members of the same sentinel-equivalence class.
type Cursor[K, V any] struct {
	t *tree[K, V]
	n *node[K, V]
}

// A ReadCursor is the read-only counterpart of [Cursor]. A ReadCursor
// is constructible from a Cursor of the same map; the reverse
// conversion does not exist.
type ReadCursor[K, V any] struct {
	t *tree[K, V]
	n *node[K, V]
}

func (c Cursor[K, V]) isEnd() bool {
	return c.n == nil || c.t == nil || c.n == c.t.sentinel
}

func (c ReadCursor[K, V]) isEnd() bool {
	return c.n == nil || c.t == nil || c.n == c.t.sentinel
}

// Key returns the entry's key. It panics if c is the end cursor.
func (c Cursor[K, V]) Key() K {
	if c.isEnd() {
		panic(errEndCursor)
	}
	return c.n.key
}

// Value returns the entry's value. It panics if c is the end cursor.
func (c Cursor[K, V]) Value() V {
	if c.isEnd() {
		panic(errEndCursor)
	}
	return c.n.val
}

// SetValue overwrites the entry's value in place. It panics if c is
// the end cursor.
func (c Cursor[K, V]) SetValue(v V) {
	if c.isEnd() {
		panic(errEndCursor)
	}
	c.n.val = v
}

// Entry returns the cursor's key and value together.
func (c Cursor[K, V]) Entry() Entry[K, V] {
	return Entry[K, V]{c.Key(), c.Value()}
}

// Next returns a cursor to the entry immediately after c in key
// order, or the end cursor if c is the last entry. Stepping forward
// from the end cursor wraps around to the first entry.
func (c Cursor[K, V]) Next() Cursor[K, V] {
	return Cursor[K, V]{c.t, c.t.successor(c.n)}
}

// Prev returns a cursor to the entry immediately before c in key
// order. Stepping back from the end cursor yields the last entry.
func (c Cursor[K, V]) Prev() Cursor[K, V] {
	return Cursor[K, V]{c.t, c.t.predecessor(c.n)}
}

// Equal reports whether c and o refer to the same entry, or are both
// end cursors (possibly of different, or no, containers).
func (c Cursor[K, V]) Equal(o Cursor[K, V]) bool {
	if c.isEnd() && o.isEnd() {
		return true
	}
	return c.t == o.t && c.n == o.n
}

// ReadOnly returns a [ReadCursor] over the same entry as c.
func (c Cursor[K, V]) ReadOnly() ReadCursor[K, V] {
	return ReadCursor[K, V]{c.t, c.n}
}

func (c ReadCursor[K, V]) Key() K {
	if c.isEnd() {
		panic(errEndCursor)
	}
	return c.n.key
}

func (c ReadCursor[K, V]) Value() V {
	if c.isEnd() {
		panic(errEndCursor)
	}
	return c.n.val
}

func (c ReadCursor[K, V]) Entry() Entry[K, V] {
	return Entry[K, V]{c.Key(), c.Value()}
}

func (c ReadCursor[K, V]) Next() ReadCursor[K, V] {
	return ReadCursor[K, V]{c.t, c.t.successor(c.n)}
}

func (c ReadCursor[K, V]) Prev() ReadCursor[K, V] {
	return ReadCursor[K, V]{c.t, c.t.predecessor(c.n)}
}

func (c ReadCursor[K, V]) Equal(o ReadCursor[K, V]) bool {
	if c.isEnd() && o.isEnd() {
		return true
	}
	return c.t == o.t && c.n == o.n
}

// all walks the whole tree from its minimum, in key order. Unlike
// find/lower-bound/upper-bound, stepping a cursor never consults the
// splay policy; All and Scan never reshape the tree they walk.
func (t *tree[K, V]) all() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for n := t.min(); n != t.sentinel; n = t.successor(n) {
			if !yield(n.key, n.val) {
				return
			}
		}
	}
}

// scan walks the entries with key k satisfying lo <= k <= hi, in key order.
func (t *tree[K, V]) scan(cmp func(K, K) int, lo, hi K) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		n := t.lowerBound(cmp, lo)
		for n != t.sentinel && cmp(n.key, hi) <= 0 {
			if !yield(n.key, n.val) {
				return
			}
			n = t.successor(n)
		}
	}
}
