// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package splay

// splay lifts x to become the real root of the tree, using the usual
// top-down zig / zig-zig / zig-zag schedule. It runs until x's parent
// is the sentinel, i.e. until x is the root.
func (t *tree[K, V]) splay(x *node[K, V]) {
	log.Tracef("splay: lifting node with key %v to root", x.key)
	for x.parent != t.sentinel {
		p := x.parent
		gp := p.parent
		if gp == t.sentinel {
			// zig: single rotation puts x at the root.
			if p.left == x {
				t.rotateRight(p)
			} else {
				t.rotateLeft(p)
			}
			return
		}

		pIsLeft := gp.left == p
		xIsLeft := p.left == x
		switch {
		case pIsLeft == xIsLeft:
			// zig-zig: rotate the grandparent, then the parent, same direction.
			if xIsLeft {
				t.rotateRight(gp)
				t.rotateRight(p)
			} else {
				t.rotateLeft(gp)
				t.rotateLeft(p)
			}
		default:
			// zig-zag: rotate the parent, then the grandparent, opposite directions.
			if xIsLeft {
				t.rotateRight(p)
				t.rotateLeft(gp)
			} else {
				t.rotateLeft(p)
				t.rotateRight(gp)
			}
		}
	}
}
