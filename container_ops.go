// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package splay

import (
	"reflect"
	"unsafe"

	"github.com/pkg/errors"
)

// get is the engine behind Map.Get / MapFunc.Get.
func (t *tree[K, V]) get(cmp func(K, K) int, key K) (V, bool) {
	n := t.find(cmp, key)
	if n == t.sentinel {
		var zero V
		return zero, false
	}
	return n.val, true
}

func (t *tree[K, V]) count(cmp func(K, K) int, key K) int {
	if t.find(cmp, key) == t.sentinel {
		return 0
	}
	return 1
}

// at is the engine behind Map.At / MapFunc.At; it surfaces a missing
// key as a recoverable error rather than a zero value.
func (t *tree[K, V]) at(cmp func(K, K) int, key K) (V, error) {
	n := t.find(cmp, key)
	if n == t.sentinel {
		var zero V
		return zero, errors.Wrapf(ErrKeyNotFound, "splay: at(%v)", key)
	}
	return n.val, nil
}

// valueOr is the engine behind Map.Value / MapFunc.Value: a lookup
// that never inserts and falls back to def.
func (t *tree[K, V]) valueOr(cmp func(K, K) int, key K, def V) V {
	n := t.find(cmp, key)
	if n == t.sentinel {
		return def
	}
	return n.val
}

// slot is the engine behind Map.Slot / MapFunc.Slot, the Go rendering
// of the C++ container's index-access operator: it returns a pointer
// to the value for key, inserting a zero-valued entry first if
// necessary, so that *m.Slot(k) = v behaves like m[k] = v.
func (t *tree[K, V]) slot(cmp func(K, K) int, key K) *V {
	var zero V
	n, _ := t.insert(cmp, key, zero)
	return &n.val
}

func (t *tree[K, V]) first() (k K, v V, ok bool) {
	n := t.min()
	if n == t.sentinel {
		return
	}
	return n.key, n.val, true
}

func (t *tree[K, V]) last() (k K, v V, ok bool) {
	n := t.max()
	if n == t.sentinel {
		return
	}
	return n.key, n.val, true
}

// swapWith exchanges the entire tree state (sentinel, size, policy)
// between t and o in O(1).
func (t *tree[K, V]) swapWith(o *tree[K, V]) {
	t.ensure()
	o.ensure()
	*t, *o = *o, *t
}

// cloneTree returns a new, independent tree holding the same entries,
// comparator-independent policy, and size as t. Nodes are re-appended
// in key order rather than copied node-for-node, so the clone shares
// no node, link, or sentinel with t.
func cloneTree[K, V any](t *tree[K, V]) tree[K, V] {
	var dst tree[K, V]
	dst.ensure()
	dst.insPolicy = t.insPolicy
	dst.findPolicy = t.findPolicy
	hint := dst.sentinel
	for n := t.min(); n != t.sentinel; n = t.successor(n) {
		nn := dst.newNode(n.key, n.val)
		dst.attachNew(hint, nn, false)
		dst.size++
		hint = nn
	}
	return dst
}

// assignFrom clears t and re-inserts every entry of o, in key order,
// under cmp — the "clear then re-insert" rendering of copy-assignment.
// A self-assignment (t == o) is a no-op.
func assignFrom[K, V any](t, o *tree[K, V], cmp func(K, K) int) {
	if t == o {
		return
	}
	t.clear()
	for n := o.min(); n != o.sentinel; n = o.successor(n) {
		t.insert(cmp, n.key, n.val)
	}
}

// compareAll lexicographically compares the (key, value) sequences of
// t and o, ordering by key via cmp and breaking key ties by deep
// value equality. reflect.DeepEqual is used here, rather than a
// constrained comparable type parameter, because nothing elsewhere in
// this module needs V to be comparable and adding that constraint
// just for ordered comparison would infect every other operation.
func compareAll[K, V any](t, o *tree[K, V], cmp func(K, K) int) int {
	a, b := t.min(), o.min()
	for a != t.sentinel && b != o.sentinel {
		if c := cmp(a.key, b.key); c != 0 {
			return c
		}
		if !reflect.DeepEqual(a.val, b.val) {
			// Keys agree; without an ordering on V we can only say "different."
			return -1
		}
		a = t.successor(a)
		b = o.successor(b)
	}
	switch {
	case a == t.sentinel && b == o.sentinel:
		return 0
	case a == t.sentinel:
		return -1
	default:
		return 1
	}
}

func equalAll[K, V any](t, o *tree[K, V], cmp func(K, K) int) bool {
	if t.size != o.size {
		return false
	}
	a, b := t.min(), o.min()
	for a != t.sentinel {
		if cmp(a.key, b.key) != 0 || !reflect.DeepEqual(a.val, b.val) {
			return false
		}
		a = t.successor(a)
		b = o.successor(b)
	}
	return true
}

// memoryConsumptionEmpty, memoryConsumptionItem, and memoryConsumption
// report constant-time capacity estimates, useful for a caller that
// wants to pre-size a deployment around expected map occupancy.

func memoryConsumptionEmpty[K, V any]() uintptr {
	var t tree[K, V]
	return unsafe.Sizeof(t)
}

func memoryConsumptionItem[K, V any]() uintptr {
	var n node[K, V]
	return unsafe.Sizeof(n)
}

func (t *tree[K, V]) memoryConsumption(extraPerItem uintptr) uintptr {
	return memoryConsumptionEmpty[K, V]() + uintptr(t.size)*(memoryConsumptionItem[K, V]()+extraPerItem)
}
