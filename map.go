// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package splay

import (
	"cmp"
	"iter"
)

// Option configures the splay policy of a [Map] or [MapFunc] at
// construction time. There is no supported way to change policy after
// construction.
type Option[K, V any] func(*tree[K, V])

// WithInsertPolicy overrides the default insert-time splay mode
// (SplayFourth).
func WithInsertPolicy[K, V any](mode SplayMode) Option[K, V] {
	return func(t *tree[K, V]) { t.insPolicy.mode = mode }
}

// WithFindPolicy overrides the default find-time splay mode
// (SplayThird).
func WithFindPolicy[K, V any](mode SplayMode) Option[K, V] {
	return func(t *tree[K, V]) { t.findPolicy.mode = mode }
}

// A Map is a map[K]V ordered according to K's standard Go ordering
// and kept shallow for its hot keys by an internal splay tree.
// The zero value of a Map is an empty Map ready to use.
type Map[K cmp.Ordered, V any] struct {
	tree[K, V]
	cmp func(K, K) int
}

// NewMap returns an empty Map configured by opts.
func NewMap[K cmp.Ordered, V any](opts ...Option[K, V]) *Map[K, V] {
	m := &Map[K, V]{cmp: cmp.Compare[K]}
	m.tree.ensure()
	for _, o := range opts {
		o(&m.tree)
	}
	return m
}

// NewMapFromSeq builds a Map from seq, inserting its entries in
// iteration order; for a duplicate key, the first occurrence wins,
// matching Insert's collision rule.
func NewMapFromSeq[K cmp.Ordered, V any](seq iter.Seq2[K, V], opts ...Option[K, V]) *Map[K, V] {
	m := NewMap[K, V](opts...)
	for k, v := range seq {
		m.tree.insert(m.cmp, k, v)
	}
	return m
}

func (m *Map[K, V]) ensure() {
	m.tree.ensure()
	if m.cmp == nil {
		m.cmp = cmp.Compare[K]
	}
}

// MapFunc is a map[K]V ordered by an explicit comparator, for key
// types with no natural Go ordering.
type MapFunc[K, V any] struct {
	tree[K, V]
	cmp func(K, K) int
}

// NewMapFunc returns an empty MapFunc ordered by cmp.
func NewMapFunc[K, V any](cmp func(K, K) int, opts ...Option[K, V]) *MapFunc[K, V] {
	m := &MapFunc[K, V]{cmp: cmp}
	m.tree.ensure()
	for _, o := range opts {
		o(&m.tree)
	}
	return m
}

// NewMapFuncFromSeq builds a MapFunc ordered by cmp from seq, inserting
// its entries in iteration order; for a duplicate key, the first
// occurrence wins, matching Insert's collision rule.
func NewMapFuncFromSeq[K, V any](cmp func(K, K) int, seq iter.Seq2[K, V], opts ...Option[K, V]) *MapFunc[K, V] {
	m := NewMapFunc[K, V](cmp, opts...)
	for k, v := range seq {
		m.tree.insert(m.cmp, k, v)
	}
	return m
}

func (m *MapFunc[K, V]) ensure() {
	m.tree.ensure()
}

// ---- Map ----

// Len returns the number of entries in m.
func (m *Map[K, V]) Len() int { return m.tree.size }

// Size is an alias for Len, for callers coming from a container
// library that uses that name instead.
func (m *Map[K, V]) Size() int { return m.tree.size }

// Empty reports whether m has no entries.
func (m *Map[K, V]) Empty() bool { m.ensure(); return m.tree.isEmpty() }

// MaxSize returns the theoretical maximum size of the map. Go has no
// fixed difference_type ceiling, so this returns the maximum int.
func (m *Map[K, V]) MaxSize() int { return maxInt }

// Get returns the value stored for key, and whether it was present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	m.ensure()
	return m.tree.get(m.cmp, key)
}

// At returns the value stored for key, or [ErrKeyNotFound] wrapped
// with the key, if it is absent.
func (m *Map[K, V]) At(key K) (V, error) {
	m.ensure()
	return m.tree.at(m.cmp, key)
}

// Value returns the value stored for key, or def if key is absent.
// Unlike Slot, it never inserts.
func (m *Map[K, V]) Value(key K, def V) V {
	m.ensure()
	return m.tree.valueOr(m.cmp, key, def)
}

// Slot returns a pointer to the value slot for key, inserting a
// zero-valued entry first if key is absent. It is the Go rendering of
// the standard index-access operator: *m.Slot(k) = v.
func (m *Map[K, V]) Slot(key K) *V {
	m.ensure()
	return m.tree.slot(m.cmp, key)
}

// Count returns 1 if key is present, 0 otherwise.
func (m *Map[K, V]) Count(key K) int {
	m.ensure()
	return m.tree.count(m.cmp, key)
}

// First returns the minimum entry, if any.
func (m *Map[K, V]) First() (K, V, bool) { m.ensure(); return m.tree.first() }

// Last returns the maximum entry, if any.
func (m *Map[K, V]) Last() (K, V, bool) { m.ensure(); return m.tree.last() }

// Insert inserts key/val if key is absent, and reports whether it did.
func (m *Map[K, V]) Insert(key K, val V) (Cursor[K, V], bool) {
	m.ensure()
	n, ok := m.tree.insert(m.cmp, key, val)
	return Cursor[K, V]{&m.tree, n}, ok
}

// InsertHint is like Insert, but uses hint as an O(1) shortcut for
// the insertion point when hint is valid; it is validated and falls
// back to the full descent automatically when it is not.
func (m *Map[K, V]) InsertHint(hint Cursor[K, V], key K, val V) Cursor[K, V] {
	m.ensure()
	n, _ := m.tree.insertWithHint(m.cmp, m.hintNode(hint), key, val)
	return Cursor[K, V]{&m.tree, n}
}

func (m *Map[K, V]) hintNode(hint Cursor[K, V]) *node[K, V] {
	if hint.isEnd() {
		return m.tree.sentinel
	}
	if hint.t != &m.tree {
		panic(errForeignCursor)
	}
	return hint.n
}

// InsertOrAssign inserts key/val, overwriting any existing value for
// key.
func (m *Map[K, V]) InsertOrAssign(key K, val V) (Cursor[K, V], bool) {
	m.ensure()
	n, ok := m.tree.insertOrAssign(m.cmp, key, val)
	return Cursor[K, V]{&m.tree, n}, ok
}

// TryInsert inserts the value produced by makeVal for key only if
// key is absent; makeVal is never called otherwise.
func (m *Map[K, V]) TryInsert(key K, makeVal func() V) (Cursor[K, V], bool) {
	m.ensure()
	n, ok := m.tree.tryInsert(m.cmp, key, makeVal)
	return Cursor[K, V]{&m.tree, n}, ok
}

// InsertAll inserts every (key, value) pair produced by seq that is
// not already present, in iteration order. It is the range-insert
// counterpart of Insert.
func (m *Map[K, V]) InsertAll(seq iter.Seq2[K, V]) {
	m.ensure()
	for k, v := range seq {
		m.tree.insert(m.cmp, k, v)
	}
}

// Emplace constructs a value via makeVal and inserts it for key. If
// key is already present, the freshly constructed value is discarded.
func (m *Map[K, V]) Emplace(key K, makeVal func() V) (Cursor[K, V], bool) {
	m.ensure()
	n, ok := m.tree.emplace(m.cmp, key, makeVal)
	return Cursor[K, V]{&m.tree, n}, ok
}

// EmplaceHint is like Emplace, but uses hint as an O(1) shortcut for
// the insertion point when hint is valid; it is validated and falls
// back to the full-descent Emplace automatically when it is not.
func (m *Map[K, V]) EmplaceHint(hint Cursor[K, V], key K, makeVal func() V) (Cursor[K, V], bool) {
	m.ensure()
	n, ok := m.tree.emplaceWithHint(m.cmp, m.hintNode(hint), key, makeVal)
	return Cursor[K, V]{&m.tree, n}, ok
}

// Find returns a cursor to key's entry, or the end cursor if absent.
func (m *Map[K, V]) Find(key K) Cursor[K, V] {
	m.ensure()
	return Cursor[K, V]{&m.tree, m.tree.find(m.cmp, key)}
}

// LowerBound returns a cursor to the first entry with key k such that
// k is not less than key.
func (m *Map[K, V]) LowerBound(key K) Cursor[K, V] {
	m.ensure()
	return Cursor[K, V]{&m.tree, m.tree.lowerBoundNode(m.cmp, key)}
}

// UpperBound returns a cursor to the first entry with key strictly
// greater than key.
func (m *Map[K, V]) UpperBound(key K) Cursor[K, V] {
	m.ensure()
	return Cursor[K, V]{&m.tree, m.tree.upperBoundNode(m.cmp, key)}
}

// EqualRange returns (LowerBound(key), UpperBound(key)).
func (m *Map[K, V]) EqualRange(key K) (Cursor[K, V], Cursor[K, V]) {
	m.ensure()
	lo := m.tree.lowerBoundNode(m.cmp, key)
	hi := m.tree.upperBoundNode(m.cmp, key)
	return Cursor[K, V]{&m.tree, lo}, Cursor[K, V]{&m.tree, hi}
}

// Erase removes the entry at pos and returns a cursor to its
// successor. It panics if pos is the end cursor or belongs to a
// different map.
func (m *Map[K, V]) Erase(pos Cursor[K, V]) Cursor[K, V] {
	m.ensure()
	if pos.t != &m.tree {
		panic(errForeignCursor)
	}
	if pos.isEnd() {
		panic(errEndCursor)
	}
	return Cursor[K, V]{&m.tree, m.tree.eraseNode(pos.n)}
}

// EraseRange removes [first, last) and returns a cursor to last.
func (m *Map[K, V]) EraseRange(first, last Cursor[K, V]) Cursor[K, V] {
	m.ensure()
	if first.t != &m.tree || last.t != &m.tree {
		panic(errForeignCursor)
	}
	return Cursor[K, V]{&m.tree, m.tree.eraseRange(first.n, last.n)}
}

// Delete removes key, if present, and reports whether it was.
func (m *Map[K, V]) Delete(key K) bool {
	m.ensure()
	return m.tree.eraseKey(m.cmp, key) == 1
}

// Clear removes all entries.
func (m *Map[K, V]) Clear() { m.ensure(); m.tree.clear() }

// Begin returns a cursor to the minimum entry (the end cursor if m is
// empty).
func (m *Map[K, V]) Begin() Cursor[K, V] { m.ensure(); return Cursor[K, V]{&m.tree, m.tree.min()} }

// End returns the past-the-end cursor.
func (m *Map[K, V]) End() Cursor[K, V] { m.ensure(); return Cursor[K, V]{&m.tree, m.tree.sentinel} }

// All returns an iterator over every entry of m, in key order.
func (m *Map[K, V]) All() iter.Seq2[K, V] { m.ensure(); return m.tree.all() }

// Scan returns an iterator over the entries with key k satisfying
// lo <= k <= hi, in key order.
func (m *Map[K, V]) Scan(lo, hi K) iter.Seq2[K, V] {
	m.ensure()
	return m.tree.scan(m.cmp, lo, hi)
}

// Swap exchanges the contents of m and other in O(1).
func (m *Map[K, V]) Swap(other *Map[K, V]) {
	m.ensure()
	other.ensure()
	m.tree.swapWith(&other.tree)
	m.cmp, other.cmp = other.cmp, m.cmp
}

// Clone returns a deep copy of m: an independent Map with the same
// entries, comparator, and splay policy, sharing no node with m.
func (m *Map[K, V]) Clone() *Map[K, V] {
	m.ensure()
	return &Map[K, V]{cmp: m.cmp, tree: cloneTree(&m.tree)}
}

// Assign replaces m's contents with a deep copy of other's, clearing
// m first and re-inserting other's entries under other's comparator.
func (m *Map[K, V]) Assign(other *Map[K, V]) {
	m.ensure()
	other.ensure()
	assignFrom(&m.tree, &other.tree, other.cmp)
	m.cmp = other.cmp
}

// AssignSeq replaces m's contents with the entries from seq, clearing
// m first. It is the range-argument sibling of Assign.
func (m *Map[K, V]) AssignSeq(seq iter.Seq2[K, V]) {
	m.ensure()
	m.tree.clear()
	for k, v := range seq {
		m.tree.insert(m.cmp, k, v)
	}
}

// Compare lexicographically compares m and other by key, in key order,
// returning a negative, zero, or positive result as m is less than,
// equal to, or greater than other. Values are not ordered: where two
// entries have equal keys but values that are not deeply equal,
// Compare returns a negative result whichever map is the receiver.
func (m *Map[K, V]) Compare(other *Map[K, V]) int {
	m.ensure()
	other.ensure()
	return compareAll(&m.tree, &other.tree, m.cmp)
}

// Equal reports whether m and other hold the same keys and values.
func (m *Map[K, V]) Equal(other *Map[K, V]) bool {
	m.ensure()
	other.ensure()
	return equalAll(&m.tree, &other.tree, m.cmp)
}

// EntryLess reports whether a's key orders before b's key.
func (m *Map[K, V]) EntryLess(a, b Entry[K, V]) bool {
	m.ensure()
	return m.cmp(a.Key, b.Key) < 0
}

// MemoryConsumptionEmpty returns the size in bytes of the map's tree
// header; the comparator field and the sentinel node are not counted.
func (m *Map[K, V]) MemoryConsumptionEmpty() uintptr { return memoryConsumptionEmpty[K, V]() }

// MemoryConsumptionItem returns the size in bytes of one stored entry.
func (m *Map[K, V]) MemoryConsumptionItem() uintptr { return memoryConsumptionItem[K, V]() }

// MemoryConsumption estimates m's overall memory footprint, adding
// extraPerItem bytes per stored entry (e.g. for out-of-line value
// storage the Sizeof of V does not capture).
func (m *Map[K, V]) MemoryConsumption(extraPerItem uintptr) uintptr {
	m.ensure()
	return m.tree.memoryConsumption(extraPerItem)
}

const maxInt = int(^uint(0) >> 1)

// ---- MapFunc ----

func (m *MapFunc[K, V]) Len() int { return m.tree.size }

func (m *MapFunc[K, V]) Size() int { return m.tree.size }

func (m *MapFunc[K, V]) Empty() bool { m.ensure(); return m.tree.isEmpty() }

func (m *MapFunc[K, V]) MaxSize() int { return maxInt }

func (m *MapFunc[K, V]) Get(key K) (V, bool) {
	m.ensure()
	return m.tree.get(m.cmp, key)
}

func (m *MapFunc[K, V]) At(key K) (V, error) {
	m.ensure()
	return m.tree.at(m.cmp, key)
}

func (m *MapFunc[K, V]) Value(key K, def V) V {
	m.ensure()
	return m.tree.valueOr(m.cmp, key, def)
}

func (m *MapFunc[K, V]) Slot(key K) *V {
	m.ensure()
	return m.tree.slot(m.cmp, key)
}

func (m *MapFunc[K, V]) Count(key K) int {
	m.ensure()
	return m.tree.count(m.cmp, key)
}

func (m *MapFunc[K, V]) First() (K, V, bool) { m.ensure(); return m.tree.first() }

func (m *MapFunc[K, V]) Last() (K, V, bool) { m.ensure(); return m.tree.last() }

func (m *MapFunc[K, V]) Insert(key K, val V) (Cursor[K, V], bool) {
	m.ensure()
	n, ok := m.tree.insert(m.cmp, key, val)
	return Cursor[K, V]{&m.tree, n}, ok
}

func (m *MapFunc[K, V]) hintNode(hint Cursor[K, V]) *node[K, V] {
	if hint.isEnd() {
		return m.tree.sentinel
	}
	if hint.t != &m.tree {
		panic(errForeignCursor)
	}
	return hint.n
}

func (m *MapFunc[K, V]) InsertHint(hint Cursor[K, V], key K, val V) Cursor[K, V] {
	m.ensure()
	n, _ := m.tree.insertWithHint(m.cmp, m.hintNode(hint), key, val)
	return Cursor[K, V]{&m.tree, n}
}

func (m *MapFunc[K, V]) InsertOrAssign(key K, val V) (Cursor[K, V], bool) {
	m.ensure()
	n, ok := m.tree.insertOrAssign(m.cmp, key, val)
	return Cursor[K, V]{&m.tree, n}, ok
}

func (m *MapFunc[K, V]) TryInsert(key K, makeVal func() V) (Cursor[K, V], bool) {
	m.ensure()
	n, ok := m.tree.tryInsert(m.cmp, key, makeVal)
	return Cursor[K, V]{&m.tree, n}, ok
}

// InsertAll inserts every (key, value) pair produced by seq that is
// not already present, in iteration order.
func (m *MapFunc[K, V]) InsertAll(seq iter.Seq2[K, V]) {
	m.ensure()
	for k, v := range seq {
		m.tree.insert(m.cmp, k, v)
	}
}

func (m *MapFunc[K, V]) Emplace(key K, makeVal func() V) (Cursor[K, V], bool) {
	m.ensure()
	n, ok := m.tree.emplace(m.cmp, key, makeVal)
	return Cursor[K, V]{&m.tree, n}, ok
}

// EmplaceHint is like Emplace, but uses hint as an O(1) shortcut for
// the insertion point when hint is valid; it is validated and falls
// back to the full-descent Emplace automatically when it is not.
func (m *MapFunc[K, V]) EmplaceHint(hint Cursor[K, V], key K, makeVal func() V) (Cursor[K, V], bool) {
	m.ensure()
	n, ok := m.tree.emplaceWithHint(m.cmp, m.hintNode(hint), key, makeVal)
	return Cursor[K, V]{&m.tree, n}, ok
}

func (m *MapFunc[K, V]) Find(key K) Cursor[K, V] {
	m.ensure()
	return Cursor[K, V]{&m.tree, m.tree.find(m.cmp, key)}
}

func (m *MapFunc[K, V]) LowerBound(key K) Cursor[K, V] {
	m.ensure()
	return Cursor[K, V]{&m.tree, m.tree.lowerBoundNode(m.cmp, key)}
}

func (m *MapFunc[K, V]) UpperBound(key K) Cursor[K, V] {
	m.ensure()
	return Cursor[K, V]{&m.tree, m.tree.upperBoundNode(m.cmp, key)}
}

func (m *MapFunc[K, V]) EqualRange(key K) (Cursor[K, V], Cursor[K, V]) {
	m.ensure()
	lo := m.tree.lowerBoundNode(m.cmp, key)
	hi := m.tree.upperBoundNode(m.cmp, key)
	return Cursor[K, V]{&m.tree, lo}, Cursor[K, V]{&m.tree, hi}
}

func (m *MapFunc[K, V]) Erase(pos Cursor[K, V]) Cursor[K, V] {
	m.ensure()
	if pos.t != &m.tree {
		panic(errForeignCursor)
	}
	if pos.isEnd() {
		panic(errEndCursor)
	}
	return Cursor[K, V]{&m.tree, m.tree.eraseNode(pos.n)}
}

func (m *MapFunc[K, V]) EraseRange(first, last Cursor[K, V]) Cursor[K, V] {
	m.ensure()
	if first.t != &m.tree || last.t != &m.tree {
		panic(errForeignCursor)
	}
	return Cursor[K, V]{&m.tree, m.tree.eraseRange(first.n, last.n)}
}

func (m *MapFunc[K, V]) Delete(key K) bool {
	m.ensure()
	return m.tree.eraseKey(m.cmp, key) == 1
}

func (m *MapFunc[K, V]) Clear() { m.ensure(); m.tree.clear() }

func (m *MapFunc[K, V]) Begin() Cursor[K, V] { m.ensure(); return Cursor[K, V]{&m.tree, m.tree.min()} }

func (m *MapFunc[K, V]) End() Cursor[K, V] {
	m.ensure()
	return Cursor[K, V]{&m.tree, m.tree.sentinel}
}

func (m *MapFunc[K, V]) All() iter.Seq2[K, V] { m.ensure(); return m.tree.all() }

func (m *MapFunc[K, V]) Scan(lo, hi K) iter.Seq2[K, V] {
	m.ensure()
	return m.tree.scan(m.cmp, lo, hi)
}

func (m *MapFunc[K, V]) Swap(other *MapFunc[K, V]) {
	m.ensure()
	other.ensure()
	m.tree.swapWith(&other.tree)
	m.cmp, other.cmp = other.cmp, m.cmp
}

// Clone returns a deep copy of m: an independent MapFunc with the
// same entries, comparator, and splay policy, sharing no node with m.
func (m *MapFunc[K, V]) Clone() *MapFunc[K, V] {
	m.ensure()
	return &MapFunc[K, V]{cmp: m.cmp, tree: cloneTree(&m.tree)}
}

// Assign replaces m's contents with a deep copy of other's, clearing
// m first and re-inserting other's entries under other's comparator.
func (m *MapFunc[K, V]) Assign(other *MapFunc[K, V]) {
	m.ensure()
	other.ensure()
	assignFrom(&m.tree, &other.tree, other.cmp)
	m.cmp = other.cmp
}

// AssignSeq replaces m's contents with the entries from seq, clearing
// m first. It is the range-argument sibling of Assign.
func (m *MapFunc[K, V]) AssignSeq(seq iter.Seq2[K, V]) {
	m.ensure()
	m.tree.clear()
	for k, v := range seq {
		m.tree.insert(m.cmp, k, v)
	}
}

func (m *MapFunc[K, V]) Compare(other *MapFunc[K, V]) int {
	m.ensure()
	other.ensure()
	return compareAll(&m.tree, &other.tree, m.cmp)
}

func (m *MapFunc[K, V]) Equal(other *MapFunc[K, V]) bool {
	m.ensure()
	other.ensure()
	return equalAll(&m.tree, &other.tree, m.cmp)
}

func (m *MapFunc[K, V]) EntryLess(a, b Entry[K, V]) bool {
	m.ensure()
	return m.cmp(a.Key, b.Key) < 0
}

func (m *MapFunc[K, V]) MemoryConsumptionEmpty() uintptr { return memoryConsumptionEmpty[K, V]() }

func (m *MapFunc[K, V]) MemoryConsumptionItem() uintptr { return memoryConsumptionItem[K, V]() }

func (m *MapFunc[K, V]) MemoryConsumption(extraPerItem uintptr) uintptr {
	m.ensure()
	return m.tree.memoryConsumption(extraPerItem)
}
