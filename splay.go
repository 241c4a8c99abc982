// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package splay implements an in-memory ordered map backed by a
// top-down splay tree.
//
// The map keeps its entries in key order at all times, but unlike a
// plain balanced tree it also reshapes itself on access: every node a
// lookup or insertion touches is rotated toward the root, so keys that
// are read or written often end up cheap to reach again. The reshaping
// is tunable (see [SplayMode]) because always splaying trades lookup
// cost for the self-adjusting benefit, and that trade is workload
// dependent.
//
// [Map][K, V] is suitable for ordered types K, while [MapFunc][K, V]
// supports arbitrary keys and comparison functions.
package splay

// The implementation is a top-down splay tree. See:
// D. Sleator and R. Tarjan, "Self-Adjusting Binary Search Trees",
// Journal of the ACM 32(3), 1985.

import "github.com/pkg/errors"

// ErrKeyNotFound is returned by [Map.At] and [MapFunc.At] when the
// requested key is not present.
var ErrKeyNotFound = errors.New("splay: key not found")

// Entry is a key/value pair as observed through iteration.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// SplayMode selects how often a touched node is rotated to the root.
// Always splaying gives the strongest self-adjustment but rotates on
// every read; splaying less often trades some of that locality benefit
// for cheaper lookups.
type SplayMode int

const (
	// SplayAlways splays on every call.
	SplayAlways SplayMode = iota
	// SplayHalf splays every second call.
	SplayHalf
	// SplayThird splays every third call.
	SplayThird
	// SplayFourth splays every fourth call.
	SplayFourth
	// SplayNever never splays.
	SplayNever
)

// errForeignCursor is the panic value for an operation given a cursor
// from another container.
var errForeignCursor = errors.New("splay: cursor does not belong to this map")

// errEndCursor is the panic value for dereferencing a cursor that is
// positioned past the end of the map.
var errEndCursor = errors.New("splay: dereference of end cursor")
