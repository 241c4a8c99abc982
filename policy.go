// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package splay

// policyState is the per-operation-class splay decider: in the
// counting modes (Half, Third, Fourth) it mutates on every call, even
// calls that are otherwise read-only, which is why the
// container requires exclusive access for the duration of any
// operation.
type policyState struct {
	mode    SplayMode
	counter int
}

// shouldSplay reports whether this call should trigger a splay, and
// advances the internal counter as a side effect.
func (p *policyState) shouldSplay() bool {
	switch p.mode {
	case SplayAlways:
		return true
	case SplayNever:
		return false
	case SplayHalf:
		p.counter++
		return p.counter&1 == 1
	case SplayThird:
		p.counter++
		return p.counter%3 == 0
	case SplayFourth:
		p.counter++
		return p.counter%4 == 0
	default:
		return false
	}
}
