// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package splay

import (
	"math/rand/v2"
	"testing"
)

func BenchmarkGetRandRand(b *testing.B) {
	const n = 100000
	m := NewMap[int, int]()
	r := rand.New(rand.NewPCG(1, 1))
	for _, v := range r.Perm(n) {
		m.Insert(v, v)
	}
	perm := r.Perm(n)
	b.ResetTimer()
	i := 0
	for range b.N {
		m.Get(perm[i])
		i++
		if i == n {
			i = 0
		}
	}
}

func BenchmarkGetSeqRand(b *testing.B) {
	const n = 100000
	m := NewMap[int, int]()
	r := rand.New(rand.NewPCG(1, 1))
	for v := range n {
		m.Insert(v, v)
	}
	perm := r.Perm(n)
	b.ResetTimer()
	i := 0
	for range b.N {
		m.Get(perm[i])
		i++
		if i == n {
			i = 0
		}
	}
}

func BenchmarkSetDelete(b *testing.B) {
	const n = 100000
	m := NewMap[int, int]()
	r := rand.New(rand.NewPCG(1, 1))
	perm := r.Perm(n)
	perm2 := r.Perm(n)
	b.ResetTimer()
	i := 0
	for range b.N {
		if i < n {
			m.Insert(perm[i], perm[i])
		} else {
			m.Delete(perm2[i-n])
		}
		i++
		if i == 2*n {
			i = 0
		}
	}
}

func BenchmarkSplayPolicyComparison(b *testing.B) {
	policies := []struct {
		name string
		ins  SplayMode
		find SplayMode
	}{
		{"Always/Always", SplayAlways, SplayAlways},
		{"Fourth/Third", SplayFourth, SplayThird},
		{"Never/Never", SplayNever, SplayNever},
	}
	const n = 20000
	for _, p := range policies {
		b.Run(p.name, func(b *testing.B) {
			m := NewMap[int, int](WithInsertPolicy[int, int](p.ins), WithFindPolicy[int, int](p.find))
			r := rand.New(rand.NewPCG(2, 2))
			for _, v := range r.Perm(n) {
				m.Insert(v, v)
			}
			perm := r.Perm(n)
			b.ResetTimer()
			i := 0
			for range b.N {
				m.Find(perm[i])
				i++
				if i == n {
					i = 0
				}
			}
		})
	}
}
