// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command splaybench drives a splay.Map with a synthetic workload and
// reports point-lookup latency next to the same workload run against
// a throwaway on-disk Pebble instance, so the splay map's "amortized
// O(log n) in memory" claim has a concrete external comparator.
package main

import (
	"encoding/binary"
	"fmt"
	"os"
	"time"

	"github.com/cockroachdb/pebble"
	"github.com/google/uuid"
	flags "github.com/jessevdk/go-flags"
	"golang.org/x/crypto/blake2b"

	"rsc.io/splay"
)

type options struct {
	N            int    `short:"n" long:"count" default:"100000" description:"number of keys to insert"`
	Seed         uint64 `short:"s" long:"seed" default:"1" description:"deterministic seed for key generation"`
	PolicyInsert string `long:"policy-insert" default:"fourth" choice:"always" choice:"half" choice:"third" choice:"fourth" choice:"never" description:"insert-time splay policy"`
	PolicyFind   string `long:"policy-find" default:"third" choice:"always" choice:"half" choice:"third" choice:"fourth" choice:"never" description:"find-time splay policy"`
	Backend      string `long:"backend" default:"both" choice:"splay" choice:"pebble" choice:"both" description:"which backend(s) to benchmark"`
	UUIDKeys     bool   `long:"uuid-keys" description:"use random UUIDs instead of derived uint64 keys, exercising MapFunc"`
	DBDir        string `long:"db-dir" description:"directory for the throwaway Pebble instance (defaults to a temp dir)"`
}

func modeFromFlag(s string) splay.SplayMode {
	switch s {
	case "always":
		return splay.SplayAlways
	case "half":
		return splay.SplayHalf
	case "third":
		return splay.SplayThird
	case "fourth":
		return splay.SplayFourth
	default:
		return splay.SplayNever
	}
}

// deriveKey turns seed and i into a deterministic pseudo-random
// uint64, so repeated runs with the same -seed produce exactly the
// same workload regardless of the platform's PRNG stream.
func deriveKey(seed uint64, i int) uint64 {
	var buf [16]byte
	binary.BigEndian.PutUint64(buf[0:8], seed)
	binary.BigEndian.PutUint64(buf[8:16], uint64(i))
	sum := blake2b.Sum512(buf[:])
	return binary.BigEndian.Uint64(sum[:8])
}

func main() {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	insMode := modeFromFlag(opts.PolicyInsert)
	findMode := modeFromFlag(opts.PolicyFind)

	if opts.UUIDKeys {
		runUUIDWorkload(opts, insMode, findMode)
		return
	}

	keys := make([]uint64, opts.N)
	for i := range keys {
		keys[i] = deriveKey(opts.Seed, i)
	}

	if opts.Backend == "splay" || opts.Backend == "both" {
		runSplay(keys, insMode, findMode)
	}
	if opts.Backend == "pebble" || opts.Backend == "both" {
		if err := runPebble(opts, keys); err != nil {
			fmt.Fprintln(os.Stderr, "pebble backend:", err)
			os.Exit(1)
		}
	}
}

func runSplay(keys []uint64, insMode, findMode splay.SplayMode) {
	m := splay.NewMap[uint64, uint64](
		splay.WithInsertPolicy[uint64, uint64](insMode),
		splay.WithFindPolicy[uint64, uint64](findMode),
	)

	start := time.Now()
	for _, k := range keys {
		m.Insert(k, k)
	}
	insertDur := time.Since(start)

	start = time.Now()
	var hits int
	for _, k := range keys {
		if _, ok := m.Get(k); ok {
			hits++
		}
	}
	lookupDur := time.Since(start)

	fmt.Printf("splay:  insert %d keys in %v (%v/op), %d/%d point lookups in %v (%v/op)\n",
		len(keys), insertDur, insertDur/time.Duration(len(keys)),
		hits, len(keys), lookupDur, lookupDur/time.Duration(len(keys)))
}

func runPebble(opts options, keys []uint64) error {
	dir := opts.DBDir
	if dir == "" {
		var err error
		dir, err = os.MkdirTemp("", "splaybench-pebble-*")
		if err != nil {
			return err
		}
		defer os.RemoveAll(dir)
	}

	db, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		return err
	}
	defer db.Close()

	var keyBuf [8]byte
	start := time.Now()
	batch := db.NewBatch()
	for _, k := range keys {
		binary.BigEndian.PutUint64(keyBuf[:], k)
		if err := batch.Set(keyBuf[:], keyBuf[:], pebble.NoSync); err != nil {
			return err
		}
	}
	if err := batch.Commit(pebble.Sync); err != nil {
		return err
	}
	insertDur := time.Since(start)

	start = time.Now()
	var hits int
	for _, k := range keys {
		binary.BigEndian.PutUint64(keyBuf[:], k)
		v, closer, err := db.Get(keyBuf[:])
		if err == nil {
			hits++
			closer.Close()
		} else if err != pebble.ErrNotFound {
			return err
		}
		_ = v
	}
	lookupDur := time.Since(start)

	fmt.Printf("pebble: insert %d keys in %v (%v/op), %d/%d point lookups in %v (%v/op)\n",
		len(keys), insertDur, insertDur/time.Duration(len(keys)),
		hits, len(keys), lookupDur, lookupDur/time.Duration(len(keys)))
	return nil
}

// runUUIDWorkload exercises MapFunc's arbitrary-comparator path with
// a key type (uuid.UUID) that has no natural Go ordering.
func runUUIDWorkload(opts options, insMode, findMode splay.SplayMode) {
	less := func(a, b uuid.UUID) int {
		for i := range a {
			if a[i] != b[i] {
				if a[i] < b[i] {
					return -1
				}
				return 1
			}
		}
		return 0
	}

	m := splay.NewMapFunc[uuid.UUID, int](
		less,
		splay.WithInsertPolicy[uuid.UUID, int](insMode),
		splay.WithFindPolicy[uuid.UUID, int](findMode),
	)

	keys := make([]uuid.UUID, opts.N)
	for i := range keys {
		keys[i] = uuid.New()
	}

	start := time.Now()
	for i, k := range keys {
		m.Insert(k, i)
	}
	insertDur := time.Since(start)

	start = time.Now()
	var hits int
	for _, k := range keys {
		if _, ok := m.Get(k); ok {
			hits++
		}
	}
	lookupDur := time.Since(start)

	fmt.Printf("splay(uuid): insert %d keys in %v, %d/%d lookups in %v\n",
		len(keys), insertDur, hits, len(keys), lookupDur)
}
