// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package splay

import "github.com/btcsuite/btclog"

// log is a logger that is initialized with no output filters. This
// means the package will not perform any logging by default until the
// caller requests it: a map is a library component and has no
// business logging on every lookup or splay on its own.
var log btclog.Logger

func init() {
	DisableLog()
}

// DisableLog disables all library log output. Logging output is
// disabled by default until UseLogger is called.
func DisableLog() {
	log = btclog.Disabled
}

// UseLogger directs this package's diagnostic output (a trace line
// for every splay and a debug line for every clear) to logger. Callers who
// want to watch how a workload shapes the tree, rather than just
// measure it, should call this before driving the map.
func UseLogger(logger btclog.Logger) {
	log = logger
}
