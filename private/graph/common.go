// Copyright (C) 2024 Storj Labs, Inc.
// See LICENSE for copying information.

// Package graph implements the bipartite-graph solver at the heart of an
// Online Codes decoder: given an auxiliary mapping and a stream of
// check-block neighbour lists, it determines which message and auxiliary
// blocks become algebraically recoverable, and records the exact set of
// received check blocks whose XOR equals each one.
//
// The package never touches block payload bytes. It only tracks which
// node ids XOR together; a caller combines that with its own byte store
// to do the physical XOR.
package graph

import (
	"github.com/spacemonkeygo/monkit/v3"
	"github.com/zeebo/errs"
)

var (
	// Error is the graph package's errs class.
	Error = errs.Class("graph")

	mon = monkit.Package()
)

const debugEnabled = false
