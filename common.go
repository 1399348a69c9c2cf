// Copyright (C) 2024 Storj Labs, Inc.
// See LICENSE for copying information.

// Package onlinecode wires together private/codec, private/graph, and
// private/blockstore into an Online Codes encoder and decoder: the
// codec samples the auxiliary mapping and each check block's composite
// neighbour list, the graph solves which message and auxiliary blocks
// become recoverable as check blocks arrive, and the block store
// performs the physical XOR.
package onlinecode

import (
	"github.com/spacemonkeygo/monkit/v3"
	"github.com/zeebo/errs"
)

var (
	// Error is the default onlinecode errs class.
	Error = errs.Class("onlinecode")

	mon = monkit.Package()
)
