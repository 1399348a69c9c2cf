// Copyright (C) 2024 Storj Labs, Inc.
// See LICENSE for copying information.

// Package blockstore holds the payload bytes an Online Codes decoder
// receives and folds them together by XOR once the graph package
// reports which received check blocks compose a message or auxiliary
// block. It never decides which ids to combine; a caller drives it with
// the ids returned by graph.Graph.XORList.
package blockstore

import "github.com/zeebo/errs"

// Error is the blockstore package's errs class.
var Error = errs.Class("blockstore")
