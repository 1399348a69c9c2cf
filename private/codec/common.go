// Copyright (C) 2024 Storj Labs, Inc.
// See LICENSE for copying information.

// Package codec generates the PRNG-driven inputs an Online Codes decoder
// needs from the graph package: the auxiliary mapping handed to
// graph.New, and the composite-block neighbour list for each outgoing
// check block. It never touches the graph itself; a caller feeds its
// output into graph.New and graph.Graph.IngestCheckBlock.
package codec

import (
	"github.com/spacemonkeygo/monkit/v3"
	"github.com/zeebo/errs"
)

var (
	// Error is the codec package's errs class.
	Error = errs.Class("codec")

	mon = monkit.Package()
)

const debugEnabled = false
