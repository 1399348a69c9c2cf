// Copyright (C) 2024 Storj Labs, Inc.
// See LICENSE for copying information.

package onlinecode

import (
	"github.com/rateless/onlinecode/private/blockstore"
	"github.com/rateless/onlinecode/private/graph"
)

// Result reports what a single ReceiveCheckBlock call accomplished.
type Result struct {
	// Done mirrors graph.Graph.Done: every message block has been
	// solved as of this call's return.
	Done bool
	// NewlySolved lists the message and auxiliary node ids this call
	// resolved, in the order the graph solved them.
	NewlySolved []graph.NodeID
}

// Decoder is the receiver's half of an Online Codes session: it feeds
// incoming check blocks into a graph.Graph, and folds each node the
// graph reports as newly solved into a blockstore.Store by XOR.
type Decoder struct {
	config Config
	graph  *graph.Graph
	store  *blockstore.Store
}

// NewDecoder builds a Decoder for config, wired to auxMapping (the
// value the matching Encoder's AuxMapping returned, delivered to this
// side out of band before any check block is). config.Q and
// config.Epsilon must match the Encoder's, since they size the
// Decoder's pre-allocated check-block node space.
func NewDecoder(config Config, auxMapping graph.AuxMapping) (*Decoder, error) {
	defer mon.Task()(nil)(nil)

	if config.BlockSize < 1 {
		return nil, Error.New("%w: block size (%d) invalid", ErrConfig, config.BlockSize)
	}

	g, err := graph.New(config.Mblocks, config.Ablocks, auxMapping, config.Q, config.Epsilon, config.Fudge)
	if err != nil {
		return nil, Error.Wrap(err)
	}

	return &Decoder{
		config: config,
		graph:  g,
		store:  blockstore.NewStore(config.BlockSize),
	}, nil
}

// ReceiveCheckBlock ingests one check block (neighbours and payload,
// as produced by Encoder.NextCheckBlock), records its payload, and
// drains the graph's pending queue as far as it will go. Every id the
// graph reports newly solved is immediately combined from the ids in
// its XORList(expandAux=true) and stored, so Message returns a message
// block's payload as soon as ReceiveCheckBlock reports it solved.
func (d *Decoder) ReceiveCheckBlock(neighbours []graph.NodeID, payload []byte) (Result, error) {
	defer mon.Task()(nil)(nil)

	node, err := d.graph.IngestCheckBlock(neighbours)
	if err != nil {
		return Result{}, Error.Wrap(err)
	}
	if err := d.store.Put(node, payload); err != nil {
		return Result{}, Error.Wrap(err)
	}

	done, newlySolved := d.graph.Resolve(0)
	for _, n := range newlySolved {
		leaves := d.graph.XORList(n, true)
		if _, err := d.store.StoreCombined(n, leaves); err != nil {
			return Result{}, Error.Wrap(err)
		}
	}

	return Result{Done: done, NewlySolved: newlySolved}, nil
}

// Message returns message block m's payload, if it has been solved.
func (d *Decoder) Message(m int) ([]byte, bool) {
	if m < 0 || m >= d.config.Mblocks {
		return nil, false
	}
	return d.store.Get(graph.NodeID(m))
}

// Done reports whether every message block has been solved.
func (d *Decoder) Done() bool { return d.graph.Done() }

// UnsolvedMessageCount returns the number of message blocks not yet
// solved.
func (d *Decoder) UnsolvedMessageCount() int { return d.graph.UnsolvedMessageCount() }

// Close releases the Decoder's claim on the graph's shared cell pool.
func (d *Decoder) Close() { d.graph.Close() }
