// Copyright (C) 2024 Storj Labs, Inc.
// See LICENSE for copying information.

package graph

// Graph is the bipartite-graph solver for a single decoder instance. A
// Graph is not safe for concurrent use: it, and the pool backing it,
// belong to a single goroutine.
type Graph struct {
	mblocks, ablocks, coblocks int
	nodeSpace                  int
	nodes                      NodeID // next id to assign to an incoming check block

	unsolvedMessageCount int
	done                 bool

	solved  []bool
	u       []int // unsolved down-edge count, meaningful for non-message nodes
	down    [][]NodeID
	up      []*cell
	xorList [][]NodeID

	pendingHead, pendingTail *cell
	pendingLen, pendingMaxFull int

	pool *Pool
}

// Mblocks returns the configured number of message blocks.
func (g *Graph) Mblocks() int { return g.mblocks }

// Ablocks returns the configured number of auxiliary blocks.
func (g *Graph) Ablocks() int { return g.ablocks }

// Coblocks returns mblocks + ablocks, the first check-node id.
func (g *Graph) Coblocks() int { return g.coblocks }

// Solved reports whether n's payload is currently recoverable.
func (g *Graph) Solved(n NodeID) bool { return g.solved[n] }

// UnsolvedMessageCount is the number of message blocks not yet solved.
func (g *Graph) UnsolvedMessageCount() int { return g.unsolvedMessageCount }

// Done reports whether every message block has been solved. Once true
// it never reverts.
func (g *Graph) Done() bool { return g.done }

// NodeCount is the number of nodes that exist so far, coblocks plus
// every check block ingested.
func (g *Graph) NodeCount() int { return int(g.nodes) }

// Close releases g's claim on its cell pool. A caller that abandons a
// Graph should call Close rather than rely on a finalizer, so the
// shared pool's cells can be reclaimed deterministically once the last
// user is gone.
func (g *Graph) Close() {
	g.flushPending()
	g.pool.drop()
}
