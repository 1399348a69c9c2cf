// Copyright (C) 2024 Storj Labs, Inc.
// See LICENSE for copying information.

package graph

// addUpEdge links low -> high: high gets a down-edge to low (already
// recorded by the caller in g.down[high]) and low gets a reciprocal
// up-edge to high, keeping the down/up adjacency symmetric.
func (g *Graph) addUpEdge(high, low NodeID) {
	if high <= low {
		invariant("addUpEdge: high %d must be greater than low %d", high, low)
	}
	c := g.pool.acquire()
	c.value = high
	c.next = g.up[low]
	g.up[low] = c
}

// removeUpEdge undoes addUpEdge(high, low). It is a linear scan of
// low's up-edge list; up-edge degree is small in practice (q auxiliary
// up-edges per message node, plus one per check block still linked to
// low; check nodes have no up-edges), so
// this stays cheap. The seek length is worth instrumenting since a
// pathological neighbour-list distribution would show up here first.
func (g *Graph) removeUpEdge(high, low NodeID) {
	seek := int64(0)
	pp := &g.up[low]
	for c := *pp; c != nil; c = *pp {
		if c.value == high {
			*pp = c.next
			g.pool.release(c)
			mon.IntVal("up_edge_seek_length").Observe(seek)
			return
		}
		pp = &c.next
		seek++
	}
	invariant("removeUpEdge: no up-edge %d -> %d", low, high)
}

// appendDown records a down-edge from n to lower, without touching u[n]
// or creating the reciprocal up-edge; callers that want the full
// bidirectional edge use addDownAndUpEdge.
func (g *Graph) appendDown(n, lower NodeID) {
	g.down[n] = append(g.down[n], lower)
}

// addDownAndUpEdge creates the full bidirectional edge (n, lower) and
// increments u[n]. Used during initialization and check-block
// ingestion, where down-edge arrays are built incrementally alongside
// the up-edges they mirror.
func (g *Graph) addDownAndUpEdge(n, lower NodeID) {
	g.appendDown(n, lower)
	g.addUpEdge(n, lower)
	g.u[n]++
}

// removeDown drops target from down[n] by swap-with-last: deletion is
// logical, performed by moving the last element over the removed one
// and truncating the slice rather than shifting everything after it.
func (g *Graph) removeDown(n, target NodeID) {
	ids := g.down[n]
	for i, id := range ids {
		if id == target {
			last := len(ids) - 1
			ids[i] = ids[last]
			g.down[n] = ids[:last]
			return
		}
	}
	invariant("removeDown: %d has no down-edge to %d", n, target)
}

// decommission releases a node's structural footprint once it can add
// no further information: every up-edge reciprocal to one of its down
// neighbours is removed, and down[n] itself is dropped.
//
// decommission is idempotent: a node may be decommissioned twice (once
// redundantly on arrival with u==0, and once more if something else
// re-enqueues it before the queue drains) since the second call sees a
// nil down array and returns immediately.
func (g *Graph) decommission(n NodeID) {
	down := g.down[n]
	if down == nil {
		return
	}
	g.down[n] = nil
	for _, lower := range down {
		g.removeUpEdge(n, lower)
	}
}
