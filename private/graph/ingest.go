// Copyright (C) 2024 Storj Labs, Inc.
// See LICENSE for copying information.

package graph

// IngestCheckBlock adds a newly-received check block to the graph. v_edges
// is the list of composite-node ids (message or auxiliary) that the check
// block XORs together, as produced by the codec. It returns the assigned
// node id, a monotonically increasing value starting at Coblocks().
//
// Already-solved neighbours are folded into the new node's xor_list
// immediately rather than kept as edges: an edge only
// needs to exist while the other endpoint might still become solved.
// Unsolved neighbours get a reciprocal up-edge and stay in down[node]
// until the resolver eliminates them.
//
// IngestCheckBlock fails with ErrCapacity if node space pre-sized at New
// is exhausted; the graph is left unchanged by a failed call.
func (g *Graph) IngestCheckBlock(vEdges []NodeID) (NodeID, error) {
	defer mon.Task()(nil)(nil)

	node := g.nodes
	if int(node) >= g.nodeSpace {
		return 0, Error.New("%w: node space (%d) exhausted", ErrCapacity, g.nodeSpace)
	}
	g.nodes++

	g.solved[node] = true
	xorList := []NodeID{node}

	for _, n := range vEdges {
		if g.solved[n] {
			xorList = append(xorList, n)
			continue
		}
		g.addDownAndUpEdge(node, n)
	}

	g.setXORList(node, xorList)
	g.pushPending(node)

	if debugEnabled {
		println("graph: ingested check", int(node), "degree", len(vEdges), "unsolved", g.u[node])
	}

	return node, nil
}
