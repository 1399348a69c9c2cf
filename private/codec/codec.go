// Copyright (C) 2024 Storj Labs, Inc.
// See LICENSE for copying information.

package codec

import (
	"github.com/zeebo/mwc"

	"github.com/rateless/onlinecode/private/graph"
)

// Codec samples the two PRNG-driven inputs a graph.Graph needs: the
// auxiliary mapping (once, at setup) and each outgoing check block's
// composite-node neighbour list (repeatedly, one per transmitted
// block). It does not record which ids it has already produced across
// calls other than what's needed to keep a single list's ids distinct;
// downstream determinism comes from the graph replaying a fixed aux
// mapping and a fixed sequence of neighbour lists, not from Codec
// itself being replayable.
type Codec struct {
	params Params
	dist   distribution
}

// New builds a Codec for params, failing if params is not usable.
func New(params Params) (*Codec, error) {
	defer mon.Task()(nil)(nil)

	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Codec{
		params: params,
		dist:   newDistribution(params.Epsilon),
	}, nil
}

// AuxMapping samples a fresh q-regular auxiliary mapping: every message
// block is assigned to exactly Q distinct auxiliary blocks, chosen
// uniformly at random. The result is ready to pass to graph.New.
func (c *Codec) AuxMapping() graph.AuxMapping {
	defer mon.Task()(nil)(nil)

	perMessage := make([][]int, c.params.Mblocks)
	for m := range perMessage {
		perMessage[m] = c.distinctAuxIDs()
	}
	return graph.MessageKeyed(c.params.Mblocks, c.params.Ablocks, perMessage)
}

func (c *Codec) distinctAuxIDs() []int {
	chosen := make(map[int]struct{}, c.params.Q)
	ids := make([]int, 0, c.params.Q)
	for len(ids) < c.params.Q {
		a := mwc.Intn(c.params.Ablocks)
		if _, ok := chosen[a]; ok {
			continue
		}
		chosen[a] = struct{}{}
		ids = append(ids, c.params.Mblocks+a)
	}
	return ids
}

// CheckNeighbours samples the composite-node neighbour list for the
// next outgoing check block: a degree drawn from the Online Codes
// distribution, then that many distinct composite ids chosen uniformly
// from [0, coblocks).
func (c *Codec) CheckNeighbours() []graph.NodeID {
	defer mon.Task()(nil)(nil)

	coblocks := c.params.coblocks()
	degree := c.dist.sample(randomUnit())
	if degree > coblocks {
		degree = coblocks
	}

	chosen := make(map[int]struct{}, degree)
	out := make([]graph.NodeID, 0, degree)
	for len(out) < degree {
		n := mwc.Intn(coblocks)
		if _, ok := chosen[n]; ok {
			continue
		}
		chosen[n] = struct{}{}
		out = append(out, graph.NodeID(n))
	}

	mon.IntVal("check_degree").Observe(int64(degree))
	if debugEnabled {
		println("codec: sampled check degree", degree)
	}
	return out
}
