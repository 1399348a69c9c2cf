// Copyright (C) 2024 Storj Labs, Inc.
// See LICENSE for copying information.

package graph

import (
	"testing"

	"github.com/zeebo/assert"
	"github.com/zeebo/mwc"
)

// randomAuxMapping builds a q-regular mapping from mblocks message
// blocks onto ablocks auxiliary blocks, matching what private/codec
// would hand to New in production.
func randomAuxMapping(mblocks, ablocks, q int) AuxMapping {
	perMessage := make([][]int, mblocks)
	for m := range perMessage {
		chosen := make(map[int]struct{}, q)
		ids := make([]int, 0, q)
		for len(ids) < q {
			a := mwc.Intn(ablocks)
			if _, ok := chosen[a]; ok {
				continue
			}
			chosen[a] = struct{}{}
			ids = append(ids, mblocks+a)
		}
		perMessage[m] = ids
	}
	return MessageKeyed(mblocks, ablocks, perMessage)
}

func randomNeighbours(coblocks int) []NodeID {
	degree := 1 + mwc.Intn(coblocks)
	chosen := make(map[int]struct{}, degree)
	out := make([]NodeID, 0, degree)
	for len(out) < degree {
		n := mwc.Intn(coblocks)
		if _, ok := chosen[n]; ok {
			continue
		}
		chosen[n] = struct{}{}
		out = append(out, NodeID(n))
	}
	return out
}

// checkInvariants asserts that unsolvedMessageCount and done track the
// solved array, and that u[n] matches the number of unsolved
// down-neighbours for every node that still has a down array
// (decommissioned nodes retain a stale u[] that is never read again).
func checkInvariants(t *testing.T, g *Graph) {
	t.Helper()

	unsolvedMessages := 0
	for m := 0; m < g.mblocks; m++ {
		if !g.solved[m] {
			unsolvedMessages++
		}
	}
	assert.That(t, unsolvedMessages == g.unsolvedMessageCount)
	assert.That(t, g.done == (g.unsolvedMessageCount == 0))

	for n := g.mblocks; n < int(g.nodes); n++ {
		down := g.down[NodeID(n)]
		if down == nil {
			continue
		}
		unsolved := 0
		for _, m := range down {
			if !g.solved[m] {
				unsolved++
			}
		}
		assert.That(t, unsolved == g.u[NodeID(n)])
	}
}

func TestPropertyRandomArrivals(t *testing.T) {
	for range 50 {
		mblocks := 1 + mwc.Intn(8)
		ablocks := 1 + mwc.Intn(3)
		q := 1 + mwc.Intn(ablocks)

		g, err := New(mblocks, ablocks, randomAuxMapping(mblocks, ablocks, q), q, 0.2, 3.0)
		assert.NoError(t, err)

		solvedOnce := make(map[NodeID]bool)

		for range 60 {
			if g.Done() {
				break
			}
			v := randomNeighbours(g.Coblocks())
			if _, err := g.IngestCheckBlock(v); err != nil {
				break // node space exhausted; acceptable under a tight fudge factor
			}

			_, newlySolved := g.Resolve(0)
			for _, n := range newlySolved {
				assert.That(t, !solvedOnce[n]) // monotonicity: never solved twice
				solvedOnce[n] = true
				assert.That(t, g.Solved(n))
			}
			checkInvariants(t, g)
		}

		g.Close()
	}
}

func TestPropertyXORListExpansionTerminatesAtCheckLeaves(t *testing.T) {
	for range 20 {
		mblocks := 1 + mwc.Intn(6)
		ablocks := 1 + mwc.Intn(3)
		q := 1 + mwc.Intn(ablocks)

		g, err := New(mblocks, ablocks, randomAuxMapping(mblocks, ablocks, q), q, 0.2, 3.0)
		assert.NoError(t, err)

		for range 80 {
			if g.Done() {
				break
			}
			v := randomNeighbours(g.Coblocks())
			if _, err := g.IngestCheckBlock(v); err != nil {
				break
			}
			g.Resolve(0)
		}

		for n := NodeID(0); n < NodeID(g.NodeCount()); n++ {
			if !g.Solved(n) {
				continue
			}
			for _, id := range g.XORList(n, true) {
				assert.That(t, g.Kind(id) == Check)
			}
		}

		g.Close()
	}
}
