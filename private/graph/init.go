// Copyright (C) 2024 Storj Labs, Inc.
// See LICENSE for copying information.

package graph

import "math"

// AuxMapping is the canonical, auxiliary-keyed form of the codec's
// auxiliary mapping: AuxMapping[a] lists the message ids that
// auxiliary block a (0-based, relative to mblocks) is the XOR of.
// Callers may supply either direction; MessageKeyed converts the
// message-keyed form to this canonical one.
type AuxMapping [][]int

// MessageKeyed builds an AuxMapping from the message-keyed direction:
// perMessage[m] lists the auxiliary ids (absolute, in [mblocks,
// mblocks+ablocks)) that message m belongs to. This is the shape a
// codec naturally produces while walking messages in order (see
// private/codec), so New's canonical AuxMapping is built from it here
// rather than forcing every caller to invert the mapping themselves.
func MessageKeyed(mblocks, ablocks int, perMessage [][]int) AuxMapping {
	out := make(AuxMapping, ablocks)
	for msg, auxes := range perMessage {
		for _, aux := range auxes {
			out[aux-mblocks] = append(out[aux-mblocks], msg)
		}
	}
	return out
}

// Option configures a Graph at construction time.
type Option func(*Graph)

// WithPool gives the Graph a private cell pool instead of the package-
// wide default. Use this when running more than one Graph concurrently
// on separate goroutines: the default pool is only safe to share across
// Graphs that live on the same goroutine.
func WithPool(p *Pool) Option {
	return func(g *Graph) { g.pool = p }
}

// New builds a Graph for a code with the given message/auxiliary block
// counts and auxiliary mapping. q and epsilon come from the codec (the
// per-message auxiliary degree and its asymptotic overhead parameter)
// and, together with fudge, size the pre-allocated check-block space:
// expected = (1 + q*epsilon) * mblocks, checkSpace = ceil(fudge *
// expected).
//
// New fails with an error wrapping ErrConfig if mblocks or ablocks is
// non-positive, auxMapping is nil, or fudge <= 1.0.
func New(mblocks, ablocks int, auxMapping AuxMapping, q int, epsilon, fudge float64, opts ...Option) (*Graph, error) {
	defer mon.Task()(nil)(nil)

	if mblocks < 1 {
		return nil, Error.New("%w: mblocks (%d) invalid", ErrConfig, mblocks)
	}
	if ablocks < 1 {
		return nil, Error.New("%w: ablocks (%d) invalid", ErrConfig, ablocks)
	}
	if auxMapping == nil {
		return nil, Error.New("%w: nil auxiliary mapping", ErrConfig)
	}
	if fudge <= 1.0 {
		return nil, Error.New("%w: fudge factor (%v) <= 1.0", ErrConfig, fudge)
	}
	if len(auxMapping) != ablocks {
		return nil, Error.New("%w: auxiliary mapping has %d entries, want %d", ErrConfig, len(auxMapping), ablocks)
	}

	coblocks := mblocks + ablocks
	expected := (1 + float64(q)*epsilon) * float64(mblocks)
	checkSpace := int(math.Ceil(fudge * expected))
	nodeSpace := coblocks + checkSpace

	g := &Graph{
		mblocks:              mblocks,
		ablocks:              ablocks,
		coblocks:             coblocks,
		nodeSpace:            nodeSpace,
		nodes:                NodeID(coblocks),
		unsolvedMessageCount: mblocks,
		solved:               make([]bool, nodeSpace),
		u:                    make([]int, nodeSpace),
		down:                 make([][]NodeID, nodeSpace),
		up:                   make([]*cell, nodeSpace),
		xorList:              make([][]NodeID, nodeSpace),
		pool:                 globalPool,
	}
	for _, opt := range opts {
		opt(g)
	}

	for a, messages := range auxMapping {
		auxID := NodeID(mblocks + a)
		for _, msg := range messages {
			if msg < 0 || msg >= mblocks {
				return nil, Error.New("%w: auxiliary %d references invalid message %d", ErrConfig, a, msg)
			}
			g.addDownAndUpEdge(auxID, NodeID(msg))
		}
	}

	g.pool.retain()
	return g, nil
}
