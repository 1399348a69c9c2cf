// Copyright (C) 2024 Storj Labs, Inc.
// See LICENSE for copying information.

package onlinecode

import (
	"github.com/rateless/onlinecode/private/blockstore"
	"github.com/rateless/onlinecode/private/codec"
	"github.com/rateless/onlinecode/private/graph"
)

// Encoder splits a fixed source payload into message blocks, combines
// them into auxiliary blocks once at setup, and then produces an
// unbounded stream of check blocks for a Decoder on the other end to
// consume. It plays the sender's role in a session; Decoder plays the
// receiver's, mirroring how the root uplink package splits Upload and
// Download over the same private/eestream machinery.
type Encoder struct {
	config     Config
	codec      *codec.Codec
	store      *blockstore.Store
	auxMapping graph.AuxMapping
}

// NewEncoder builds an Encoder for source, which must be exactly
// config.Mblocks * config.BlockSize bytes; callers with a shorter
// payload must pad it themselves first. NewEncoder samples a fresh
// auxiliary mapping; AuxMapping returns it so the caller can hand it to
// the matching NewDecoder out of band.
func NewEncoder(config Config, source []byte) (*Encoder, error) {
	defer mon.Task()(nil)(nil)

	if config.BlockSize < 1 {
		return nil, Error.New("%w: block size (%d) invalid", ErrConfig, config.BlockSize)
	}
	want := config.Mblocks * config.BlockSize
	if len(source) != want {
		return nil, Error.New("%w: source length %d, want %d", ErrConfig, len(source), want)
	}

	c, err := codec.New(config.codecParams())
	if err != nil {
		return nil, Error.Wrap(err)
	}

	store := blockstore.NewStore(config.BlockSize)
	for m := 0; m < config.Mblocks; m++ {
		id := graph.NodeID(m)
		lo := m * config.BlockSize
		if err := store.Put(id, source[lo:lo+config.BlockSize]); err != nil {
			return nil, Error.Wrap(err)
		}
	}

	auxMapping := c.AuxMapping()
	for a, messages := range auxMapping {
		id := graph.NodeID(config.Mblocks + a)
		ids := make([]graph.NodeID, len(messages))
		for i, m := range messages {
			ids[i] = graph.NodeID(m)
		}
		if _, err := store.StoreCombined(id, ids); err != nil {
			return nil, Error.Wrap(err)
		}
	}

	return &Encoder{
		config:     config,
		codec:      c,
		store:      store,
		auxMapping: auxMapping,
	}, nil
}

// AuxMapping returns the auxiliary mapping this Encoder sampled. The
// caller must deliver it to the matching Decoder before the first
// NextCheckBlock is delivered.
func (e *Encoder) AuxMapping() graph.AuxMapping { return e.auxMapping }

// NextCheckBlock produces one more check block: a composite-node
// neighbour list sampled from the degree distribution, and the XOR of
// those composite blocks' payloads. Calling it repeatedly yields an
// unbounded stream, as many as a Decoder needs to reach done.
func (e *Encoder) NextCheckBlock() (neighbours []graph.NodeID, payload []byte, err error) {
	defer mon.Task()(nil)(nil)

	neighbours = e.codec.CheckNeighbours()
	payload, err = e.store.Combine(neighbours)
	if err != nil {
		return nil, nil, Error.Wrap(err)
	}
	return neighbours, payload, nil
}
