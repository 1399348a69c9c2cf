// Copyright (C) 2024 Storj Labs, Inc.
// See LICENSE for copying information.

package blockstore

import (
	"sync"

	"storj.io/common/sync2/race2"

	"github.com/rateless/onlinecode/private/graph"
)

// Store holds fixed-size block payloads keyed by graph node id. Check
// blocks are recorded directly as they arrive off the wire; message and
// auxiliary blocks are recorded once Combine has folded their XOR list
// into bytes, so a later Get returns the same payload without
// recomputing it.
//
// Store is safe for concurrent use: a receive loop calls Put from one
// goroutine while a separate goroutine drains graph.Graph.Resolve's
// newly-solved ids and calls Combine, following the same producer/
// consumer split private/eestream.Batch serves for erasure shares.
type Store struct {
	blockSize int

	mu     sync.RWMutex
	blocks map[graph.NodeID][]byte
}

// NewStore returns a Store whose payloads are all exactly blockSize
// bytes.
func NewStore(blockSize int) *Store {
	return &Store{
		blockSize: blockSize,
		blocks:    make(map[graph.NodeID][]byte),
	}
}

// BlockSize returns the fixed payload size every stored block has.
func (s *Store) BlockSize() int { return s.blockSize }

// Put records id's payload, copying it into a buffer the Store owns.
func (s *Store) Put(id graph.NodeID, payload []byte) error {
	if len(payload) != s.blockSize {
		return Error.New("%w: payload length %d, want %d", ErrConfig, len(payload), s.blockSize)
	}

	buf := make([]byte, s.blockSize)
	race2.WriteSlice(buf)
	copy(buf, payload)

	s.mu.Lock()
	s.blocks[id] = buf
	s.mu.Unlock()
	return nil
}

// Get returns id's stored payload, if any.
func (s *Store) Get(id graph.NodeID) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.blocks[id]
	return b, ok
}

// Combine XOR-folds the stored payloads of ids into a freshly allocated
// block-sized buffer. ids is typically the result of a solved node's
// graph.Graph.XORList(node, true) call, so every id names a received
// check block; Combine fails with ErrMissing if any named id was never
// Put.
func (s *Store) Combine(ids []graph.NodeID) ([]byte, error) {
	out := make([]byte, s.blockSize)
	race2.WriteSlice(out)

	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range ids {
		b, ok := s.blocks[id]
		if !ok {
			return nil, Error.New("%w: %d", ErrMissing, id)
		}
		race2.ReadSlice(b)
		xorInto(out, b)
	}
	return out, nil
}

// StoreCombined combines ids and records the result under id, so a
// later Get(id) returns it without recombining. Callers resolving a
// newly-solved composite node use this instead of Combine+Put directly.
func (s *Store) StoreCombined(id graph.NodeID, ids []graph.NodeID) ([]byte, error) {
	payload, err := s.Combine(ids)
	if err != nil {
		return nil, err
	}
	if err := s.Put(id, payload); err != nil {
		return nil, err
	}
	return payload, nil
}

func xorInto(dst, src []byte) {
	for i := range dst {
		dst[i] ^= src[i]
	}
}
