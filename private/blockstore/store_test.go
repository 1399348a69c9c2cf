// Copyright (C) 2024 Storj Labs, Inc.
// See LICENSE for copying information.

package blockstore

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rateless/onlinecode/private/graph"
)

func TestCombineXORsStoredPayloads(t *testing.T) {
	s := NewStore(4)

	require.NoError(t, s.Put(0, []byte{0x0f, 0x0f, 0x0f, 0x0f}))
	require.NoError(t, s.Put(1, []byte{0xf0, 0xf0, 0xf0, 0xf0}))

	out, err := s.Combine([]graph.NodeID{0, 1})
	require.NoError(t, err)
	require.Equal(t, []byte{0xff, 0xff, 0xff, 0xff}, out)
}

func TestCombineXORIsInvolution(t *testing.T) {
	s := NewStore(4)
	require.NoError(t, s.Put(0, []byte{1, 2, 3, 4}))
	require.NoError(t, s.Put(1, []byte{5, 6, 7, 8}))

	out, err := s.Combine([]graph.NodeID{0, 1, 0, 1})
	require.NoError(t, err)
	require.Equal(t, []byte{0, 0, 0, 0}, out)
}

func TestCombineMissingPayload(t *testing.T) {
	s := NewStore(4)
	_, err := s.Combine([]graph.NodeID{42})
	require.ErrorIs(t, err, ErrMissing)
}

func TestPutWrongSize(t *testing.T) {
	s := NewStore(4)
	err := s.Put(0, []byte{1, 2, 3})
	require.ErrorIs(t, err, ErrConfig)
}

func TestStoreCombinedIsRetrievable(t *testing.T) {
	s := NewStore(2)
	require.NoError(t, s.Put(0, []byte{1, 1}))
	require.NoError(t, s.Put(1, []byte{2, 2}))

	combined, err := s.StoreCombined(2, []graph.NodeID{0, 1})
	require.NoError(t, err)

	stored, ok := s.Get(2)
	require.True(t, ok)
	require.Equal(t, combined, stored)
}
