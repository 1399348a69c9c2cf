// Copyright (C) 2024 Storj Labs, Inc.
// See LICENSE for copying information.

package codec

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zeebo/assert"
	"github.com/zeebo/mwc"
)

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name   string
		params Params
		wantOK bool
	}{
		{"valid", Params{Mblocks: 10, Ablocks: 3, Q: 2, Epsilon: 0.1}, true},
		{"zero mblocks", Params{Mblocks: 0, Ablocks: 3, Q: 2, Epsilon: 0.1}, false},
		{"zero ablocks", Params{Mblocks: 10, Ablocks: 0, Q: 2, Epsilon: 0.1}, false},
		{"q exceeds ablocks", Params{Mblocks: 10, Ablocks: 3, Q: 4, Epsilon: 0.1}, false},
		{"epsilon out of range", Params{Mblocks: 10, Ablocks: 3, Q: 2, Epsilon: 1.5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.wantOK {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}

func TestAuxMappingIsQRegular(t *testing.T) {
	params := Params{Mblocks: 20, Ablocks: 5, Q: 3, Epsilon: 0.1}
	c, err := New(params)
	require.NoError(t, err)

	mapping := c.AuxMapping()
	require.Len(t, mapping, params.Ablocks)

	degree := make([]int, params.Mblocks)
	for _, messages := range mapping {
		for _, m := range messages {
			degree[m]++
		}
	}
	for m, d := range degree {
		require.Equal(t, params.Q, d, "message %d", m)
	}
}

func TestCheckNeighboursAreDistinctAndInRange(t *testing.T) {
	params := Params{Mblocks: 12, Ablocks: 4, Q: 2, Epsilon: 0.15}
	c, err := New(params)
	require.NoError(t, err)

	coblocks := params.coblocks()
	for range 200 {
		neighbours := c.CheckNeighbours()
		require.NotEmpty(t, neighbours)

		seen := make(map[int]bool, len(neighbours))
		for _, n := range neighbours {
			require.False(t, seen[int(n)], "duplicate neighbour %d", n)
			seen[int(n)] = true
			require.True(t, int(n) >= 0 && int(n) < coblocks)
		}
	}
}

func TestDistributionCumulativeReachesOne(t *testing.T) {
	for range 30 {
		epsilon := 0.02 + 0.9*float64(mwc.Intn(1000))/1000
		dist := newDistribution(epsilon)
		assert.That(t, len(dist.cumulative) > 0)
		last := dist.cumulative[len(dist.cumulative)-1]
		assert.That(t, last > 0.999 && last < 1.001)
		for i := 1; i < len(dist.cumulative); i++ {
			assert.That(t, dist.cumulative[i] >= dist.cumulative[i-1])
		}
	}
}
