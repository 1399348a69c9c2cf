// Copyright (C) 2024 Storj Labs, Inc.
// See LICENSE for copying information.

package codec

import (
	"math"

	"github.com/zeebo/mwc"
)

// distribution is a precomputed Online Codes check-block degree law:
// the probability, for a check block about to be formed, that it XORs
// together exactly d composite blocks. Larger epsilon concentrates
// more mass on low degrees (a bigger degree-1 share and a lower maximum
// degree) but requires a larger overhead of received check blocks
// before the graph becomes solvable, which is exactly the q*epsilon
// term graph.New's check-space sizing accounts for.
type distribution struct {
	cumulative []float64 // cumulative[d-1] = P(degree <= d)
}

func newDistribution(epsilon float64) distribution {
	f := math.Ceil(math.Log(epsilon*epsilon/4) / math.Log(1-epsilon/2))
	maxDegree := int(f)
	if maxDegree < 1 {
		maxDegree = 1
	}
	p1 := 1 - (1+1/f)/(1+epsilon)

	weights := make([]float64, maxDegree)
	weights[0] = p1
	for d := 2; d <= maxDegree; d++ {
		weights[d-1] = (1 - p1) * f / ((f - 1) * float64(d) * float64(d-1))
	}

	cumulative := make([]float64, maxDegree)
	sum := 0.0
	for i, w := range weights {
		sum += w
		cumulative[i] = sum
	}
	// The closed-form weights sum to ~1 but floating-point drift can
	// leave sample unable to reach the last bucket; rescale to exactly 1.
	if last := cumulative[len(cumulative)-1]; last > 0 {
		for i := range cumulative {
			cumulative[i] /= last
		}
	}
	return distribution{cumulative: cumulative}
}

// sample draws a degree in [1, len(cumulative)] from r, a uniform value
// in [0, 1).
func (d distribution) sample(r float64) int {
	for i, c := range d.cumulative {
		if r < c {
			return i + 1
		}
	}
	return len(d.cumulative)
}

// randomUnit returns a uniform float64 in [0, 1) built from mwc.Intn.
func randomUnit() float64 {
	const bits = 53 // float64 mantissa width
	return float64(mwc.Intn(1<<bits)) / float64(int64(1)<<bits)
}
