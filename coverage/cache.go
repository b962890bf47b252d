// SPDX-License-Identifier: MIT

package coverage

import (
	"sort"

	"github.com/katalvlaran/covtensor/geometry"
	"gonum.org/v1/gonum/stat"
)

// PointCache maps directional surface points to coverage strength in [0, 1].
type PointCache map[geometry.DirectionalPoint]float64

// Values returns the strengths sorted ascending.
func (pc PointCache) Values() []float64 {
	vals := make([]float64, 0, len(pc))
	for _, v := range pc {
		vals = append(vals, v)
	}
	sort.Float64s(vals)

	return vals
}

// Mean returns the arithmetic mean of the strengths.
// Errors: ErrEmptyCoverage for an empty cache (the mean is undefined).
func (pc PointCache) Mean() (float64, error) {
	if len(pc) == 0 {
		return 0, ErrEmptyCoverage
	}

	return stat.Mean(pc.Values(), nil), nil
}
