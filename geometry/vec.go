// SPDX-License-Identifier: MIT

package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Centroid returns the arithmetic mean of points.
// Returns ErrNoPoints for an empty set.
func Centroid(points ...r3.Vec) (r3.Vec, error) {
	if len(points) == 0 {
		return r3.Vec{}, ErrNoPoints
	}
	var sum r3.Vec
	for _, p := range points {
		sum = r3.Add(sum, p)
	}

	return r3.Scale(1/float64(len(points)), sum), nil
}

// Unit returns p scaled to unit length; the zero vector stays zero
// (r3.Unit would return NaN components).
func Unit(p r3.Vec) r3.Vec {
	n := r3.Norm(p)
	if n == 0 {
		return r3.Vec{}
	}

	return r3.Scale(1/n, p)
}

// Distance returns the Euclidean distance between p and q.
func Distance(p, q r3.Vec) float64 { return r3.Norm(r3.Sub(p, q)) }

// Angle returns the angle in [0, π] between p and q, or 0 if either is zero.
func Angle(p, q r3.Vec) float64 {
	np, nq := r3.Norm(p), r3.Norm(q)
	if np == 0 || nq == 0 {
		return 0
	}
	c := r3.Dot(p, q) / (np * nq)

	return math.Acos(math.Max(-1, math.Min(1, c)))
}

// PointSegmentDistance returns the distance from p to the segment [a, b].
// A zero-length segment degrades to the distance from p to a.
func PointSegmentDistance(a, b, p r3.Vec) float64 {
	ab := r3.Sub(b, a)
	l2 := r3.Norm2(ab)
	if l2 == 0 {
		return Distance(p, a)
	}
	s := r3.Dot(r3.Sub(p, a), ab) / l2
	s = math.Max(0, math.Min(1, s))

	return Distance(p, r3.Add(a, r3.Scale(s, ab)))
}
