// SPDX-License-Identifier: MIT

// Package tensor - basis operations.
//
// Purpose:
//   - Operations on 3×3 bases (Unit, Schatten, Negate, Column) and the
//     shape-generic Frobenius distance.
//   - Every operation returns a fresh Tensor; receivers are never mutated.

package tensor

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
)

// basisDim is the side of the square bases handled by the 3×3 operations.
const basisDim = 3

// isBasis reports whether t is 3×3.
func (t *Tensor) isBasis() bool { return t.h == basisDim && t.w == basisDim }

// Column returns column j of a 3-row tensor as a vector.
// Errors: ErrNotBasis if t does not have three rows; ErrOutOfRange for a bad j.
func (t *Tensor) Column(j int) (r3.Vec, error) {
	if t.h != basisDim {
		return r3.Vec{}, tensorErrorf(ctxColumn, ErrNotBasis)
	}
	if j < 0 || j >= t.w {
		return r3.Vec{}, indexErrorf(ctxColumn, 0, j, ErrOutOfRange)
	}

	return r3.Vec{X: t.at(0, j), Y: t.at(1, j), Z: t.at(2, j)}, nil
}

// columns returns the three columns of a validated 3×3 tensor.
func (t *Tensor) columns() [basisDim]r3.Vec {
	var cols [basisDim]r3.Vec
	for j := 0; j < basisDim; j++ {
		cols[j] = r3.Vec{X: t.at(0, j), Y: t.at(1, j), Z: t.at(2, j)}
	}

	return cols
}

// Unit returns a tensor whose columns are t's columns normalised to unit length.
// MAIN DESCRIPTION:
//   - Column-wise normalisation of a 3×3 basis.
//
// Behavior highlights:
//   - A zero column stays zero instead of becoming NaN.
//
// Errors:
//   - ErrNotBasis when t is not 3×3.
//
// Complexity:
//   - Time O(1), Space O(1).
func (t *Tensor) Unit() (*Tensor, error) {
	if !t.isBasis() {
		return nil, tensorErrorf(ctxUnit, ErrNotBasis)
	}
	cols := t.columns()
	for j := range cols {
		if n := r3.Norm(cols[j]); n > 0 {
			cols[j] = r3.Scale(1/n, cols[j])
		}
	}

	return FromColumns(cols[0], cols[1], cols[2], WithEpsilon(t.eps))
}

// Schatten returns the Euclidean norm of the vector of column magnitudes,
// sqrt(‖c0‖² + ‖c1‖² + ‖c2‖²). It is used as a reach proxy for the basis.
// Errors: ErrNotBasis when t is not 3×3.
func (t *Tensor) Schatten() (float64, error) {
	if !t.isBasis() {
		return 0, tensorErrorf(ctxSchatten, ErrNotBasis)
	}
	mags := make([]float64, 0, basisDim)
	for _, c := range t.columns() {
		mags = append(mags, r3.Norm(c))
	}

	return floats.Norm(mags, 2), nil
}

// Frobenius returns the Frobenius distance sqrt(Σ (u[i,j] - t[i,j])²).
// MAIN DESCRIPTION:
//   - Euclidean distance between t and u treated as flattened vectors.
//
// Behavior highlights:
//   - t.Frobenius(t) == 0 for every tensor; the result is symmetric.
//
// Errors:
//   - ErrNilTensor, ErrDimensionMismatch (shapes must match exactly).
//
// Complexity:
//   - Time O(h*w), Space O(1).
func (t *Tensor) Frobenius(u *Tensor) (float64, error) {
	if t == nil || u == nil {
		return 0, tensorErrorf(ctxFrobenius, ErrNilTensor)
	}
	if t.h != u.h || t.w != u.w {
		return 0, tensorErrorf(ctxFrobenius, ErrDimensionMismatch)
	}

	return floats.Distance(u.data, t.data, 2), nil
}

// Negate flips the sign of columns 0 and 1 and keeps column 2.
// It models reversing a viewing direction while leaving the rotation about
// the optical (or normal) axis unconstrained.
// Errors: ErrNotBasis when t is not 3×3.
func (t *Tensor) Negate() (*Tensor, error) {
	if !t.isBasis() {
		return nil, tensorErrorf(ctxNegate, ErrNotBasis)
	}
	cols := t.columns()

	return FromColumns(r3.Scale(-1, cols[0]), r3.Scale(-1, cols[1]), cols[2], WithEpsilon(t.eps))
}
