// SPDX-License-Identifier: MIT

// Package tensor provides the small dense matrix ("tensor") used to describe
// the visibility extent of cameras and surface triangles.
//
// A Tensor is an h×w row-major matrix of finite float64 values. In this
// module it almost always holds a 3×3 basis: three column vectors that span
// a local frame, scaled by the extent of the entity they describe.
//
// The package provides:
//
//   - Construction from rows (New) or from three basis columns (FromColumns).
//   - Two explicit addressing modes: scalar At(i, j) and half-open range
//     Slice(rows, cols). Negative-from-end indices are not supported.
//   - Tolerant equality (Equal/NotEqual) under a configurable epsilon;
//     comparing tensors of different shapes is an error, not "unequal".
//   - Basis operations for 3×3 tensors: Unit, Schatten, Negate, Column.
//   - Frobenius distance between same-shaped tensors.
//
// Errors are package sentinels (ErrOutOfRange, ErrDimensionMismatch, ...)
// wrapped with method context; match them with errors.Is.
//
// Complexity: every operation is O(h*w); for the 3×3 bases used by the
// coverage model all of them are effectively constant time.
package tensor
