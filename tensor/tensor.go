// SPDX-License-Identifier: MIT

// Package tensor - row-major storage & safe accessors.
//
// Purpose:
//   - Keep a flat row-major buffer with the explicit index formula i*w + j.
//   - Guarantee safety at the public surface: At/Slice return errors instead of panicking.
//   - Reject NaN/Inf on ingestion so every derived scalar stays finite.
//
// Complexity quicksheet:
//   - New: O(h*w); At: O(1); Slice: O(h'*w'); Clone/Equal: O(h*w).

package tensor

import (
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

// ---------- error context tags ----------

const (
	ctxNew       = "New"
	ctxAt        = "At"
	ctxSlice     = "Slice"
	ctxColumn    = "Column"
	ctxEqual     = "Equal"
	ctxUnit      = "Unit"
	ctxSchatten  = "Schatten"
	ctxFrobenius = "Frobenius"
	ctxNegate    = "Negate"
)

// ---------- Formatting literals ----------
const (
	_fmtOpen     = "(["
	_fmtClose    = "])"
	_fmtRowOpen  = "["
	_fmtRowClose = "]"
	_fmtRowSep   = ",\n  "
	_fmtSep      = ", "
)

// Tensor is a dense h×w matrix of finite float64 values.
//   - h,w hold the shape; an empty tensor has h == w == 0.
//   - data is a flat buffer of length h*w in row-major order (offset = i*w + j).
//   - eps is the tolerance used by Equal/NotEqual.
type Tensor struct {
	h, w int
	data []float64
	eps  float64
}

// New builds a tensor from rows.
// MAIN DESCRIPTION:
//   - Copy rows into a flat row-major buffer after validating the shape and
//     the numeric policy.
//
// Implementation:
//   - Stage 1: h = len(rows); w = len(rows[0]). If either is zero the result
//     is the empty tensor with size (0, 0).
//   - Stage 2: every row must have length w (ErrRaggedRows) and every value
//     must be finite (ErrNaNInf).
//   - Stage 3: copy into the flat buffer.
//
// Errors:
//   - ErrRaggedRows, ErrNaNInf (wrapped with "Tensor.New").
//
// Complexity:
//   - Time O(h*w), Space O(h*w).
func New(rows [][]float64, opts ...Option) (*Tensor, error) {
	o := gatherOptions(opts...)
	t := &Tensor{eps: o.eps}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return t, nil
	}

	h, w := len(rows), len(rows[0])
	buf := make([]float64, 0, h*w)
	for i, row := range rows {
		if len(row) != w {
			return nil, indexErrorf(ctxNew, i, len(row), ErrRaggedRows)
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, indexErrorf(ctxNew, i, j, ErrNaNInf)
			}
			buf = append(buf, v)
		}
	}
	t.h, t.w, t.data = h, w, buf

	return t, nil
}

// FromColumns builds the 3×3 basis tensor whose columns are a, b and c.
// Non-finite components are rejected with ErrNaNInf.
func FromColumns(a, b, c r3.Vec, opts ...Option) (*Tensor, error) {
	return New([][]float64{
		{a.X, b.X, c.X},
		{a.Y, b.Y, c.Y},
		{a.Z, b.Z, c.Z},
	}, opts...)
}

// Size returns the shape (h, w). Complexity: O(1).
func (t *Tensor) Size() (h, w int) { return t.h, t.w }

// Empty reports whether the tensor holds no elements.
func (t *Tensor) Empty() bool { return t.h == 0 || t.w == 0 }

// Epsilon returns the equality tolerance of t.
func (t *Tensor) Epsilon() float64 { return t.eps }

// indexOf bounds-checks (row, col) and returns the row-major offset.
func (t *Tensor) indexOf(row, col int) (int, error) {
	if row < 0 || row >= t.h || col < 0 || col >= t.w {
		return 0, ErrOutOfRange
	}

	return row*t.w + col, nil
}

// At returns the element at (row, col) or ErrOutOfRange.
// Indices are zero-based; negative indices are out of range.
// Complexity: O(1).
func (t *Tensor) At(row, col int) (float64, error) {
	idx, err := t.indexOf(row, col)
	if err != nil {
		return 0, indexErrorf(ctxAt, row, col, err)
	}

	return t.data[idx], nil
}

// at is the unchecked accessor used by algorithms that already validated shape.
func (t *Tensor) at(row, col int) float64 { return t.data[row*t.w+col] }

// Range is a half-open index interval [From, To) along one axis.
// The zero value selects the whole axis; To == 0 means "to the end".
type Range struct {
	From, To int
}

// All selects a whole axis.
var All = Range{}

// resolve maps r onto an axis of length n, returning the concrete bounds.
func (r Range) resolve(n int) (from, to int, err error) {
	from, to = r.From, r.To
	if to == 0 {
		to = n
	}
	if from < 0 || to > n || from >= to {
		return 0, 0, ErrOutOfRange
	}

	return from, to, nil
}

// Slice copies the sub-block selected by rows × cols.
// MAIN DESCRIPTION:
//   - Range addressing with independent, explicitly bounded axes.
//
// Implementation:
//   - Stage 1: resolve both ranges against (h, w); any bound outside the
//     tensor, or an empty interval, is ErrOutOfRange.
//   - Stage 2: copy the selected rows into a fresh [][]float64.
//
// Complexity:
//   - Time O(h'*w'), Space O(h'*w').
func (t *Tensor) Slice(rows, cols Range) ([][]float64, error) {
	r0, r1, err := rows.resolve(t.h)
	if err != nil {
		return nil, indexErrorf(ctxSlice, rows.From, rows.To, err)
	}
	c0, c1, err := cols.resolve(t.w)
	if err != nil {
		return nil, indexErrorf(ctxSlice, cols.From, cols.To, err)
	}

	out := make([][]float64, 0, r1-r0)
	for i := r0; i < r1; i++ {
		row := make([]float64, c1-c0)
		copy(row, t.data[i*t.w+c0:i*t.w+c1])
		out = append(out, row)
	}

	return out, nil
}

// Clone returns a deep copy of t.
func (t *Tensor) Clone() *Tensor {
	buf := make([]float64, len(t.data))
	copy(buf, t.data)

	return &Tensor{h: t.h, w: t.w, data: buf, eps: t.eps}
}

// Equal reports whether t and u agree element-wise within t's epsilon.
// MAIN DESCRIPTION:
//   - Tolerant equality: |t[i,j] - u[i,j]| <= eps for every element.
//
// Behavior highlights:
//   - Mismatched shapes are an error (ErrDimensionMismatch), never "unequal".
//   - Reflexive and symmetric for tensors sharing the same epsilon.
//
// Complexity:
//   - Time O(h*w), Space O(1).
func (t *Tensor) Equal(u *Tensor) (bool, error) {
	if t == nil || u == nil {
		return false, tensorErrorf(ctxEqual, ErrNilTensor)
	}
	if t.h != u.h || t.w != u.w {
		return false, tensorErrorf(ctxEqual, ErrDimensionMismatch)
	}
	for k := range t.data {
		if math.Abs(t.data[k]-u.data[k]) > t.eps {
			return false, nil
		}
	}

	return true, nil
}

// NotEqual is the negation of Equal with the same error policy.
func (t *Tensor) NotEqual(u *Tensor) (bool, error) {
	eq, err := t.Equal(u)
	if err != nil {
		return false, err
	}

	return !eq, nil
}

// String renders the tensor in a bracketed row-per-line form, e.g.
//
//	([[1, 0, 0],
//	  [0, 1, 0],
//	  [0, 0, 1]])
func (t *Tensor) String() string {
	var sb strings.Builder
	sb.WriteString(_fmtOpen)
	for i := 0; i < t.h; i++ {
		if i > 0 {
			sb.WriteString(_fmtRowSep)
		}
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < t.w; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(strconv.FormatFloat(t.at(i, j), 'g', -1, 64))
		}
		sb.WriteString(_fmtRowClose)
	}
	sb.WriteString(_fmtClose)

	return sb.String()
}
