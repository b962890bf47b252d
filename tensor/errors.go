// SPDX-License-Identifier: MIT
// Package tensor: sentinel error set.
// Every message is prefixed with "tensor: ..." so the source is obvious in
// logs. Public methods wrap these with method context via tensorErrorf;
// callers match with errors.Is.

package tensor

import (
	"errors"
	"fmt"
)

var (
	// ErrRaggedRows is returned by New when rows have different lengths.
	ErrRaggedRows = errors.New("tensor: all rows must have the same length")

	// ErrNaNInf signals a NaN or ±Inf element; tensors hold finite values only.
	ErrNaNInf = errors.New("tensor: NaN or Inf encountered")

	// ErrOutOfRange indicates that an index or range bound is outside the tensor.
	ErrOutOfRange = errors.New("tensor: index out of range")

	// ErrDimensionMismatch indicates operands of different shapes.
	ErrDimensionMismatch = errors.New("tensor: dimension mismatch")

	// ErrNotBasis indicates an operation defined only for 3×3 tensors.
	ErrNotBasis = errors.New("tensor: operation requires a 3x3 tensor")

	// ErrNilTensor indicates that a nil *Tensor was used as an operand.
	ErrNilTensor = errors.New("tensor: nil tensor")
)

// tensorErrorf attaches a method tag to a sentinel.
func tensorErrorf(method string, err error) error {
	return fmt.Errorf("Tensor.%s: %w", method, err)
}

// indexErrorf attaches a method tag and coordinates to a sentinel.
func indexErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Tensor.%s(%d,%d): %w", method, row, col, err)
}
