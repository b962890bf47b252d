// SPDX-License-Identifier: MIT

package geometry

import "errors"

var (
	// ErrVertexCount indicates a triangle was given other than three vertices.
	ErrVertexCount = errors.New("geometry: a triangle requires exactly three vertices")

	// ErrDegenerateTriangle indicates collinear or coincident vertices.
	ErrDegenerateTriangle = errors.New("geometry: degenerate triangle")

	// ErrNoPoints indicates an empty point set where at least one point is required.
	ErrNoPoints = errors.New("geometry: empty point set")
)
