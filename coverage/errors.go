// SPDX-License-Identifier: MIT

// Package coverage: sentinel error set.
// Configuration errors (empty hull, bad triangle, unknown camera) fail fast;
// the degenerate vision distance is an explicit error instead of a magic
// number. Match with errors.Is.

package coverage

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyHull indicates a camera whose task leaves no visibility frustum.
	ErrEmptyHull = errors.New("coverage: camera has no coverage (empty frustum hull)")

	// ErrDegenerateDistance indicates the vision distance denominator is zero.
	ErrDegenerateDistance = errors.New("coverage: degenerate vision distance")

	// ErrEmptyName indicates an empty camera, task or object name.
	ErrEmptyName = errors.New("coverage: name is empty")

	// ErrDuplicateName indicates a name already registered in the model.
	ErrDuplicateName = errors.New("coverage: duplicate name")

	// ErrUnknownCamera indicates a subset or view referencing an unregistered camera.
	ErrUnknownCamera = errors.New("coverage: unknown camera")

	// ErrUnknownTask indicates a lookup of an unregistered task.
	ErrUnknownTask = errors.New("coverage: unknown task")

	// ErrNilTask indicates a nil task passed to Coverage or Performance.
	ErrNilTask = errors.New("coverage: task is nil")

	// ErrEmptyCoverage indicates Performance over a cache with no points.
	ErrEmptyCoverage = errors.New("coverage: coverage cache is empty")
)

// cameraErrorf attaches the camera name and operation to a sentinel.
func cameraErrorf(name, op string, err error) error {
	return fmt.Errorf("camera %q: %s: %w", name, op, err)
}
