// SPDX-License-Identifier: MIT

package camera

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownParam indicates a parameter key the camera does not recognise.
	ErrUnknownParam = errors.New("camera: unknown parameter")

	// ErrBadParamValue indicates a parameter value of the wrong type or arity.
	ErrBadParamValue = errors.New("camera: bad parameter value")

	// ErrInvalidParams indicates intrinsics that cannot describe a camera
	// (non-positive focal length, pixel size or sensor dimensions).
	ErrInvalidParams = errors.New("camera: invalid intrinsic parameters")
)

// paramErrorf attaches the offending key to a sentinel.
func paramErrorf(key string, err error) error {
	return fmt.Errorf("param %q: %w", key, err)
}

// isUnknown reports whether err marks an unrecognised key.
func isUnknown(err error) bool { return errors.Is(err, ErrUnknownParam) }
