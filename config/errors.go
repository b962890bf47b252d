// SPDX-License-Identifier: MIT

package config

import "errors"

var (
	// ErrDecode indicates a document that is not valid YAML for File.
	ErrDecode = errors.New("config: cannot decode document")

	// ErrBadVector indicates a position, axis or vertex without exactly three components.
	ErrBadVector = errors.New("config: vector must have 3 components")

	// ErrBadPose indicates a rotation angle given without a rotation axis.
	ErrBadPose = errors.New("config: rotation angle needs a non-zero axis")

	// ErrBadLogLevel indicates an unrecognised log_level.
	ErrBadLogLevel = errors.New("config: unknown log level")

	// ErrUnknownMount indicates a camera mounted on a name that is not an
	// object or an earlier camera.
	ErrUnknownMount = errors.New("config: unknown mount")
)
