// SPDX-License-Identifier: MIT
package coverage_test

import (
	"testing"

	"github.com/katalvlaran/covtensor/camera"
	"github.com/katalvlaran/covtensor/coverage"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

// Fixture geometry: a 1600×1200 sensor with 5 µm pixels behind a 12 mm lens,
// limited to 0.5 mm/px. The frustum spans z ∈ [12, 1200] in the camera
// frame, so its centroid sits at z = 606 and its basis is
//
//	[[  0,     0, -202],
//	 [  0, 151.5,    0],
//	 [594,     0,    0]].
const (
	frustumCentreZ = 606.0
	frustumAxisZ   = 594.0
	frustumSideY   = 151.5
	frustumLatX    = -202.0
	frustumReach   = 594*594 + 151.5*151.5 + 202*202
)

func fixtureParams(t *testing.T) camera.Params {
	t.Helper()
	p, _, err := camera.ParseParams(map[string]any{
		"dim": []any{1600, 1200},
		"f":   12,
		"s":   0.005,
	})
	require.NoError(t, err)

	return p
}

func fixtureTask() camera.TaskParams {
	tp := camera.DefaultTaskParams()
	tp.ResMin = [2]float64{0.5, 0.5}

	return tp
}

func newCamera(t *testing.T, name string, opts ...coverage.CameraOption) *coverage.CameraTensor {
	t.Helper()
	c, err := coverage.NewCameraTensor(name, fixtureTask(), fixtureParams(t), opts...)
	require.NoError(t, err)

	return c
}

func newTriangle(t *testing.T, vertices ...r3.Vec) *coverage.TriangleTensor {
	t.Helper()
	tri, err := coverage.NewTriangleTensor(vertices)
	require.NoError(t, err)

	return tri
}

// facingTriangle sits on the frustum centroid of an identity-pose camera
// with its normal pointing back at the lens (−z).
func facingTriangle(t *testing.T) *coverage.TriangleTensor {
	t.Helper()

	return newTriangle(t,
		r3.Vec{X: -10, Y: -10, Z: frustumCentreZ},
		r3.Vec{X: -10, Y: 20, Z: frustumCentreZ},
		r3.Vec{X: 20, Y: -10, Z: frustumCentreZ},
	)
}

// behindTriangle lies behind the lens facing away from it (+z normal).
func behindTriangle(t *testing.T) *coverage.TriangleTensor {
	t.Helper()

	return newTriangle(t,
		r3.Vec{X: -10, Y: -10, Z: -100},
		r3.Vec{X: 20, Y: -10, Z: -100},
		r3.Vec{X: -10, Y: 20, Z: -100},
	)
}

func requireVecNear(t *testing.T, want, got r3.Vec, delta float64) {
	t.Helper()
	require.InDelta(t, want.X, got.X, delta, "x: want %v got %v", want, got)
	require.InDelta(t, want.Y, got.Y, delta, "y: want %v got %v", want, got)
	require.InDelta(t, want.Z, got.Z, delta, "z: want %v got %v", want, got)
}
