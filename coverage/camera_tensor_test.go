// SPDX-License-Identifier: MIT
package coverage_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/covtensor/camera"
	"github.com/katalvlaran/covtensor/coverage"
	"github.com/katalvlaran/covtensor/geometry"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

// TestCameraTensorBasis checks the frustum-derived basis at identity pose.
func TestCameraTensorBasis(t *testing.T) {
	c := newCamera(t, "cam")

	requireVecNear(t, r3.Vec{Z: frustumCentreZ}, c.Centre(), 1e-9)
	requireVecNear(t, r3.Vec{Z: frustumAxisZ}, c.Axis(), 1e-9)
	require.InDelta(t, frustumReach, c.Reach(), 1e-6)

	b := c.Basis()
	side, err := b.Column(1)
	require.NoError(t, err)
	requireVecNear(t, r3.Vec{Y: frustumSideY}, side, 1e-9)
	lat, err := b.Column(2)
	require.NoError(t, err)
	requireVecNear(t, r3.Vec{X: frustumLatX}, lat, 1e-9)

	require.True(t, c.Active())
	require.Equal(t, r3.Vec{}, c.Position())
}

// TestCameraTensorPose rotates the camera to look down −z from z = 1000.
func TestCameraTensorPose(t *testing.T) {
	pose := geometry.NewPose(r3.Vec{Z: 1000}, math.Pi, r3.Vec{X: 1})
	c := newCamera(t, "cam", coverage.WithPose(pose))

	requireVecNear(t, r3.Vec{Z: 1000 - frustumCentreZ}, c.Centre(), 1e-6)
	requireVecNear(t, r3.Vec{Z: -frustumAxisZ}, c.Axis(), 1e-6)
	requireVecNear(t, r3.Vec{Z: 1000}, c.Position(), 1e-12)

	side, err := c.Basis().Column(1)
	require.NoError(t, err)
	requireVecNear(t, r3.Vec{Y: -frustumSideY}, side, 1e-6)
}

// TestCameraTensorRebuildDeterministic: identical inputs give equal bases,
// and returning to a pose restores the first basis without drift.
func TestCameraTensorRebuildDeterministic(t *testing.T) {
	a := newCamera(t, "a")
	b := newCamera(t, "b")
	eq, err := a.Basis().Equal(b.Basis())
	require.NoError(t, err)
	require.True(t, eq)

	before := a.Basis()
	for i := 0; i < 50; i++ {
		require.NoError(t, a.SetPose(geometry.NewPose(r3.Vec{X: float64(i)}, 0.1*float64(i), r3.Vec{X: 1, Y: 1})))
	}
	require.NoError(t, a.SetPose(geometry.Identity()))
	eq, err = a.Basis().Equal(before)
	require.NoError(t, err)
	require.True(t, eq)
	require.Equal(t, before.String(), a.Basis().String())
}

// TestCameraTensorEmptyHull covers construction and mutation failures.
func TestCameraTensorEmptyHull(t *testing.T) {
	_, err := coverage.NewCameraTensor("cam", camera.DefaultTaskParams(), fixtureParams(t))
	require.ErrorIs(t, err, coverage.ErrEmptyHull)

	_, err = coverage.NewCameraTensor("", fixtureTask(), fixtureParams(t))
	require.ErrorIs(t, err, coverage.ErrEmptyName)

	_, err = coverage.NewCameraTensor("cam", fixtureTask(), camera.Params{})
	require.ErrorIs(t, err, camera.ErrInvalidParams)
}

// TestCameraTensorAtomicMutation: a failing mutator leaves state and basis intact.
func TestCameraTensorAtomicMutation(t *testing.T) {
	c := newCamera(t, "cam")
	before := c.Basis()
	params := c.Params()

	// 0.5 mm/px at 1 mm pixels puts the far plane (6) inside the lens (12).
	err := c.SetParam("s", 1.0)
	require.ErrorIs(t, err, coverage.ErrEmptyHull)
	require.Equal(t, params, c.Params())
	eq, err := c.Basis().Equal(before)
	require.NoError(t, err)
	require.True(t, eq)

	require.ErrorIs(t, c.SetParam("zoom", 2), camera.ErrUnknownParam)
	require.ErrorIs(t, c.SetTaskParams(camera.DefaultTaskParams()), coverage.ErrEmptyHull)
	require.Equal(t, fixtureTask(), c.TaskParams())

	// A valid change commits both the parameter and the new basis.
	require.NoError(t, c.SetParam("f", 24))
	require.Equal(t, 24.0, c.Params().F)
	neq, err := c.Basis().NotEqual(before)
	require.NoError(t, err)
	require.True(t, neq)
}

// TestCameraTensorBasisIsCopy: callers cannot corrupt the cached basis.
func TestCameraTensorBasisIsCopy(t *testing.T) {
	c := newCamera(t, "cam")
	b := c.Basis()
	n, err := b.Negate()
	require.NoError(t, err)
	neq, err := n.NotEqual(c.Basis())
	require.NoError(t, err)
	require.True(t, neq)
	requireVecNear(t, r3.Vec{Z: frustumAxisZ}, c.Axis(), 1e-9)
}

// TestCameraStrength covers the canonical strength cases.
func TestCameraStrength(t *testing.T) {
	c := newCamera(t, "cam")

	cases := []struct {
		name    string
		tri     *coverage.TriangleTensor
		atLeast float64
		atMost  float64
	}{
		{"facing at frustum centre", facingTriangle(t), 0.9, 1},
		{"behind and facing away", behindTriangle(t), 0, 0},
		{"edge-on", newTriangle(t,
			r3.Vec{Y: -10, Z: 600}, r3.Vec{Y: 10, Z: 600}, r3.Vec{Z: 620}), 0, 1e-6},
		{"beyond reach", newTriangle(t,
			r3.Vec{X: -10, Y: -10, Z: 5e5}, r3.Vec{X: -10, Y: 20, Z: 5e5}, r3.Vec{X: 20, Y: -10, Z: 5e5}), 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := c.Strength(tc.tri)
			require.GreaterOrEqual(t, s, tc.atLeast)
			require.LessOrEqual(t, s, tc.atMost)
		})
	}
}

// TestCameraStrengthBounded: randomly placed triangles always score in [0, 1].
func TestCameraStrengthBounded(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	c := newCamera(t, "cam", coverage.WithPose(geometry.NewPose(r3.Vec{X: 50, Y: -20}, 0.3, r3.Vec{Y: 1})))
	vec := func(scale float64) r3.Vec {
		return r3.Vec{X: (rng.Float64() - 0.5) * scale, Y: (rng.Float64() - 0.5) * scale, Z: rng.Float64() * scale}
	}
	for i := 0; i < 500; i++ {
		base := vec(2000)
		tri, err := coverage.NewTriangleTensor([]r3.Vec{
			r3.Add(base, vec(50)), r3.Add(base, vec(50)), r3.Add(base, vec(50)),
		})
		if err != nil {
			continue
		}
		s := c.Strength(tri)
		require.False(t, math.IsNaN(s))
		require.GreaterOrEqual(t, s, 0.0)
		require.LessOrEqual(t, s, 1.0)
	}
}

// TestVisionDistance checks the weighted distance and its degenerate case.
func TestVisionDistance(t *testing.T) {
	c := newCamera(t, "cam")

	// Misalignment of the facing triangle's basis works out to frob = 2.
	d, err := c.VisionDistance(facingTriangle(t))
	require.NoError(t, err)
	require.InDelta(t, 1e-4/(1-2/math.Sqrt(8)), d, 1e-9)

	// Against itself every column is exactly reversed: frob = √8.
	_, err = c.VisionDistance(c)
	require.ErrorIs(t, err, coverage.ErrDegenerateDistance)
}
