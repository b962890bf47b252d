// SPDX-License-Identifier: MIT
package camera_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/covtensor/camera"
	"github.com/stretchr/testify/require"
)

// machineVision returns a 1600×1200 pinhole camera with 5 µm pixels and a
// 12 mm lens, the fixture used across the camera tests.
func machineVision(t *testing.T) camera.Params {
	t.Helper()
	p, ignored, err := camera.ParseParams(map[string]any{
		"dim": []any{1600, 1200},
		"f":   12,
		"s":   0.005,
	})
	require.NoError(t, err)
	require.Empty(t, ignored)

	return p
}

// TestParseParams checks key filtering and the scalar pixel-size broadcast.
func TestParseParams(t *testing.T) {
	p, ignored, err := camera.ParseParams(map[string]any{
		"A":     4.0,
		"dim":   []float64{640, 480},
		"f":     8,
		"o":     []any{300.0, 250},
		"s":     0.01,
		"zS":    700,
		"color": "red",
		"gain":  2,
	})
	require.NoError(t, err)
	require.Equal(t, []string{"color", "gain"}, ignored)
	require.Equal(t, 4.0, p.A)
	require.Equal(t, [2]float64{640, 480}, p.Dim)
	require.Equal(t, 8.0, p.F)
	require.Equal(t, [2]float64{300, 250}, p.Principal())
	require.Equal(t, [2]float64{0.01, 0.01}, p.S)
	require.Equal(t, 700.0, p.ZS)
	require.NoError(t, p.Validate())
}

// TestParseParamsBadValues ensures wrongly typed values fail with context.
func TestParseParamsBadValues(t *testing.T) {
	bad := []map[string]any{
		{"f": "twelve"},
		{"dim": 1600},
		{"o": []any{1, 2, 3}},
		{"s": []any{"a", "b"}},
	}
	for _, raw := range bad {
		_, _, err := camera.ParseParams(raw)
		require.ErrorIs(t, err, camera.ErrBadParamValue, "%v", raw)
	}
}

// TestParamsSet covers the single-key mutator used by camera tensors.
func TestParamsSet(t *testing.T) {
	p := machineVision(t)
	require.Equal(t, [2]float64{800, 600}, p.Principal(), "defaults to sensor centre")

	require.NoError(t, p.Set("s", []any{0.004, 0.006}))
	require.Equal(t, [2]float64{0.004, 0.006}, p.S)
	require.ErrorIs(t, p.Set("zoom", 2), camera.ErrUnknownParam)
}

// TestValidate rejects intrinsics that cannot form a frustum.
func TestValidate(t *testing.T) {
	var zero camera.Params
	require.ErrorIs(t, zero.Validate(), camera.ErrInvalidParams)

	p := machineVision(t)
	p.S = [2]float64{0.005, 0}
	require.ErrorIs(t, p.Validate(), camera.ErrInvalidParams)
}

// TestParseTaskParams merges over defaults without mutating them.
func TestParseTaskParams(t *testing.T) {
	tp, ignored, err := camera.ParseTaskParams(map[string]any{
		"ocular":   2,
		"res_min":  0.5,
		"blur_max": []any{1, 3},
		"weights":  1,
	})
	require.NoError(t, err)
	require.Equal(t, []string{"weights"}, ignored)
	require.Equal(t, 2, tp.Ocular)
	require.Equal(t, [2]float64{0.5, 0.5}, tp.ResMin)
	require.Equal(t, [2]float64{1, 3}, tp.BlurMax)
	require.Equal(t, [2]float64{math.Pi / 2, math.Pi / 2}, tp.AngleMax)

	def := camera.DefaultTaskParams()
	require.Equal(t, 1, def.Ocular)
	require.True(t, math.IsInf(def.ResMin[0], 1))

	_, _, err = camera.ParseTaskParams(map[string]any{"ocular": 0})
	require.ErrorIs(t, err, camera.ErrBadParamValue)
	_, _, err = camera.ParseTaskParams(map[string]any{"boundary_padding": -3})
	require.ErrorIs(t, err, camera.ErrBadParamValue)
}

// TestDepths covers resolution-only and blur-limited depth ranges.
func TestDepths(t *testing.T) {
	p := machineVision(t)
	tp := camera.DefaultTaskParams()
	tp.ResMin = [2]float64{0.5, 0.5}

	near, far := camera.Depths(p, tp)
	require.InDelta(t, 12.0, near, 1e-9, "near plane clamps to the focal length")
	require.InDelta(t, 1200.0, far, 1e-9)

	p.A, p.ZS = 6, 500
	tp.BlurMax = [2]float64{1, 2}
	near, far = camera.Depths(p, tp)
	k := 2 * 0.005 * (500 - 12) / (6 * 12.0)
	require.InDelta(t, 500/(1+k), near, 1e-9)
	require.InDelta(t, 500/(1-k), far, 1e-9)
}

// TestHull checks point count, plane depths and the face ordering.
func TestHull(t *testing.T) {
	p := machineVision(t)
	tp := camera.DefaultTaskParams()
	tp.ResMin = [2]float64{0.5, 0.5}

	hull, err := camera.Hull(p, tp)
	require.NoError(t, err)
	require.Len(t, hull, camera.HullSize)

	for i, q := range hull {
		want := 12.0
		if i >= 4 {
			want = 1200
		}
		require.InDelta(t, want, q.Z, 1e-9, "point %d", i)
	}
	// Far corner (+x,+y): 800 px * 0.005 mm * 1200 / 12.
	require.InDelta(t, 400.0, hull[6].X, 1e-9)
	require.InDelta(t, 300.0, hull[6].Y, 1e-9)
	// {2,3,6,7} share +y; {0,3,4,7} share -x.
	for _, i := range []int{2, 3, 6, 7} {
		require.Positive(t, hull[i].Y)
	}
	for _, i := range []int{0, 3, 4, 7} {
		require.Negative(t, hull[i].X)
	}
}

// TestHullEmpty covers the three ways a task leaves no frustum.
func TestHullEmpty(t *testing.T) {
	p := machineVision(t)

	hull, err := camera.Hull(p, camera.DefaultTaskParams())
	require.NoError(t, err)
	require.Empty(t, hull, "unbounded far plane")

	tp := camera.DefaultTaskParams()
	tp.ResMin = [2]float64{0.5, 0.5}
	tp.ResMax = [2]float64{0.6, 0.6}
	hull, err = camera.Hull(p, tp)
	require.NoError(t, err)
	require.Empty(t, hull, "near beyond far")

	tp.ResMax = [2]float64{0, 0}
	tp.BoundaryPadding = 700
	hull, err = camera.Hull(p, tp)
	require.NoError(t, err)
	require.Empty(t, hull, "padding consumes the image")

	_, err = camera.Hull(camera.Params{}, tp)
	require.ErrorIs(t, err, camera.ErrInvalidParams)
}
