// SPDX-License-Identifier: MIT
package coverage_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/katalvlaran/covtensor/coverage"
	"github.com/katalvlaran/covtensor/geometry"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

// scripted returns a StrengthFunc that answers from scores and records
// which cameras were asked, in order.
func scripted(scores map[string]float64, asked *[]string) coverage.StrengthFunc {
	return func(c *coverage.CameraTensor, _ *coverage.TriangleTensor) float64 {
		*asked = append(*asked, c.Name())

		return scores[c.Name()]
	}
}

func never(r3.Vec, *coverage.CameraTensor, []geometry.Triangle) bool { return false }

// newModel registers one fixture camera per name.
func newModel(t *testing.T, names []string, opts ...coverage.ModelOption) *coverage.Model {
	t.Helper()
	m := coverage.NewModel(opts...)
	for _, n := range names {
		require.NoError(t, m.AddCamera(newCamera(t, n)))
	}

	return m
}

func TestModelRegistry(t *testing.T) {
	m := newModel(t, []string{"b", "a"})
	obj, err := coverage.NewSceneObject("wall", geometry.Identity())
	require.NoError(t, err)
	require.NoError(t, m.AddObject(obj))
	require.NoError(t, m.AddTask(coverage.NewTask("inspect", fixtureTask())))

	require.Equal(t, []string{"a", "b", "wall"}, m.Names())
	require.Equal(t, []string{"a", "b"}, m.CameraNames())
	require.Equal(t, []string{"inspect"}, m.TaskNames())

	_, ok := m.Camera("a")
	require.True(t, ok)
	_, ok = m.Camera("zzz")
	require.False(t, ok)

	_, err = m.Task("inspect")
	require.NoError(t, err)
	_, err = m.Task("missing")
	require.ErrorIs(t, err, coverage.ErrUnknownTask)

	require.ErrorIs(t, m.AddCamera(newCamera(t, "wall")), coverage.ErrDuplicateName)
	require.ErrorIs(t, m.AddTask(coverage.NewTask("a", fixtureTask())), coverage.ErrDuplicateName)
	require.ErrorIs(t, m.AddTask(coverage.NewTask("", fixtureTask())), coverage.ErrEmptyName)
	require.ErrorIs(t, m.AddTask(nil), coverage.ErrNilTask)
}

func TestModelViews(t *testing.T) {
	m := newModel(t, []string{"c", "a", "b"})

	cases := []struct {
		name   string
		subset []string
		ocular int
		want   [][]string
	}{
		{"monocular over all", nil, 1, [][]string{{"a"}, {"b"}, {"c"}}},
		{"binocular over all", nil, 2, [][]string{{"a", "b"}, {"a", "c"}, {"b", "c"}}},
		{"subset sorted and deduplicated", []string{"c", "a", "c"}, 2, [][]string{{"a", "c"}}},
		{"too few cameras", []string{"a"}, 2, nil},
		{"empty subset", []string{}, 1, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			views, err := m.Views(tc.subset, tc.ocular)
			require.NoError(t, err)
			require.Equal(t, tc.want, views)
		})
	}

	c, _ := m.Camera("b")
	c.SetActive(false)
	require.Equal(t, []string{"a", "c"}, m.ActiveCameras())
	views, err := m.Views(nil, 2)
	require.NoError(t, err)
	require.Equal(t, [][]string{{"a", "c"}}, views)
	views, err = m.Views([]string{"b"}, 1)
	require.NoError(t, err)
	require.Empty(t, views)

	_, err = m.Views([]string{"a", "ghost"}, 1)
	require.ErrorIs(t, err, coverage.ErrUnknownCamera)
}

func TestWithOcularPanics(t *testing.T) {
	require.Panics(t, func() { coverage.WithOcular(0) })
}

// TestStrengthAggregation covers min-within-view and max-across-views.
func TestStrengthAggregation(t *testing.T) {
	tri := facingTriangle(t)
	cases := []struct {
		name   string
		ocular int
		scores map[string]float64
		want   float64
		asked  []string
	}{
		{"max across views", 1, map[string]float64{"a": 0.3, "b": 0.7}, 0.7, []string{"a", "b"}},
		{"min within view", 2, map[string]float64{"a": 0.9, "b": 0.4}, 0.4, []string{"a", "b"}},
		{"single zero view", 1, map[string]float64{"a": 0, "b": 0}, 0, []string{"a", "b"}},
		{"zero ends the view", 2, map[string]float64{"a": 0, "b": 0.9}, 0, []string{"a"}},
		{"exact one stops the search", 1, map[string]float64{"a": 1, "b": 0.5}, 1, []string{"a"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var asked []string
			m := newModel(t, []string{"a", "b"},
				coverage.WithOcular(tc.ocular),
				coverage.WithStrength(scripted(tc.scores, &asked)),
				coverage.WithOcclusion(never),
			)
			s, err := m.Strength(tri, nil, nil)
			require.NoError(t, err)
			require.Equal(t, tc.want, s)
			require.Equal(t, tc.asked, asked)
		})
	}
}

// TestStrengthOcclusionGate: occlusion is only consulted for nonzero scores
// and zeroes the view it applies to.
func TestStrengthOcclusionGate(t *testing.T) {
	tri := facingTriangle(t)
	var asked, tested []string
	blocked := map[string]bool{"a": true}
	m := newModel(t, []string{"a", "b", "z"},
		coverage.WithStrength(scripted(map[string]float64{"a": 0.8, "b": 0.6, "z": 0}, &asked)),
		coverage.WithOcclusion(func(_ r3.Vec, c *coverage.CameraTensor, _ []geometry.Triangle) bool {
			tested = append(tested, c.Name())

			return blocked[c.Name()]
		}),
	)
	s, err := m.Strength(tri, nil, nil)
	require.NoError(t, err)
	require.Equal(t, 0.6, s)
	require.Equal(t, []string{"a", "b", "z"}, asked)
	require.Equal(t, []string{"a", "b"}, tested)

	blocked["b"] = true
	s, err = m.Strength(tri, nil, nil)
	require.NoError(t, err)
	require.Zero(t, s)
}

func TestStrengthNoViews(t *testing.T) {
	m := coverage.NewModel()
	s, err := m.Strength(facingTriangle(t), nil, nil)
	require.NoError(t, err)
	require.Zero(t, s)

	m = newModel(t, []string{"a"}, coverage.WithOcular(2))
	s, err = m.Strength(facingTriangle(t), nil, nil)
	require.NoError(t, err)
	require.Zero(t, s)

	_, err = m.Strength(facingTriangle(t), nil, []string{"ghost"})
	require.ErrorIs(t, err, coverage.ErrUnknownCamera)
}

// TestCoverageWithOccluder runs the default collaborators end to end: an
// object between the camera and the surface hides it.
func TestCoverageWithOccluder(t *testing.T) {
	m := newModel(t, []string{"cam"})
	surface := facingTriangle(t)
	task := coverage.NewTask("inspect", fixtureTask(), surface, behindTriangle(t))
	require.NoError(t, m.AddTask(task))

	cache, err := m.Coverage(task, nil)
	require.NoError(t, err)
	require.Len(t, cache, 2)
	require.Greater(t, cache[surface.Point()], 0.9)
	require.Zero(t, cache[behindTriangle(t).Point()])

	blocker := newTriangle(t, r3.Vec{X: -50, Y: -50, Z: 300}, r3.Vec{X: 50, Y: -50, Z: 300}, r3.Vec{Y: 50, Z: 300})
	wall, err := coverage.NewSceneObject("wall", geometry.Identity(), blocker)
	require.NoError(t, err)
	require.NoError(t, m.AddObject(wall))
	require.Len(t, m.Occluders(), 1)

	hidden, err := m.Occluded(surface.Centre(), "cam", m.Occluders())
	require.NoError(t, err)
	require.True(t, hidden)
	_, err = m.Occluded(surface.Centre(), "ghost", nil)
	require.ErrorIs(t, err, coverage.ErrUnknownCamera)

	cache, err = m.Coverage(task, nil)
	require.NoError(t, err)
	require.Zero(t, cache[surface.Point()])

	// Moving the wall aside restores the view.
	require.NoError(t, wall.SetPose(geometry.NewPose(r3.Vec{X: 500}, 0, r3.Vec{})))
	perf, err := m.Performance(task, nil, nil)
	require.NoError(t, err)
	require.Greater(t, perf, 0.45)
}

func TestPerformance(t *testing.T) {
	m := coverage.NewModel()
	p1 := geometry.NewDirectionalPoint(r3.Vec{X: 1}, r3.Vec{Z: 1})
	p2 := geometry.NewDirectionalPoint(r3.Vec{X: 2}, r3.Vec{Z: 1})

	perf, err := m.Performance(nil, nil, coverage.PointCache{p1: 1, p2: 0})
	require.NoError(t, err)
	require.Equal(t, 0.5, perf)

	_, err = m.Performance(nil, nil, coverage.PointCache{})
	require.ErrorIs(t, err, coverage.ErrEmptyCoverage)

	_, err = m.Performance(coverage.NewTask("bare", fixtureTask()), nil, nil)
	require.ErrorIs(t, err, coverage.ErrEmptyCoverage)

	_, err = m.Performance(nil, nil, nil)
	require.ErrorIs(t, err, coverage.ErrNilTask)
}

func TestPointCacheValues(t *testing.T) {
	pc := coverage.PointCache{
		geometry.NewDirectionalPoint(r3.Vec{X: 1}, r3.Vec{Z: 1}): 0.9,
		geometry.NewDirectionalPoint(r3.Vec{X: 2}, r3.Vec{Z: 1}): 0.1,
		geometry.NewDirectionalPoint(r3.Vec{X: 3}, r3.Vec{Z: 1}): 0.5,
	}
	require.Equal(t, []float64{0.1, 0.5, 0.9}, pc.Values())
	mean, err := pc.Mean()
	require.NoError(t, err)
	require.InDelta(t, 0.5, mean, 1e-12)
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	coverage.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { coverage.SetLogger(nil) })

	m := newModel(t, []string{"cam"})
	_, err := m.Coverage(coverage.NewTask("inspect", fixtureTask(), facingTriangle(t)), nil)
	require.NoError(t, err)
	require.Contains(t, buf.String(), "camera basis rebuilt")
	require.Contains(t, buf.String(), "coverage computed")
	require.Contains(t, buf.String(), "task=inspect")

	coverage.SetLogger(nil)
	buf.Reset()
	newCamera(t, "quiet")
	require.Empty(t, buf.String())
}
