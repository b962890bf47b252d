// SPDX-License-Identifier: MIT

// Package coverage - aggregation.
//
// Purpose:
//   - Combine single-camera strengths into a per-point strength
//     (min within a view, max across views, occlusion gating).
//   - Map a task's surface into a PointCache and average it.

package coverage

import (
	"fmt"
	"math"

	"github.com/katalvlaran/covtensor/geometry"
)

// Strength returns the coverage strength of triangle t, in [0, 1].
// MAIN DESCRIPTION:
//   - Disjunction of conjunctions: every camera of a view must see t (the
//     view scores its minimum); any view suffices (t scores the maximum).
//
// Implementation:
//   - Stage 1: enumerate views over subset (nil: all active cameras) with
//     the model's ocular count. No views ⇒ 0.
//   - Stage 2: per view, a camera scoring 0, or (only then tested) occluded
//     from t's centre, zeroes the view and ends it early.
//   - Stage 3: keep the maximum; stop as soon as it reaches exactly 1.
//
// Errors:
//   - ErrUnknownCamera for a subset or view naming an unregistered camera.
//
// Complexity:
//   - Time O(V·k·(1 + O)) for V views of k cameras and O occluders.
func (m *Model) Strength(t *TriangleTensor, occluders []geometry.Triangle, subset []string) (float64, error) {
	views, err := m.Views(subset, m.ocular)
	if err != nil {
		return 0, err
	}

	return m.aggregate(t, occluders, views)
}

// aggregate runs Stages 2 and 3 of Strength over precomputed views.
func (m *Model) aggregate(t *TriangleTensor, occluders []geometry.Triangle, views [][]string) (float64, error) {
	best := 0.0
	for vi, view := range views {
		viewStrength := math.Inf(1)
		for _, name := range view {
			c, ok := m.Camera(name)
			if !ok {
				return 0, fmt.Errorf("view %d: %q: %w", vi, name, ErrUnknownCamera)
			}
			s := m.strength(c, t)
			if s == 0 || m.occluded(t.Centre(), c, occluders) {
				viewStrength = 0
				break
			}
			viewStrength = math.Min(viewStrength, s)
		}
		if math.IsInf(viewStrength, 1) {
			// An empty view constrains nothing and contributes nothing.
			continue
		}
		best = math.Max(best, viewStrength)
		if best == 1 {
			Logger().Debug("view short-circuit", "view", vi, "of", len(views))
			break
		}
	}

	return best, nil
}

// Coverage maps every triangle of task to its coverage strength.
// MAIN DESCRIPTION:
//   - Key: DirectionalPoint at the triangle centre, ρ = angle(normal, +z),
//     η = atan2(normal.y, normal.x).
//   - Occluders: every camera housing and scene object triangle.
//   - Views use task.Params.Ocular.
//
// Errors:
//   - ErrNilTask, ErrUnknownCamera.
func (m *Model) Coverage(task *Task, subset []string) (PointCache, error) {
	if task == nil {
		return nil, ErrNilTask
	}
	views, err := m.Views(subset, task.Params.Ocular)
	if err != nil {
		return nil, fmt.Errorf("task %q: %w", task.Name, err)
	}
	occluders := m.Occluders()

	cache := make(PointCache, len(task.Triangles))
	for _, t := range task.Triangles {
		s, err := m.aggregate(t, occluders, views)
		if err != nil {
			return nil, fmt.Errorf("task %q: %w", task.Name, err)
		}
		cache[t.Point()] = s
	}
	Logger().Info("coverage computed", "task", task.Name, "points", len(cache), "views", len(views))

	return cache, nil
}

// Performance returns the mean coverage strength of task.
// A nil cache is computed with Coverage; a given cache is assumed to hold
// the task's points.
// Errors: ErrEmptyCoverage when there is no point to average (a task with
// no surface has undefined performance), plus Coverage errors.
func (m *Model) Performance(task *Task, subset []string, cache PointCache) (float64, error) {
	if cache == nil {
		var err error
		if cache, err = m.Coverage(task, subset); err != nil {
			return 0, err
		}
	}
	mean, err := cache.Mean()
	if err != nil {
		if task != nil {
			return 0, fmt.Errorf("task %q: %w", task.Name, err)
		}

		return 0, err
	}

	return mean, nil
}
