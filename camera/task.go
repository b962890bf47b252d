// SPDX-License-Identifier: MIT

package camera

import (
	"math"
	"sort"
)

// Recognised task parameter keys.
const (
	KeyOcular          = "ocular"
	KeyBoundaryPadding = "boundary_padding"
	KeyResMax          = "res_max"
	KeyResMin          = "res_min"
	KeyBlurMax         = "blur_max"
	KeyAngleMax        = "angle_max"
)

// TaskParams are the requirements of a coverage task.
//   - Ocular: number of cameras that must jointly see a point (view size).
//   - BoundaryPadding: pixels excluded at each image border.
//   - ResMax: ideal (finest) pixel footprint in mm/pixel, per axis.
//   - ResMin: coarsest acceptable pixel footprint in mm/pixel, per axis.
//   - BlurMax: ideal and acceptable blur circle diameter in pixels.
//   - AngleMax: ideal and acceptable view angle in radians.
type TaskParams struct {
	Ocular          int
	BoundaryPadding float64
	ResMax          [2]float64
	ResMin          [2]float64
	BlurMax         [2]float64
	AngleMax        [2]float64
}

// DefaultTaskParams returns the documented defaults: one ocular, no padding,
// unbounded resolution and blur tolerance, and a right-angle view limit.
// The defaults place no bound on the far plane; a hull needs at least one
// finite ResMin or BlurMax[1] to be non-empty.
func DefaultTaskParams() TaskParams {
	return TaskParams{
		Ocular:          1,
		BoundaryPadding: 0,
		ResMax:          [2]float64{0, 0},
		ResMin:          [2]float64{math.Inf(1), math.Inf(1)},
		BlurMax:         [2]float64{1, math.Inf(1)},
		AngleMax:        [2]float64{math.Pi / 2, math.Pi / 2},
	}
}

// ParseTaskParams merges raw over DefaultTaskParams. Unknown keys are
// returned (sorted) rather than rejected; the defaults are never mutated.
func ParseTaskParams(raw map[string]any) (TaskParams, []string, error) {
	tp := DefaultTaskParams()
	var ignored []string
	for key, v := range raw {
		var err error
		switch key {
		case KeyOcular:
			f, ok := toFloat(v)
			if !ok || f < 1 || f != math.Trunc(f) {
				err = paramErrorf(key, ErrBadParamValue)
			}
			tp.Ocular = int(f)
		case KeyBoundaryPadding:
			f, ok := toFloat(v)
			if !ok || f < 0 {
				err = paramErrorf(key, ErrBadParamValue)
			}
			tp.BoundaryPadding = f
		case KeyResMax, KeyResMin, KeyBlurMax, KeyAngleMax:
			pair, ok := toPair(v, true)
			if !ok {
				err = paramErrorf(key, ErrBadParamValue)
			}
			*tp.pair(key) = pair
		default:
			ignored = append(ignored, key)
		}
		if err != nil {
			return TaskParams{}, nil, err
		}
	}
	sort.Strings(ignored)

	return tp, ignored, nil
}

// pair returns the address of the pair-valued field named key.
func (tp *TaskParams) pair(key string) *[2]float64 {
	switch key {
	case KeyResMax:
		return &tp.ResMax
	case KeyResMin:
		return &tp.ResMin
	case KeyBlurMax:
		return &tp.BlurMax
	default:
		return &tp.AngleMax
	}
}
