// SPDX-License-Identifier: MIT

package camera

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// HullSize is the number of points in a non-empty frustum hull.
const HullSize = 8

// Depths returns the near and far depth (camera z, mm) at which every task
// requirement that bounds depth is satisfied.
// MAIN DESCRIPTION:
//   - Resolution: the footprint of a pixel at depth z is s·z/f. The far
//     plane is where it reaches ResMin on the coarser axis; the near plane is
//     where it reaches ResMax on the finer axis.
//   - Blur: with aperture A focused at zS the blur circle at depth z is
//     A·f·|z−zS| / (z·(zS−f)) mm. Solving for BlurMax[1] pixels gives
//     zS/(1+k) ≤ z ≤ zS/(1−k) with k = c·s·(zS−f)/(A·f); k ≥ 1 leaves the far
//     side unbounded. A pinhole (A == 0) or zS ≤ f adds no blur bound.
//   - The near plane never lies in front of the focal length.
//
// The far depth may be +Inf when no requirement bounds it.
func Depths(p Params, tp TaskParams) (near, far float64) {
	near, far = p.F, math.Inf(1)
	for i := 0; i < 2; i++ {
		near = math.Max(near, tp.ResMax[i]*p.F/p.S[i])
		far = math.Min(far, tp.ResMin[i]*p.F/p.S[i])
	}

	c := tp.BlurMax[1]
	if p.A > 0 && p.ZS > p.F && !math.IsInf(c, 1) {
		s := math.Min(p.S[0], p.S[1])
		k := c * s * (p.ZS - p.F) / (p.A * p.F)
		near = math.Max(near, p.ZS/(1+k))
		if k < 1 {
			far = math.Min(far, p.ZS/(1-k))
		}
	}

	return near, far
}

// Hull returns the 8-point frustum of the camera for a task, in camera frame
// (optical axis +z).
// MAIN DESCRIPTION:
//   - Points 0..3 lie on the near plane, 4..7 on the far plane.
//   - Within a plane the image corners (after boundary padding) are ordered
//     (−x,−y), (+x,−y), (+x,+y), (−x,+y) for a centred principal point, so
//     {2,3,6,7} is the +y face and {0,3,4,7} is the −x face.
//
// Returns an empty hull (nil, nil) when the task leaves no usable depth
// range or the padding consumes the image; returns ErrInvalidParams for
// intrinsics that cannot describe a camera.
//
// Complexity: O(1).
func Hull(p Params, tp TaskParams) ([]r3.Vec, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	near, far := Depths(p, tp)
	if math.IsInf(far, 1) || math.IsNaN(far) || far <= near {
		return nil, nil
	}

	pad := tp.BoundaryPadding
	u0, u1 := pad, p.Dim[0]-pad
	v0, v1 := pad, p.Dim[1]-pad
	if u0 >= u1 || v0 >= v1 {
		return nil, nil
	}
	o := p.Principal()
	corners := [4][2]float64{{u0, v0}, {u1, v0}, {u1, v1}, {u0, v1}}

	hull := make([]r3.Vec, 0, HullSize)
	for _, z := range [2]float64{near, far} {
		for _, uv := range corners {
			hull = append(hull, r3.Vec{
				X: (uv[0] - o[0]) * p.S[0] * z / p.F,
				Y: (uv[1] - o[1]) * p.S[1] * z / p.F,
				Z: z,
			})
		}
	}

	return hull, nil
}
