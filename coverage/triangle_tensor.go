// SPDX-License-Identifier: MIT

package coverage

import (
	"math"

	"github.com/katalvlaran/covtensor/geometry"
	"github.com/katalvlaran/covtensor/tensor"
	"gonum.org/v1/gonum/spatial/r3"
)

// TriangleTensor is a surface (or occluding) triangle together with the
// basis of its local visibility requirement.
type TriangleTensor struct {
	posable

	local geometry.Triangle // vertices in the triangle's own frame
	world geometry.Triangle // vertices in the world frame

	basis  *tensor.Tensor
	centre r3.Vec
}

// Compile-time assertions.
var (
	_ Oriented      = (*TriangleTensor)(nil)
	_ Mount         = (*TriangleTensor)(nil)
	_ poseListener  = (*TriangleTensor)(nil)
	_ mountRegistry = (*TriangleTensor)(nil)
)

// TriangleOption configures a TriangleTensor at construction.
type TriangleOption func(*TriangleTensor)

// WithTrianglePose sets the pose of the triangle frame relative to its mount.
func WithTrianglePose(p geometry.Pose) TriangleOption {
	return func(t *TriangleTensor) { t.pose = p }
}

// WithTriangleMount attaches the triangle to m.
func WithTriangleMount(m Mount) TriangleOption {
	return func(t *TriangleTensor) { t.mount = m }
}

// NewTriangleTensor builds a triangle tensor from exactly three vertices.
// Errors: geometry.ErrVertexCount, geometry.ErrDegenerateTriangle.
func NewTriangleTensor(vertices []r3.Vec, opts ...TriangleOption) (*TriangleTensor, error) {
	local, err := geometry.NewTriangle(vertices)
	if err != nil {
		return nil, err
	}
	t := &TriangleTensor{local: local}
	for _, opt := range opts {
		opt(t)
	}
	if err = t.rebuild(t.pose, t.mount); err != nil {
		return nil, err
	}
	rehome(t, nil, t.mount)

	return t, nil
}

// localBasis returns the unrotated basis columns of the triangle.
// MAIN DESCRIPTION:
//   - c = centroid; mag = min distance from c to the three edges (radius of
//     the largest circle around c inside the triangle).
//   - n = unit(unit(v0−c) × unit(v1−c)), e = unit(v0−c), o = unit(e × n).
//   - columns are n·mag, e·mag, o·mag.
func localBasis(tri geometry.Triangle) (n, e, o r3.Vec) {
	v := tri.Vertices
	c := tri.Centroid()
	mag := math.Min(
		geometry.PointSegmentDistance(v[0], v[1], c),
		math.Min(
			geometry.PointSegmentDistance(v[0], v[2], c),
			geometry.PointSegmentDistance(v[1], v[2], c),
		),
	)
	u0 := geometry.Unit(r3.Sub(v[0], c))
	u1 := geometry.Unit(r3.Sub(v[1], c))
	n = geometry.Unit(r3.Cross(u0, u1))
	e = u0
	o = geometry.Unit(r3.Cross(e, n))

	return r3.Scale(mag, n), r3.Scale(mag, e), r3.Scale(mag, o)
}

// rebuild derives basis, centre and world vertices for a candidate pose and
// mount, committing all of them only on success.
func (t *TriangleTensor) rebuild(rel geometry.Pose, mount Mount) error {
	pose := composePose(mount, rel)
	n, e, o := localBasis(t.local)
	basis, err := tensor.FromColumns(pose.Rotate(n), pose.Rotate(e), pose.Rotate(o))
	if err != nil {
		return err
	}
	if mount != t.mount {
		rehome(t, t.mount, mount)
	}
	t.pose, t.mount = rel, mount
	t.basis = basis
	t.centre = pose.Map(t.local.Centroid())
	t.world = t.local.Transform(pose)

	return nil
}

// SetPose sets the pose relative to the mount and rebuilds the basis.
func (t *TriangleTensor) SetPose(p geometry.Pose) error {
	if err := t.rebuild(p, t.mount); err != nil {
		return err
	}

	return t.notify()
}

// SetMount attaches the triangle to m (nil detaches) and rebuilds the basis.
func (t *TriangleTensor) SetMount(m Mount) error {
	if err := t.rebuild(t.pose, m); err != nil {
		return err
	}

	return t.notify()
}

// poseChanged rebuilds after the mount moved.
func (t *TriangleTensor) poseChanged() error { return t.SetMount(t.mount) }

// Centre returns the world-frame centroid.
func (t *TriangleTensor) Centre() r3.Vec { return t.centre }

// Basis returns a copy of the current basis.
func (t *TriangleTensor) Basis() *tensor.Tensor { return t.basis.Clone() }

// Axis returns the first basis column: the scaled surface normal.
func (t *TriangleTensor) Axis() r3.Vec {
	a, _ := t.basis.Column(0)

	return a
}

// Triangle returns the world-frame triangle, as used for occlusion.
func (t *TriangleTensor) Triangle() geometry.Triangle { return t.world }

// Local returns the triangle in its own frame.
func (t *TriangleTensor) Local() geometry.Triangle { return t.local }

// Point returns the directional point representing the triangle in a
// coverage cache: its centroid, facing along its normal.
func (t *TriangleTensor) Point() geometry.DirectionalPoint {
	return geometry.NewDirectionalPoint(t.centre, t.Axis())
}
