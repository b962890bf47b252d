// SPDX-License-Identifier: MIT

// Package coverage - camera tensor.
//
// Purpose:
//   - Own a camera's intrinsics, task parameters and pose, and keep a 3×3
//     basis derived from its frustum hull in lockstep with them.
//   - Score single-camera strength toward a TriangleTensor and the weighted
//     vision distance toward any oriented tensor.

package coverage

import (
	"math"

	"github.com/katalvlaran/covtensor/camera"
	"github.com/katalvlaran/covtensor/geometry"
	"github.com/katalvlaran/covtensor/tensor"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	// centreEpsilon keeps coincident centres from producing a zero distance.
	centreEpsilon = 1e-4

	opBuild = "build basis"
)

var (
	// sqrt2 is the chord between unit vectors 90° apart; misalignment beyond
	// it scores zero.
	sqrt2 = math.Sqrt2

	// sqrt8 normalises the Frobenius distance in VisionDistance.
	sqrt8 = math.Sqrt(8)
)

// Oriented is anything carrying a world-frame centre and a 3×3 basis.
type Oriented interface {
	Centre() r3.Vec
	Basis() *tensor.Tensor
}

// CameraTensor is a camera together with the basis of its visibility volume.
// The basis is rebuilt from scratch by every mutator; it is never stale.
type CameraTensor struct {
	posable

	name      string
	params    camera.Params
	task      camera.TaskParams
	active    bool
	triangles []*TriangleTensor

	basis  *tensor.Tensor
	centre r3.Vec
}

// Compile-time assertions.
var (
	_ Oriented      = (*CameraTensor)(nil)
	_ Mount         = (*CameraTensor)(nil)
	_ poseListener  = (*CameraTensor)(nil)
	_ mountRegistry = (*CameraTensor)(nil)
)

// CameraOption configures a CameraTensor at construction.
type CameraOption func(*CameraTensor)

// WithPose sets the pose relative to the mount (absolute when unmounted).
func WithPose(p geometry.Pose) CameraOption { return func(c *CameraTensor) { c.pose = p } }

// WithMountPose sets the attachment offset handed to entities mounted on the camera.
func WithMountPose(p geometry.Pose) CameraOption { return func(c *CameraTensor) { c.mountPose = p } }

// WithMount attaches the camera to m.
func WithMount(m Mount) CameraOption { return func(c *CameraTensor) { c.mount = m } }

// WithActive sets whether the camera takes part in views (default true).
func WithActive(active bool) CameraOption { return func(c *CameraTensor) { c.active = active } }

// WithTriangles gives the camera opaque triangles (its housing), expressed
// in the camera frame. They are mounted on the camera and occlude others.
func WithTriangles(ts ...*TriangleTensor) CameraOption {
	return func(c *CameraTensor) { c.triangles = append(c.triangles, ts...) }
}

// NewCameraTensor builds a camera tensor.
// MAIN DESCRIPTION:
//   - Derive the visibility basis of a camera for the given task.
//
// Implementation:
//   - Stage 1: apply options (active by default, identity pose).
//   - Stage 2: generate the frustum hull; an empty hull is ErrEmptyHull.
//   - Stage 3: build basis and centre; mount the opaque triangles.
//
// Errors:
//   - camera.ErrInvalidParams, ErrEmptyHull, tensor.ErrNaNInf (all wrapped
//     with the camera name).
func NewCameraTensor(name string, task camera.TaskParams, params camera.Params, opts ...CameraOption) (*CameraTensor, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	c := &CameraTensor{name: name, params: params, task: task, active: true}
	for _, opt := range opts {
		opt(c)
	}
	basis, centre, err := c.derive(c.params, c.task, c.AbsolutePose())
	if err != nil {
		return nil, err
	}
	c.basis, c.centre = basis, centre
	rehome(c, nil, c.mount)
	for _, t := range c.triangles {
		if err = t.SetMount(c); err != nil {
			return nil, cameraErrorf(name, "mount triangle", err)
		}
	}

	return c, nil
}

// derive computes the basis and world centre for a candidate state without
// touching the receiver.
// MAIN DESCRIPTION:
//   - hull points 0..3 are the near plane and 4..7 the far plane; with
//     centre c = mean(hull):
//     axis1 = mean(hull[4:8]) − c         (toward the far face)
//     axis2 = mean(hull[2,3,6,7]) − c     (toward the +y face)
//     axis3 = mean(hull[0,3,4,7]) − c     (toward the −x face)
//   - axes are rotated into the world frame; c is mapped by the pose.
//
// Complexity: O(1).
func (c *CameraTensor) derive(params camera.Params, task camera.TaskParams, pose geometry.Pose) (*tensor.Tensor, r3.Vec, error) {
	hull, err := camera.Hull(params, task)
	if err != nil {
		return nil, r3.Vec{}, cameraErrorf(c.name, opBuild, err)
	}
	if len(hull) == 0 {
		return nil, r3.Vec{}, cameraErrorf(c.name, opBuild, ErrEmptyHull)
	}

	centre, _ := geometry.Centroid(hull...)
	far, _ := geometry.Centroid(hull[4:]...)
	side, _ := geometry.Centroid(hull[2], hull[3], hull[6], hull[7])
	lateral, _ := geometry.Centroid(hull[0], hull[3], hull[4], hull[7])

	basis, err := tensor.FromColumns(
		pose.Rotate(r3.Sub(far, centre)),
		pose.Rotate(r3.Sub(side, centre)),
		pose.Rotate(r3.Sub(lateral, centre)),
	)
	if err != nil {
		return nil, r3.Vec{}, cameraErrorf(c.name, opBuild, err)
	}
	Logger().Debug("camera basis rebuilt", "camera", c.name)

	return basis, pose.Map(centre), nil
}

// commit rebuilds for the candidate state and applies it only on success.
func (c *CameraTensor) commit(params camera.Params, task camera.TaskParams, pose geometry.Pose, mount Mount) error {
	basis, centre, err := c.derive(params, task, composePose(mount, pose))
	if err != nil {
		return err
	}
	if mount != c.mount {
		rehome(c, c.mount, mount)
	}
	c.params, c.task, c.pose, c.mount = params, task, pose, mount
	c.basis, c.centre = basis, centre

	return c.notify()
}

// Name returns the camera name.
func (c *CameraTensor) Name() string { return c.name }

// Params returns a copy of the intrinsic parameters.
func (c *CameraTensor) Params() camera.Params { return c.params }

// TaskParams returns a copy of the task parameters.
func (c *CameraTensor) TaskParams() camera.TaskParams { return c.task }

// Active reports whether the camera takes part in views.
func (c *CameraTensor) Active() bool { return c.active }

// SetActive toggles participation in views. The basis does not depend on it.
func (c *CameraTensor) SetActive(active bool) { c.active = active }

// Triangles returns the opaque triangles mounted on the camera.
func (c *CameraTensor) Triangles() []*TriangleTensor { return c.triangles }

// SetParam changes one intrinsic parameter and rebuilds the basis.
// On error (unknown key, bad value, empty hull) the camera is unchanged.
func (c *CameraTensor) SetParam(key string, value any) error {
	params := c.params
	if err := params.Set(key, value); err != nil {
		return cameraErrorf(c.name, "set param", err)
	}

	return c.commit(params, c.task, c.pose, c.mount)
}

// SetTaskParams replaces the task parameters and rebuilds the basis.
func (c *CameraTensor) SetTaskParams(task camera.TaskParams) error {
	return c.commit(c.params, task, c.pose, c.mount)
}

// SetPose sets the pose relative to the mount and rebuilds the basis.
func (c *CameraTensor) SetPose(p geometry.Pose) error {
	return c.commit(c.params, c.task, p, c.mount)
}

// SetAbsolutePose places the camera at p in the world frame by solving for
// the relative pose against the current mount.
func (c *CameraTensor) SetAbsolutePose(p geometry.Pose) error {
	rel := p
	if c.mount != nil {
		rel = c.mount.MountPose().Inverse().Compose(p)
	}

	return c.commit(c.params, c.task, rel, c.mount)
}

// SetMountPose changes the attachment offset for children.
func (c *CameraTensor) SetMountPose(p geometry.Pose) error {
	c.mountPose = p

	return c.notify()
}

// SetMount attaches the camera to m (nil detaches) and rebuilds the basis.
func (c *CameraTensor) SetMount(m Mount) error {
	return c.commit(c.params, c.task, c.pose, m)
}

// poseChanged rebuilds after the mount moved.
func (c *CameraTensor) poseChanged() error {
	return c.commit(c.params, c.task, c.pose, c.mount)
}

// Position returns the optical centre in the world frame.
func (c *CameraTensor) Position() r3.Vec { return c.AbsolutePose().T }

// Centre returns the world-frame centroid of the frustum.
func (c *CameraTensor) Centre() r3.Vec { return c.centre }

// Basis returns a copy of the current basis.
func (c *CameraTensor) Basis() *tensor.Tensor { return c.basis.Clone() }

// Axis returns the first basis column (t[0,0], t[1,0], t[2,0]): the
// direction from the frustum centre toward the far face.
func (c *CameraTensor) Axis() r3.Vec {
	a, _ := c.basis.Column(0)

	return a
}

// Reach returns schatten(basis)², the distance scale of Strength.
func (c *CameraTensor) Reach() float64 {
	s, _ := c.basis.Schatten()

	return s * s
}

// VisionDistance weighs the centre distance by the basis misalignment.
// MAIN DESCRIPTION:
//   - frob = ‖unit(self) − negate(unit(other))‖_F; the surface normal and
//     the camera axis are expected to be anti-parallel.
//   - distance = (euclid(centres) + 1e-4) / (1 − frob/√8).
//
// Errors:
//   - ErrDegenerateDistance when frob == √8 (zero denominator).
//
// Complexity: O(1).
func (c *CameraTensor) VisionDistance(other Oriented) (float64, error) {
	cu, err := c.basis.Unit()
	if err != nil {
		return 0, cameraErrorf(c.name, "vision distance", err)
	}
	ou, err := other.Basis().Unit()
	if err != nil {
		return 0, cameraErrorf(c.name, "vision distance", err)
	}
	on, err := ou.Negate()
	if err != nil {
		return 0, cameraErrorf(c.name, "vision distance", err)
	}
	frob, err := cu.Frobenius(on)
	if err != nil {
		return 0, cameraErrorf(c.name, "vision distance", err)
	}

	den := 1 - frob/sqrt8
	if den == 0 {
		return 0, cameraErrorf(c.name, "vision distance", ErrDegenerateDistance)
	}

	return (geometry.Distance(c.centre, other.Centre()) + centreEpsilon) / den, nil
}

// Strength scores how well the camera sees the triangle, in [0, 1].
// MAIN DESCRIPTION:
//   - re = 1 − ‖centre − t.centre‖ / schatten²   (distance vs. reach)
//   - rr = 1 − ‖unit(axis) − (−unit(t.axis))‖ / √2 (axis vs. reversed normal)
//   - each term is clamped to [0, 1]; the result is sqrt(re·rr).
//
// Behavior highlights:
//   - A triangle facing away by 90° or more scores 0.
//   - Non-finite intermediates score 0.
//
// Complexity: O(1).
func (c *CameraTensor) Strength(t *TriangleTensor) float64 {
	reach := c.Reach()
	if reach == 0 {
		return 0
	}
	re := clamp01(1 - geometry.Distance(c.centre, t.Centre())/reach)
	rot := geometry.Distance(geometry.Unit(c.Axis()), r3.Scale(-1, geometry.Unit(t.Axis())))
	rr := clamp01(1 - rot/sqrt2)

	return math.Sqrt(re * rr)
}

// clamp01 bounds v to [0, 1], mapping NaN to 0.
func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}

	return v
}
