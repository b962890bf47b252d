// SPDX-License-Identifier: MIT

package geometry

import (
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Pose is a rigid transformation: a rotation R followed by a translation T.
// The zero value is the identity pose.
type Pose struct {
	T r3.Vec      // translation
	R r3.Rotation // rotation; the zero quaternion is read as identity
}

// identityRotation is the unit quaternion 1.
var identityRotation = r3.Rotation{Real: 1}

// Identity returns the identity pose.
func Identity() Pose { return Pose{R: identityRotation} }

// NewPose returns the pose that rotates by angle radians about axis and then
// translates by t.
func NewPose(t r3.Vec, angle float64, axis r3.Vec) Pose {
	if angle == 0 {
		return Pose{T: t, R: identityRotation}
	}

	return Pose{T: t, R: r3.NewRotation(angle, axis)}
}

// Rotation returns R, mapping the zero quaternion to the identity.
func (p Pose) Rotation() r3.Rotation {
	if p.R == (r3.Rotation{}) {
		return identityRotation
	}

	return p.R
}

// Rotate applies only the rotational part of p to v.
func (p Pose) Rotate(v r3.Vec) r3.Vec { return p.Rotation().Rotate(v) }

// Map applies p to the point v: R·v + T.
func (p Pose) Map(v r3.Vec) r3.Vec { return r3.Add(p.Rotate(v), p.T) }

// Compose returns the pose equivalent to applying q first and then p.
func (p Pose) Compose(q Pose) Pose {
	r := quat.Mul(quat.Number(p.Rotation()), quat.Number(q.Rotation()))
	if n := quat.Abs(r); n != 0 && n != 1 {
		r = quat.Scale(1/n, r)
	}

	return Pose{T: p.Map(q.T), R: r3.Rotation(r)}
}

// Inverse returns the pose that undoes p.
func (p Pose) Inverse() Pose {
	inv := r3.Rotation(quat.Conj(quat.Number(p.Rotation())))

	return Pose{T: r3.Scale(-1, inv.Rotate(p.T)), R: inv}
}
