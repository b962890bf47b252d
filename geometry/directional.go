// SPDX-License-Identifier: MIT

package geometry

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// zAxis is the reference direction for the inclination angle.
var zAxis = r3.Vec{Z: 1}

// DirectionalPoint is a surface point with an outward direction given by the
// inclination Rho (angle from +z, in [0, π]) and azimuth Eta (atan2 of the
// direction's y and x components, in (-π, π]).
// It is comparable and therefore usable as a map key.
type DirectionalPoint struct {
	X, Y, Z  float64
	Rho, Eta float64
}

// NewDirectionalPoint returns the directional point at p facing along dir.
func NewDirectionalPoint(p, dir r3.Vec) DirectionalPoint {
	return DirectionalPoint{
		X: p.X, Y: p.Y, Z: p.Z,
		Rho: Angle(dir, zAxis),
		Eta: math.Atan2(dir.Y, dir.X),
	}
}

// Position returns the location of d.
func (d DirectionalPoint) Position() r3.Vec { return r3.Vec{X: d.X, Y: d.Y, Z: d.Z} }

// Direction returns the unit direction described by (Rho, Eta).
func (d DirectionalPoint) Direction() r3.Vec {
	sr, cr := math.Sincos(d.Rho)
	se, ce := math.Sincos(d.Eta)

	return r3.Vec{X: sr * ce, Y: sr * se, Z: cr}
}

func (d DirectionalPoint) String() string {
	return fmt.Sprintf("(%g, %g, %g, ρ=%g, η=%g)", d.X, d.Y, d.Z, d.Rho, d.Eta)
}
