// SPDX-License-Identifier: MIT

package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// intersectEps keeps segment endpoints (the camera and the tested point)
// from registering as hits on the triangles they lie on.
const intersectEps = 1e-9

// Triangle is a triangle given by its three vertices.
type Triangle struct {
	Vertices [3]r3.Vec
}

// NewTriangle validates vertices and returns the triangle.
// Errors: ErrVertexCount, ErrDegenerateTriangle.
func NewTriangle(vertices []r3.Vec) (Triangle, error) {
	if len(vertices) != 3 {
		return Triangle{}, ErrVertexCount
	}
	t := Triangle{Vertices: [3]r3.Vec{vertices[0], vertices[1], vertices[2]}}
	if r3.Norm2(t.cross()) == 0 {
		return Triangle{}, ErrDegenerateTriangle
	}

	return t, nil
}

// cross returns (v1-v0) × (v2-v0).
func (t Triangle) cross() r3.Vec {
	return r3.Cross(r3.Sub(t.Vertices[1], t.Vertices[0]), r3.Sub(t.Vertices[2], t.Vertices[0]))
}

// Normal returns the unit normal following the right-hand rule over v0, v1, v2.
func (t Triangle) Normal() r3.Vec { return Unit(t.cross()) }

// Centroid returns the mean of the three vertices.
func (t Triangle) Centroid() r3.Vec {
	c, _ := Centroid(t.Vertices[:]...)

	return c
}

// Transform returns t with every vertex mapped by p.
func (t Triangle) Transform(p Pose) Triangle {
	var out Triangle
	for i, v := range t.Vertices {
		out.Vertices[i] = p.Map(v)
	}

	return out
}

// IntersectsSegment reports whether the open segment (a, b) crosses t.
// Möller–Trumbore with the ray parameter restricted to (eps, 1-eps);
// segments parallel to the triangle's plane never intersect.
func (t Triangle) IntersectsSegment(a, b r3.Vec) bool {
	dir := r3.Sub(b, a)
	e1 := r3.Sub(t.Vertices[1], t.Vertices[0])
	e2 := r3.Sub(t.Vertices[2], t.Vertices[0])
	pv := r3.Cross(dir, e2)
	det := r3.Dot(e1, pv)
	if math.Abs(det) < intersectEps {
		return false
	}
	inv := 1 / det
	tv := r3.Sub(a, t.Vertices[0])
	u := r3.Dot(tv, pv) * inv
	if u < 0 || u > 1 {
		return false
	}
	qv := r3.Cross(tv, e1)
	v := r3.Dot(dir, qv) * inv
	if v < 0 || u+v > 1 {
		return false
	}
	s := r3.Dot(e2, qv) * inv

	return s > intersectEps && s < 1-intersectEps
}
