// SPDX-License-Identifier: MIT

// Package geometry holds the small amount of 3D geometry the coverage model
// needs on top of gonum's spatial/r3: rigid poses, directional points,
// triangles with a segment intersection test, and a few vector helpers
// (centroid, point-to-segment distance, angle between vectors).
//
// All lengths are in the scene's unit (millimetres in the bundled
// configurations); all angles are in radians.
package geometry
