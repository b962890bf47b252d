// SPDX-License-Identifier: MIT

// Package coverage implements the tensor-based coverage-strength model.
//
// Every camera and every surface triangle is reduced to a 3×3 basis
// (tensor.Tensor) describing the extent and orientation of its visibility:
//
//   - CameraTensor derives its basis from the camera's 8-point frustum hull:
//     the directions from the frustum centroid to the far face and to two
//     orthogonal side faces, rotated into the world frame.
//   - TriangleTensor derives its basis from the triangle: surface normal,
//     one in-plane edge direction and their cross product, each scaled by the
//     radius of the circle inscribed around the centroid.
//
// A camera's Strength toward a triangle is a scalar in [0, 1] combining the
// distance between the two centres (relative to the camera's reach) with the
// misalignment of the camera axis and the reversed surface normal.
//
// Model aggregates strengths over views: the cameras of one view must all
// see a point (minimum), alternative views are redundant (maximum). A camera
// with zero strength, or one whose line of sight is occluded, zeroes its
// view. Coverage maps every triangle of a task to a DirectionalPoint and its
// strength; Performance is the mean of a coverage cache.
//
// Bases are rebuilt eagerly whenever a pose, mount or parameter changes; a
// mutator either commits the new state together with its basis or leaves
// the entity untouched and returns an error. The package assumes a single
// writer per entity; Model's registries are guarded by a RWMutex.
//
// Logging goes through log/slog and is silent until SetLogger is called.
package coverage
